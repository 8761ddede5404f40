package config

// ConfigFile represents the structure of the stitch.yaml configuration file.
type ConfigFile struct {
	Version string            `yaml:"version"`
	Root    string            `yaml:"root"`
	Entries []string          `yaml:"entries"`
	Targets []TargetDTO       `yaml:"targets"`
	Env     map[string]string `yaml:"env"`
	Dev     DevDTO            `yaml:"dev"`
}

// TargetDTO represents one output target declaration.
type TargetDTO struct {
	Name   string `yaml:"name"`
	Dir    string `yaml:"dir"`
	Minify bool   `yaml:"minify"`
}

// DevDTO represents the dev server section.
type DevDTO struct {
	Addr string `yaml:"addr"`
}
