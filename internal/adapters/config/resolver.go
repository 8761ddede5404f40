// Package config provides the configuration resolver for stitch.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Resolver implements ports.ConfigResolver backed by stitch.yaml files.
// Environment values from .env files are folded into the resolved Config at
// resolution time; the process environment is never mutated.
type Resolver struct {
	Logger ports.Logger
}

// NewResolver creates a new Resolver with the given logger.
func NewResolver(logger ports.Logger) *Resolver {
	return &Resolver{Logger: logger}
}

// Resolve discovers and loads the configuration for the given root.
func (r *Resolver) Resolve(rootDir string) (*domain.Config, error) {
	configPath, err := r.findConfiguration(rootDir)
	if err != nil {
		return nil, err
	}

	var file ConfigFile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}

	root := resolveRoot(configPath, file.Root)
	return r.assemble(&file, root)
}

// Create builds a resolved configuration from an explicitly supplied one.
// The explicit value wins over anything on disk; only defaults and .env
// loading are applied.
func (r *Resolver) Create(explicit *domain.Config, rootDir string) (*domain.Config, error) {
	root := explicit.Root
	if root == "" {
		root = rootDir
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve project root")
	}

	cfg := &domain.Config{
		Root:          absRoot,
		Entries:       explicit.Entries,
		Targets:       explicit.Targets,
		Env:           mergeEnv(r.loadEnvFiles(absRoot), explicit.Env),
		DevServerAddr: explicit.DevServerAddr,
	}
	if len(cfg.Targets) == 0 {
		cfg.Targets = []domain.Target{domain.DefaultTarget()}
	}
	return cfg, nil
}

// ResolveTargets resolves the output targets declared for the root. A root
// with no configuration or no declared targets resolves to the default
// target so one-shot builds work out of the box.
func (r *Resolver) ResolveTargets(rootDir string) ([]domain.Target, error) {
	cfg, err := r.Resolve(rootDir)
	if err != nil {
		if errors.Is(err, domain.ErrConfigNotFound) {
			return []domain.Target{domain.DefaultTarget()}, nil
		}
		return nil, err
	}
	return cfg.Targets, nil
}

// findConfiguration walks up from rootDir looking for stitch.yaml.
func (r *Resolver) findConfiguration(rootDir string) (string, error) {
	currentDir, err := filepath.Abs(rootDir)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve project root")
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "root", rootDir)
}

func (r *Resolver) assemble(file *ConfigFile, root string) (*domain.Config, error) {
	targets := make([]domain.Target, 0, len(file.Targets))
	for _, t := range file.Targets {
		target := domain.Target{Name: t.Name, OutputDir: t.Dir, Minify: t.Minify}
		if target.OutputDir == "" {
			target.OutputDir = filepath.Join("dist", target.Name)
		}
		targets = append(targets, target)
	}
	if len(targets) == 0 {
		targets = []domain.Target{domain.DefaultTarget()}
	}

	return &domain.Config{
		Root:          root,
		Entries:       file.Entries,
		Targets:       targets,
		Env:           mergeEnv(r.loadEnvFiles(root), file.Env),
		DevServerAddr: file.Dev.Addr,
	}, nil
}

// loadEnvFiles reads .env and .env.local from the project root into a map.
// Values from .env.local override .env; a missing file is not an error.
func (r *Resolver) loadEnvFiles(root string) map[string]string {
	env := make(map[string]string)
	for _, name := range []string{domain.EnvFileName, domain.LocalEnvFileName} {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		values, err := godotenv.Read(path)
		if err != nil {
			r.Logger.Warn("skipping unparsable env file " + path)
			continue
		}
		for k, v := range values {
			env[k] = v
		}
	}
	return env
}

// mergeEnv overlays explicit config values on top of .env file values.
func mergeEnv(fileEnv, configEnv map[string]string) map[string]string {
	merged := make(map[string]string, len(fileEnv)+len(configEnv))
	for k, v := range fileEnv {
		merged[k] = v
	}
	for k, v := range configEnv {
		merged[k] = v
	}
	return merged
}

// resolveRoot returns the absolute project root: the declared root relative
// to the config file's directory, or that directory itself.
func resolveRoot(configPath, declaredRoot string) string {
	base := filepath.Dir(configPath)
	if declaredRoot == "" {
		return base
	}
	if filepath.IsAbs(declaredRoot) {
		return declaredRoot
	}
	return filepath.Join(base, declaredRoot)
}

func readAndUnmarshalYAML(path string, out *ConfigFile) error {
	//nolint:gosec // config path is discovered relative to the project root
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "file", path)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "file", path)
	}
	return nil
}
