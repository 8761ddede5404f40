package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Target describes one output flavor of a build (e.g. "web", "lib").
type Target struct {
	Name string
	// OutputDir is the directory artifacts are written to, relative to the
	// project root.
	OutputDir string
	// Minify requests the packaging op to strip insignificant whitespace.
	Minify bool
}

// Config is the fully resolved, immutable build configuration.
// Environment values are folded in at resolution time; nothing downstream
// consults the process environment.
type Config struct {
	// Root is the absolute project root directory.
	Root string
	// Entries are the entry files, relative to Root.
	Entries []string
	// Targets are the resolved output targets, in declaration order.
	Targets []Target
	// Env holds environment values loaded from .env files plus overrides
	// from the config file.
	Env map[string]string
	// DevServerAddr is the listen address for the live-reload channel,
	// empty when no dev server is configured.
	DevServerAddr string
}

// Key returns a deterministic identity for the configuration. Worker pools
// are shared between orchestrators whose configurations have equal keys.
func (c *Config) Key() string {
	var sb strings.Builder

	sb.WriteString("root=")
	sb.WriteString(c.Root)
	sb.WriteByte('\n')

	for _, e := range c.Entries {
		sb.WriteString("entry=")
		sb.WriteString(e)
		sb.WriteByte('\n')
	}

	for _, t := range c.Targets {
		fmt.Fprintf(&sb, "target=%s:%s:%t\n", t.Name, t.OutputDir, t.Minify)
	}

	keys := make([]string, 0, len(c.Env))
	for k := range c.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, "env=%s=%s\n", k, c.Env[k])
	}

	return fmt.Sprintf("%016x", xxhash.Sum64String(sb.String()))
}

// DefaultTarget is the target used when the configuration declares none.
func DefaultTarget() Target {
	return Target{Name: "default", OutputDir: "dist"}
}
