package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/core/domain"
)

func TestConfig_Key_Deterministic(t *testing.T) {
	build := func() *domain.Config {
		return &domain.Config{
			Root:    "/proj",
			Entries: []string{"src/app.js", "src/admin.js"},
			Targets: []domain.Target{
				{Name: "web", OutputDir: "dist/web", Minify: true},
				{Name: "lib", OutputDir: "dist/lib"},
			},
			Env: map[string]string{
				"API_URL": "https://api.example.com",
				"DEBUG":   "1",
				"REGION":  "eu-west-1",
			},
		}
	}

	// Map iteration order must not leak into the key.
	key := build().Key()
	for range 10 {
		assert.Equal(t, key, build().Key())
	}
	require.Len(t, key, 16)
}

func TestConfig_Key_SensitiveToEveryField(t *testing.T) {
	base := func() *domain.Config {
		return &domain.Config{
			Root:    "/proj",
			Entries: []string{"src/app.js"},
			Targets: []domain.Target{{Name: "web", OutputDir: "dist"}},
			Env:     map[string]string{"DEBUG": "1"},
		}
	}

	mutations := map[string]func(*domain.Config){
		"root":          func(c *domain.Config) { c.Root = "/other" },
		"entries":       func(c *domain.Config) { c.Entries = []string{"src/other.js"} },
		"target name":   func(c *domain.Config) { c.Targets[0].Name = "lib" },
		"target dir":    func(c *domain.Config) { c.Targets[0].OutputDir = "out" },
		"target minify": func(c *domain.Config) { c.Targets[0].Minify = true },
		"env value":     func(c *domain.Config) { c.Env["DEBUG"] = "0" },
		"env key":       func(c *domain.Config) { c.Env = map[string]string{"VERBOSE": "1"} },
	}

	ref := base().Key()
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			cfg := base()
			mutate(cfg)
			assert.NotEqual(t, ref, cfg.Key())
		})
	}
}

func TestDefaultTarget(t *testing.T) {
	target := domain.DefaultTarget()
	assert.Equal(t, "default", target.Name)
	assert.Equal(t, "dist", target.OutputDir)
	assert.False(t, target.Minify)
}
