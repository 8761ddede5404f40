package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/adapters/config"
	"go.trai.ch/stitch/internal/adapters/logger"
	"go.trai.ch/stitch/internal/core/domain"
)

func newResolver() *config.Resolver {
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(&bytes.Buffer{})
	return config.NewResolver(lg)
}

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o644))
}

func TestResolver_Resolve(t *testing.T) {
	root := t.TempDir()
	writeConfigFile(t, root, `
version: "1"
entries:
  - src/app.js
  - styles/main.scss
targets:
  - name: web
    dir: out/web
    minify: true
  - name: embed
env:
  API_URL: https://api.example.test
dev:
  addr: "127.0.0.1:9000"
`)

	cfg, err := newResolver().Resolve(root)
	require.NoError(t, err)

	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, []string{"src/app.js", "styles/main.scss"}, cfg.Entries)
	require.Len(t, cfg.Targets, 2)
	assert.Equal(t, domain.Target{Name: "web", OutputDir: "out/web", Minify: true}, cfg.Targets[0])
	// A target without a dir defaults to dist/<name>.
	assert.Equal(t, domain.Target{Name: "embed", OutputDir: filepath.Join("dist", "embed")}, cfg.Targets[1])
	assert.Equal(t, "https://api.example.test", cfg.Env["API_URL"])
	assert.Equal(t, "127.0.0.1:9000", cfg.DevServerAddr)
}

func TestResolver_Resolve_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfigFile(t, root, "entries: [src/app.js]\n")
	nested := filepath.Join(root, "src", "components")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	cfg, err := newResolver().Resolve(nested)
	require.NoError(t, err)
	assert.Equal(t, root, cfg.Root, "root is the config file's directory, not the lookup dir")
}

func TestResolver_Resolve_DeclaredRoot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "app"), 0o750))
	writeConfigFile(t, dir, "root: app\nentries: [main.js]\n")

	cfg, err := newResolver().Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "app"), cfg.Root)
}

func TestResolver_Resolve_DefaultTarget(t *testing.T) {
	root := t.TempDir()
	writeConfigFile(t, root, "entries: [src/app.js]\n")

	cfg, err := newResolver().Resolve(root)
	require.NoError(t, err)
	assert.Equal(t, []domain.Target{domain.DefaultTarget()}, cfg.Targets)
}

func TestResolver_Resolve_NotFound(t *testing.T) {
	_, err := newResolver().Resolve(t.TempDir())
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestResolver_Resolve_ParseError(t *testing.T) {
	root := t.TempDir()
	writeConfigFile(t, root, "entries: [unclosed\n")

	_, err := newResolver().Resolve(root)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestResolver_EnvPrecedence(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.EnvFileName),
		[]byte("SHARED=env\nFROM_ENV=1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.LocalEnvFileName),
		[]byte("SHARED=local\nFROM_LOCAL=1\n"), 0o644))
	writeConfigFile(t, root, `
entries: [src/app.js]
env:
  FROM_LOCAL: config
`)

	cfg, err := newResolver().Resolve(root)
	require.NoError(t, err)

	// .env.local overrides .env; explicit config values override both.
	assert.Equal(t, "local", cfg.Env["SHARED"])
	assert.Equal(t, "1", cfg.Env["FROM_ENV"])
	assert.Equal(t, "config", cfg.Env["FROM_LOCAL"])
}

func TestResolver_EnvFileUnparsable(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.EnvFileName),
		[]byte("KEY_WITHOUT_SEPARATOR\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.LocalEnvFileName),
		[]byte("GOOD=yes\n"), 0o644))
	writeConfigFile(t, root, "entries: [src/app.js]\n")

	cfg, err := newResolver().Resolve(root)
	require.NoError(t, err, "a broken env file is skipped with a warning")
	assert.Equal(t, "yes", cfg.Env["GOOD"])
}

func TestResolver_Create(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.EnvFileName),
		[]byte("SHARED=env\n"), 0o644))

	explicit := &domain.Config{
		Root:    root,
		Entries: []string{"src/app.js"},
		Env:     map[string]string{"SHARED": "explicit"},
	}
	cfg, err := newResolver().Create(explicit, "")
	require.NoError(t, err)

	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, []string{"src/app.js"}, cfg.Entries)
	assert.Equal(t, []domain.Target{domain.DefaultTarget()}, cfg.Targets, "empty targets default")
	assert.Equal(t, "explicit", cfg.Env["SHARED"], "explicit env wins over .env files")
}

func TestResolver_ResolveTargets(t *testing.T) {
	t.Run("declared targets", func(t *testing.T) {
		root := t.TempDir()
		writeConfigFile(t, root, `
entries: [src/app.js]
targets:
  - name: web
    dir: out/web
`)
		targets, err := newResolver().ResolveTargets(root)
		require.NoError(t, err)
		require.Len(t, targets, 1)
		assert.Equal(t, "web", targets[0].Name)
	})

	t.Run("no configuration falls back to default", func(t *testing.T) {
		targets, err := newResolver().ResolveTargets(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, []domain.Target{domain.DefaultTarget()}, targets)
	})

	t.Run("parse error propagates", func(t *testing.T) {
		root := t.TempDir()
		writeConfigFile(t, root, "entries: [unclosed\n")
		_, err := newResolver().ResolveTargets(root)
		require.Error(t, err)
	})
}
