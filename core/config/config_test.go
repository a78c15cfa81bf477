package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Len(t, cfg.Files, 8)
	assert.Contains(t, cfg.Files, "Settings.tsx")
}

func TestLoadFromWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	yml := "base_dir: app/pages\nfiles:\n  - Live.tsx\n  - Apply.tsx\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(yml), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "app/pages", cfg.BaseDir)
	assert.Equal(t, []string{"Live.tsx", "Apply.tsx"}, cfg.Files)
}

func TestLoadFillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_dir: src/pages\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "src/pages", cfg.BaseDir)
	assert.Equal(t, Default().Files, cfg.Files)
}

func TestLoadExplicitMissingPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("files: [unterminated"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse yaml")
}

func TestWriteRoundTripAndForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	require.NoError(t, Default().Write(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	err = Default().Write(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, (&Config{BaseDir: "x", Files: []string{"A.tsx"}}).Write(path, true))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "x", cfg.BaseDir)
}
