package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Missing(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope", "config.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Empty(t, cfg.Checks)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasktimer", "config.json")
	want := &Config{LogLevel: "debug", Checks: []string{"Initialization", "Formatted Duration"}}

	require.NoError(t, SaveTo(path, want))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadFrom_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, SaveTo(path, &Config{LogLevel: "debug"}))

	t.Setenv("TASKTIMER_LOG_LEVEL", "error")
	t.Setenv("TASKTIMER_CHECKS", "Initialization,Resume Functionality")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, []string{"Initialization", "Resume Functionality"}, cfg.Checks)
}

func TestLoadFrom_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}
