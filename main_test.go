package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/harrisonrobin/tasktimer/pkg/config"
	"github.com/harrisonrobin/tasktimer/pkg/harness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommand_RunsSelectedCheck(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := execute(t, "--check", "Formatted Duration", "--check", "Resume Functionality")
	require.NoError(t, err)
	assert.Contains(t, out, "▸ Testing Resume Functionality... ✓")
	assert.Contains(t, out, "▸ Testing Formatted Duration... ✓")
	assert.NotContains(t, out, "Elapsed Time")
	assert.Contains(t, out, "✅ All 2 tests passed")
}

func TestCommand_UnknownCheck(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := execute(t, "--check", "Nope")
	require.Error(t, err)
	assert.False(t, errors.Is(err, harness.ErrChecksFailed))
}

func TestCommand_SaveConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	out, err := execute(t, "--save-config", "--log-level", "debug", "--check", "Initialization")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration saved")

	cfg, err := config.LoadFrom(filepath.Join(home, ".config", "tasktimer", "config.json"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"Initialization"}, cfg.Checks)

	// Saved checks become the default selection.
	out, err = execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "✅ All 1 tests passed")
}

func TestCommand_BadLogLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := execute(t, "--log-level", "chatty")
	assert.Error(t, err)
}
