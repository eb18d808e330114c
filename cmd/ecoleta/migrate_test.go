package main

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestMigrateCommands(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "data", "ecoleta.db"))
	t.Setenv("LOG_LEVEL", "error")

	out, err := runCmd(t, "migrate", "version")
	require.NoError(t, err)
	assert.Equal(t, "version: 0  dirty: false\n", out)

	_, err = runCmd(t, "migrate", "up")
	require.NoError(t, err)

	out, err = runCmd(t, "migrate", "version")
	require.NoError(t, err)
	assert.Equal(t, "version: 4  dirty: false\n", out)

	_, err = runCmd(t, "migrate", "down", "2")
	require.NoError(t, err)

	out, err = runCmd(t, "migrate", "version")
	require.NoError(t, err)
	assert.Equal(t, "version: 2  dirty: false\n", out)
}

func TestMigrateDown_InvalidSteps(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "ecoleta.db"))

	_, err := runCmd(t, "migrate", "down", "zero")
	assert.ErrorContains(t, err, "invalid steps")
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	_, err := runCmd(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "migrate", "version")
	assert.ErrorContains(t, err, "failed to load config")
}
