package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, dbPath string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	body := fmt.Sprintf("[log]\nlevel = \"error\"\n\n[database]\ndriver = \"sqlite\"\npath = %q\n", dbPath)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("DATABASE_PATH", "")
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "crm ")
}

func TestMigrateCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "crm.db")
	cfg := writeConfig(t, dbPath)

	_, err := run(t, "--config", cfg, "migrate", "up")
	require.NoError(t, err)
	assert.FileExists(t, dbPath)

	_, err = run(t, "--config", cfg, "migrate", "version")
	require.NoError(t, err)

	_, err = run(t, "--config", cfg, "migrate", "sideways")
	assert.ErrorContains(t, err, "unknown migrate command")

	_, err = run(t, "--config", cfg, "migrate", "force")
	assert.Error(t, err)

	_, err = run(t, "--config", cfg, "migrate", "down")
	require.NoError(t, err)
}

func TestMigrateRequiresCommand(t *testing.T) {
	_, err := run(t, "migrate")
	assert.Error(t, err)
}
