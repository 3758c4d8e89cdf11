package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "datatable.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATATABLE_DEV", "true")

	cfg := Default()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.True(t, cfg.Dev)
	assert.Equal(t, "dist", cfg.ExportDir)
}

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATATABLE_DEV", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)

	path := writeConfig(t, `
addr = "127.0.0.1:3000"
title = "Team"
data = "team.yaml"
placeholder = "n/a"
`)
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Addr:        "127.0.0.1:3000",
		Title:       "Team",
		Data:        "team.yaml",
		Placeholder: "n/a",
		ExportDir:   "dist",
	}, cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `adr = ":1"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "adr")

	_, err = Load(writeConfig(t, `addr = `))
	assert.Error(t, err)
}
