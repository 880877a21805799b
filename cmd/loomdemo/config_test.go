package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfig_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loomdemo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: light\nwidth: 100\nheight: 30\nmetrics: true\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config{Theme: "light", Width: 100, Height: 30, Metrics: true}, cfg)
}

func TestLoadConfig_RejectsUnknownTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loomdemo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: neon\n"), 0o644))

	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_RejectsNonPositiveSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loomdemo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 0\nheight: 24\n"), 0o644))

	_, err := loadConfig(path)
	assert.Error(t, err)
}
