package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".roundtrip")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte(content), 0644))
}

func TestLoadSettings_MissingFileIsNotAnError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettings_AllFields(t *testing.T) {
	writeSettings(t, `{
		"encoder": "/opt/wabt/bin/wat2wasm",
		"decoder": "/opt/wabt/bin/wasm2wat",
		"out_dir": "/tmp/roundtrip-out",
		"debug": true,
		"max_log_files": 50
	}`)

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, "/opt/wabt/bin/wat2wasm", settings.Encoder)
	assert.Equal(t, "/opt/wabt/bin/wasm2wat", settings.Decoder)
	assert.Equal(t, "/tmp/roundtrip-out", settings.OutDir)
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	require.NotNil(t, settings.MaxLogFiles)
	assert.Equal(t, 50, *settings.MaxLogFiles)
}

func TestLoadSettings_TildeExpansion(t *testing.T) {
	writeSettings(t, `{"encoder": "~/wabt/wat2wasm"}`)

	settings, err := LoadSettings()

	require.NoError(t, err)
	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, "wabt", "wat2wasm"), settings.Encoder)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	writeSettings(t, `{not json`)

	_, err := LoadSettings()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings.json")
}
