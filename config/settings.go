package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings represents the structure of ~/.roundtrip/settings.json
type Settings struct {
	Debug       *bool  `json:"debug,omitempty"`
	Decoder     string `json:"decoder,omitempty"`
	Encoder     string `json:"encoder,omitempty"`
	MaxLogFiles *int   `json:"max_log_files,omitempty"`
	OutDir      string `json:"out_dir,omitempty"`
}

// LoadSettings loads settings from ~/.roundtrip/settings.json
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	path := filepath.Join(homeDir, ".roundtrip", "settings.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	// Expand paths that start with ~
	if settings.Encoder != "" {
		settings.Encoder = expandPath(settings.Encoder)
	}
	if settings.Decoder != "" {
		settings.Decoder = expandPath(settings.Decoder)
	}
	if settings.OutDir != "" {
		settings.OutDir = expandPath(settings.OutDir)
	}

	return &settings, nil
}

// expandPath expands ~ to home directory in paths
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path // Return as-is if we can't get home dir
		}
		if len(path) == 1 {
			return homeDir
		}
		return filepath.Join(homeDir, path[1:])
	}
	return path
}
