// Package project persists application data as JSON files under the
// user's ~/.cubefit directory.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jdekker3d/cubefit/internal/model"
)

// DefaultConfigPath returns the default file path for the app config.
// This is located at ~/.cubefit/config.json.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cubefit", "config.json"), nil
}

// SaveConfig writes the config to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveConfig(path string, cfg model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadConfig reads the config from the specified JSON file.
// If the file does not exist, it returns the default config and saves it.
func LoadConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := model.DefaultAppConfig()
			if saveErr := SaveConfig(path, cfg); saveErr != nil {
				return cfg, saveErr
			}
			return cfg, nil
		}
		return model.AppConfig{}, err
	}
	var cfg model.AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return model.AppConfig{}, err
	}
	if cfg.RecentPuzzles == nil {
		cfg.RecentPuzzles = []string{}
	}
	if cfg.DefaultWorkers < 1 {
		cfg.DefaultWorkers = 1
	}
	return cfg, nil
}

// LoadOrCreateConfig loads the config from the default path.
// If the file does not exist, it creates one with default values.
func LoadOrCreateConfig() (model.AppConfig, string, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return model.DefaultAppConfig(), "", err
	}
	cfg, err := LoadConfig(path)
	return cfg, path, err
}
