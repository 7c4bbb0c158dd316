package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file.
const FileName = "heightmap2obj.yaml"

// Load loads configuration with priority defaults < file. An explicit
// path must exist; without one the standard locations are searched and a
// missing file is not an error. Command-line overrides are applied by the
// caller on the returned value.
func Load(explicitPath string) (*Config, string, error) {
	cfg := Default()

	configPath := explicitPath
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, "", fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	return cfg, configPath, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{"./" + FileName}
	if dir, err := ConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "config.yaml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "heightmap2obj"), nil
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
