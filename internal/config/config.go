// Package config handles converter configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/philipparndt/heightmap2obj/pkg/mesh"
)

// Config holds all converter settings.
type Config struct {
	Mesh    MeshConfig    `yaml:"mesh"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// MeshConfig holds the defaults for mesh generation.
type MeshConfig struct {
	Scale     float64 `yaml:"scale"`
	MaxHeight float64 `yaml:"max_height"`
	Strict    bool    `yaml:"strict"`  // reject non-positive scale and max height
	Workers   int     `yaml:"workers"` // 0 = one per CPU
}

// WatchConfig holds watch mode settings.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	params := mesh.DefaultParams()
	return &Config{
		Mesh: MeshConfig{
			Scale:     params.Scale,
			MaxHeight: params.MaxHeight,
		},
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Params returns the mesh parameters of the configuration.
func (c *Config) Params() mesh.Params {
	return mesh.Params{Scale: c.Mesh.Scale, MaxHeight: c.Mesh.MaxHeight}
}

// Validate checks the configuration for values the converter cannot use.
func (c *Config) Validate() error {
	if err := c.Params().Validate(c.Mesh.Strict); err != nil {
		return err
	}
	if c.Mesh.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Mesh.Workers)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("debounce must not be negative, got %s", c.Watch.Debounce)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}
