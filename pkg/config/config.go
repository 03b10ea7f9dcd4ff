// Package config provides configuration management functionality for vkmissing.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lerenn/vkmissing/configs"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultHeaderPath is the system Vulkan header.
	DefaultHeaderPath = "/usr/include/vulkan/vulkan.h"
	// DefaultMarker precedes the function name on every Vulkan prototype.
	DefaultMarker = "VKAPI_CALL "
	// DefaultWorkers keeps the scan sequential.
	DefaultWorkers = 1
)

// Config represents the application configuration.
type Config struct {
	HeaderPath  string   `yaml:"header_path"`
	Marker      string   `yaml:"marker"`
	ExcludeDirs []string `yaml:"exclude_dirs"`
	Workers     int      `yaml:"workers"`
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if c.HeaderPath == "" {
		return ErrHeaderPathEmpty
	}

	if c.Marker == "" {
		return ErrMarkerEmpty
	}

	if c.Workers < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}

	return nil
}

// builtinConfig is used when the embedded defaults cannot be decoded.
func builtinConfig() Config {
	return Config{
		HeaderPath: DefaultHeaderPath,
		Marker:     DefaultMarker,
		Workers:    DefaultWorkers,
	}
}

// parseDefaultConfig decodes the embedded default configuration.
func parseDefaultConfig() (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(configs.DefaultConfigYAML, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}
	return cfg, nil
}

// DefaultConfigPath returns $HOME/.vkmissing/config.yaml, or a path relative
// to the working directory when the home directory is unknown.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home directory cannot be determined
		homeDir = "."
	}
	return filepath.Join(homeDir, ".vkmissing", "config.yaml")
}
