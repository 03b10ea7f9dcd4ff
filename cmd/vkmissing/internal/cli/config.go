// Package cli provides configuration and wiring helpers for the vkmissing CLI.
package cli

import (
	"fmt"

	"github.com/lerenn/vkmissing/pkg/config"
	"github.com/lerenn/vkmissing/pkg/fs"
)

// Overrides holds configuration values given on the command line.
// A nil field leaves the configured value untouched.
type Overrides struct {
	HeaderPath  *string
	Marker      *string
	ExcludeDirs []string
	Workers     *int
}

// GetConfigPath returns the config file path that LoadConfig would use.
func GetConfigPath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	return config.DefaultConfigPath()
}

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager(fsInstance fs.FS, customPath string) config.Manager {
	return config.NewManager(fsInstance, GetConfigPath(customPath))
}

// LoadConfig loads the configuration and applies command line overrides.
// A custom config path must exist; the default one falls back to the
// embedded defaults.
func LoadConfig(fsInstance fs.FS, customPath string, overrides Overrides) (config.Config, error) {
	manager := NewConfigManager(fsInstance, customPath)

	var (
		cfg config.Config
		err error
	)
	if customPath != "" {
		cfg, err = manager.GetConfig()
	} else {
		cfg, err = manager.GetConfigWithFallback()
	}
	if err != nil {
		return config.Config{}, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	return ApplyOverrides(fsInstance, cfg, overrides)
}

// ApplyOverrides replaces configured values with the ones set on the command line.
func ApplyOverrides(fsInstance fs.FS, cfg config.Config, overrides Overrides) (config.Config, error) {
	if overrides.HeaderPath != nil {
		headerPath, err := fsInstance.ExpandPath(*overrides.HeaderPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to expand header path: %w", err)
		}
		cfg.HeaderPath = headerPath
	}

	if overrides.Marker != nil {
		cfg.Marker = *overrides.Marker
	}

	if overrides.ExcludeDirs != nil {
		cfg.ExcludeDirs = append([]string(nil), overrides.ExcludeDirs...)
	}

	if overrides.Workers != nil {
		cfg.Workers = *overrides.Workers
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	return cfg, nil
}
