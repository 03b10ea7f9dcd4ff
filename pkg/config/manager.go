package config

import (
	"errors"
	"fmt"

	"github.com/lerenn/vkmissing/pkg/fs"
	"gopkg.in/yaml.v3"
)

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	// GetConfig loads the configuration file and fails if it is missing.
	GetConfig() (Config, error)
	// GetConfigWithFallback loads the configuration file, using defaults when it is missing.
	GetConfigWithFallback() (Config, error)
	// DefaultConfig returns the embedded default configuration.
	DefaultConfig() Config
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	fs         fs.FS
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(fsInstance fs.FS, configPath string) Manager {
	return &realManager{
		fs:         fsInstance,
		configPath: configPath,
	}
}

// GetConfig loads configuration from the embedded config path.
// Keys missing from the file keep their default value.
func (c *realManager) GetConfig() (Config, error) {
	// Check if config file exists
	exists, err := c.fs.Exists(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, c.configPath)
	}

	data, err := c.fs.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	config := c.DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	return c.finalize(config)
}

// GetConfigWithFallback loads the configuration, falling back to the defaults
// only when the file does not exist. A file that exists but cannot be parsed
// is still an error.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, ErrConfigNotFound) {
		return Config{}, err
	}

	return c.finalize(c.DefaultConfig())
}

// DefaultConfig returns the default configuration.
func (c *realManager) DefaultConfig() Config {
	config, err := parseDefaultConfig()
	if err != nil {
		return builtinConfig()
	}
	return config
}

// finalize expands tildes and validates the configuration.
func (c *realManager) finalize(config Config) (Config, error) {
	headerPath, err := c.fs.ExpandPath(config.HeaderPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to expand header path: %w", err)
	}
	config.HeaderPath = headerPath

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return config, nil
}
