package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigNotFound  = errors.New("configuration file not found")
	ErrConfigFileParse = errors.New("failed to parse config file")

	// Configuration validation errors.
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrHeaderPathEmpty = errors.New("header_path cannot be empty")
	ErrMarkerEmpty     = errors.New("marker cannot be empty")
	ErrInvalidWorkers  = errors.New("workers must be at least 1")
)
