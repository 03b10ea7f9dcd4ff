// Package dependencies provides a centralized dependency container for vkmissing.
// Related dependencies are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"

	"github.com/lerenn/vkmissing/pkg/config"
	"github.com/lerenn/vkmissing/pkg/fs"
	"github.com/lerenn/vkmissing/pkg/header"
	"github.com/lerenn/vkmissing/pkg/logger"
	"github.com/lerenn/vkmissing/pkg/scanner"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing      = errors.New("fs dependency is required but not set")
	ErrConfigMissing  = errors.New("config dependency is required but not set")
	ErrLoggerMissing  = errors.New("logger dependency is required but not set")
	ErrParserMissing  = errors.New("header parser dependency is required but not set")
	ErrScannerMissing = errors.New("scanner dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS      fs.FS
	Config  config.Manager
	Logger  logger.Logger
	Parser  header.Parser
	Scanner scanner.Scanner
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	return &Dependencies{
		FS:     fs.NewFS(),
		Logger: logger.NewNoopLogger(),
		// Note: Config, Parser and Scanner depend on the loaded configuration
		// and are set via With* methods or built from it by the caller
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithParser sets the header parser and returns the instance for chaining.
func (d *Dependencies) WithParser(parser header.Parser) *Dependencies {
	d.Parser = parser
	return d
}

// WithScanner sets the scanner and returns the instance for chaining.
func (d *Dependencies) WithScanner(s scanner.Scanner) *Dependencies {
	d.Scanner = s
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Parser, ErrParserMissing},
		{d.Scanner, ErrScannerMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
