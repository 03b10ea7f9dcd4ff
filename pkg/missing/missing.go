package missing

import (
	"context"
	"fmt"
	"io"

	"github.com/lerenn/vkmissing/pkg/config"
	"github.com/lerenn/vkmissing/pkg/dependencies"
	"github.com/lerenn/vkmissing/pkg/header"
	"github.com/lerenn/vkmissing/pkg/logger"
	"github.com/lerenn/vkmissing/pkg/scanner"
)

// Missing reports header-declared functions that never appear in a directory tree.
type Missing interface {
	// FindMissing returns, in sorted order, every declared function with no
	// occurrence under dir. A function declared twice is checked and
	// returned twice.
	FindMissing(ctx context.Context, dir string) ([]string, error)
	// Report runs FindMissing and writes one name per line to w.
	// Nothing is written when the run fails.
	Report(ctx context.Context, dir string, w io.Writer) error
	// SetLogger sets the logger for this instance and the components it built.
	SetLogger(logger logger.Logger)
}

// NewMissingParams contains parameters for creating a new Missing instance.
type NewMissingParams struct {
	// Config overrides the configuration from Dependencies.Config when set.
	Config       *config.Config
	Dependencies *dependencies.Dependencies
}

type realMissing struct {
	deps   *dependencies.Dependencies
	config config.Config
	// ownParser and ownScanner are set when NewMissing built them from config.
	ownParser  bool
	ownScanner bool
}

// NewMissing creates a new Missing instance.
// A parser and scanner are built from the configuration when the
// dependencies do not provide them.
func NewMissing(params NewMissingParams) (Missing, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	var cfg config.Config
	if params.Config != nil {
		cfg = *params.Config
	} else {
		if deps.Config == nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, dependencies.ErrConfigMissing)
		}
		loaded, err := deps.Config.GetConfigWithFallback()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
		cfg = loaded
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if deps.Config == nil {
		deps.Config = config.NewManager(deps.FS, config.DefaultConfigPath())
	}

	m := &realMissing{
		deps:       deps,
		config:     cfg,
		ownParser:  deps.Parser == nil,
		ownScanner: deps.Scanner == nil,
	}
	m.buildComponents()

	if err := deps.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// buildComponents creates the parser and scanner owned by this instance
// with the current logger.
func (m *realMissing) buildComponents() {
	if m.ownParser {
		m.deps.Parser = header.NewParser(header.NewParserParams{
			FS:     m.deps.FS,
			Logger: m.deps.Logger,
			Marker: m.config.Marker,
		})
	}

	if m.ownScanner {
		m.deps.Scanner = scanner.NewScanner(scanner.NewScannerParams{
			FS:          m.deps.FS,
			Logger:      m.deps.Logger,
			ExcludeDirs: m.config.ExcludeDirs,
		})
	}
}

// VerbosePrint logs a formatted debug message using the current logger.
func (m *realMissing) VerbosePrint(msg string, args ...interface{}) {
	if m.deps.Logger != nil {
		m.deps.Logger.Debugf(msg, args...)
	}
}

// SetLogger sets the logger for this instance and for the parser and
// scanner it built. Injected components keep their own logger.
func (m *realMissing) SetLogger(logger logger.Logger) {
	m.deps.Logger = logger
	m.buildComponents()
}
