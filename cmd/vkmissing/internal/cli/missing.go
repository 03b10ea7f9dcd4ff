package cli

import (
	"github.com/lerenn/vkmissing/pkg/config"
	"github.com/lerenn/vkmissing/pkg/dependencies"
	"github.com/lerenn/vkmissing/pkg/fs"
	"github.com/lerenn/vkmissing/pkg/logger"
	"github.com/lerenn/vkmissing/pkg/missing"
)

// NewMissing creates a Missing instance for the given configuration.
func NewMissing(fsInstance fs.FS, cfg config.Config, configPath string, log logger.Logger) (missing.Missing, error) {
	return missing.NewMissing(missing.NewMissingParams{
		Config: &cfg,
		Dependencies: dependencies.New().
			WithFS(fsInstance).
			WithConfig(NewConfigManager(fsInstance, configPath)).
			WithLogger(log),
	})
}
