package scanner

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/lerenn/vkmissing/pkg/fs"
	"github.com/lerenn/vkmissing/pkg/logger"
)

//go:generate go tool mockgen -source=scanner.go -destination=mocks/scanner.gen.go -package=mocks

// Scanner searches a directory tree for a literal term.
type Scanner interface {
	// Contains reports whether term occurs in any regular file under dir.
	// The search is recursive and case-sensitive. A nil error with false means
	// no file matched; any failure of the search itself is returned as an
	// error wrapping ErrSearchFailed.
	Contains(ctx context.Context, dir, term string) (bool, error)
}

// NewScannerParams contains parameters for creating a new Scanner instance.
type NewScannerParams struct {
	FS          fs.FS
	Logger      logger.Logger
	ExcludeDirs []string
}

type realScanner struct {
	fs          fs.FS
	logger      logger.Logger
	excludeDirs map[string]struct{}
}

// NewScanner creates a new Scanner instance.
func NewScanner(params NewScannerParams) Scanner {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}

	excludeDirs := make(map[string]struct{}, len(params.ExcludeDirs))
	for _, name := range params.ExcludeDirs {
		excludeDirs[name] = struct{}{}
	}

	return &realScanner{
		fs:          params.FS,
		logger:      l,
		excludeDirs: excludeDirs,
	}
}

// Contains reports whether term occurs in any regular file under dir.
func (s *realScanner) Contains(ctx context.Context, dir, term string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}

	if err := s.validateDirectory(dir); err != nil {
		return false, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}

	needle := []byte(term)
	found := false
	err := s.fs.WalkFiles(dir, s.skipDir, func(path string) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		ok, err := s.fs.FileContains(path, needle)
		if err != nil {
			return fmt.Errorf("failed to search %s: %w", path, err)
		}
		if !ok {
			return nil
		}

		s.logger.Debugf("Found %s in %s", term, path)
		found = true
		return filepath.SkipAll
	})
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}

	return found, nil
}

// validateDirectory checks that dir exists and is a directory.
func (s *realScanner) validateDirectory(dir string) error {
	isDir, err := s.fs.IsDir(dir)
	if err != nil {
		if s.fs.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return fmt.Errorf("failed to stat %s: %w", dir, err)
	}

	if !isDir {
		return fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}

	return nil
}

// skipDir reports whether a directory is excluded from the search.
func (s *realScanner) skipDir(name string) bool {
	_, excluded := s.excludeDirs[name]
	return excluded
}
