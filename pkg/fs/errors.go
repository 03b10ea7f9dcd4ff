package fs

import "errors"

// Error definitions for fs package.
var (
	// Path resolution errors.
	ErrPathResolution = errors.New("path resolution failed")

	// Read errors.
	ErrReadLines = errors.New("failed to read lines")
)
