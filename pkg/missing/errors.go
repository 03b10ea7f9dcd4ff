// Package missing finds header-declared functions that a source tree never references.
package missing

import "errors"

// Error definitions for missing package.
var (
	ErrLoadConfig   = errors.New("failed to load configuration")
	ErrParseHeader  = errors.New("failed to parse header")
	ErrScanFunction = errors.New("failed to scan for function")
	ErrWriteReport  = errors.New("failed to write report")
)
