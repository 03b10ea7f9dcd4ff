// Package header extracts API function names from a C header.
package header

import "errors"

// Error definitions for header package.
var (
	// ErrMalformedDeclaration is returned when a line carries the marker but
	// no opening parenthesis follows it.
	ErrMalformedDeclaration = errors.New("malformed declaration: no '(' after marker")

	// ErrHeaderRead is returned when the header file cannot be read.
	ErrHeaderRead = errors.New("failed to read header")
)
