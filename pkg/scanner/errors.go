// Package scanner searches source trees for literal occurrences of a name.
package scanner

import "errors"

// Error definitions for scanner package.
var (
	// ErrSearchFailed wraps every failure of the search itself. It is never
	// returned for a search that simply found nothing.
	ErrSearchFailed = errors.New("search failed")

	// Directory errors.
	ErrDirectoryNotFound = errors.New("directory not found")
	ErrNotADirectory     = errors.New("not a directory")
)
