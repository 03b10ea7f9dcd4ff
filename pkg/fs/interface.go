// Package fs provides the file system operations used to read headers and scan source trees.
package fs

import (
	"os"
)

//go:generate go tool mockgen -source=interface.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides file system operations for header parsing and source scanning.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsDir checks if the path is a directory. Symbolic links are followed.
	IsDir(path string) (bool, error)

	// IsNotExist checks if an error indicates that a file or directory doesn't exist.
	IsNotExist(err error) bool

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// ReadLines reads a text file and returns its lines without line terminators.
	ReadLines(path string) ([]string, error)

	// WalkFiles calls fn for every regular file under root, in lexical order.
	// Directories for which skipDir returns true are not descended into.
	// Returning filepath.SkipAll from fn stops the walk without error.
	WalkFiles(root string, skipDir func(name string) bool, fn func(path string) error) error

	// FileContains reports whether the file at path contains term as a literal byte sequence.
	FileContains(path string, term []byte) (bool, error)

	// GetHomeDir returns the user's home directory path.
	GetHomeDir() (string, error)

	// ExpandPath expands ~ to user's home directory.
	ExpandPath(path string) (string, error)

	// Stat returns file information for the given path.
	Stat(path string) (os.FileInfo, error)
}

type realFS struct {
	// No fields needed for basic file system operations
}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
