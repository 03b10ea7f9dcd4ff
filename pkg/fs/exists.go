package fs

import (
	"errors"
	"io/fs"
	"os"
)

// Exists checks if a file or directory exists at the given path.
func (f *realFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// IsNotExist checks if an error indicates that a file or directory doesn't exist.
func (f *realFS) IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// Stat returns file information for the given path.
func (f *realFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}
