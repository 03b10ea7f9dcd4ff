package fs

import (
	"io/fs"
	"path/filepath"
)

// WalkFiles calls fn for every regular file under root.
//
// The root itself is resolved when it is a symbolic link; links met during
// the walk are not followed, the same way `grep -r` behaves. Any error
// reading a directory aborts the walk and is returned to the caller.
func (f *realFS) WalkFiles(root string, skipDir func(name string) bool, fn func(path string) error) error {
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && skipDir != nil && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		return fn(path)
	})
}
