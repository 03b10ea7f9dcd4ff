package fs

// IsDir checks if the path is a directory.
// The error from the underlying stat is returned untouched so callers can
// tell a missing path apart from a permission problem.
func (f *realFS) IsDir(path string) (bool, error) {
	info, err := f.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
