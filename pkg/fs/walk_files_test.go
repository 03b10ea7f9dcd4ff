//go:build integration

package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestFS_WalkFiles(t *testing.T) {
	fs := NewFS()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"lib/vk/instance.c++":   "vkCreateInstance",
		"lib/vk/device.c++":     "vkCreateDevice",
		"include/vk/vk.h":       "",
		".git/objects/deadbeef": "vkDestroyInstance",
	})

	var visited []string
	err := fs.WalkFiles(root, func(name string) bool { return name == ".git" }, func(path string) error {
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		visited = append(visited, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"include/vk/vk.h",
		"lib/vk/device.c++",
		"lib/vk/instance.c++",
	}, visited)
}

func TestFS_WalkFiles_NilSkipDir(t *testing.T) {
	fs := NewFS()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".git/HEAD": "ref: refs/heads/master",
		"a.c":       "",
	})

	count := 0
	err := fs.WalkFiles(root, nil, func(string) error {
		count++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestFS_WalkFiles_SkipAll(t *testing.T) {
	fs := NewFS()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.c": "",
		"b.c": "",
		"c.c": "",
	})

	count := 0
	err := fs.WalkFiles(root, nil, func(string) error {
		count++
		return filepath.SkipAll
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFS_WalkFiles_PropagatesCallbackError(t *testing.T) {
	fs := NewFS()
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.c": ""})

	boom := errors.New("boom")
	err := fs.WalkFiles(root, nil, func(string) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestFS_WalkFiles_MissingRoot(t *testing.T) {
	fs := NewFS()

	err := fs.WalkFiles(filepath.Join(t.TempDir(), "missing"), nil, func(string) error { return nil })
	assert.Error(t, err)
	assert.True(t, fs.IsNotExist(err))
}

func TestFS_WalkFiles_SymlinkRoot(t *testing.T) {
	fs := NewFS()
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "src")
	writeTree(t, target, map[string]string{"queue.c++": "vkQueueSubmit"})

	link := filepath.Join(tmpDir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	var visited []string
	err := fs.WalkFiles(link, nil, func(path string) error {
		visited = append(visited, filepath.Base(path))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"queue.c++"}, visited)
}

func TestFS_WalkFiles_SkipsNestedSymlinks(t *testing.T) {
	fs := NewFS()
	tmpDir := t.TempDir()
	outside := filepath.Join(tmpDir, "outside")
	writeTree(t, outside, map[string]string{"secret.c": "vkQueueSubmit"})

	root := filepath.Join(tmpDir, "root")
	writeTree(t, root, map[string]string{"main.c": ""})
	if err := os.Symlink(outside, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	var visited []string
	err := fs.WalkFiles(root, nil, func(path string) error {
		visited = append(visited, filepath.Base(path))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"main.c"}, visited)
}
