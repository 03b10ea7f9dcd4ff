//go:build integration

package scanner

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/lerenn/vkmissing/pkg/fs"
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

func TestScanner_Contains_RealTree(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"lib/vk/instance.c++": "instance::instance() { vkCreateInstance(&info, nullptr, &handle); }\n",
		"lib/vk/device.c++":   "device::~device() { vkDestroyDevice(handle, nullptr); }\n",
		"test/vk/image.c++":   "// exercises vkCreateImage\n",
		"build/generated.c":   "vkQueueSubmit\n",
		"assets/shader.spv":   "\x03\x02\x23\x07vkCmdDispatch\x00",
		"docs/NOTES.md":       "",
		"lib/vk/deep/a/b/c.h": "#define USES_vkCmdDraw 1\n",
	})

	s := NewScanner(NewScannerParams{FS: fs.NewFS(), ExcludeDirs: []string{"build"}})

	tests := []struct {
		term string
		want bool
	}{
		{term: "vkCreateInstance", want: true},
		{term: "vkDestroyDevice", want: true},
		{term: "vkCreateImage", want: true},
		{term: "vkCmdDraw", want: true},
		{term: "vkCmdDispatch", want: true},
		{term: "vkDestroyInstance", want: false},
		{term: "VKCREATEINSTANCE", want: false},
		// only present under an excluded directory
		{term: "vkQueueSubmit", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			found, err := s.Contains(context.Background(), root, tt.term)
			require.NoError(t, err)
			assert.Equal(t, tt.want, found)
		})
	}
}

func TestScanner_Contains_MissingDirectory(t *testing.T) {
	s := NewScanner(NewScannerParams{FS: fs.NewFS()})

	_, err := s.Contains(context.Background(), filepath.Join(t.TempDir(), "nope"), "vkCreateInstance")
	assert.ErrorIs(t, err, ErrSearchFailed)
	assert.ErrorIs(t, err, ErrDirectoryNotFound)
}

func TestScanner_Contains_FileArgument(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"main.c": "vkCreateInstance"})

	s := NewScanner(NewScannerParams{FS: fs.NewFS()})

	_, err := s.Contains(context.Background(), filepath.Join(root, "main.c"), "vkCreateInstance")
	assert.ErrorIs(t, err, ErrNotADirectory)
}

func TestScanner_Contains_UnreadableSubdirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}

	root := t.TempDir()
	writeTree(t, root, map[string]string{"locked/inner.c": "vkCreateInstance"})
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	s := NewScanner(NewScannerParams{FS: fs.NewFS()})

	found, err := s.Contains(context.Background(), root, "vkDestroyInstance")
	assert.ErrorIs(t, err, ErrSearchFailed)
	assert.False(t, found)
}
