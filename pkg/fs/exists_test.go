//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Exists(t *testing.T) {
	fs := NewFS()
	tmpDir := t.TempDir()

	filePath := filepath.Join(tmpDir, "vulkan.h")
	require.NoError(t, os.WriteFile(filePath, []byte("VKAPI_CALL vkCreateInstance(\n"), 0644))

	exists, err := fs.Exists(filePath)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = fs.Exists(tmpDir)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = fs.Exists(filepath.Join(tmpDir, "missing.h"))
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestFS_IsNotExist(t *testing.T) {
	fs := NewFS()

	_, err := fs.Stat(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, fs.IsNotExist(err))
	assert.False(t, fs.IsNotExist(assert.AnError))
}
