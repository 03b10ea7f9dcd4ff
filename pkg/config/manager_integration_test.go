//go:build integration

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/vkmissing/pkg/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GetConfig_RealFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	headerPath := filepath.Join(tmpDir, "vk.h")

	content := "header_path: " + headerPath + "\nmarker: \"VKAPI_PTR \"\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := NewManager(fs.NewFS(), configPath).GetConfig()
	require.NoError(t, err)

	assert.Equal(t, headerPath, cfg.HeaderPath)
	assert.Equal(t, "VKAPI_PTR ", cfg.Marker)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
}

func TestManager_GetConfigWithFallback_MissingFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "missing", "config.yaml")

	cfg, err := NewManager(fs.NewFS(), configPath).GetConfigWithFallback()
	require.NoError(t, err)

	assert.Equal(t, DefaultHeaderPath, cfg.HeaderPath)
	assert.Equal(t, DefaultMarker, cfg.Marker)
}
