//go:build unit

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/vkmissing/pkg/config"
	"github.com/lerenn/vkmissing/pkg/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliFixture struct {
	home       string
	headerPath string
	sourceDir  string
}

func setupCLI(t *testing.T) cliFixture {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)

	headerPath := filepath.Join(home, "vulkan.h")
	header := "VKAPI_ATTR VkResult VKAPI_CALL vkCreateInstance(\n" +
		"VKAPI_ATTR void VKAPI_CALL vkDestroyInstance(\n"
	require.NoError(t, os.WriteFile(headerPath, []byte(header), 0644))

	sourceDir := filepath.Join(home, "src")
	require.NoError(t, os.MkdirAll(filepath.Join(sourceDir, "build"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "instance.c++"),
		[]byte("vkCreateInstance(&info, nullptr, &handle);\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "build", "gen.c"),
		[]byte("vkDestroyInstance\n"), 0644))

	return cliFixture{home: home, headerPath: headerPath, sourceDir: sourceDir}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_ReportsMissing(t *testing.T) {
	f := setupCLI(t)

	stdout, _, err := execute(t, "--header", f.headerPath, f.sourceDir)
	require.NoError(t, err)

	// build/gen.c references vkDestroyInstance and nothing is excluded by default
	assert.Empty(t, stdout)
}

func TestRootCmd_ExcludeFlag(t *testing.T) {
	f := setupCLI(t)

	stdout, _, err := execute(t, "-H", f.headerPath, "-x", "build", "-w", "2", f.sourceDir)
	require.NoError(t, err)

	assert.Equal(t, "vkDestroyInstance\n", stdout)
}

func TestRootCmd_ConfigFile(t *testing.T) {
	f := setupCLI(t)

	configDir := filepath.Join(f.home, ".vkmissing")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	content := "header_path: " + f.headerPath + "\nexclude_dirs: [build]\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0644))

	stdout, _, err := execute(t, f.sourceDir)
	require.NoError(t, err)

	assert.Equal(t, "vkDestroyInstance\n", stdout)
}

func TestRootCmd_CustomConfigMustExist(t *testing.T) {
	f := setupCLI(t)

	_, _, err := execute(t, "--config", filepath.Join(f.home, "nope.yaml"), f.sourceDir)
	assert.ErrorIs(t, err, config.ErrConfigNotFound)
}

func TestRootCmd_BadDirectory(t *testing.T) {
	f := setupCLI(t)

	stdout, _, err := execute(t, "-H", f.headerPath, filepath.Join(f.home, "missing"))
	assert.ErrorIs(t, err, scanner.ErrSearchFailed)
	assert.Empty(t, stdout)
}

func TestRootCmd_InvalidWorkers(t *testing.T) {
	f := setupCLI(t)

	_, _, err := execute(t, "-H", f.headerPath, "-w", "0", f.sourceDir)
	assert.ErrorIs(t, err, config.ErrInvalidWorkers)
}

func TestRootCmd_RequiresExactlyOneArgument(t *testing.T) {
	setupCLI(t)

	_, _, err := execute(t)
	assert.Error(t, err)

	_, _, err = execute(t, "a", "b")
	assert.Error(t, err)
}

func TestRootCmd_VerboseLogsToStderr(t *testing.T) {
	f := setupCLI(t)

	stdout, stderr, err := execute(t, "-v", "-H", f.headerPath, "-x", "build", f.sourceDir)
	require.NoError(t, err)

	assert.Equal(t, "vkDestroyInstance\n", stdout)
	assert.Contains(t, stderr, "No reference to vkDestroyInstance")
}
