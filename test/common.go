//go:build e2e

package test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/lerenn/vkmissing/pkg/config"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestSetup holds the test environment setup
type TestSetup struct {
	TempDir    string
	ConfigPath string
	HeaderPath string
	SourcePath string
	BinaryPath string
}

// setupTestEnvironment creates a temporary test environment with a built binary
func setupTestEnvironment(t *testing.T, header string) *TestSetup {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "vkmissing-e2e-test-*")
	require.NoError(t, err)

	sourcePath := filepath.Join(tempDir, "src")
	require.NoError(t, os.MkdirAll(sourcePath, 0755))

	headerPath := filepath.Join(tempDir, "vulkan.h")
	require.NoError(t, os.WriteFile(headerPath, []byte(header), 0644))

	testConfig := config.Config{
		HeaderPath: headerPath,
		Marker:     config.DefaultMarker,
		Workers:    config.DefaultWorkers,
	}

	configPath := filepath.Join(tempDir, "config.yaml")
	configData, err := yaml.Marshal(testConfig)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(configPath, configData, 0644))

	setup := &TestSetup{
		TempDir:    tempDir,
		ConfigPath: configPath,
		HeaderPath: headerPath,
		SourcePath: sourcePath,
		BinaryPath: filepath.Join(tempDir, "vkmissing"),
	}
	buildBinary(t, setup)

	return setup
}

// cleanupTestEnvironment removes the temporary test environment
func cleanupTestEnvironment(t *testing.T, setup *TestSetup) {
	t.Helper()
	if setup != nil && setup.TempDir != "" {
		require.NoError(t, os.RemoveAll(setup.TempDir))
	}
}

func buildBinary(t *testing.T, setup *TestSetup) {
	t.Helper()

	currentDir, err := os.Getwd()
	require.NoError(t, err)
	projectRoot := filepath.Dir(currentDir)

	buildCmd := exec.Command("go", "build", "-o", setup.BinaryPath, "./cmd/vkmissing")
	buildCmd.Dir = projectRoot
	buildOutput, err := buildCmd.CombinedOutput()
	if err != nil {
		t.Logf("Build failed with output: %s", string(buildOutput))
		t.Logf("Project root: %s", projectRoot)
		require.NoError(t, err, "Failed to build vkmissing binary")
	}
}

// writeSource creates a file under the source tree
func writeSource(t *testing.T, setup *TestSetup, relPath, content string) {
	t.Helper()

	path := filepath.Join(setup.SourcePath, relPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// runVkmissing runs the built binary against dir and returns stdout and stderr separately
func runVkmissing(t *testing.T, setup *TestSetup, dir string, args ...string) (string, string, error) {
	t.Helper()

	cmdArgs := append([]string{"--config", setup.ConfigPath}, args...)
	cmdArgs = append(cmdArgs, dir)

	cmd := exec.Command(setup.BinaryPath, cmdArgs...)
	cmd.Dir = setup.TempDir
	cmd.Env = append(os.Environ(), "HOME="+setup.TempDir)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
