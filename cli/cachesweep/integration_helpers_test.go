//go:build integration

package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTestConfig writes a config that points the npm cleaner at a fake
// cache directory inside the test's temp root and disables every other
// cleaner, so tests never touch the real machine.
func writeTestConfig(t *testing.T, root, extraPath string, extraYAML string) string {
	t.Helper()

	// Keep the cleaners away from the real home directory and pin the
	// state directory inside the test root.
	t.Setenv("HOME", root)
	t.Setenv("USERPROFILE", root)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, ".cache"))

	cfgPath := filepath.Join(root, "config.yaml")
	yamlContent := `cleaners:
  - name: npm
    extra_paths:
      - ` + extraPath + `
  - name: yarn
    enabled: false
  - name: pnpm
    enabled: false
  - name: pip
    enabled: false
  - name: go
    enabled: false
  - name: cargo
    enabled: false
  - name: maven
    enabled: false
  - name: gradle
    enabled: false
  - name: homebrew
    enabled: false
  - name: docker
    enabled: false
  - name: vscode
    enabled: false
  - name: jetbrains
    enabled: false
  - name: chrome
    enabled: false
  - name: firefox
    enabled: false
  - name: system-temp
    enabled: false
settings:
  cache_ttl: 1s
` + extraYAML
	require.NoError(t, os.WriteFile(cfgPath, []byte(yamlContent), 0o600))
	return cfgPath
}

// makeFakeCache creates a directory with some content to scan and clean.
func makeFakeCache(t *testing.T, root string, size int) string {
	t.Helper()
	dir := filepath.Join(root, "fake-npm-cache")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blob.bin"), make([]byte, size), 0o644))
	return dir
}

// runCommand executes the root command with the given args and returns
// captured stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.SetArgs(args)

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	execErr := cmd.ExecuteContext(context.Background())

	_ = w.Close()
	os.Stdout = oldStdout

	var buf strings.Builder
	_, _ = io.Copy(&buf, r)
	return buf.String(), execErr
}
