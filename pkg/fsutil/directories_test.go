package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	tempDir := t.TempDir()
	dir := filepath.Join(tempDir, "a", "b", "c")

	require.NoError(t, EnsureDir(dir))
	assert.DirExists(t, dir)

	// Idempotent.
	require.NoError(t, EnsureDir(dir))
}

func TestEnsureFileDir(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "sub", "file.txt")

	require.NoError(t, EnsureFileDir(file))
	assert.DirExists(t, filepath.Join(tempDir, "sub"))
}

func TestDirExists(t *testing.T) {
	tempDir := t.TempDir()

	assert.True(t, DirExists(tempDir))
	assert.False(t, DirExists(filepath.Join(tempDir, "missing")))

	file := filepath.Join(tempDir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	assert.False(t, DirExists(file), "files are not directories")
	assert.True(t, PathExists(file))
}

func TestRemovePath(t *testing.T) {
	tempDir := t.TempDir()

	dir := filepath.Join(tempDir, "victim")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f"), []byte("x"), 0o644))

	require.NoError(t, RemovePath(dir))
	assert.False(t, DirExists(dir))

	// Missing path is not an error.
	require.NoError(t, RemovePath(filepath.Join(tempDir, "missing")))
}

func TestClearDir(t *testing.T) {
	tempDir := t.TempDir()
	dir := filepath.Join(tempDir, "cache")

	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "entry"), []byte("x"), 0o644))

	require.NoError(t, os.Chmod(dir, 0o700))

	require.NoError(t, ClearDir(dir))

	assert.DirExists(t, dir)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm(), "the directory itself is kept, not recreated")
}

func TestClearDir_MissingDirIsCreated(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	require.NoError(t, ClearDir(dir))
	assert.DirExists(t, dir)
}
