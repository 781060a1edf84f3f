package cleaner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cachesweep/cachesweep/pkg/cleaner"
	"github.com/cachesweep/cachesweep/pkg/dirsize"
	"github.com/cachesweep/cachesweep/pkg/platform"
	"github.com/cachesweep/cachesweep/pkg/probe"
	"github.com/cachesweep/cachesweep/pkg/protect"
)

func newTestEnv(t *testing.T, protectedPatterns ...string) *cleaner.Env {
	t.Helper()
	matcher, err := protect.NewMatcher(protectedPatterns)
	require.NoError(t, err)
	return &cleaner.Env{
		Sizes:   dirsize.NewCalculator(time.Minute),
		Protect: matcher,
		Prober:  probe.New(time.Second),
	}
}

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func newTestCleaner(t *testing.T, env *cleaner.Env, specs []cleaner.CategorySpec) *cleaner.Base {
	t.Helper()
	return cleaner.NewBase(env, "testtool", cleaner.KindBuildTool, "Test tool cache", specs)
}

func singleCategory(dir string) []cleaner.CategorySpec {
	return []cleaner.CategorySpec{{
		ID:          "main",
		Name:        "Main cache",
		Description: "Primary cache",
		Priority:    cleaner.PriorityHigh,
		UseCase:     cleaner.UseCaseDevelopment,
		PathsByOS:   map[string][]string{platform.AnyOS: {dir}},
	}}
}

func TestCacheInfo(t *testing.T) {
	tempDir := t.TempDir()
	cacheDir := filepath.Join(tempDir, "cache")
	writeFile(t, filepath.Join(cacheDir, "a.bin"), 100)
	writeFile(t, filepath.Join(cacheDir, "b.bin"), 50)

	env := newTestEnv(t)
	c := newTestCleaner(t, env, singleCategory(cacheDir))

	info, err := c.CacheInfo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "testtool", info.Name)
	assert.Equal(t, cleaner.KindBuildTool, info.Kind)
	assert.True(t, info.Installed)
	assert.Equal(t, int64(150), info.Size)
	assert.Equal(t, 2, info.Files)
	assert.Equal(t, []string{cacheDir}, info.Paths)
}

func TestCacheInfo_NothingOnDisk(t *testing.T) {
	env := newTestEnv(t)
	c := newTestCleaner(t, env, singleCategory(filepath.Join(t.TempDir(), "missing")))

	info, err := c.CacheInfo(context.Background())
	require.NoError(t, err)

	assert.False(t, info.Installed)
	assert.Zero(t, info.Size)
	assert.Empty(t, info.Paths)
}

func TestIsAvailable_CustomCheck(t *testing.T) {
	env := newTestEnv(t)
	c := newTestCleaner(t, env, singleCategory(filepath.Join(t.TempDir(), "missing")))

	assert.False(t, c.IsAvailable(context.Background()))

	c.SetAvailabilityCheck(func(context.Context) bool { return true })
	assert.True(t, c.IsAvailable(context.Background()))
}

func TestCategories(t *testing.T) {
	tempDir := t.TempDir()
	buildDir := filepath.Join(tempDir, "build")
	logDir := filepath.Join(tempDir, "logs")
	writeFile(t, filepath.Join(buildDir, "obj.o"), 200)
	writeFile(t, filepath.Join(logDir, "out.log"), 10)

	env := newTestEnv(t)
	c := newTestCleaner(t, env, []cleaner.CategorySpec{
		{
			ID:        "build",
			Name:      "Build outputs",
			Priority:  cleaner.PriorityHigh,
			UseCase:   cleaner.UseCaseDevelopment,
			PathsByOS: map[string][]string{platform.AnyOS: {buildDir}},
		},
		{
			ID:        "logs",
			Name:      "Log files",
			Priority:  cleaner.PriorityLow,
			UseCase:   cleaner.UseCaseTesting,
			PathsByOS: map[string][]string{platform.AnyOS: {logDir, filepath.Join(tempDir, "missing")}},
		},
	})

	categories, err := c.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)

	assert.Equal(t, "build", categories[0].ID)
	assert.Equal(t, int64(200), categories[0].Size)
	assert.Equal(t, cleaner.PriorityHigh, categories[0].Priority)

	assert.Equal(t, "logs", categories[1].ID)
	assert.Equal(t, int64(10), categories[1].Size)
	assert.Equal(t, []string{logDir}, categories[1].Paths, "missing paths are dropped")
}

func TestClear_DryRunNeverDeletes(t *testing.T) {
	tempDir := t.TempDir()
	cacheDir := filepath.Join(tempDir, "cache")
	writeFile(t, filepath.Join(cacheDir, "a.bin"), 100)

	env := newTestEnv(t)
	c := newTestCleaner(t, env, singleCategory(cacheDir))

	result, err := c.Clear(context.Background(), cleaner.ClearOptions{DryRun: true})
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Equal(t, int64(100), result.Freed, "dry run reports would-be freed bytes")
	assert.Equal(t, []string{cacheDir}, result.Removed)
	assert.DirExists(t, cacheDir, "dry run must not delete anything")
}

func TestClear_DeletesPaths(t *testing.T) {
	tempDir := t.TempDir()
	cacheDir := filepath.Join(tempDir, "cache")
	writeFile(t, filepath.Join(cacheDir, "a.bin"), 100)

	env := newTestEnv(t)
	c := newTestCleaner(t, env, singleCategory(cacheDir))

	result, err := c.Clear(context.Background(), cleaner.ClearOptions{})
	require.NoError(t, err)

	assert.Equal(t, int64(100), result.Freed)
	assert.NoDirExists(t, cacheDir)
	assert.Empty(t, result.Skipped)
}

func TestClear_ProtectedPathsAreNeverDeleted(t *testing.T) {
	tempDir := t.TempDir()
	cacheDir := filepath.Join(tempDir, "cache")
	writeFile(t, filepath.Join(cacheDir, "a.bin"), 100)

	env := newTestEnv(t, filepath.ToSlash(cacheDir))
	c := newTestCleaner(t, env, singleCategory(cacheDir))

	result, err := c.Clear(context.Background(), cleaner.ClearOptions{})
	require.NoError(t, err)

	assert.Zero(t, result.Freed)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "protected", result.Skipped[0].Reason)
	assert.DirExists(t, cacheDir)
}

func TestClear_TrashMovesInsteadOfDeleting(t *testing.T) {
	tempDir := t.TempDir()
	cacheDir := filepath.Join(tempDir, "cache")
	trashDir := filepath.Join(tempDir, "trash")
	writeFile(t, filepath.Join(cacheDir, "a.bin"), 100)

	env := newTestEnv(t)
	c := newTestCleaner(t, env, singleCategory(cacheDir))

	result, err := c.Clear(context.Background(), cleaner.ClearOptions{TrashDir: trashDir})
	require.NoError(t, err)

	assert.Equal(t, int64(100), result.Freed)
	assert.NoDirExists(t, cacheDir)

	entries, err := os.ReadDir(filepath.Join(trashDir, "testtool"))
	require.NoError(t, err)
	require.Len(t, entries, 1, "trashed path should land under <trash>/<tool>/")
}

func TestClear_SnapshotBeforeDelete(t *testing.T) {
	tempDir := t.TempDir()
	cacheDir := filepath.Join(tempDir, "cache")
	snapDir := filepath.Join(tempDir, "snapshots")
	writeFile(t, filepath.Join(cacheDir, "a.bin"), 100)

	env := newTestEnv(t)
	c := newTestCleaner(t, env, singleCategory(cacheDir))

	result, err := c.Clear(context.Background(), cleaner.ClearOptions{SnapshotDir: snapDir})
	require.NoError(t, err)

	assert.Equal(t, int64(100), result.Freed)
	assert.NoDirExists(t, cacheDir)

	entries, err := os.ReadDir(snapDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "testtool-")
}

func keepRootCategory(dir string) []cleaner.CategorySpec {
	specs := singleCategory(dir)
	specs[0].KeepRoot = true
	return specs
}

func TestClear_KeepRootClearsContentsOnly(t *testing.T) {
	tempDir := t.TempDir()
	cacheDir := filepath.Join(tempDir, "tmp")
	writeFile(t, filepath.Join(cacheDir, "a.bin"), 100)
	writeFile(t, filepath.Join(cacheDir, "sub", "b.bin"), 50)

	env := newTestEnv(t)
	c := newTestCleaner(t, env, keepRootCategory(cacheDir))

	result, err := c.Clear(context.Background(), cleaner.ClearOptions{})
	require.NoError(t, err)

	assert.Equal(t, int64(150), result.Freed)
	assert.DirExists(t, cacheDir, "the directory itself must survive")

	entries, err := os.ReadDir(cacheDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClear_KeepRootWithTrashRecreatesDir(t *testing.T) {
	tempDir := t.TempDir()
	cacheDir := filepath.Join(tempDir, "tmp")
	trashDir := filepath.Join(tempDir, "trash")
	writeFile(t, filepath.Join(cacheDir, "a.bin"), 100)

	env := newTestEnv(t)
	c := newTestCleaner(t, env, keepRootCategory(cacheDir))

	_, err := c.Clear(context.Background(), cleaner.ClearOptions{TrashDir: trashDir})
	require.NoError(t, err)

	assert.DirExists(t, cacheDir, "the directory is recreated after trashing")

	entries, err := os.ReadDir(filepath.Join(trashDir, "testtool"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestRelativeCandidatePathsAreIgnored(t *testing.T) {
	tempDir := t.TempDir()
	t.Chdir(tempDir)
	writeFile(t, filepath.Join(tempDir, "stray-cache", "a.bin"), 100)

	// A missing home directory leaves relative candidates behind; they
	// must not resolve against the working directory.
	env := newTestEnv(t)
	c := newTestCleaner(t, env, singleCategory("stray-cache"))

	info, err := c.CacheInfo(context.Background())
	require.NoError(t, err)

	assert.False(t, info.Installed)
	assert.Zero(t, info.Size)
	assert.Empty(t, info.Paths)
	assert.DirExists(t, filepath.Join(tempDir, "stray-cache"))
}

func TestClearCategory(t *testing.T) {
	tempDir := t.TempDir()
	buildDir := filepath.Join(tempDir, "build")
	logDir := filepath.Join(tempDir, "logs")
	writeFile(t, filepath.Join(buildDir, "obj.o"), 200)
	writeFile(t, filepath.Join(logDir, "out.log"), 10)

	env := newTestEnv(t)
	c := newTestCleaner(t, env, []cleaner.CategorySpec{
		{ID: "build", PathsByOS: map[string][]string{platform.AnyOS: {buildDir}}},
		{ID: "logs", PathsByOS: map[string][]string{platform.AnyOS: {logDir}}},
	})

	result, err := c.ClearCategory(context.Background(), "logs", cleaner.ClearOptions{})
	require.NoError(t, err)

	assert.Equal(t, int64(10), result.Freed)
	assert.NoDirExists(t, logDir)
	assert.DirExists(t, buildDir, "other categories are untouched")
}

func TestClearCategory_UnknownID(t *testing.T) {
	env := newTestEnv(t)
	c := newTestCleaner(t, env, singleCategory(t.TempDir()))

	_, err := c.ClearCategory(context.Background(), "bogus", cleaner.ClearOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

func TestExtraPathsJoinFirstCategory(t *testing.T) {
	tempDir := t.TempDir()
	cacheDir := filepath.Join(tempDir, "cache")
	extraDir := filepath.Join(tempDir, "extra")
	writeFile(t, filepath.Join(cacheDir, "a.bin"), 100)
	writeFile(t, filepath.Join(extraDir, "b.bin"), 25)

	env := newTestEnv(t)
	c := newTestCleaner(t, env, singleCategory(cacheDir))
	c.AddExtraPaths([]string{extraDir})

	info, err := c.CacheInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(125), info.Size)
	assert.ElementsMatch(t, []string{cacheDir, extraDir}, info.Paths)
}
