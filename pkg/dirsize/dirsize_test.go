package dirsize_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cachesweep/cachesweep/pkg/dirsize"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func TestDir(t *testing.T) {
	tempDir := t.TempDir()
	writeFile(t, filepath.Join(tempDir, "a.bin"), 100)
	writeFile(t, filepath.Join(tempDir, "sub", "b.bin"), 50)

	calc := dirsize.NewCalculator(time.Minute)
	res, err := calc.Dir(context.Background(), tempDir)
	require.NoError(t, err)

	assert.Equal(t, int64(150), res.Size)
	assert.Equal(t, 2, res.Files)
	assert.False(t, res.Newest.IsZero())
	assert.False(t, res.Oldest.IsZero())
}

func TestDir_MissingPathYieldsZero(t *testing.T) {
	calc := dirsize.NewCalculator(time.Minute)
	res, err := calc.Dir(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Zero(t, res.Size)
	assert.Zero(t, res.Files)
}

func TestDir_SingleFile(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "only.bin")
	writeFile(t, file, 42)

	calc := dirsize.NewCalculator(time.Minute)
	res, err := calc.Dir(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, int64(42), res.Size)
	assert.Equal(t, 1, res.Files)
}

func TestDir_Memoized(t *testing.T) {
	tempDir := t.TempDir()
	writeFile(t, filepath.Join(tempDir, "a.bin"), 100)

	calc := dirsize.NewCalculator(time.Minute)
	first, err := calc.Dir(context.Background(), tempDir)
	require.NoError(t, err)

	// Grow the directory; the memoized result must still be served.
	writeFile(t, filepath.Join(tempDir, "b.bin"), 100)

	second, err := calc.Dir(context.Background(), tempDir)
	require.NoError(t, err)
	assert.Equal(t, first.Size, second.Size, "second read should come from the memo")

	calc.Invalidate(tempDir)

	third, err := calc.Dir(context.Background(), tempDir)
	require.NoError(t, err)
	assert.Equal(t, int64(200), third.Size, "invalidate should force a re-walk")
}

func TestInvalidate_DropsChildren(t *testing.T) {
	tempDir := t.TempDir()
	child := filepath.Join(tempDir, "sub")
	writeFile(t, filepath.Join(child, "a.bin"), 10)

	calc := dirsize.NewCalculator(time.Minute)
	_, err := calc.Dir(context.Background(), child)
	require.NoError(t, err)

	writeFile(t, filepath.Join(child, "b.bin"), 10)
	calc.Invalidate(tempDir)

	res, err := calc.Dir(context.Background(), child)
	require.NoError(t, err)
	assert.Equal(t, int64(20), res.Size)
}

func TestSum(t *testing.T) {
	tempDir := t.TempDir()
	dirA := filepath.Join(tempDir, "a")
	dirB := filepath.Join(tempDir, "b")
	writeFile(t, filepath.Join(dirA, "f"), 30)
	writeFile(t, filepath.Join(dirB, "f"), 70)

	calc := dirsize.NewCalculator(time.Minute)
	res, err := calc.Sum(context.Background(), []string{dirA, dirB, filepath.Join(tempDir, "missing")})
	require.NoError(t, err)

	assert.Equal(t, int64(100), res.Size)
	assert.Equal(t, 2, res.Files)
}

func TestDir_ContextCancelled(t *testing.T) {
	tempDir := t.TempDir()
	writeFile(t, filepath.Join(tempDir, "a.bin"), 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calc := dirsize.NewCalculator(time.Minute)
	_, err := calc.Dir(ctx, tempDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAgeDays(t *testing.T) {
	now := time.Now()
	res := dirsize.Result{Newest: now.Add(-72 * time.Hour)}
	assert.Equal(t, 3, res.AgeDays(now))

	assert.Equal(t, 0, dirsize.Result{}.AgeDays(now))
	assert.Equal(t, 0, dirsize.Result{Newest: now.Add(time.Hour)}.AgeDays(now))
}
