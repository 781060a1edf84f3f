package protect_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cachesweep/cachesweep/pkg/protect"
)

func TestProtected_DefaultRoots(t *testing.T) {
	m, err := protect.NewMatcher(nil)
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.True(t, m.Protected("/"), "filesystem root is always protected")
	assert.True(t, m.Protected(home), "home directory itself is always protected")
	assert.False(t, m.Protected(filepath.Join(home, ".cache", "npm")),
		"children of home are fair game")
}

func TestProtected_DefaultSystemDirs(t *testing.T) {
	m, err := protect.NewMatcher(nil)
	require.NoError(t, err)

	assert.True(t, m.Protected("/etc"))
	assert.True(t, m.Protected("/etc/passwd"), "subtree of a protected dir is protected")
	assert.True(t, m.Protected("/usr/lib/something"))
	assert.False(t, m.Protected("/tmp/build-cache"))
}

func TestProtected_ConfiguredGlobs(t *testing.T) {
	m, err := protect.NewMatcher([]string{
		"/home/dev/projects/**/node_modules",
		"/data/keep-*",
	})
	require.NoError(t, err)

	tests := []struct {
		path      string
		protected bool
	}{
		{"/home/dev/projects/app/node_modules", true},
		{"/home/dev/projects/app/node_modules/lodash", true},
		{"/home/dev/projects/deep/sub/node_modules", true},
		{"/home/dev/projects/app/dist", false},
		{"/data/keep-backups", true},
		{"/data/keep-backups/2024", true},
		{"/data/other", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.protected, m.Protected(tt.path))
		})
	}
}

func TestProtected_ExactPath(t *testing.T) {
	m, err := protect.NewMatcher([]string{"/opt/tools/cache"})
	require.NoError(t, err)

	assert.True(t, m.Protected("/opt/tools/cache"))
	assert.True(t, m.Protected("/opt/tools/cache/sub"))
	assert.False(t, m.Protected("/opt/tools/cache2"))
	assert.False(t, m.Protected("/opt/tools"))
}

func TestNewMatcher_InvalidPattern(t *testing.T) {
	_, err := protect.NewMatcher([]string{"/data/[unclosed"})
	require.Error(t, err)
}

func TestFilter(t *testing.T) {
	m, err := protect.NewMatcher([]string{"/keep/**"})
	require.NoError(t, err)

	allowed, protected := m.Filter([]string{"/keep/a", "/tmp/b", "/keep/c/d", "/tmp/e"})
	assert.Equal(t, []string{"/tmp/b", "/tmp/e"}, allowed)
	assert.Equal(t, []string{"/keep/a", "/keep/c/d"}, protected)
}

func TestProtected_EmptyPath(t *testing.T) {
	m, err := protect.NewMatcher(nil)
	require.NoError(t, err)
	assert.True(t, m.Protected(""), "empty path must never be deletable")
}
