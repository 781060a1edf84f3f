package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeOS(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Darwin", OSDarwin},
		{"macos", OSDarwin},
		{"osx", OSDarwin},
		{"win", OSWindows},
		{"Windows", OSWindows},
		{"linux", OSLinux},
		{"freebsd", OSFreeBSD},
		{"plan9", "plan9"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeOS(tt.input))
		})
	}
}

func TestCurrent(t *testing.T) {
	assert.Equal(t, NormalizeOS(runtime.GOOS), Current())
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches(AnyOS))
	assert.True(t, Matches(runtime.GOOS))
	assert.False(t, Matches("plan9"))
}

func TestSelect(t *testing.T) {
	t.Run("exact match wins over any", func(t *testing.T) {
		byOS := map[string][]string{
			Current(): {"/exact"},
			AnyOS:     {"/fallback"},
		}
		paths, ok := Select(byOS)
		assert.True(t, ok)
		assert.Equal(t, []string{"/exact"}, paths)
	})

	t.Run("falls back to any", func(t *testing.T) {
		byOS := map[string][]string{AnyOS: {"/fallback"}}
		paths, ok := Select(byOS)
		assert.True(t, ok)
		assert.Equal(t, []string{"/fallback"}, paths)
	})

	t.Run("no match", func(t *testing.T) {
		byOS := map[string][]string{"plan9": {"/nope"}}
		_, ok := Select(byOS)
		assert.False(t, ok)
	})
}
