package platform

import (
	"runtime"
	"strings"
)

// Current returns the normalized name of the operating system the process
// is running on.
func Current() string {
	return NormalizeOS(runtime.GOOS)
}

// NormalizeOS normalizes OS names to a common format.
func NormalizeOS(os string) string {
	os = strings.ToLower(os)
	switch os {
	case "macos", "osx", "darwin":
		return OSDarwin
	case "win", "windows":
		return OSWindows
	default:
		return os
	}
}

// Matches checks whether the given OS selector applies to the current
// platform. The selector "any" matches everything.
func Matches(os string) bool {
	os = NormalizeOS(os)
	return os == AnyOS || os == Current()
}

// Select returns the entry from byOS keyed by the current OS, falling back
// to the "any" entry when present. The second return value reports whether
// a matching entry was found.
func Select[T any](byOS map[string]T) (T, bool) {
	if v, ok := byOS[Current()]; ok {
		return v, true
	}
	v, ok := byOS[AnyOS]
	return v, ok
}
