// Package protect decides which filesystem paths the cleaner must never
// touch. Patterns use doublestar glob syntax ("**" crosses separators); a
// pattern protects the matching path and everything below it.
package protect

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/cachesweep/cachesweep/pkg/errors"
)

// Matcher checks candidate paths against a set of protected glob patterns.
type Matcher struct {
	// roots are protected exactly, not as subtrees. Deleting /tmp/foo is
	// fine, deleting / or the home directory itself is not.
	roots    []string
	patterns []string
}

// DefaultRoots returns paths that may never be deleted themselves.
func DefaultRoots() []string {
	roots := []string{"/", "C:/"}
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots, filepath.ToSlash(home))
	}
	return roots
}

// DefaultPatterns returns the built-in subtree patterns. These guard against
// a misconfigured cleaner or config pointing at user data or system
// directories.
func DefaultPatterns() []string {
	patterns := []string{
		"/bin", "/boot", "/etc", "/lib", "/lib64", "/sbin", "/usr", "/var/lib",
		"C:/Windows", "C:/Program Files", "C:/Program Files (x86)",
	}
	if home, err := os.UserHomeDir(); err == nil {
		patterns = append(patterns,
			filepath.ToSlash(filepath.Join(home, "Documents")),
			filepath.ToSlash(filepath.Join(home, "Desktop")),
		)
	}
	return patterns
}

// NewMatcher builds a matcher from the given patterns on top of the
// built-in defaults. Invalid glob patterns are rejected.
func NewMatcher(patterns []string) (*Matcher, error) {
	all := append(DefaultPatterns(), patterns...)
	normalized := make([]string, 0, len(all))
	for _, p := range all {
		p = normalize(p)
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return nil, errors.Wrapf(errors.ErrConfigValidation, "invalid protected path pattern %q", p)
		}
		normalized = append(normalized, p)
	}

	roots := make([]string, 0, len(DefaultRoots()))
	for _, r := range DefaultRoots() {
		roots = append(roots, normalize(r))
	}

	return &Matcher{roots: roots, patterns: normalized}, nil
}

// Protected reports whether path may not be deleted: either it is a
// protected root, or a pattern matches the path or one of its ancestors.
func (m *Matcher) Protected(path string) bool {
	norm := normalize(path)
	if norm == "" {
		return true
	}

	for _, root := range m.roots {
		if norm == root {
			return true
		}
	}

	for p := norm; p != ""; p = parent(p) {
		for _, pattern := range m.patterns {
			if pattern == p {
				return true
			}
			if ok, err := doublestar.Match(pattern, p); err == nil && ok {
				return true
			}
		}
	}
	return false
}

// Filter splits paths into those that may be removed and those that are
// protected.
func (m *Matcher) Filter(paths []string) (allowed, protected []string) {
	for _, p := range paths {
		if m.Protected(p) {
			protected = append(protected, p)
		} else {
			allowed = append(allowed, p)
		}
	}
	return allowed, protected
}

// Patterns returns the full normalized pattern set, defaults included.
func (m *Matcher) Patterns() []string {
	out := make([]string, len(m.patterns))
	copy(out, m.patterns)
	return out
}

func normalize(path string) string {
	path = filepath.ToSlash(filepath.Clean(strings.TrimSpace(path)))
	if path == "." {
		return ""
	}
	// Keep "/" itself; strip other trailing slashes.
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

func parent(path string) string {
	if path == "/" || !strings.Contains(path, "/") {
		return ""
	}
	idx := strings.LastIndex(path, "/")
	if idx == 0 {
		return "/"
	}
	return path[:idx]
}
