package hooks

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cachesweep/cachesweep/pkg/errors"
)

// HookFileExtensions lists the supported hooks file extensions.
var HookFileExtensions = map[string]bool{
	".tengo": true,
}

// LoadHooksFromConfigDir loads pre-clean/post-clean scripts from
// <configDir>/hooks/<hook-type>.tengo. A missing hooks directory is fine.
func LoadHooksFromConfigDir(manager HookManager, configDir string) error {
	hooksDir := filepath.Join(configDir, "hooks")
	if _, err := os.Stat(hooksDir); err != nil {
		return nil
	}

	entries, err := os.ReadDir(hooksDir)
	if err != nil {
		return errors.Wrapf(err, "failed to read hooks directory %s", hooksDir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := filepath.Ext(entry.Name())
		if _, ok := HookFileExtensions[ext]; !ok {
			continue // Skip unsupported file types
		}

		hookType := HookType(strings.TrimSuffix(entry.Name(), ext))
		switch hookType {
		case PreClean, PostClean:
			// Valid hooks type
		default:
			continue // Skip unknown hooks types
		}

		hookPath := filepath.Join(hooksDir, entry.Name())
		content, err := os.ReadFile(hookPath)
		if err != nil {
			return errors.Wrapf(err, "error reading hooks file %s", hookPath)
		}

		if err := manager.AddHook(Hook{
			Type:    hookType,
			Content: string(content),
		}); err != nil {
			return errors.Wrapf(err, "error adding hooks %s", entry.Name())
		}
	}

	return nil
}

// HookTemplate generates a template for a hooks script.
func HookTemplate(hookType HookType) string {
	switch hookType {
	case PreClean:
		return `// Pre-clean hooks
// This script runs before a cleaner deletes anything.
// Available variables:
// - toolName: string - name of the cleaner about to run
// - paths: array - paths that will be removed
// - dryRun: bool - true when nothing will actually be deleted
// - categories: array - category ids selected for this run (empty means the whole tool)
// Set err to a non-empty string to abort cleaning for this tool.

// Example: refuse to clean docker during work hours
/*
if toolName == "docker" {
    err = "docker cleaning is disabled by policy"
}
*/`

	case PostClean:
		return `// Post-clean hooks
// This script runs after a cleaner finished.
// Available variables: same as pre-clean, plus:
// - freedBytes: int - bytes freed by this cleaner

// Example: log big wins
/*
fmt := import("fmt")
if freedBytes > 1024*1024*1024 {
    fmt.println("freed more than 1GiB from " + toolName)
}
*/`

	default:
		return "// Unknown hooks type: " + string(hookType)
	}
}
