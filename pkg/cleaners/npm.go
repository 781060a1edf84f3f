package cleaners

import (
	"path/filepath"

	"github.com/cachesweep/cachesweep/pkg/cleaner"
	"github.com/cachesweep/cachesweep/pkg/fsutil"
	"github.com/cachesweep/cachesweep/pkg/platform"
)

// NewNpm cleans the npm content-addressable cache and debug logs.
func NewNpm(env *cleaner.Env) *cleaner.Base {
	home := fsutil.HomeDir()

	specs := []cleaner.CategorySpec{
		{
			ID:          "cache",
			Name:        "Package cache",
			Description: "Downloaded package tarballs and metadata (_cacache)",
			Priority:    cleaner.PriorityHigh,
			UseCase:     cleaner.UseCaseDevelopment,
			PathsByOS: map[string][]string{
				platform.OSLinux:   {filepath.Join(home, ".npm", "_cacache")},
				platform.OSDarwin:  {filepath.Join(home, ".npm", "_cacache")},
				platform.OSWindows: {filepath.Join(home, "AppData", "Local", "npm-cache", "_cacache")},
			},
		},
		{
			ID:          "logs",
			Name:        "Debug logs",
			Description: "npm debug log files (_logs)",
			Priority:    cleaner.PriorityHigh,
			UseCase:     cleaner.UseCaseDevelopment,
			PathsByOS: map[string][]string{
				platform.OSLinux:   {filepath.Join(home, ".npm", "_logs")},
				platform.OSDarwin:  {filepath.Join(home, ".npm", "_logs")},
				platform.OSWindows: {filepath.Join(home, "AppData", "Local", "npm-cache", "_logs")},
			},
		},
	}

	return cleaner.NewBase(env, "npm", cleaner.KindPackageManager, "Node.js package manager cache", specs)
}
