package cleaners

import (
	"path/filepath"

	"github.com/cachesweep/cachesweep/pkg/cleaner"
	"github.com/cachesweep/cachesweep/pkg/fsutil"
	"github.com/cachesweep/cachesweep/pkg/platform"
)

// NewPip cleans the pip download and wheel cache.
func NewPip(env *cleaner.Env) *cleaner.Base {
	home := fsutil.HomeDir()

	specs := []cleaner.CategorySpec{
		{
			ID:          "cache",
			Name:        "Wheel cache",
			Description: "Downloaded distributions and locally built wheels",
			Priority:    cleaner.PriorityHigh,
			UseCase:     cleaner.UseCaseDevelopment,
			PathsByOS: map[string][]string{
				platform.OSLinux:   {filepath.Join(home, ".cache", "pip")},
				platform.OSDarwin:  {filepath.Join(home, "Library", "Caches", "pip")},
				platform.OSWindows: {filepath.Join(home, "AppData", "Local", "pip", "cache")},
			},
		},
	}

	return cleaner.NewBase(env, "pip", cleaner.KindPackageManager, "Python pip cache", specs)
}
