package cleaners

import (
	"path/filepath"

	"github.com/cachesweep/cachesweep/pkg/cleaner"
	"github.com/cachesweep/cachesweep/pkg/fsutil"
	"github.com/cachesweep/cachesweep/pkg/platform"
)

// NewYarn cleans the yarn v1 global cache.
func NewYarn(env *cleaner.Env) *cleaner.Base {
	home := fsutil.HomeDir()

	specs := []cleaner.CategorySpec{
		{
			ID:          "cache",
			Name:        "Package cache",
			Description: "Cached package archives",
			Priority:    cleaner.PriorityHigh,
			UseCase:     cleaner.UseCaseDevelopment,
			PathsByOS: map[string][]string{
				platform.OSLinux:   {filepath.Join(home, ".cache", "yarn")},
				platform.OSDarwin:  {filepath.Join(home, "Library", "Caches", "Yarn")},
				platform.OSWindows: {filepath.Join(home, "AppData", "Local", "Yarn", "Cache")},
			},
		},
	}

	return cleaner.NewBase(env, "yarn", cleaner.KindPackageManager, "Yarn package manager cache", specs)
}
