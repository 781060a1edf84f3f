package cleaners

import (
	"path/filepath"

	"github.com/cachesweep/cachesweep/pkg/cleaner"
	"github.com/cachesweep/cachesweep/pkg/fsutil"
	"github.com/cachesweep/cachesweep/pkg/platform"
)

// NewPnpm cleans the pnpm content-addressable store.
//
// Note: removing the store breaks the hard links of existing node_modules
// trees, which is why the store is only medium priority.
func NewPnpm(env *cleaner.Env) *cleaner.Base {
	home := fsutil.HomeDir()

	specs := []cleaner.CategorySpec{
		{
			ID:          "store",
			Name:        "Content store",
			Description: "Content-addressable package store",
			Priority:    cleaner.PriorityMedium,
			UseCase:     cleaner.UseCaseDevelopment,
			PathsByOS: map[string][]string{
				platform.OSLinux:   {filepath.Join(home, ".local", "share", "pnpm", "store")},
				platform.OSDarwin:  {filepath.Join(home, "Library", "pnpm", "store")},
				platform.OSWindows: {filepath.Join(home, "AppData", "Local", "pnpm", "store")},
			},
		},
	}

	return cleaner.NewBase(env, "pnpm", cleaner.KindPackageManager, "pnpm package store", specs)
}
