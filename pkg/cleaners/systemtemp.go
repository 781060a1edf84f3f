package cleaners

import (
	"path/filepath"

	"github.com/cachesweep/cachesweep/pkg/cleaner"
	"github.com/cachesweep/cachesweep/pkg/fsutil"
	"github.com/cachesweep/cachesweep/pkg/platform"
)

// NewSystemTemp cleans the user-writable temp directories. Running
// programs may hold files here, so the category is low priority and the
// protected-path rules still apply to everything inside. The temp
// directories themselves are never removed, only their contents.
func NewSystemTemp(env *cleaner.Env) *cleaner.Base {
	home := fsutil.HomeDir()

	specs := []cleaner.CategorySpec{
		{
			ID:          "temp",
			Name:        "Temporary files",
			Description: "System temp directories",
			Priority:    cleaner.PriorityLow,
			UseCase:     cleaner.UseCaseSystem,
			KeepRoot:    true,
			PathsByOS: map[string][]string{
				platform.OSLinux:   {"/tmp", "/var/tmp"},
				platform.OSDarwin:  {filepath.Join(home, "Library", "Caches", "TemporaryItems")},
				platform.OSWindows: {filepath.Join(home, "AppData", "Local", "Temp")},
			},
		},
	}

	return cleaner.NewBase(env, "system-temp", cleaner.KindSystem, "System temporary files", specs)
}
