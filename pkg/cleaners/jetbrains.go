package cleaners

import (
	"path/filepath"

	"github.com/cachesweep/cachesweep/pkg/cleaner"
	"github.com/cachesweep/cachesweep/pkg/fsutil"
	"github.com/cachesweep/cachesweep/pkg/platform"
)

// NewJetBrains cleans the shared cache directory of all JetBrains IDEs
// (IntelliJ, GoLand, PyCharm and friends). IDEs rebuild their indexes on
// next start.
func NewJetBrains(env *cleaner.Env) *cleaner.Base {
	home := fsutil.HomeDir()

	specs := []cleaner.CategorySpec{
		{
			ID:          "caches",
			Name:        "IDE caches",
			Description: "Per-IDE index and compile caches",
			Priority:    cleaner.PriorityMedium,
			UseCase:     cleaner.UseCaseDevelopment,
			PathsByOS: map[string][]string{
				platform.OSLinux:   {filepath.Join(home, ".cache", "JetBrains")},
				platform.OSDarwin:  {filepath.Join(home, "Library", "Caches", "JetBrains")},
				platform.OSWindows: {filepath.Join(home, "AppData", "Local", "JetBrains")},
			},
		},
	}

	return cleaner.NewBase(env, "jetbrains", cleaner.KindIDE, "JetBrains IDE caches", specs)
}
