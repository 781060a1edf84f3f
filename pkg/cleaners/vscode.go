package cleaners

import (
	"path/filepath"

	"github.com/cachesweep/cachesweep/pkg/cleaner"
	"github.com/cachesweep/cachesweep/pkg/fsutil"
	"github.com/cachesweep/cachesweep/pkg/platform"
)

// NewVSCode cleans Visual Studio Code's cache directories. Settings and
// extensions are untouched.
func NewVSCode(env *cleaner.Env) *cleaner.Base {
	home := fsutil.HomeDir()

	codeDirByOS := map[string]string{
		platform.OSLinux:   filepath.Join(home, ".config", "Code"),
		platform.OSDarwin:  filepath.Join(home, "Library", "Application Support", "Code"),
		platform.OSWindows: filepath.Join(home, "AppData", "Roaming", "Code"),
	}

	cachePaths := make(map[string][]string, len(codeDirByOS))
	for osName, dir := range codeDirByOS {
		cachePaths[osName] = []string{
			filepath.Join(dir, "Cache"),
			filepath.Join(dir, "CachedData"),
			filepath.Join(dir, "CachedExtensionVSIXs"),
		}
	}

	specs := []cleaner.CategorySpec{
		{
			ID:          "cache",
			Name:        "Editor caches",
			Description: "Renderer cache, cached data and extension downloads",
			Priority:    cleaner.PriorityHigh,
			UseCase:     cleaner.UseCaseDevelopment,
			PathsByOS:   cachePaths,
		},
	}

	return cleaner.NewBase(env, "vscode", cleaner.KindIDE, "Visual Studio Code caches", specs)
}
