package cleaners

import (
	"path/filepath"

	"github.com/cachesweep/cachesweep/pkg/cleaner"
	"github.com/cachesweep/cachesweep/pkg/fsutil"
	"github.com/cachesweep/cachesweep/pkg/platform"
)

// NewGo cleans the Go build cache and the module download cache.
//
// The module cache is write-protected on disk, so deleting it may need
// elevated permissions; failures surface as skipped paths.
func NewGo(env *cleaner.Env) *cleaner.Base {
	home := fsutil.HomeDir()

	specs := []cleaner.CategorySpec{
		{
			ID:          "build",
			Name:        "Build cache",
			Description: "Compiled package artifacts (GOCACHE)",
			Priority:    cleaner.PriorityHigh,
			UseCase:     cleaner.UseCaseDevelopment,
			PathsByOS: map[string][]string{
				platform.OSLinux:   {filepath.Join(home, ".cache", "go-build")},
				platform.OSDarwin:  {filepath.Join(home, "Library", "Caches", "go-build")},
				platform.OSWindows: {filepath.Join(home, "AppData", "Local", "go-build")},
			},
		},
		{
			ID:          "modules",
			Name:        "Module cache",
			Description: "Downloaded module sources (GOMODCACHE)",
			Priority:    cleaner.PriorityLow,
			UseCase:     cleaner.UseCaseDevelopment,
			PathsByOS: map[string][]string{
				platform.AnyOS: {filepath.Join(home, "go", "pkg", "mod", "cache", "download")},
			},
		},
	}

	return cleaner.NewBase(env, "go", cleaner.KindBuildTool, "Go build and module caches", specs)
}
