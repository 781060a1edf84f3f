package cleaners

import (
	"path/filepath"

	"github.com/cachesweep/cachesweep/pkg/cleaner"
	"github.com/cachesweep/cachesweep/pkg/fsutil"
	"github.com/cachesweep/cachesweep/pkg/platform"
)

// NewCargo cleans the cargo registry and git caches. Cargo keeps its home
// under ~/.cargo on every OS.
func NewCargo(env *cleaner.Env) *cleaner.Base {
	home := fsutil.HomeDir()

	specs := []cleaner.CategorySpec{
		{
			ID:          "registry",
			Name:        "Registry cache",
			Description: "Downloaded crate archives and extracted sources",
			Priority:    cleaner.PriorityHigh,
			UseCase:     cleaner.UseCaseDevelopment,
			PathsByOS: map[string][]string{
				platform.AnyOS: {
					filepath.Join(home, ".cargo", "registry", "cache"),
					filepath.Join(home, ".cargo", "registry", "src"),
				},
			},
		},
		{
			ID:          "git",
			Name:        "Git dependency cache",
			Description: "Checkouts of git dependencies",
			Priority:    cleaner.PriorityMedium,
			UseCase:     cleaner.UseCaseDevelopment,
			PathsByOS: map[string][]string{
				platform.AnyOS: {filepath.Join(home, ".cargo", "git")},
			},
		},
	}

	return cleaner.NewBase(env, "cargo", cleaner.KindBuildTool, "Rust cargo caches", specs)
}
