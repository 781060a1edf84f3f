package cleaners

import (
	"path/filepath"

	"github.com/cachesweep/cachesweep/pkg/cleaner"
	"github.com/cachesweep/cachesweep/pkg/fsutil"
	"github.com/cachesweep/cachesweep/pkg/platform"
)

// NewMaven cleans the local Maven repository. Everything in it is
// re-downloadable, but builds without network access rely on it, hence
// low priority.
func NewMaven(env *cleaner.Env) *cleaner.Base {
	home := fsutil.HomeDir()

	specs := []cleaner.CategorySpec{
		{
			ID:          "repository",
			Name:        "Local repository",
			Description: "Downloaded artifacts and plugins (~/.m2/repository)",
			Priority:    cleaner.PriorityLow,
			UseCase:     cleaner.UseCaseDevelopment,
			PathsByOS: map[string][]string{
				platform.AnyOS: {filepath.Join(home, ".m2", "repository")},
			},
		},
	}

	return cleaner.NewBase(env, "maven", cleaner.KindBuildTool, "Maven local repository", specs)
}
