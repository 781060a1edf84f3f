package cleaners

import (
	"path/filepath"

	"github.com/cachesweep/cachesweep/pkg/cleaner"
	"github.com/cachesweep/cachesweep/pkg/fsutil"
	"github.com/cachesweep/cachesweep/pkg/platform"
)

// NewGradle cleans the Gradle caches, daemon logs and wrapper
// distributions under ~/.gradle.
func NewGradle(env *cleaner.Env) *cleaner.Base {
	home := fsutil.HomeDir()

	specs := []cleaner.CategorySpec{
		{
			ID:          "caches",
			Name:        "Build caches",
			Description: "Dependency and build caches (~/.gradle/caches)",
			Priority:    cleaner.PriorityMedium,
			UseCase:     cleaner.UseCaseDevelopment,
			PathsByOS: map[string][]string{
				platform.AnyOS: {filepath.Join(home, ".gradle", "caches")},
			},
		},
		{
			ID:          "daemon",
			Name:        "Daemon logs",
			Description: "Per-version daemon logs (~/.gradle/daemon)",
			Priority:    cleaner.PriorityHigh,
			UseCase:     cleaner.UseCaseDevelopment,
			PathsByOS: map[string][]string{
				platform.AnyOS: {filepath.Join(home, ".gradle", "daemon")},
			},
		},
		{
			ID:          "wrapper",
			Name:        "Wrapper distributions",
			Description: "Downloaded Gradle distributions (~/.gradle/wrapper/dists)",
			Priority:    cleaner.PriorityLow,
			UseCase:     cleaner.UseCaseDevelopment,
			PathsByOS: map[string][]string{
				platform.AnyOS: {filepath.Join(home, ".gradle", "wrapper", "dists")},
			},
		},
	}

	return cleaner.NewBase(env, "gradle", cleaner.KindBuildTool, "Gradle caches and distributions", specs)
}
