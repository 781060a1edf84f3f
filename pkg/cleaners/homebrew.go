package cleaners

import (
	"context"
	"path/filepath"

	"github.com/cachesweep/cachesweep/internal/logger"
	"github.com/cachesweep/cachesweep/pkg/cleaner"
	"github.com/cachesweep/cachesweep/pkg/fsutil"
	"github.com/cachesweep/cachesweep/pkg/platform"
)

// HomebrewCleaner prefers "brew cleanup" over raw directory deletion so
// brew's own bookkeeping stays consistent. When the brew binary is gone
// but the cache directory remains, it falls back to plain removal.
type HomebrewCleaner struct {
	*cleaner.Base
}

// NewHomebrew creates the Homebrew cleaner.
func NewHomebrew(env *cleaner.Env) *HomebrewCleaner {
	home := fsutil.HomeDir()

	specs := []cleaner.CategorySpec{
		{
			ID:          "downloads",
			Name:        "Download cache",
			Description: "Downloaded bottles and old formula versions",
			Priority:    cleaner.PriorityHigh,
			UseCase:     cleaner.UseCaseDevelopment,
			PathsByOS: map[string][]string{
				platform.OSLinux:  {filepath.Join(home, ".cache", "Homebrew")},
				platform.OSDarwin: {filepath.Join(home, "Library", "Caches", "Homebrew")},
			},
		},
	}

	return &HomebrewCleaner{
		Base: cleaner.NewBase(env, "homebrew", cleaner.KindPackageManager, "Homebrew download cache", specs),
	}
}

// Clear runs "brew cleanup -s" when brew is installed, otherwise removes
// the cache directory directly.
func (h *HomebrewCleaner) Clear(ctx context.Context, opts cleaner.ClearOptions) (*cleaner.ClearResult, error) {
	if opts.DryRun || !h.Env().Prober.Available("brew") {
		return h.Base.Clear(ctx, opts)
	}

	before, err := h.CacheInfo(ctx)
	if err != nil {
		return nil, err
	}

	result := &cleaner.ClearResult{Tool: h.Name()}

	out, err := h.Env().Prober.Run(ctx, "brew", "cleanup", "-s", "--prune=all")
	if err != nil {
		logger.Warn("brew cleanup failed, removing cache directly", logger.Fields{"error": err.Error()})
		return h.Base.Clear(ctx, opts)
	}
	logger.Debug("brew cleanup output", logger.Fields{"output": out})

	for _, path := range before.Paths {
		h.Env().Sizes.Invalidate(path)
	}
	after, err := h.CacheInfo(ctx)
	if err != nil {
		return nil, err
	}

	if freed := before.Size - after.Size; freed > 0 {
		result.Freed = freed
	}
	result.Removed = before.Paths
	return result, nil
}
