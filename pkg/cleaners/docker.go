package cleaners

import (
	"context"
	"path/filepath"

	"github.com/cachesweep/cachesweep/internal/logger"
	"github.com/cachesweep/cachesweep/pkg/cleaner"
	"github.com/cachesweep/cachesweep/pkg/fsutil"
	"github.com/cachesweep/cachesweep/pkg/platform"
)

// DockerCleaner wraps the path-based base with Docker's own prune command.
// Docker owns its data layout, so deleting directories out from under the
// daemon is unsafe; cleanup goes through the CLI instead.
type DockerCleaner struct {
	*cleaner.Base
}

// NewDocker creates the Docker cleaner. The category paths are only used
// for sizing; actual cleanup shells out to "docker system prune".
func NewDocker(env *cleaner.Env) *DockerCleaner {
	home := fsutil.HomeDir()

	specs := []cleaner.CategorySpec{
		{
			ID:          "data",
			Name:        "Engine data",
			Description: "Images, build cache and stopped containers",
			Priority:    cleaner.PriorityMedium,
			UseCase:     cleaner.UseCaseDevelopment,
			PathsByOS: map[string][]string{
				platform.OSLinux:   {"/var/lib/docker"},
				platform.OSDarwin:  {filepath.Join(home, "Library", "Containers", "com.docker.docker", "Data")},
				platform.OSWindows: {filepath.Join(home, "AppData", "Local", "Docker")},
			},
		},
	}

	base := cleaner.NewBase(env, "docker", cleaner.KindSystem, "Docker images and build cache", specs)
	base.SetAvailabilityCheck(func(context.Context) bool {
		return env.Prober.Available("docker")
	})

	return &DockerCleaner{Base: base}
}

// Clear prunes unused Docker data via the docker CLI. Dry-run reports the
// current engine data size without running anything. Trash and snapshot
// options do not apply; the daemon owns the files.
func (d *DockerCleaner) Clear(ctx context.Context, opts cleaner.ClearOptions) (*cleaner.ClearResult, error) {
	return d.prune(ctx, opts)
}

// ClearCategory behaves like Clear; Docker exposes a single category.
func (d *DockerCleaner) ClearCategory(ctx context.Context, id string, opts cleaner.ClearOptions) (*cleaner.ClearResult, error) {
	if id != "data" {
		return d.Base.ClearCategory(ctx, id, opts)
	}
	return d.prune(ctx, opts)
}

func (d *DockerCleaner) prune(ctx context.Context, opts cleaner.ClearOptions) (*cleaner.ClearResult, error) {
	result := &cleaner.ClearResult{Tool: d.Name(), DryRun: opts.DryRun}

	if !d.IsAvailable(ctx) {
		return result, nil
	}

	before, err := d.CacheInfo(ctx)
	if err != nil {
		return nil, err
	}

	if opts.DryRun {
		result.Freed = before.Size
		result.Removed = before.Paths
		return result, nil
	}

	out, err := d.Env().Prober.Run(ctx, "docker", "system", "prune", "-f")
	if err != nil {
		logger.Warn("docker system prune failed", logger.Fields{"error": err.Error()})
		for _, path := range before.Paths {
			result.Skipped = append(result.Skipped, cleaner.SkippedPath{Path: path, Reason: err.Error()})
		}
		return result, nil
	}
	logger.Debug("docker system prune output", logger.Fields{"output": out})

	for _, path := range before.Paths {
		d.Env().Sizes.Invalidate(path)
	}
	after, err := d.CacheInfo(ctx)
	if err != nil {
		return nil, err
	}

	if freed := before.Size - after.Size; freed > 0 {
		result.Freed = freed
	}
	result.Removed = before.Paths
	return result, nil
}
