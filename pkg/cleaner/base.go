package cleaner

import (
	"context"
	"path/filepath"
	"time"

	"github.com/cachesweep/cachesweep/internal/logger"
	"github.com/cachesweep/cachesweep/pkg/dirsize"
	"github.com/cachesweep/cachesweep/pkg/errors"
	"github.com/cachesweep/cachesweep/pkg/fsutil"
	"github.com/cachesweep/cachesweep/pkg/platform"
	"github.com/cachesweep/cachesweep/pkg/probe"
	"github.com/cachesweep/cachesweep/pkg/protect"
	"github.com/cachesweep/cachesweep/pkg/snapshot"
)

// Env bundles the shared services every cleaner needs. One Env is built per
// invocation and handed to all cleaners.
type Env struct {
	Sizes   *dirsize.Calculator
	Protect *protect.Matcher
	Prober  *probe.Prober
}

// CategorySpec declares one cache category of a tool: where its paths live
// per OS and how risky deleting them is. Paths are absolute; use the "any"
// OS key for paths valid everywhere.
type CategorySpec struct {
	ID          string
	Name        string
	Description string
	Priority    Priority
	UseCase     UseCase
	PathsByOS   map[string][]string

	// KeepRoot clears the contents of each path but keeps the directory
	// itself. Shared directories like /tmp must survive cleaning.
	KeepRoot bool
}

// paths returns the spec's paths for the current OS.
func (s CategorySpec) paths() []string {
	paths, ok := platform.Select(s.PathsByOS)
	if !ok {
		return nil
	}
	return paths
}

// Base implements the path-enumeration part of Cleaner shared by every
// tool. Concrete cleaners embed it and only declare their category specs;
// tools that shell out for cleanup (docker, brew) override Clear.
type Base struct {
	name        string
	kind        Kind
	description string
	env         *Env
	specs       []CategorySpec

	// extraPaths come from config and join the first category.
	extraPaths []string

	// availableFn overrides the default "any path exists" availability
	// check, typically with a PATH lookup for the tool binary.
	availableFn func(ctx context.Context) bool
}

// NewBase creates the shared cleaner core.
func NewBase(env *Env, name string, kind Kind, description string, specs []CategorySpec) *Base {
	return &Base{
		name:        name,
		kind:        kind,
		description: description,
		env:         env,
		specs:       specs,
	}
}

// SetAvailabilityCheck installs a custom availability probe.
func (b *Base) SetAvailabilityCheck(fn func(ctx context.Context) bool) {
	b.availableFn = fn
}

// AddExtraPaths appends user-configured paths to the first category.
func (b *Base) AddExtraPaths(paths []string) {
	b.extraPaths = append(b.extraPaths, paths...)
}

// Env exposes the shared services to embedding cleaners.
func (b *Base) Env() *Env { return b.env }

// Name returns the registry name of the tool.
func (b *Base) Name() string { return b.name }

// Kind returns the tool grouping.
func (b *Base) Kind() Kind { return b.kind }

// Description returns the one-line tool description.
func (b *Base) Description() string { return b.description }

// IsAvailable reports whether the tool left any trace on this machine.
func (b *Base) IsAvailable(ctx context.Context) bool {
	if b.availableFn != nil {
		return b.availableFn(ctx)
	}
	return len(b.existingPaths()) > 0
}

// CacheInfo aggregates size over every existing candidate path.
func (b *Base) CacheInfo(ctx context.Context) (*Info, error) {
	paths := b.existingPaths()

	res, err := b.env.Sizes.Sum(ctx, paths)
	if err != nil {
		return nil, err
	}

	return &Info{
		Name:        b.name,
		Kind:        b.kind,
		Description: b.description,
		Paths:       paths,
		Installed:   len(paths) > 0 || b.IsAvailable(ctx),
		Size:        res.Size,
		Files:       res.Files,
		Newest:      res.Newest,
		Oldest:      res.Oldest,
	}, nil
}

// Categories sizes each declared category, dropping paths that don't exist.
func (b *Base) Categories(ctx context.Context) ([]Category, error) {
	now := time.Now()
	categories := make([]Category, 0, len(b.specs))

	for i, spec := range b.specs {
		paths := b.categoryPaths(i, spec)
		res, err := b.env.Sizes.Sum(ctx, paths)
		if err != nil {
			return nil, err
		}
		categories = append(categories, Category{
			ID:          spec.ID,
			Name:        spec.Name,
			Description: spec.Description,
			Paths:       paths,
			Size:        res.Size,
			Files:       res.Files,
			Priority:    spec.Priority,
			UseCase:     spec.UseCase,
			AgeDays:     res.AgeDays(now),
		})
	}

	return categories, nil
}

// Clear removes every category.
func (b *Base) Clear(ctx context.Context, opts ClearOptions) (*ClearResult, error) {
	return b.RemovePaths(ctx, b.existingPaths(), opts)
}

// ClearCategory removes a single category by id.
func (b *Base) ClearCategory(ctx context.Context, id string, opts ClearOptions) (*ClearResult, error) {
	for i, spec := range b.specs {
		if spec.ID == id {
			return b.RemovePaths(ctx, b.categoryPaths(i, spec), opts)
		}
	}
	return nil, errors.ErrCategoryNotFoundWithID(id)
}

// RemovePaths is the shared delete helper. It honors dry-run, skips
// protected paths, optionally snapshots or trashes each path, and reports
// the per-path outcome. A failed deletion is recorded and never aborts the
// remaining paths.
func (b *Base) RemovePaths(ctx context.Context, paths []string, opts ClearOptions) (*ClearResult, error) {
	result := &ClearResult{Tool: b.name, DryRun: opts.DryRun}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if b.env.Protect.Protected(path) {
			logger.Debug("Skipping protected path", logger.Fields{"tool": b.name, "path": path})
			result.Skipped = append(result.Skipped, SkippedPath{Path: path, Reason: "protected"})
			continue
		}

		res, err := b.env.Sizes.Dir(ctx, path)
		if err != nil {
			return result, err
		}

		if opts.DryRun {
			result.Freed += res.Size
			result.Removed = append(result.Removed, path)
			continue
		}

		if opts.SnapshotDir != "" {
			writer := snapshot.NewWriter(opts.SnapshotDir)
			if _, err := writer.Snapshot(ctx, b.name, path); err != nil {
				logger.Warn("Snapshot failed, keeping path", logger.Fields{
					"tool": b.name, "path": path, "error": err.Error(),
				})
				result.Skipped = append(result.Skipped, SkippedPath{Path: path, Reason: "snapshot failed: " + err.Error()})
				continue
			}
		}

		keepRoot := b.keepRootPath(path)

		var removeErr error
		switch {
		case opts.TrashDir != "":
			removeErr = fsutil.Move(path, trashTarget(opts.TrashDir, b.name, path))
			if removeErr == nil && keepRoot {
				removeErr = fsutil.EnsureDir(path)
			}
		case keepRoot:
			removeErr = fsutil.ClearDir(path)
		default:
			removeErr = fsutil.RemovePath(path)
		}
		if removeErr != nil {
			logger.Warn("Failed to remove path", logger.Fields{
				"tool": b.name, "path": path, "error": removeErr.Error(),
			})
			result.Skipped = append(result.Skipped, SkippedPath{Path: path, Reason: removeErr.Error()})
			continue
		}

		b.env.Sizes.Invalidate(path)
		result.Freed += res.Size
		result.Removed = append(result.Removed, path)
	}

	return result, nil
}

// trashTarget keeps trashed paths distinguishable: <trash>/<tool>/<base>-<timestamp>.
func trashTarget(trashDir, tool, path string) string {
	stamp := time.Now().UTC().Format("20060102T150405Z")
	return filepath.Join(trashDir, tool, filepath.Base(path)+"-"+stamp)
}

// keepRootPath reports whether path belongs to a category that only clears
// directory contents. Extra paths from config never keep their root.
func (b *Base) keepRootPath(path string) bool {
	for _, spec := range b.specs {
		if !spec.KeepRoot {
			continue
		}
		for _, p := range spec.paths() {
			if p == path {
				return true
			}
		}
	}
	return false
}

func (b *Base) existingPaths() []string {
	var paths []string
	for i, spec := range b.specs {
		paths = append(paths, b.categoryPaths(i, spec)...)
	}
	return paths
}

// categoryPaths resolves a spec to the existing paths on this machine,
// with config extras folded into the first category. Only absolute
// candidates count: an undetermined home directory leaves relative paths
// like ".npm/_cacache" behind, and those must never resolve against the
// working directory.
func (b *Base) categoryPaths(index int, spec CategorySpec) []string {
	candidates := spec.paths()
	if index == 0 {
		candidates = append(candidates, b.extraPaths...)
	}

	existing := make([]string, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))
	for _, p := range candidates {
		if p == "" || !filepath.IsAbs(p) || seen[p] {
			continue
		}
		seen[p] = true
		if fsutil.PathExists(p) {
			existing = append(existing, p)
		}
	}
	return existing
}
