// Package manager orchestrates scans and cleans across the cleaner
// registry: criteria filtering, sequential iteration, and advisory error
// collection.
package manager

import (
	"context"

	"github.com/hashicorp/go-multierror"

	"github.com/cachesweep/cachesweep/internal/logger"
	"github.com/cachesweep/cachesweep/pkg/cleaner"
	"github.com/cachesweep/cachesweep/pkg/hooks"
)

// Manager runs scans and cleans over a registry of cleaners.
type Manager struct {
	registry *cleaner.Registry
	hooks    hooks.HookManager
}

// New creates a manager over the given registry.
func New(registry *cleaner.Registry) *Manager {
	return &Manager{registry: registry}
}

// SetHooks installs an optional pre/post-clean hook executor.
func (m *Manager) SetHooks(h hooks.HookManager) {
	m.hooks = h
}

// Scan sizes the caches of every selected tool. Cleaners are visited
// sequentially in registration order. A failing cleaner is recorded in
// Errors and never aborts the remaining cleaners; only context
// cancellation returns an error.
func (m *Manager) Scan(ctx context.Context, criteria Criteria) (*ScanResult, error) {
	result := &ScanResult{}
	var merr *multierror.Error

	for _, c := range m.registry.All() {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if !criteria.MatchesTool(c.Name()) {
			continue
		}

		info, err := c.CacheInfo(ctx)
		if err != nil {
			logger.Warn("Scan failed for cleaner", logger.Fields{"tool": c.Name(), "error": err.Error()})
			merr = multierror.Append(merr, err)
			continue
		}

		categories, err := c.Categories(ctx)
		if err != nil {
			logger.Warn("Category scan failed for cleaner", logger.Fields{"tool": c.Name(), "error": err.Error()})
			merr = multierror.Append(merr, err)
			continue
		}

		selected := make([]cleaner.Category, 0, len(categories))
		for _, cat := range categories {
			if criteria.MatchesCategory(cat) {
				selected = append(selected, cat)
			}
		}
		if criteria.categoryFiltered() && len(selected) == 0 {
			continue
		}

		result.Tools = append(result.Tools, ToolScan{Info: info, Categories: selected})
		result.TotalSize += info.Size
		result.TotalFiles += info.Files
	}

	if merr != nil {
		for _, err := range merr.Errors {
			result.Errors = append(result.Errors, err.Error())
		}
	}
	return result, nil
}

// Clean removes the selected caches. Per-cleaner failures are advisory:
// they are collected in Errors and the remaining cleaners still run. A
// pre-clean hook failure skips that cleaner; a post-clean hook failure is
// logged only.
func (m *Manager) Clean(ctx context.Context, criteria Criteria, opts Options) (*CleanResult, error) {
	result := &CleanResult{DryRun: opts.DryRun}
	var merr *multierror.Error

	clearOpts := cleaner.ClearOptions{
		DryRun:      opts.DryRun,
		TrashDir:    opts.TrashDir,
		SnapshotDir: opts.SnapshotDir,
	}

	for _, c := range m.registry.All() {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if !criteria.MatchesTool(c.Name()) {
			continue
		}
		if !opts.Force && !c.IsAvailable(ctx) {
			logger.Debug("Skipping unavailable cleaner", logger.Fields{"tool": c.Name()})
			continue
		}

		res, err := m.cleanOne(ctx, c, criteria, clearOpts)
		if err != nil {
			logger.Warn("Clean failed for cleaner", logger.Fields{"tool": c.Name(), "error": err.Error()})
			merr = multierror.Append(merr, err)
			continue
		}
		if res == nil {
			continue
		}

		result.Results = append(result.Results, res)
		result.TotalFreed += res.Freed
	}

	if merr != nil {
		for _, err := range merr.Errors {
			result.Errors = append(result.Errors, err.Error())
		}
	}
	return result, nil
}

// cleanOne clears one cleaner, respecting category-level criteria and the
// hook lifecycle. A nil result with nil error means nothing was selected.
func (m *Manager) cleanOne(ctx context.Context, c cleaner.Cleaner, criteria Criteria, opts cleaner.ClearOptions) (*cleaner.ClearResult, error) {
	var selected []cleaner.Category
	if criteria.categoryFiltered() {
		categories, err := c.Categories(ctx)
		if err != nil {
			return nil, err
		}
		for _, cat := range categories {
			if criteria.MatchesCategory(cat) {
				selected = append(selected, cat)
			}
		}
		if len(selected) == 0 {
			return nil, nil
		}
	}

	if err := m.runPreClean(c.Name(), selected, opts.DryRun); err != nil {
		return nil, err
	}

	var res *cleaner.ClearResult
	if criteria.categoryFiltered() {
		res = &cleaner.ClearResult{Tool: c.Name(), DryRun: opts.DryRun}
		for _, cat := range selected {
			catRes, err := c.ClearCategory(ctx, cat.ID, opts)
			if err != nil {
				return nil, err
			}
			res.Freed += catRes.Freed
			res.Removed = append(res.Removed, catRes.Removed...)
			res.Skipped = append(res.Skipped, catRes.Skipped...)
		}
	} else {
		var err error
		res, err = c.Clear(ctx, opts)
		if err != nil {
			return nil, err
		}
	}

	m.runPostClean(res, selected)
	return res, nil
}

func (m *Manager) runPreClean(tool string, selected []cleaner.Category, dryRun bool) error {
	if m.hooks == nil || !m.hooks.HasHook(hooks.PreClean) {
		return nil
	}

	var paths []string
	for _, cat := range selected {
		paths = append(paths, cat.Paths...)
	}
	return m.hooks.Execute(hooks.PreClean, hooks.HookContext{
		ToolName: tool,
		Paths:    paths,
		DryRun:   dryRun,
		Vars:     hookVars(selected),
	})
}

func (m *Manager) runPostClean(res *cleaner.ClearResult, selected []cleaner.Category) {
	if m.hooks == nil || !m.hooks.HasHook(hooks.PostClean) {
		return
	}

	err := m.hooks.Execute(hooks.PostClean, hooks.HookContext{
		ToolName:   res.Tool,
		Paths:      res.Removed,
		DryRun:     res.DryRun,
		FreedBytes: res.Freed,
		Vars:       hookVars(selected),
	})
	if err != nil {
		logger.Warn("post-clean hook failed", logger.Fields{"tool": res.Tool, "error": err.Error()})
	}
}

// hookVars exposes the category selection to the hook scripts. The
// categories variable is always defined, empty when the whole tool is
// being cleaned.
func hookVars(selected []cleaner.Category) map[string]interface{} {
	ids := make([]interface{}, 0, len(selected))
	for _, cat := range selected {
		ids = append(ids, cat.ID)
	}
	return map[string]interface{}{"categories": ids}
}
