//go:generate mockgen -destination=./mocks/cleaner.go -package=mocks . Cleaner

package cleaner

import (
	"context"
	"time"
)

// Kind groups cleaners by the sort of tool they clean up after.
type Kind string

// Supported cleaner kinds.
const (
	KindPackageManager Kind = "package-manager"
	KindBuildTool      Kind = "build-tool"
	KindIDE            Kind = "ide"
	KindBrowser        Kind = "browser"
	KindSystem         Kind = "system"
)

// Priority expresses how safe it is to delete a cache category. Higher
// priority categories free more space with less rebuild cost.
type Priority int

// Priority levels, lowest first.
const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

// String returns the human-readable priority name.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ParsePriority converts a priority name to its value.
func ParsePriority(s string) (Priority, bool) {
	switch s {
	case "low":
		return PriorityLow, true
	case "medium":
		return PriorityMedium, true
	case "high":
		return PriorityHigh, true
	case "critical":
		return PriorityCritical, true
	default:
		return 0, false
	}
}

// UseCase tags a cache category with the activity that produced it.
type UseCase string

// Supported use cases.
const (
	UseCaseDevelopment UseCase = "development"
	UseCaseTesting     UseCase = "testing"
	UseCaseBrowsing    UseCase = "browsing"
	UseCaseSystem      UseCase = "system"
)

// ValidUseCases returns all known use case values.
func ValidUseCases() []UseCase {
	return []UseCase{UseCaseDevelopment, UseCaseTesting, UseCaseBrowsing, UseCaseSystem}
}

// Info describes one tool's cache as found on disk.
type Info struct {
	Name        string
	Kind        Kind
	Description string
	Paths       []string
	Installed   bool
	Size        int64
	Files       int
	Newest      time.Time
	Oldest      time.Time
}

// Category is a named, sized grouping of cache paths used for selective
// deletion.
type Category struct {
	ID          string
	Name        string
	Description string
	Paths       []string
	Size        int64
	Files       int
	Priority    Priority
	UseCase     UseCase
	AgeDays     int
}

// ClearOptions controls how paths are removed.
type ClearOptions struct {
	// DryRun reports what would be deleted without deleting.
	DryRun bool
	// TrashDir, when set, moves paths there instead of deleting them.
	TrashDir string
	// SnapshotDir, when set, archives each path there before deletion.
	SnapshotDir string
}

// SkippedPath records a path that was not removed and why.
type SkippedPath struct {
	Path   string
	Reason string
}

// ClearResult contains the outcome of one cleaner's Clear call.
type ClearResult struct {
	Tool    string
	Freed   int64
	Removed []string
	Skipped []SkippedPath
	DryRun  bool
}

// Cleaner locates and removes one tool's cache files.
type Cleaner interface {
	Name() string
	Kind() Kind
	Description() string

	// IsAvailable reports whether the tool is present on this machine.
	IsAvailable(ctx context.Context) bool

	// CacheInfo returns the aggregate cache state for the tool.
	CacheInfo(ctx context.Context) (*Info, error)

	// Categories returns the tool's cache broken into selectable groups.
	Categories(ctx context.Context) ([]Category, error)

	// Clear removes all of the tool's cache categories.
	Clear(ctx context.Context, opts ClearOptions) (*ClearResult, error)

	// ClearCategory removes a single category by id.
	ClearCategory(ctx context.Context, id string, opts ClearOptions) (*ClearResult, error)
}
