package manager

import (
	"github.com/cachesweep/cachesweep/pkg/cleaner"
)

// Options controls how a clean run removes paths.
type Options struct {
	// DryRun reports what would be removed without removing anything.
	DryRun bool
	// TrashDir moves paths there instead of deleting when non-empty.
	TrashDir string
	// SnapshotDir archives each path there before deletion when non-empty.
	SnapshotDir string
	// Force includes tools that look unavailable on this machine.
	Force bool
}

// ToolScan is one tool's entry in a scan result.
type ToolScan struct {
	Info       *cleaner.Info
	Categories []cleaner.Category
}

// ScanResult aggregates cache state across all selected tools. Errors holds
// advisory per-cleaner failures; a failed cleaner never aborts the scan.
type ScanResult struct {
	Tools      []ToolScan
	TotalSize  int64
	TotalFiles int
	Errors     []string
}

// CleanResult aggregates the outcome of a clean run.
type CleanResult struct {
	Results    []*cleaner.ClearResult
	TotalFreed int64
	DryRun     bool
	Errors     []string
}
