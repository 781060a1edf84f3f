package manager

import (
	"slices"

	"github.com/cachesweep/cachesweep/pkg/cleaner"
)

// Criteria selects which tools and cache categories a scan or clean
// touches. Each field is an independent predicate; set fields are ANDed
// together and empty criteria selects everything.
type Criteria struct {
	// Tools restricts to these registry names.
	Tools []string
	// Categories restricts to these category ids.
	Categories []string
	// MinAgeDays keeps only categories whose newest file is at least this old.
	MinAgeDays int
	// MaxAgeDays keeps only categories whose newest file is at most this old.
	// Zero means unbounded.
	MaxAgeDays int
	// MinSize keeps only categories of at least this many bytes.
	MinSize int64
	// UseCases restricts to these use cases.
	UseCases []cleaner.UseCase
	// Priorities restricts to these priorities.
	Priorities []cleaner.Priority
}

// MatchesTool reports whether the tool name passes the tool filter.
func (c Criteria) MatchesTool(name string) bool {
	return len(c.Tools) == 0 || slices.Contains(c.Tools, name)
}

// MatchesCategory reports whether the category passes every set
// category-level predicate.
func (c Criteria) MatchesCategory(cat cleaner.Category) bool {
	if len(c.Categories) > 0 && !slices.Contains(c.Categories, cat.ID) {
		return false
	}
	if c.MinAgeDays > 0 && cat.AgeDays < c.MinAgeDays {
		return false
	}
	if c.MaxAgeDays > 0 && cat.AgeDays > c.MaxAgeDays {
		return false
	}
	if c.MinSize > 0 && cat.Size < c.MinSize {
		return false
	}
	if len(c.UseCases) > 0 && !slices.Contains(c.UseCases, cat.UseCase) {
		return false
	}
	if len(c.Priorities) > 0 && !slices.Contains(c.Priorities, cat.Priority) {
		return false
	}
	return true
}

// categoryFiltered reports whether any category-level predicate is set,
// in which case tools whose categories all fail the filter are skipped.
func (c Criteria) categoryFiltered() bool {
	return len(c.Categories) > 0 ||
		c.MinAgeDays > 0 ||
		c.MaxAgeDays > 0 ||
		c.MinSize > 0 ||
		len(c.UseCases) > 0 ||
		len(c.Priorities) > 0
}
