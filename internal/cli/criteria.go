package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/cachesweep/cachesweep/pkg/cleaner"
	"github.com/cachesweep/cachesweep/pkg/manager"
)

// criteriaFlags holds the selection flags shared by scan and clean.
type criteriaFlags struct {
	categories []string
	minAge     int
	maxAge     int
	minSize    string
	useCases   []string
	priorities []string
}

func addCriteriaFlags(cmd *cobra.Command, f *criteriaFlags) {
	cmd.Flags().StringSliceVar(&f.categories, "category", nil, "restrict to these category ids")
	cmd.Flags().IntVar(&f.minAge, "min-age", 0, "only caches at least this many days old")
	cmd.Flags().IntVar(&f.maxAge, "max-age", 0, "only caches at most this many days old")
	cmd.Flags().StringVar(&f.minSize, "min-size", "", "only caches of at least this size (e.g. 500MB)")
	cmd.Flags().StringSliceVar(&f.useCases, "use-case", nil, "restrict to use cases (development, testing, browsing, system)")
	cmd.Flags().StringSliceVar(&f.priorities, "priority", nil, "restrict to priorities (low, medium, high, critical)")
}

// anySet reports whether any selection flag was given.
func (f *criteriaFlags) anySet() bool {
	return len(f.categories) > 0 || f.minAge > 0 || f.maxAge > 0 ||
		f.minSize != "" || len(f.useCases) > 0 || len(f.priorities) > 0
}

// toCriteria validates and converts the flag values. Positional args are
// the tool filter.
func (f *criteriaFlags) toCriteria(tools []string) (manager.Criteria, error) {
	criteria := manager.Criteria{
		Tools:      tools,
		Categories: f.categories,
		MinAgeDays: f.minAge,
		MaxAgeDays: f.maxAge,
	}

	if f.minSize != "" {
		size, err := humanize.ParseBytes(f.minSize)
		if err != nil {
			return criteria, fmt.Errorf("invalid --min-size value %q: %w", f.minSize, err)
		}
		criteria.MinSize = int64(size)
	}

	for _, uc := range f.useCases {
		useCase := cleaner.UseCase(uc)
		valid := false
		for _, known := range cleaner.ValidUseCases() {
			if useCase == known {
				valid = true
				break
			}
		}
		if !valid {
			return criteria, fmt.Errorf("invalid --use-case value %q", uc)
		}
		criteria.UseCases = append(criteria.UseCases, useCase)
	}

	for _, p := range f.priorities {
		priority, ok := cleaner.ParsePriority(p)
		if !ok {
			return criteria, fmt.Errorf("invalid --priority value %q", p)
		}
		criteria.Priorities = append(criteria.Priorities, priority)
	}

	return criteria, nil
}
