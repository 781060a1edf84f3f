package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cachesweep/cachesweep/pkg/cleaners"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List known cleaners",
		Long:  "Display every known cleaner with its kind, availability and enabled state",
		RunE:  runList,
	}

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	env, err := buildEnv(cfg)
	if err != nil {
		return err
	}

	tabWriter := tabwriter.NewWriter(os.Stdout, 0, 0, TabWidth, ' ', 0)
	_, _ = fmt.Fprintln(tabWriter, "NAME\tKIND\tAVAILABLE\tENABLED\tDESCRIPTION")
	_, _ = fmt.Fprintln(tabWriter, "----\t----\t---------\t-------\t-----------")

	for _, c := range cleaners.All(env) {
		available := "no"
		if c.IsAvailable(cmd.Context()) {
			available = "yes"
		}
		enabled := "yes"
		if !cfg.CleanerEnabled(c.Name()) {
			enabled = "no"
		}
		_, _ = fmt.Fprintf(tabWriter, "%s\t%s\t%s\t%s\t%s\n",
			c.Name(), c.Kind(), available, enabled, truncate(c.Description(), MaxDescriptionLength))
	}

	return tabWriter.Flush()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
