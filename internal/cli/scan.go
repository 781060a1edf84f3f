package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/cachesweep/cachesweep/internal/logger"
	"github.com/cachesweep/cachesweep/pkg/manager"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	var flags criteriaFlags

	cmd := &cobra.Command{
		Use:   "scan [tools...]",
		Short: "Measure cache sizes",
		Long:  "Walk the cache directories of the selected tools and report their sizes without deleting anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := flags.toCriteria(args)
			if err != nil {
				return err
			}
			return runScan(cmd, criteria)
		},
	}

	addCriteriaFlags(cmd, &flags)

	return cmd
}

func runScan(cmd *cobra.Command, criteria manager.Criteria) error {
	cfg, mgr, err := loadConfigAndManager()
	if err != nil {
		return err
	}

	result, err := mgr.Scan(cmd.Context(), criteria)
	if err != nil {
		return err
	}

	if cfg.Settings.OutputFormat == "json" {
		return printJSON(result)
	}
	printScanText(result)
	return nil
}

func printScanText(result *manager.ScanResult) {
	tabWriter := tabwriter.NewWriter(os.Stdout, 0, 0, TabWidth, ' ', 0)
	_, _ = fmt.Fprintln(tabWriter, "TOOL\tCATEGORY\tSIZE\tFILES\tAGE\tPRIORITY")
	_, _ = fmt.Fprintln(tabWriter, "----\t--------\t----\t-----\t---\t--------")

	for _, tool := range result.Tools {
		if !tool.Info.Installed {
			_, _ = fmt.Fprintf(tabWriter, "%s\t-\tnot available\t-\t-\t-\n", tool.Info.Name)
			continue
		}
		_, _ = fmt.Fprintf(tabWriter, "%s\t\t%s\t%d\t\t\n",
			tool.Info.Name, humanize.Bytes(uint64(tool.Info.Size)), tool.Info.Files)
		for _, cat := range tool.Categories {
			_, _ = fmt.Fprintf(tabWriter, "\t%s\t%s\t%d\t%dd\t%s\n",
				cat.ID, humanize.Bytes(uint64(cat.Size)), cat.Files, cat.AgeDays, cat.Priority)
		}
	}

	_ = tabWriter.Flush()

	fmt.Printf("\nTotal: %s in %d files\n", humanize.Bytes(uint64(result.TotalSize)), result.TotalFiles)

	for _, errMsg := range result.Errors {
		logger.Warn("Scan error", logger.Fields{"error": errMsg})
	}
}

func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
