package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/spf13/cobra"

	"github.com/cachesweep/cachesweep/internal/logger"
	"github.com/cachesweep/cachesweep/pkg/manager"
)

// NewStatusCmd creates the status command.
func NewStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show disk usage and reclaimable space",
		Long:  "Display per-mount disk usage and an estimate of the space a full clean would reclaim",
		RunE:  runStatus,
	}

	return cmd
}

func runStatus(cmd *cobra.Command, _ []string) error {
	_, mgr, err := loadConfigAndManager()
	if err != nil {
		return err
	}

	printMounts(cmd)

	result, err := mgr.Scan(cmd.Context(), manager.Criteria{})
	if err != nil {
		return err
	}

	fmt.Printf("\nReclaimable cache space: %s in %d files\n",
		humanize.Bytes(uint64(result.TotalSize)), result.TotalFiles)

	for _, errMsg := range result.Errors {
		logger.Warn("Scan error", logger.Fields{"error": errMsg})
	}
	return nil
}

func printMounts(cmd *cobra.Command) {
	partitions, err := disk.PartitionsWithContext(cmd.Context(), false)
	if err != nil {
		logger.Warn("Failed to enumerate mounts", logger.Fields{"error": err.Error()})
		return
	}

	tabWriter := tabwriter.NewWriter(os.Stdout, 0, 0, TabWidth, ' ', 0)
	_, _ = fmt.Fprintln(tabWriter, "MOUNT\tTOTAL\tUSED\tFREE\tUSE%")
	_, _ = fmt.Fprintln(tabWriter, "-----\t-----\t----\t----\t----")

	for _, partition := range partitions {
		usage, err := disk.UsageWithContext(cmd.Context(), partition.Mountpoint)
		if err != nil {
			continue
		}
		_, _ = fmt.Fprintf(tabWriter, "%s\t%s\t%s\t%s\t%.0f%%\n",
			partition.Mountpoint,
			humanize.Bytes(usage.Total),
			humanize.Bytes(usage.Used),
			humanize.Bytes(usage.Free),
			usage.UsedPercent)
	}

	_ = tabWriter.Flush()
}
