package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/cachesweep/cachesweep/internal/logger"
	"github.com/cachesweep/cachesweep/pkg/fsutil"
	"github.com/cachesweep/cachesweep/pkg/manager"
)

// NewCleanCmd creates the clean command.
func NewCleanCmd() *cobra.Command {
	var (
		flags       criteriaFlags
		dryRun      bool
		all         bool
		yes         bool
		force       bool
		trash       bool
		snapshot    bool
		trashDir    string
		snapshotDir string
	)

	cmd := &cobra.Command{
		Use:   "clean [tools...]",
		Short: "Delete cache directories",
		Long:  "Delete the cache directories of the selected tools. Protected paths are never touched",
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := flags.toCriteria(args)
			if err != nil {
				return err
			}
			if len(args) == 0 && !all && !flags.anySet() {
				return fmt.Errorf("refusing to clean everything; name tools, pass criteria flags, or use --all")
			}
			opts := manager.Options{
				DryRun:      dryRun,
				TrashDir:    trashDir,
				SnapshotDir: snapshotDir,
				Force:       force,
			}
			return runClean(cmd, criteria, opts, yes, trash, snapshot)
		},
	}

	addCriteriaFlags(cmd, &flags)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report what would be deleted without deleting")
	cmd.Flags().BoolVar(&all, "all", false, "clean every enabled cleaner")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	cmd.Flags().BoolVar(&force, "force", false, "include tools that look unavailable")
	cmd.Flags().BoolVar(&trash, "trash", false, "move paths to the default trash directory instead of deleting")
	cmd.Flags().StringVar(&trashDir, "trash-dir", "", "move paths here instead of deleting")
	cmd.Flags().BoolVar(&snapshot, "snapshot", false, "archive each path to the default snapshot directory before deleting")
	cmd.Flags().StringVar(&snapshotDir, "snapshot-dir", "", "archive each path here before deleting")

	return cmd
}

func runClean(cmd *cobra.Command, criteria manager.Criteria, opts manager.Options, yes, trash, snapshot bool) error {
	cfg, mgr, err := loadConfigAndManager()
	if err != nil {
		return err
	}

	// Config defaults fill in what the flags left unset. The bare --trash
	// and --snapshot switches resolve to the platform state directories.
	if cfg.Settings.DryRun {
		opts.DryRun = true
	}
	usesStateDir := false
	if opts.TrashDir == "" {
		if trash {
			opts.TrashDir = cfg.GetTrashDir()
			usesStateDir = usesStateDir || cfg.Settings.TrashDir == ""
		} else {
			opts.TrashDir = cfg.Settings.TrashDir
		}
	}
	if opts.SnapshotDir == "" {
		if snapshot {
			opts.SnapshotDir = cfg.GetSnapshotDir()
			usesStateDir = usesStateDir || cfg.Settings.SnapshotDir == ""
		} else {
			opts.SnapshotDir = cfg.Settings.SnapshotDir
		}
	}
	if usesStateDir && !opts.DryRun {
		if err := fsutil.EnsureDirs(); err != nil {
			return fmt.Errorf("failed to create state directories: %w", err)
		}
	}

	if !opts.DryRun && !yes {
		if !confirm("Delete the selected caches?") {
			logger.Info("Aborted")
			return nil
		}
	}

	result, err := mgr.Clean(cmd.Context(), criteria, opts)
	if err != nil {
		return err
	}

	if cfg.Settings.OutputFormat == "json" {
		return printJSON(result)
	}
	printCleanText(result)
	return nil
}

func printCleanText(result *manager.CleanResult) {
	for _, res := range result.Results {
		fields := logger.Fields{"freed": humanize.Bytes(uint64(res.Freed)), "paths": len(res.Removed)}
		if result.DryRun {
			logger.Info("Would clean "+res.Tool, fields)
		} else {
			logger.Info("Cleaned "+res.Tool, fields)
		}
		for _, skipped := range res.Skipped {
			logger.Warn("Skipped path", logger.Fields{"tool": res.Tool, "path": skipped.Path, "reason": skipped.Reason})
		}
	}

	for _, errMsg := range result.Errors {
		logger.Warn("Clean error", logger.Fields{"error": errMsg})
	}

	verb := "Freed"
	if result.DryRun {
		verb = "Would free"
	}
	logger.Success(fmt.Sprintf("%s %s", verb, humanize.Bytes(uint64(result.TotalFreed))))
}

// confirm asks a yes/no question on stdin, defaulting to no.
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
