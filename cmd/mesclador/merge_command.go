package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"mesclador/internal/config"
	"mesclador/internal/history"
	"mesclador/internal/merging"
	"mesclador/internal/report"
	"mesclador/internal/runner"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var threshold float64
	var destDir string
	var inPlace bool
	var noReport bool
	var noHistory bool

	cmd := &cobra.Command{
		Use:   "merge <directory>",
		Short: "Merge groups of similarly named PDF files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			opts, err := mergeOptions(cfg, cmd, args[0], threshold, destDir, inPlace, noReport)
			if err != nil {
				return err
			}

			var store *history.Store
			if cfg.History.Enabled && !noHistory {
				store, err = history.Open(cfg)
				if err != nil {
					logger.Warn("run history unavailable", "error", err)
				} else {
					defer store.Close()
				}
			}

			out := cmd.OutOrStdout()
			obs := newCLIObserver(out, isatty.IsTerminal(os.Stdout.Fd()))
			r := runner.New(merging.NewMerger(ctx.pdfEngine(), logger), store, obs, logger)

			run, err := r.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			obs.finish()
			printRunSummary(out, run, opts.WriteErrorReport)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0, "Similarity threshold in (0,1] (default from config)")
	cmd.Flags().StringVar(&destDir, "dest", "", "Directory for merged output (default from config)")
	cmd.Flags().BoolVar(&inPlace, "in-place", false, "Write merged files next to the inputs")
	cmd.Flags().BoolVar(&noReport, "no-report", false, "Do not write an error report file")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record this run in the history database")
	return cmd
}

func mergeOptions(cfg *config.Config, cmd *cobra.Command, sourceArg string, threshold float64, destDir string, inPlace, noReport bool) (runner.Options, error) {
	source, err := config.ExpandPath(sourceArg)
	if err != nil {
		return runner.Options{}, fmt.Errorf("resolve source directory: %w", err)
	}

	opts := runner.Options{
		SourceDir:        source,
		Threshold:        cfg.Merge.Threshold,
		WriteErrorReport: cfg.Merge.ErrorReport && !noReport,
	}
	if cmd.Flags().Changed("threshold") {
		opts.Threshold = threshold
	}

	switch {
	case destDir != "":
		dest, err := config.ExpandPath(destDir)
		if err != nil {
			return runner.Options{}, fmt.Errorf("resolve destination directory: %w", err)
		}
		opts.DestDir = dest
	case inPlace:
		opts.DestDir = source
	default:
		opts.DestDir = cfg.DestinationDir(source)
	}
	return opts, nil
}

func printRunSummary(out io.Writer, run *report.Run, reportEnabled bool) {
	if run.Status == report.RunNoGroups {
		fmt.Fprintf(out, "No groups found among %d candidate files (threshold %.2f).\n", run.Candidates, run.Threshold)
		fmt.Fprintln(out, "Try lowering the threshold to merge more loosely related files.")
		return
	}

	rows := make([][]string, 0, len(run.Outcomes))
	for _, o := range run.Outcomes {
		output := "-"
		if o.OutputPath != "" {
			output = filepath.Base(o.OutputPath)
		}
		detail := ""
		switch o.Status {
		case report.GroupDiscarded:
			detail = "fewer than two readable files"
		case report.GroupWriteFailed:
			detail = o.Error
		}
		rows = append(rows, []string{
			o.Anchor,
			strconv.Itoa(len(o.Files)),
			strconv.Itoa(len(o.Merged)),
			strconv.Itoa(o.Pages),
			string(o.Status),
			output,
			detail,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Group", "Files", "Merged", "Pages", "Status", "Output", "Detail"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft, alignLeft, alignLeft},
	))

	fmt.Fprintf(out, "Merged %d of %d groups from %d candidate files.\n",
		run.GroupsMerged(), run.GroupsFormed(), run.Candidates)
	if run.HasErrors() {
		fmt.Fprintf(out, "%d problems encountered.\n", len(run.ErrorLines()))
		if reportEnabled {
			fmt.Fprintf(out, "Details were written to the error report in %s.\n", run.DestDir)
		}
	}
}
