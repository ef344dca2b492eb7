package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"mesclador/internal/config"
	"mesclador/internal/merging"
	"mesclador/internal/runner"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "plan <directory>",
		Short: "Preview the groups a merge run would form, without writing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			source, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve source directory: %w", err)
			}

			opts := runner.Options{SourceDir: source, Threshold: cfg.Merge.Threshold}
			if cmd.Flags().Changed("threshold") {
				opts.Threshold = threshold
			}

			r := runner.New(merging.NewMerger(ctx.pdfEngine(), nil), nil, nil, nil)
			groups, candidates, err := r.Plan(cmd.Context(), opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(groups) == 0 {
				fmt.Fprintf(out, "No groups found among %d candidate files (threshold %.2f).\n", candidates, opts.Threshold)
				return nil
			}

			rows := make([][]string, 0, len(groups))
			for i, g := range groups {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					g.Anchor(),
					strconv.Itoa(g.Size()),
					strings.Join(g.Files[1:], ", "),
					merging.OutputName(g.Anchor()),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Anchor", "Files", "Companions", "Output"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignLeft},
			))
			fmt.Fprintf(out, "%d groups among %d candidate files (threshold %.2f).\n", len(groups), candidates, opts.Threshold)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0, "Similarity threshold in (0,1] (default from config)")
	return cmd
}
