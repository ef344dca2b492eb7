package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mesclador/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded merge runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHistoryStore(ctx, func(store *history.Store) error {
				runs, err := store.ListRuns(cmd.Context(), limit)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(runs) == 0 {
					fmt.Fprintln(out, "No runs recorded")
					return nil
				}
				rows := make([][]string, 0, len(runs))
				for _, r := range runs {
					rows = append(rows, []string{
						shortID(r.ID),
						r.SourceDir,
						strconv.Itoa(r.Candidates),
						fmt.Sprintf("%d/%d", r.GroupsMerged, r.GroupsFormed),
						r.Status,
						r.StartedAt.Local().Format("2006-01-02 15:04"),
						r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond).String(),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Run", "Source", "Files", "Merged", "Status", "Started", "Duration"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list (0 for all)")
	cmd.AddCommand(newHistoryShowCommand(ctx))
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show the group outcomes of one recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHistoryStore(ctx, func(store *history.Store) error {
				runID, err := resolveRunID(cmd, store, args[0])
				if err != nil {
					return err
				}
				groups, err := store.GroupsForRun(cmd.Context(), runID)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(groups) == 0 {
					fmt.Fprintf(out, "No groups recorded for run %s\n", runID)
					return nil
				}
				rows := make([][]string, 0, len(groups))
				for _, g := range groups {
					skipped := make([]string, 0, len(g.Skipped))
					for _, s := range g.Skipped {
						skipped = append(skipped, fmt.Sprintf("%s (%s)", s.Name, s.Reason))
					}
					rows = append(rows, []string{
						g.Anchor,
						strconv.Itoa(len(g.Files)),
						strconv.Itoa(g.Pages),
						g.Status,
						g.OutputPath,
						strings.Join(skipped, ", "),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Group", "Files", "Pages", "Status", "Output", "Skipped"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
}

func withHistoryStore(ctx *commandContext, fn func(*history.Store) error) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	store, err := history.Open(cfg)
	if err != nil {
		return fmt.Errorf("open run history: %w", err)
	}
	defer store.Close()
	return fn(store)
}

// resolveRunID accepts a full run UUID or an unambiguous prefix of one.
func resolveRunID(cmd *cobra.Command, store *history.Store, arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", fmt.Errorf("run id is required")
	}
	runs, err := store.ListRuns(cmd.Context(), 0)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, r := range runs {
		if r.ID == arg {
			return r.ID, nil
		}
		if strings.HasPrefix(r.ID, arg) {
			matches = append(matches, r.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no recorded run matches %q", arg)
	default:
		return "", fmt.Errorf("run id %q is ambiguous (%d matches)", arg, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
