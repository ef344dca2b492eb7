package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"mesclador/internal/grouping"
	"mesclador/internal/history"
	"mesclador/internal/logging"
	"mesclador/internal/merging"
	"mesclador/internal/report"
	"mesclador/internal/scan"
	"mesclador/internal/similarity"
	"mesclador/internal/textutil"
)

const lockFileName = ".mesclador.lock"

// Options describes one merge run.
type Options struct {
	SourceDir string
	DestDir   string
	Threshold float64
	// WriteErrorReport leaves an error report file in the destination
	// directory when the run had problems.
	WriteErrorReport bool
}

// Runner coordinates discovery, grouping, and merging.
type Runner struct {
	merger   *merging.Merger
	store    *history.Store
	observer Observer
	logger   *slog.Logger
}

// New constructs a runner. store may be nil to disable history recording;
// observer may be nil for no callbacks; a nil logger discards output.
func New(merger *merging.Merger, store *history.Store, observer Observer, logger *slog.Logger) *Runner {
	if observer == nil {
		observer = NopObserver{}
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		merger:   merger,
		store:    store,
		observer: observer,
		logger:   logger.With(logging.String("component", "runner")),
	}
}

// Plan validates the source directory and computes groups without touching
// any PDF or the destination. Returns the groups and the candidate count.
func (r *Runner) Plan(ctx context.Context, opts Options) ([]grouping.Group, int, error) {
	names, err := r.discover(opts)
	if err != nil {
		return nil, 0, err
	}
	groups := r.group(names, opts.Threshold)
	return groups, len(names), nil
}

// Run executes a full merge run and returns its report. The returned error is
// non-nil only when the run aborted before producing outcomes; per-group
// problems are carried inside the report.
func (r *Runner) Run(ctx context.Context, opts Options) (*report.Run, error) {
	started := time.Now()

	names, err := r.discover(opts)
	if err != nil {
		r.observer.OnError(err)
		return nil, err
	}
	r.logger.Info("run starting",
		logging.String("source", opts.SourceDir),
		logging.Int("candidates", len(names)),
		logging.Float64("threshold", opts.Threshold))

	if err := os.MkdirAll(opts.DestDir, 0o755); err != nil {
		wrapped := wrap(ErrCritical, "create destination directory", err)
		r.observer.OnError(wrapped)
		return nil, wrapped
	}

	lock := flock.New(filepath.Join(opts.DestDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		wrapped := wrap(ErrCritical, "acquire destination lock", err)
		r.observer.OnError(wrapped)
		return nil, wrapped
	}
	if !locked {
		wrapped := wrap(ErrLocked, fmt.Sprintf("destination %s is being processed by another run", opts.DestDir), nil)
		r.observer.OnError(wrapped)
		return nil, wrapped
	}
	defer func() { _ = lock.Unlock() }()

	groups := r.group(names, opts.Threshold)
	for _, g := range groups {
		r.logger.Info("group formed",
			logging.String("anchor", g.Anchor()),
			logging.Int("members", g.Size()),
			logging.Any("reference_tokens", textutil.ExtractNumericTokens(g.Anchor())))
		r.observer.OnGroupFormed(g)
	}

	run := &report.Run{
		ID:         uuid.NewString(),
		SourceDir:  opts.SourceDir,
		DestDir:    opts.DestDir,
		Threshold:  opts.Threshold,
		Candidates: len(names),
		StartedAt:  started,
	}

	for _, g := range groups {
		outcome := r.merger.MergeGroup(ctx, g, opts.SourceDir, opts.DestDir)
		for _, skipped := range outcome.Skipped {
			r.observer.OnFileSkipped(outcome.Anchor, skipped.Name, skipped.Reason)
		}
		if outcome.Status == report.GroupWriteFailed {
			r.observer.OnError(fmt.Errorf("group %s: %s", outcome.Anchor, outcome.Error))
		}
		run.Outcomes = append(run.Outcomes, outcome)
		r.observer.OnGroupProcessed(outcome)
	}

	run.FinishedAt = time.Now()
	if len(groups) == 0 {
		run.Status = report.RunNoGroups
		r.logger.Info("no groups reached the similarity threshold",
			logging.Float64("threshold", opts.Threshold))
	} else {
		run.Status = report.RunCompleted
		r.logger.Info("run complete",
			logging.Int("groups_formed", run.GroupsFormed()),
			logging.Int("groups_merged", run.GroupsMerged()))
	}

	if opts.WriteErrorReport && run.HasErrors() {
		if path, err := writeErrorReport(opts.DestDir, run); err != nil {
			r.logger.Warn("error report not written", logging.Error(err))
			r.observer.OnError(err)
		} else {
			r.logger.Info("error report written", logging.String("path", path))
		}
	}

	if r.store != nil {
		if err := r.store.RecordRun(ctx, run); err != nil {
			r.logger.Warn("history not recorded", logging.Error(err))
		}
	}

	return run, nil
}

// discover validates the run options and lists merge candidates.
func (r *Runner) discover(opts Options) ([]string, error) {
	if opts.Threshold <= 0 || opts.Threshold > 1 {
		return nil, wrap(ErrInvalidInput, fmt.Sprintf("threshold %v outside (0,1]", opts.Threshold), nil)
	}
	info, err := os.Stat(opts.SourceDir)
	if err != nil || !info.IsDir() {
		return nil, wrap(ErrInvalidInput, fmt.Sprintf("%s is not a readable directory", opts.SourceDir), nil)
	}

	names, err := scan.ListPDFs(opts.SourceDir)
	if err != nil {
		return nil, wrap(ErrCritical, "list candidates", err)
	}
	if len(names) < 2 {
		return nil, wrap(ErrInsufficientFiles,
			fmt.Sprintf("found %d PDF file(s) in %s, need at least 2", len(names), opts.SourceDir), nil)
	}
	return names, nil
}

// group runs the engine with per-comparison debug logging.
func (r *Runner) group(names []string, threshold float64) []grouping.Group {
	return grouping.GroupFilesObserved(names, threshold,
		func(anchor, candidate string, result similarity.Result, accepted bool) {
			r.logger.Debug("compared",
				logging.String("anchor", anchor),
				logging.String("candidate", candidate),
				logging.Float64("final", result.Final),
				logging.Float64("text", result.Text),
				logging.String("common_tokens", strings.Join(result.CommonTokens, ",")),
				logging.Bool("accepted", accepted))
		})
}
