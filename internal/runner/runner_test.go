package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"

	"mesclador/internal/grouping"
	"mesclador/internal/history"
	"mesclador/internal/merging"
	"mesclador/internal/report"
	"mesclador/internal/testsupport"
)

// stubEngine reports every source as readable with a fixed page count unless
// listed as encrypted or broken.
type stubEngine struct {
	encrypted map[string]bool
	broken    map[string]error
}

func (s *stubEngine) Inspect(path string) (merging.Info, error) {
	base := filepath.Base(path)
	if err := s.broken[base]; err != nil {
		return merging.Info{}, err
	}
	if s.encrypted[base] {
		return merging.Info{Encrypted: true}, nil
	}
	return merging.Info{Pages: 2}, nil
}

func (s *stubEngine) Merge(inputs []string, output string) error {
	return os.WriteFile(output, []byte("%PDF merged"), 0o644)
}

type recordingObserver struct {
	formed    []string
	skipped   []string
	processed []string
	errs      []error
}

func (o *recordingObserver) OnGroupFormed(g grouping.Group) { o.formed = append(o.formed, g.Anchor()) }
func (o *recordingObserver) OnFileSkipped(anchor, file, reason string) {
	o.skipped = append(o.skipped, file+":"+reason)
}
func (o *recordingObserver) OnGroupProcessed(outcome report.GroupOutcome) {
	o.processed = append(o.processed, outcome.Anchor)
}
func (o *recordingObserver) OnError(err error) { o.errs = append(o.errs, err) }

func newTestRunner(engine merging.Engine, store *history.Store, obs Observer) *Runner {
	return New(merging.NewMerger(engine, nil), store, obs, nil)
}

func defaultOptions(sourceDir string) Options {
	return Options{
		SourceDir:        sourceDir,
		DestDir:          filepath.Join(sourceDir, "Mesclados"),
		Threshold:        0.7,
		WriteErrorReport: true,
	}
}

func TestRunInvalidDirectory(t *testing.T) {
	r := newTestRunner(&stubEngine{}, nil, nil)
	opts := defaultOptions(filepath.Join(t.TempDir(), "missing"))

	_, err := r.Run(context.Background(), opts)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestRunInvalidThreshold(t *testing.T) {
	r := newTestRunner(&stubEngine{}, nil, nil)
	for _, threshold := range []float64{0, -0.2, 1.5} {
		opts := defaultOptions(testsupport.SourceDir(t, "a_100.pdf", "b_100.pdf"))
		opts.Threshold = threshold
		if _, err := r.Run(context.Background(), opts); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("threshold %v: err = %v, want ErrInvalidInput", threshold, err)
		}
	}
}

func TestRunInsufficientFiles(t *testing.T) {
	r := newTestRunner(&stubEngine{}, nil, nil)
	opts := defaultOptions(testsupport.SourceDir(t, "only_100.pdf"))

	_, err := r.Run(context.Background(), opts)
	if !errors.Is(err, ErrInsufficientFiles) {
		t.Errorf("err = %v, want ErrInsufficientFiles", err)
	}

	// Aborting before processing must leave no side effects.
	if _, err := os.Stat(opts.DestDir); !errors.Is(err, os.ErrNotExist) {
		t.Error("destination directory created despite abort")
	}
}

func TestRunMergesGroups(t *testing.T) {
	r := newTestRunner(&stubEngine{}, nil, nil)
	source := testsupport.SourceDir(t, "A_100.pdf", "B_100.pdf", "C_999.pdf")
	opts := defaultOptions(source)

	run, err := r.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if run.Status != report.RunCompleted {
		t.Errorf("status = %q, want completed", run.Status)
	}
	if run.Candidates != 3 {
		t.Errorf("candidates = %d, want 3", run.Candidates)
	}
	if run.GroupsFormed() != 1 || run.GroupsMerged() != 1 {
		t.Fatalf("groups = %d formed / %d merged, want 1/1", run.GroupsFormed(), run.GroupsMerged())
	}
	outcome := run.Outcomes[0]
	if outcome.Pages != 4 {
		t.Errorf("pages = %d, want 4", outcome.Pages)
	}
	if _, err := os.Stat(filepath.Join(opts.DestDir, "Mesclado_100.pdf")); err != nil {
		t.Errorf("merged file missing: %v", err)
	}
	// A clean run leaves no error report.
	if _, err := os.Stat(filepath.Join(opts.DestDir, errorReportName)); !errors.Is(err, os.ErrNotExist) {
		t.Error("unexpected error report for clean run")
	}
}

func TestRunNoGroups(t *testing.T) {
	r := newTestRunner(&stubEngine{}, nil, nil)
	source := testsupport.SourceDir(t, "contrato_111.pdf", "sentenca_999.pdf")
	opts := defaultOptions(source)

	run, err := r.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if run.Status != report.RunNoGroups {
		t.Errorf("status = %q, want no_groups", run.Status)
	}
	if len(run.Outcomes) != 0 {
		t.Errorf("outcomes = %v, want none", run.Outcomes)
	}
}

func TestRunWritesErrorReport(t *testing.T) {
	engine := &stubEngine{encrypted: map[string]bool{"B_100.pdf": true}}
	r := newTestRunner(engine, nil, nil)
	source := testsupport.SourceDir(t, "A_100.pdf", "B_100.pdf", "C_100.pdf")
	opts := defaultOptions(source)

	run, err := r.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if run.GroupsMerged() != 1 {
		t.Fatalf("groups merged = %d, want 1", run.GroupsMerged())
	}

	data, err := os.ReadFile(filepath.Join(opts.DestDir, errorReportName))
	if err != nil {
		t.Fatalf("error report missing: %v", err)
	}
	contents := string(data)
	if !strings.Contains(contents, "B_100.pdf") || !strings.Contains(contents, report.ReasonEncrypted) {
		t.Errorf("report missing skip detail:\n%s", contents)
	}
	if !strings.Contains(contents, source) {
		t.Errorf("report missing source dir:\n%s", contents)
	}
}

func TestRunRecordsHistory(t *testing.T) {
	store, err := history.Open(testsupport.NewConfig(t))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	r := newTestRunner(&stubEngine{}, store, nil)
	opts := defaultOptions(testsupport.SourceDir(t, "A_100.pdf", "B_100.pdf"))

	run, err := r.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	runs, err := store.ListRuns(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != run.ID {
		t.Errorf("history = %v, want the recorded run %s", runs, run.ID)
	}
}

func TestRunObserverOrdering(t *testing.T) {
	engine := &stubEngine{encrypted: map[string]bool{"B_100.pdf": true}}
	obs := &recordingObserver{}
	r := newTestRunner(engine, nil, obs)
	source := testsupport.SourceDir(t, "A_100.pdf", "B_100.pdf", "C_100.pdf", "D_200.pdf", "E_200.pdf")
	opts := defaultOptions(source)

	if _, err := r.Run(context.Background(), opts); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(obs.formed) != 2 {
		t.Fatalf("formed = %v, want 2 groups", obs.formed)
	}
	if len(obs.processed) != 2 {
		t.Fatalf("processed = %v, want 2 groups", obs.processed)
	}
	if len(obs.skipped) != 1 || !strings.HasPrefix(obs.skipped[0], "B_100.pdf:") {
		t.Errorf("skipped = %v, want encrypted B_100.pdf", obs.skipped)
	}
}

func TestRunLockedDestination(t *testing.T) {
	source := testsupport.SourceDir(t, "A_100.pdf", "B_100.pdf")
	opts := defaultOptions(source)
	if err := os.MkdirAll(opts.DestDir, 0o755); err != nil {
		t.Fatalf("mkdir dest: %v", err)
	}
	held := flock.New(filepath.Join(opts.DestDir, lockFileName))
	locked, err := held.TryLock()
	if err != nil || !locked {
		t.Fatalf("pre-acquire lock: locked=%v err=%v", locked, err)
	}
	defer held.Unlock()

	r := newTestRunner(&stubEngine{}, nil, nil)
	if _, err := r.Run(context.Background(), opts); !errors.Is(err, ErrLocked) {
		t.Errorf("err = %v, want ErrLocked", err)
	}
}

func TestPlanDoesNotTouchDestination(t *testing.T) {
	r := newTestRunner(&stubEngine{}, nil, nil)
	source := testsupport.SourceDir(t, "A_100.pdf", "B_100.pdf")
	opts := defaultOptions(source)

	groups, candidates, err := r.Plan(context.Background(), opts)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if candidates != 2 || len(groups) != 1 {
		t.Errorf("plan = %d candidates / %d groups, want 2/1", candidates, len(groups))
	}
	if _, err := os.Stat(opts.DestDir); !errors.Is(err, os.ErrNotExist) {
		t.Error("Plan created the destination directory")
	}
}
