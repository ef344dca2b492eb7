package merging

import (
	"context"
	"log/slog"
	"path/filepath"
	"slices"

	"mesclador/internal/fileutil"
	"mesclador/internal/grouping"
	"mesclador/internal/logging"
	"mesclador/internal/report"
)

// Merger executes group merges against a destination directory.
type Merger struct {
	engine Engine
	logger *slog.Logger
}

// NewMerger constructs a merger. A nil engine selects the pdfcpu default; a
// nil logger discards output.
func NewMerger(engine Engine, logger *slog.Logger) *Merger {
	if engine == nil {
		engine = NewEngine()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Merger{engine: engine, logger: logger.With(logging.String("component", "merger"))}
}

// MergeGroup processes one group: every member is inspected in group order,
// encrypted or unreadable members are skipped with a reason, and the
// survivors are concatenated into a single output document. Groups with fewer
// than two readable members are discarded without writing anything. Per-file
// failures never abort the group.
func (m *Merger) MergeGroup(ctx context.Context, group grouping.Group, sourceDir, destDir string) report.GroupOutcome {
	outcome := report.GroupOutcome{
		Anchor: group.Anchor(),
		Files:  slices.Clone(group.Files),
	}

	var inputs []string
	for _, name := range group.Files {
		if ctx.Err() != nil {
			break
		}
		path := filepath.Join(sourceDir, name)
		info, err := m.engine.Inspect(path)
		switch {
		case err != nil:
			outcome.Skipped = append(outcome.Skipped, report.SkippedFile{Name: name, Reason: err.Error()})
			m.logger.Error("unreadable source skipped",
				logging.String("file", name),
				logging.Error(err))
		case info.Encrypted:
			outcome.Skipped = append(outcome.Skipped, report.SkippedFile{Name: name, Reason: report.ReasonEncrypted})
			m.logger.Warn("encrypted source skipped", logging.String("file", name))
		default:
			inputs = append(inputs, path)
			outcome.Merged = append(outcome.Merged, name)
			outcome.Pages += info.Pages
			m.logger.Info("source queued",
				logging.String("file", name),
				logging.Int("pages", info.Pages))
		}
	}

	if len(inputs) < 2 {
		outcome.Status = report.GroupDiscarded
		m.logger.Warn("group discarded, fewer than 2 readable files",
			logging.String("anchor", outcome.Anchor),
			logging.Int("readable", len(inputs)))
		return outcome
	}

	outputPath, err := fileutil.NextAvailablePath(filepath.Join(destDir, OutputName(group.Anchor())))
	if err != nil {
		outcome.Status = report.GroupWriteFailed
		outcome.Error = err.Error()
		m.logger.Error("output name resolution failed",
			logging.String("anchor", outcome.Anchor),
			logging.Error(err))
		return outcome
	}

	if err := m.engine.Merge(inputs, outputPath); err != nil {
		outcome.Status = report.GroupWriteFailed
		outcome.Error = err.Error()
		m.logger.Error("merge write failed",
			logging.String("output", outputPath),
			logging.Error(err))
		return outcome
	}

	outcome.Status = report.GroupMerged
	outcome.OutputPath = outputPath
	m.logger.Info("group merged",
		logging.String("output", filepath.Base(outputPath)),
		logging.Int("files", len(inputs)),
		logging.Int("pages", outcome.Pages))
	return outcome
}
