// Package report defines the outcome model a merge run produces: per-group
// results plus run-level aggregates, consumed by the CLI renderer, the error
// report writer, and the history store.
package report

import (
	"fmt"
	"time"
)

// GroupStatus classifies how a group ended up.
type GroupStatus string

const (
	// GroupMerged means an output file was written.
	GroupMerged GroupStatus = "merged"
	// GroupDiscarded means fewer than two readable files survived, so no
	// output was produced.
	GroupDiscarded GroupStatus = "discarded"
	// GroupWriteFailed means the merged document could not be written.
	GroupWriteFailed GroupStatus = "write_failed"
)

// RunStatus classifies a whole run.
type RunStatus string

const (
	RunCompleted RunStatus = "completed"
	RunNoGroups  RunStatus = "no_groups"
	RunFailed    RunStatus = "failed"
)

// SkippedFile records a group member excluded from its merge.
type SkippedFile struct {
	Name   string
	Reason string
}

// ReasonEncrypted is the skip reason recorded for encrypted sources.
const ReasonEncrypted = "encrypted"

// GroupOutcome describes the result of processing one group.
type GroupOutcome struct {
	Anchor  string
	Files   []string
	Merged  []string
	Skipped []SkippedFile
	// OutputPath is empty when the group was discarded or the write failed.
	OutputPath string
	// Pages is the total page count of the merged sources.
	Pages  int
	Status GroupStatus
	// Error holds the write failure message when Status is GroupWriteFailed.
	Error string
}

// Run aggregates everything a single invocation produced.
type Run struct {
	ID         string
	SourceDir  string
	DestDir    string
	Threshold  float64
	Candidates int
	Outcomes   []GroupOutcome
	Status     RunStatus
	StartedAt  time.Time
	FinishedAt time.Time
}

// GroupsFormed counts every group the engine produced, merged or not. This
// matches the reference accounting: discarded groups still count as formed.
func (r *Run) GroupsFormed() int {
	return len(r.Outcomes)
}

// GroupsMerged counts groups that produced an output file.
func (r *Run) GroupsMerged() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == GroupMerged {
			n++
		}
	}
	return n
}

// HasErrors reports whether any group had skipped files, was discarded, or
// failed to write.
func (r *Run) HasErrors() bool {
	return len(r.ErrorLines()) > 0
}

// ErrorLines renders one human-readable line per problem encountered during
// the run, in processing order.
func (r *Run) ErrorLines() []string {
	var lines []string
	for _, o := range r.Outcomes {
		for _, s := range o.Skipped {
			lines = append(lines, fmt.Sprintf("group %s: skipped %s: %s", o.Anchor, s.Name, s.Reason))
		}
		switch o.Status {
		case GroupDiscarded:
			lines = append(lines, fmt.Sprintf("group %s: discarded, fewer than 2 readable files", o.Anchor))
		case GroupWriteFailed:
			lines = append(lines, fmt.Sprintf("group %s: write failed: %s", o.Anchor, o.Error))
		}
	}
	return lines
}
