package runner

import (
	"mesclador/internal/grouping"
	"mesclador/internal/report"
)

// Observer receives progress callbacks during a run. Implementations must be
// cheap; calls happen inline with processing. OnGroupFormed fires for every
// group, in anchor order, before any merging begins; OnGroupProcessed follows
// each group's merge attempt.
type Observer interface {
	OnGroupFormed(group grouping.Group)
	OnFileSkipped(anchor, file, reason string)
	OnGroupProcessed(outcome report.GroupOutcome)
	OnError(err error)
}

// NopObserver ignores all events.
type NopObserver struct{}

func (NopObserver) OnGroupFormed(grouping.Group)         {}
func (NopObserver) OnFileSkipped(string, string, string) {}
func (NopObserver) OnGroupProcessed(report.GroupOutcome) {}
func (NopObserver) OnError(error)                        {}
