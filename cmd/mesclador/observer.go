package main

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"

	"mesclador/internal/grouping"
	"mesclador/internal/report"
)

// cliObserver drives the interactive progress bar during a merge run. All
// groups are announced before any of them is processed, so the bar total is
// known by the time the first OnGroupProcessed arrives.
type cliObserver struct {
	out      io.Writer
	progress bool
	groups   int
	bar      *progressbar.ProgressBar
}

func newCLIObserver(out io.Writer, progress bool) *cliObserver {
	return &cliObserver{out: out, progress: progress}
}

func (o *cliObserver) OnGroupFormed(grouping.Group) {
	o.groups++
}

func (o *cliObserver) OnFileSkipped(anchor, file, reason string) {
	if o.bar != nil {
		o.bar.Clear()
	}
	fmt.Fprintf(o.out, "Skipping %s (%s)\n", file, reason)
}

func (o *cliObserver) OnGroupProcessed(report.GroupOutcome) {
	if !o.progress {
		return
	}
	if o.bar == nil {
		o.bar = progressbar.NewOptions(o.groups,
			progressbar.OptionSetWriter(o.out),
			progressbar.OptionSetDescription("merging"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}
	o.bar.Add(1)
}

func (o *cliObserver) OnError(error) {}

func (o *cliObserver) finish() {
	if o.bar != nil {
		o.bar.Finish()
	}
}
