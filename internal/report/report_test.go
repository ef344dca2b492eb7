package report

import (
	"strings"
	"testing"
)

func TestRunCounters(t *testing.T) {
	run := &Run{
		Outcomes: []GroupOutcome{
			{Anchor: "a.pdf", Status: GroupMerged},
			{Anchor: "b.pdf", Status: GroupDiscarded},
			{Anchor: "c.pdf", Status: GroupMerged},
			{Anchor: "d.pdf", Status: GroupWriteFailed, Error: "disk full"},
		},
	}

	if got := run.GroupsFormed(); got != 4 {
		t.Errorf("GroupsFormed = %d, want 4", got)
	}
	if got := run.GroupsMerged(); got != 2 {
		t.Errorf("GroupsMerged = %d, want 2", got)
	}
}

func TestErrorLines(t *testing.T) {
	run := &Run{
		Outcomes: []GroupOutcome{
			{
				Anchor: "a.pdf",
				Status: GroupMerged,
				Skipped: []SkippedFile{
					{Name: "locked.pdf", Reason: ReasonEncrypted},
				},
			},
			{Anchor: "b.pdf", Status: GroupDiscarded},
			{Anchor: "c.pdf", Status: GroupWriteFailed, Error: "permission denied"},
		},
	}

	lines := run.ErrorLines()
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "locked.pdf") || !strings.Contains(lines[0], "encrypted") {
		t.Errorf("skip line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "discarded") {
		t.Errorf("discard line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "permission denied") {
		t.Errorf("write failure line = %q", lines[2])
	}
	if !run.HasErrors() {
		t.Error("HasErrors = false, want true")
	}
}

func TestCleanRunHasNoErrors(t *testing.T) {
	run := &Run{
		Outcomes: []GroupOutcome{
			{Anchor: "a.pdf", Status: GroupMerged},
		},
	}
	if run.HasErrors() {
		t.Error("HasErrors = true for clean run")
	}
}
