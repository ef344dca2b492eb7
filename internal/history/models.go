package history

import "time"

// RunSummary is one row of the runs table, as listed by the CLI.
type RunSummary struct {
	ID           string
	SourceDir    string
	DestDir      string
	Threshold    float64
	Candidates   int
	GroupsFormed int
	GroupsMerged int
	Status       string
	StartedAt    time.Time
	FinishedAt   time.Time
}

// GroupRecord is one persisted group outcome.
type GroupRecord struct {
	RunID      string
	Anchor     string
	Files      []string
	Merged     []string
	Skipped    []SkippedRecord
	OutputPath string
	Pages      int
	Status     string
	Error      string
}

// SkippedRecord mirrors report.SkippedFile for JSON persistence.
type SkippedRecord struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}
