package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mesclador/internal/report"
)

// errorReportName matches the report filename users of the original tool
// expect to find next to their merged files.
const errorReportName = "relatorio_erros.txt"

// writeErrorReport renders the run's problems into a plain-text file in the
// destination directory, overwriting any previous report. Returns the path
// written.
func writeErrorReport(destDir string, run *report.Run) (string, error) {
	lines := run.ErrorLines()

	var b strings.Builder
	b.WriteString("PDF MERGE ERROR REPORT\n")
	b.WriteString(strings.Repeat("=", 50))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Timestamp: %s\n", run.FinishedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Source directory: %s\n", run.SourceDir)
	fmt.Fprintf(&b, "Candidate files: %d\n", run.Candidates)
	fmt.Fprintf(&b, "Groups formed: %d\n", run.GroupsFormed())
	fmt.Fprintf(&b, "Groups merged: %d\n", run.GroupsMerged())
	fmt.Fprintf(&b, "Problems: %d\n\n", len(lines))
	for i, line := range lines {
		fmt.Fprintf(&b, "%d. %s\n", i+1, line)
	}

	path := filepath.Join(destDir, errorReportName)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write error report: %w", err)
	}
	return path, nil
}
