package runner

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying why a run aborted. Per-file and per-group
// problems never surface here; they live in the run report.
var (
	// ErrInvalidInput marks a missing or unusable source directory or a
	// threshold outside (0,1].
	ErrInvalidInput = errors.New("invalid input")
	// ErrInsufficientFiles marks a source directory with fewer than two PDF
	// candidates.
	ErrInsufficientFiles = errors.New("insufficient files")
	// ErrLocked marks a destination already being processed by another run.
	ErrLocked = errors.New("destination locked")
	// ErrCritical marks any unexpected failure outside the taxonomy above.
	ErrCritical = errors.New("critical failure")
)

// wrap tags err with a classification marker and operation context.
func wrap(marker error, operation string, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, operation, err)
	}
	return fmt.Errorf("%w: %s", marker, operation)
}
