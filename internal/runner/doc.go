// Package runner orchestrates a full merge run: it validates the input
// directory, discovers candidates, groups them, hands each group to the merge
// executor, and aggregates everything into a report.Run.
//
// All per-file and per-group failures are recovered and reported; only input
// validation and unexpected failures abort a run. Runs over the same
// destination are serialized with a lock file so collision probing cannot
// race.
package runner
