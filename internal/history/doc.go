// Package history persists merge run reports in a local SQLite database so
// past runs can be listed and audited after the fact. Recording is best
// effort: a failure to persist never fails the run that produced the report.
package history
