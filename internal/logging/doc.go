// Package logging assembles the structured slog loggers used across
// mesclador.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and provides attribute helpers plus a no-op logger for tests.
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
