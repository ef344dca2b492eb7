package history

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"mesclador/internal/config"
	"mesclador/internal/report"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; old databases must be deleted.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Store manages run-history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database under the configured
// log directory.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(cfg.Paths.LogDir, "history.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		return nil
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

// RecordRun persists a run report and all of its group outcomes in one
// transaction.
func (s *Store) RecordRun(ctx context.Context, run *report.Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (
            id, source_dir, dest_dir, threshold, candidates,
            groups_formed, groups_merged, status, started_at, finished_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.SourceDir,
		run.DestDir,
		run.Threshold,
		run.Candidates,
		run.GroupsFormed(),
		run.GroupsMerged(),
		string(run.Status),
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, outcome := range run.Outcomes {
		files, err := json.Marshal(outcome.Files)
		if err != nil {
			return fmt.Errorf("marshal files: %w", err)
		}
		merged, err := json.Marshal(outcome.Merged)
		if err != nil {
			return fmt.Errorf("marshal merged: %w", err)
		}
		skipped := make([]SkippedRecord, 0, len(outcome.Skipped))
		for _, sk := range outcome.Skipped {
			skipped = append(skipped, SkippedRecord{Name: sk.Name, Reason: sk.Reason})
		}
		skippedJSON, err := json.Marshal(skipped)
		if err != nil {
			return fmt.Errorf("marshal skipped: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO run_groups (
                run_id, anchor, files, merged, skipped,
                output_path, pages, status, error
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID,
			outcome.Anchor,
			string(files),
			string(merged),
			string(skippedJSON),
			outcome.OutputPath,
			outcome.Pages,
			string(outcome.Status),
			outcome.Error,
		)
		if err != nil {
			return fmt.Errorf("insert group: %w", err)
		}
	}

	return tx.Commit()
}

// ListRuns returns the most recent runs, newest first. limit <= 0 means no
// limit.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	query := `SELECT id, source_dir, dest_dir, threshold, candidates,
            groups_formed, groups_merged, status, started_at, finished_at
        FROM runs ORDER BY started_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		var started, finished string
		if err := rows.Scan(&r.ID, &r.SourceDir, &r.DestDir, &r.Threshold, &r.Candidates,
			&r.GroupsFormed, &r.GroupsMerged, &r.Status, &started, &finished); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if r.StartedAt, err = parseTimeString(started); err != nil {
			return nil, err
		}
		if r.FinishedAt, err = parseTimeString(finished); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GroupsForRun returns the persisted outcomes for one run, in insert order.
func (s *Store) GroupsForRun(ctx context.Context, runID string) ([]GroupRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, anchor, files, merged, skipped, output_path, pages, status, error
         FROM run_groups WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query groups: %w", err)
	}
	defer rows.Close()

	var groups []GroupRecord
	for rows.Next() {
		var g GroupRecord
		var files, merged, skipped string
		if err := rows.Scan(&g.RunID, &g.Anchor, &files, &merged, &skipped,
			&g.OutputPath, &g.Pages, &g.Status, &g.Error); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		if err := json.Unmarshal([]byte(files), &g.Files); err != nil {
			return nil, fmt.Errorf("decode files: %w", err)
		}
		if err := json.Unmarshal([]byte(merged), &g.Merged); err != nil {
			return nil, fmt.Errorf("decode merged: %w", err)
		}
		if err := json.Unmarshal([]byte(skipped), &g.Skipped); err != nil {
			return nil, fmt.Errorf("decode skipped: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func parseTimeString(value string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}
	return ts, nil
}
