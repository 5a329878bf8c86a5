// Package history persists one record per build in a local SQLite ledger.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Record is a single completed build.
type Record struct {
	BuildID  string
	Started  time.Time
	Duration time.Duration
	Pages    int
	Skipped  int
	Outcome  string
}

// Store is an append-only build history backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database.
// Use ":memory:" for an in-memory database, or a file path for persistence.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close() // Best effort cleanup on initialization error
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}
	return store, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS builds (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		build_id TEXT NOT NULL,
		started INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		pages INTEGER NOT NULL,
		skipped INTEGER NOT NULL,
		outcome TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_builds_started ON builds(started);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append adds a build record to the ledger.
func (s *Store) Append(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO builds (build_id, started, duration_ms, pages, skipped, outcome) VALUES (?, ?, ?, ?, ?, ?)`,
		rec.BuildID, rec.Started.Unix(), rec.Duration.Milliseconds(), rec.Pages, rec.Skipped, rec.Outcome)
	if err != nil {
		return fmt.Errorf("append build record: %w", err)
	}
	return nil
}

// Recent returns up to n most recent build records, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT build_id, started, duration_ms, pages, skipped, outcome FROM builds ORDER BY started DESC, id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query build records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []Record
	for rows.Next() {
		var rec Record
		var started int64
		var durationMS int64
		if err := rows.Scan(&rec.BuildID, &started, &durationMS, &rec.Pages, &rec.Skipped, &rec.Outcome); err != nil {
			return nil, fmt.Errorf("scan build record: %w", err)
		}
		rec.Started = time.Unix(started, 0)
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }
