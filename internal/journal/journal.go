// Package journal keeps a local history of ingestion runs in sqlite. The
// sheet holds the listings; the journal holds what each run did, so a failed
// morning is visible even after the process restarts.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"jobsheet-engine/internal/pipeline"
)

type Journal struct {
	db *sql.DB
}

// Entry is one recorded run.
type Entry struct {
	ID               int64
	StartedAt        time.Time
	FinishedAt       time.Time
	Accepted         int
	Duplicates       int
	ExtractionErrors int
	PortalErrors     int
	Error            string
}

func Open(path string) (*Journal, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite wants a single writer
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Journal{db: db}, nil
}

func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	return j.db.Close()
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  started_at TEXT NOT NULL,
  finished_at TEXT NOT NULL,
  accepted INTEGER NOT NULL,
  duplicates INTEGER NOT NULL,
  extraction_errors INTEGER NOT NULL,
  portal_errors INTEGER NOT NULL,
  error TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at DESC);
`)
	return err
}

// Record writes one row per run, successful or not.
func (j *Journal) Record(ctx context.Context, started, finished time.Time, rep pipeline.Report, runErr error) error {
	errText := ""
	if runErr != nil {
		errText = runErr.Error()
	}
	_, err := j.db.ExecContext(ctx, `
INSERT INTO runs(started_at, finished_at, accepted, duplicates, extraction_errors, portal_errors, error)
VALUES(?,?,?,?,?,?,?);`,
		started.UTC().Format(time.RFC3339),
		finished.UTC().Format(time.RFC3339),
		rep.Accepted,
		rep.Duplicates,
		rep.ExtractionErrors,
		len(rep.PortalErrors),
		errText,
	)
	return err
}

// Recent returns the last n runs, newest first.
func (j *Journal) Recent(ctx context.Context, n int) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx, `
SELECT id, started_at, finished_at, accepted, duplicates, extraction_errors, portal_errors, error
FROM runs
ORDER BY started_at DESC, id DESC
LIMIT ?;`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var started, finished string
		if err := rows.Scan(&e.ID, &started, &finished, &e.Accepted, &e.Duplicates, &e.ExtractionErrors, &e.PortalErrors, &e.Error); err != nil {
			return nil, err
		}
		e.StartedAt, _ = time.Parse(time.RFC3339, started)
		e.FinishedAt, _ = time.Parse(time.RFC3339, finished)
		out = append(out, e)
	}
	return out, rows.Err()
}
