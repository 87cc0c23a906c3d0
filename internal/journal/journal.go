// Package journal keeps an optional SQLite record of fetch runs.
package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Run statuses.
const (
	StatusCompleted = "completed"
	StatusPartial   = "partial"
)

// Run is one recorded fetch invocation.
type Run struct {
	ID        int64
	Owner     string
	Repo      string
	Pages     int
	Forks     int
	Output    string // path the fork list was written to
	Status    string // StatusCompleted or StatusPartial
	Error     string // what stopped the run, empty when completed
	StartedAt time.Time
	Duration  time.Duration
}

// Store persists fetch runs to SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at the given path.
func NewStore(dbPath string) (*Store, error) {
	// Set pragmas via DSN so every connection in the pool gets them.
	// A PRAGMA run via db.Exec only applies to one pooled connection.
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite supports only one writer at a time. Limit the pool so
	// concurrent calls queue at the Go level instead of fighting over
	// the lock.
	db.SetMaxOpenConns(4)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			owner       TEXT NOT NULL,
			repo        TEXT NOT NULL,
			pages       INTEGER NOT NULL DEFAULT 0,
			forks       INTEGER NOT NULL DEFAULT 0,
			output      TEXT NOT NULL DEFAULT '',
			status      TEXT NOT NULL,
			error       TEXT NOT NULL DEFAULT '',
			started_at  TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0
		);

		CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
	`)
	return err
}

// RecordRun inserts a run and fills in its ID.
func (s *Store) RecordRun(run *Run) error {
	res, err := s.db.Exec(`
		INSERT INTO runs (owner, repo, pages, forks, output, status, error, started_at, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Owner, run.Repo, run.Pages, run.Forks, run.Output,
		run.Status, run.Error,
		run.StartedAt.UTC().Format(time.RFC3339),
		run.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	run.ID, _ = res.LastInsertId()
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]*Run, error) {
	rows, err := s.db.Query(`
		SELECT id, owner, repo, pages, forks, output, status, error, started_at, duration_ms
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func scanRun(rows *sql.Rows) (*Run, error) {
	var run Run
	var startedAt string
	var durationMS int64
	err := rows.Scan(&run.ID, &run.Owner, &run.Repo, &run.Pages, &run.Forks,
		&run.Output, &run.Status, &run.Error, &startedAt, &durationMS,
	)
	if err != nil {
		return nil, err
	}
	run.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
	run.Duration = time.Duration(durationMS) * time.Millisecond
	return &run, nil
}
