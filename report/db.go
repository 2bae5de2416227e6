package report

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	target TEXT,
	started_at TIMESTAMP,
	finished_at TIMESTAMP,
	total INTEGER DEFAULT 0,
	passed INTEGER DEFAULT 0,
	failed INTEGER DEFAULT 0
);

CREATE TABLE IF NOT EXISTS results (
	run_id TEXT,
	case_id TEXT,
	title TEXT,
	grp TEXT,
	category TEXT,
	quality TEXT,
	verdict TEXT,
	class TEXT,
	input TEXT,
	expected TEXT,
	actual TEXT,
	error TEXT,
	elapsed_ms INTEGER,
	PRIMARY KEY (run_id, case_id)
);

CREATE TABLE IF NOT EXISTS attachments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT,
	case_id TEXT,
	label TEXT,
	body TEXT,
	content_type TEXT
);

CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at DESC);
CREATE INDEX IF NOT EXISTS idx_results_case ON results(case_id);
CREATE INDEX IF NOT EXISTS idx_attachments_run ON attachments(run_id, case_id);
`

// DB is the run history database.
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates the history database at path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %s: %w", p, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// StartRun registers a run and returns a sink recording into it.
func (d *DB) StartRun(ctx context.Context, runID, target string, started time.Time) (*DBSink, error) {
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO runs (id, target, started_at) VALUES (?, ?, ?)`,
		runID, target, started.UTC())
	if err != nil {
		return nil, fmt.Errorf("inserting run: %w", err)
	}
	return &DBSink{db: d.db, runID: runID}, nil
}

// Run summarizes one past run.
type Run struct {
	ID         string
	Target     string
	StartedAt  time.Time
	FinishedAt sql.NullTime
	Total      int
	Passed     int
	Failed     int
}

// Runs returns the most recent runs, newest first.
func (d *DB) Runs(ctx context.Context, limit int) ([]Run, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, target, started_at, finished_at, total, passed, failed
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Target, &r.StartedAt, &r.FinishedAt, &r.Total, &r.Passed, &r.Failed); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Results returns the results of a run in case id order.
func (d *DB) Results(ctx context.Context, runID string) ([]Result, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT case_id, title, grp, category, quality, verdict, class, input, expected, actual, error, elapsed_ms
		 FROM results WHERE run_id = ? ORDER BY case_id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var ms int64
		if err := rows.Scan(&r.CaseID, &r.Title, &r.Group, &r.Category, &r.Quality, &r.Verdict, &r.Class,
			&r.Input, &r.Expected, &r.Actual, &r.Error, &ms); err != nil {
			return nil, err
		}
		r.Elapsed = time.Duration(ms) * time.Millisecond
		results = append(results, r)
	}
	return results, rows.Err()
}

// Attachments returns the diagnostics stored for one case of a run.
func (d *DB) Attachments(ctx context.Context, runID, caseID string) ([]Attachment, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT label, body, content_type FROM attachments WHERE run_id = ? AND case_id = ? ORDER BY id`,
		runID, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Attachment
	for rows.Next() {
		var a Attachment
		if err := rows.Scan(&a.Label, &a.Body, &a.ContentType); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// DBSink records one run into the history database.
type DBSink struct {
	db    *sql.DB
	runID string
}

func (s *DBSink) Attach(ctx context.Context, caseID string, a Attachment) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attachments (run_id, case_id, label, body, content_type) VALUES (?, ?, ?, ?, ?)`,
		s.runID, caseID, a.Label, a.Body, a.ContentType)
	if err != nil {
		return fmt.Errorf("inserting attachment: %w", err)
	}
	return nil
}

func (s *DBSink) Record(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO results
		 (run_id, case_id, title, grp, category, quality, verdict, class, input, expected, actual, error, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.runID, r.CaseID, r.Title, r.Group, r.Category, r.Quality, r.Verdict, r.Class,
		r.Input, r.Expected, r.Actual, r.Error, r.Elapsed.Milliseconds())
	if err != nil {
		return fmt.Errorf("inserting result: %w", err)
	}
	return nil
}

// Finish stores the run totals.
func (s *DBSink) Finish(ctx context.Context, finished time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE runs SET
			finished_at = ?,
			total = (SELECT COUNT(*) FROM results WHERE run_id = ?),
			passed = (SELECT COUNT(*) FROM results WHERE run_id = ? AND verdict = ?),
			failed = (SELECT COUNT(*) FROM results WHERE run_id = ? AND verdict != ?)
		WHERE id = ?`,
		finished.UTC(), s.runID, s.runID, VerdictPass, s.runID, VerdictPass, s.runID)
	if err != nil {
		return fmt.Errorf("finishing run: %w", err)
	}
	return nil
}
