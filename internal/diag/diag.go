// Package diag records synthesis outcomes for diagnostics. Degradation to
// the rule-based path is not an error to the caller; it is a row here.
package diag

// #region imports
import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// #endregion

// #region schema

const synthesisLogSchema = `
CREATE TABLE IF NOT EXISTS synthesis_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	report_id   TEXT NOT NULL,
	via         TEXT NOT NULL,
	reason      TEXT,
	severity    TEXT NOT NULL DEFAULT 'low',
	entry_count INTEGER NOT NULL DEFAULT 0,
	created_at  TEXT NOT NULL
);
`

// #endregion

// #region types

// Entry is one synthesis outcome row.
type Entry struct {
	ReportID   string
	Via        string // "model" | "fallback"
	Reason     string // e.g. "safety_gate", "empty_input", "model_degraded"
	Severity   string // detector severity over the aggregate text
	EntryCount int
	CreatedAt  time.Time
}

// #endregion

// #region recorder

// Recorder persists synthesis outcomes in SQLite.
type Recorder struct {
	db *sql.DB
}

// NewRecorder opens (or reuses) a database and runs migrations.
func NewRecorder(db *sql.DB) (*Recorder, error) {
	if _, err := db.Exec(synthesisLogSchema); err != nil {
		return nil, fmt.Errorf("migrate synthesis log: %w", err)
	}
	return &Recorder{db: db}, nil
}

// Open opens a SQLite file and returns a Recorder over it.
func Open(dbPath string) (*Recorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open diag db: %w", err)
	}
	return NewRecorder(db)
}

// Close closes the underlying database connection.
func (r *Recorder) Close() error {
	return r.db.Close()
}

// Record writes one synthesis outcome row.
func (r *Recorder) Record(e Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.Exec(
		`INSERT INTO synthesis_log (report_id, via, reason, severity, entry_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ReportID,
		e.Via,
		nullIfEmpty(e.Reason),
		e.Severity,
		e.EntryCount,
		e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record synthesis outcome: %w", err)
	}
	return nil
}

// Recent returns the latest rows, newest first.
func (r *Recorder) Recent(limit int) ([]Entry, error) {
	rows, err := r.db.Query(
		`SELECT report_id, via, reason, severity, entry_count, created_at
		 FROM synthesis_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list synthesis log: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var reason sql.NullString
		var createdStr string
		if err := rows.Scan(&e.ReportID, &e.Via, &reason, &e.Severity, &e.EntryCount, &createdStr); err != nil {
			return nil, fmt.Errorf("scan synthesis row: %w", err)
		}
		if reason.Valid {
			e.Reason = reason.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion

// #region helpers

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion
