package infer

// #region imports
import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// #endregion

// #region schema

const artifactSchema = `
CREATE TABLE IF NOT EXISTS model_artifacts (
	model_id   TEXT NOT NULL,
	slot       TEXT NOT NULL,
	base_url   TEXT NOT NULL,
	pulled_at  TEXT NOT NULL,
	PRIMARY KEY (model_id, slot)
);
`

// #endregion

// #region registry

// Registry tracks which model artifacts have been pulled onto the device,
// keyed by model identifier. It is read for status and mutated in exactly
// two places: load completion and ForceReload's purge.
type Registry struct {
	db *sql.DB
}

// NewRegistry opens the SQLite registry and runs migrations.
func NewRegistry(dbPath string) (*Registry, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open registry db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(artifactSchema); err != nil {
		return nil, fmt.Errorf("migrate registry: %w", err)
	}
	return &Registry{db: db}, nil
}

// NewRegistryWithDB wraps an existing database handle. Used by callers that
// share one SQLite file between registry and diagnostics.
func NewRegistryWithDB(db *sql.DB) (*Registry, error) {
	if _, err := db.Exec(artifactSchema); err != nil {
		return nil, fmt.Errorf("migrate registry: %w", err)
	}
	return &Registry{db: db}, nil
}

// Close closes the underlying database connection.
func (r *Registry) Close() error {
	return r.db.Close()
}

// #endregion

// #region record

// Record upserts one pulled artifact row.
func (r *Registry) Record(modelID string, slot SlotID, baseURL string) error {
	_, err := r.db.Exec(
		`INSERT INTO model_artifacts (model_id, slot, base_url, pulled_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(model_id, slot) DO UPDATE SET
		   base_url = excluded.base_url, pulled_at = excluded.pulled_at`,
		modelID, string(slot), baseURL, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record artifact %s: %w", modelID, err)
	}
	return nil
}

// #endregion

// #region list

// ListSlot returns the model IDs recorded for a slot.
func (r *Registry) ListSlot(slot SlotID) ([]string, error) {
	rows, err := r.db.Query(
		`SELECT model_id FROM model_artifacts WHERE slot = ? ORDER BY pulled_at DESC`,
		string(slot),
	)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan artifact: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// #endregion

// #region purge

// PurgeSlot removes every artifact row for a slot in one statement, so a
// reload never observes a half-cleared registry.
func (r *Registry) PurgeSlot(slot SlotID) error {
	_, err := r.db.Exec(`DELETE FROM model_artifacts WHERE slot = ?`, string(slot))
	if err != nil {
		return fmt.Errorf("purge slot %s: %w", slot, err)
	}
	return nil
}

// #endregion
