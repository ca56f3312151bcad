// Package postgres persists the store snapshot in Postgres. The whole state
// is still one document, kept in a single-row jsonb table, so the store's
// operation contracts are identical to the JSON-file backend.
package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"imagetagger/internal/domain"
)

// snapshotRowID is the fixed primary key of the single snapshot row.
const snapshotRowID = 1

type snapshotRepository struct {
	DB *sql.DB
}

// Open connects to the Postgres instance at url and verifies the connection.
func Open(url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// NewSnapshotRepository returns a domain.SnapshotRepository backed by the
// given database.
func NewSnapshotRepository(db *sql.DB) domain.SnapshotRepository {
	return &snapshotRepository{DB: db}
}

// EnsureSchema creates the snapshots table if it does not exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		id integer PRIMARY KEY,
		doc jsonb NOT NULL,
		updated_at timestamptz NOT NULL DEFAULT now()
	)`)
	if err != nil {
		return fmt.Errorf("create snapshots table: %w", err)
	}
	return nil
}

// Save upserts the serialized snapshot into the single snapshot row.
func (r *snapshotRepository) Save(snap *domain.Snapshot) error {
	doc, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = r.DB.Exec(
		`INSERT INTO snapshots (id, doc, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		snapshotRowID, doc,
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

// Load reads and parses the snapshot row. An absent row returns (nil, nil).
func (r *snapshotRepository) Load() (*domain.Snapshot, error) {
	var doc []byte
	err := r.DB.QueryRow(`SELECT doc FROM snapshots WHERE id = $1`, snapshotRowID).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select snapshot: %w", err)
	}
	snap := domain.NewSnapshot()
	if err := json.Unmarshal(doc, snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return snap, nil
}
