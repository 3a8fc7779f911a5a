package registry

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Repository persists immutable dataset snapshots in the registry database.
// Each snapshot is stored as a single JSON document; the latest row is the
// serving snapshot.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new snapshot repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repository", "registry").Logger(),
	}
}

// Migrate creates the snapshot table if it does not exist
func (r *Repository) Migrate() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			id TEXT PRIMARY KEY,
			created_at INTEGER NOT NULL,
			data TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create snapshots table: %w", err)
	}
	return nil
}

// Save validates and stores a dataset as a new snapshot, assigning it a
// fresh snapshot id. The stored dataset is returned with the id filled in.
func (r *Repository) Save(d Dataset) (*Dataset, error) {
	if err := Validate(&d); err != nil {
		return nil, fmt.Errorf("dataset rejected: %w", err)
	}

	d.SnapshotID = uuid.New().String()

	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dataset: %w", err)
	}

	_, err = r.db.Exec(
		`INSERT INTO snapshots (id, created_at, data) VALUES (?, ?, ?)`,
		d.SnapshotID, time.Now().Unix(), string(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to store snapshot: %w", err)
	}

	r.log.Info().
		Str("snapshot_id", d.SnapshotID).
		Int("disputes", len(d.Disputes)).
		Int("transfers", len(d.Transfers)).
		Int("mortgages", len(d.Mortgages)).
		Msg("Stored dataset snapshot")

	return &d, nil
}

// Latest loads the most recently stored snapshot. Returns sql.ErrNoRows
// when no snapshot has been stored yet.
func (r *Repository) Latest() (*Dataset, error) {
	var data string
	err := r.db.QueryRow(
		`SELECT data FROM snapshots ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&data)
	if err != nil {
		return nil, err
	}

	var d Dataset
	if err := json.Unmarshal([]byte(data), &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &d, nil
}

// Get loads a snapshot by id
func (r *Repository) Get(id string) (*Dataset, error) {
	var data string
	err := r.db.QueryRow(`SELECT data FROM snapshots WHERE id = ?`, id).Scan(&data)
	if err != nil {
		return nil, err
	}

	var d Dataset
	if err := json.Unmarshal([]byte(data), &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &d, nil
}

// Count returns the number of stored snapshots, used by the health check
func (r *Repository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count snapshots: %w", err)
	}
	return n, nil
}
