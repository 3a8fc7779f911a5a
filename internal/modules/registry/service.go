package registry

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Service serves the current dataset snapshot. On startup it loads the latest
// stored snapshot, seeding the repository from the fixture dataset when the
// database is empty. The served snapshot only changes through Reload.
type Service struct {
	repo *Repository
	log  zerolog.Logger

	mu      sync.RWMutex
	current *Dataset
}

// NewService creates a new registry service
func NewService(repo *Repository, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With().Str("service", "registry").Logger(),
	}
}

// Load populates the serving snapshot. Seeds from fixtures on first run.
func (s *Service) Load() error {
	d, err := s.repo.Latest()
	if errors.Is(err, sql.ErrNoRows) {
		s.log.Info().Msg("No stored snapshot, seeding from fixture dataset")
		d, err = s.repo.Save(FixtureDataset())
	}
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	s.mu.Lock()
	s.current = d
	s.mu.Unlock()

	s.log.Info().Str("snapshot_id", d.SnapshotID).Msg("Dataset snapshot loaded")
	return nil
}

// Dataset returns the current serving snapshot. Callers must treat the
// returned dataset as read-only.
func (s *Service) Dataset() *Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Ingest validates and stores a new dataset and makes it the serving snapshot.
func (s *Service) Ingest(d Dataset) (*Dataset, error) {
	stored, err := s.repo.Save(d)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = stored
	s.mu.Unlock()

	return stored, nil
}

// SnapshotCount returns the number of stored snapshots
func (s *Service) SnapshotCount() (int, error) {
	return s.repo.Count()
}
