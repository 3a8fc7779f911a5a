package dashboards

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
)

// SummaryCache stores computed dashboard summaries msgpack-encoded in the
// cache database. Entries expire after the configured TTL; a miss just means
// the summary gets recomputed, so cache errors are logged and swallowed.
type SummaryCache struct {
	db  *sql.DB
	ttl time.Duration
	log zerolog.Logger
}

// NewSummaryCache creates a new summary cache
func NewSummaryCache(db *sql.DB, ttl time.Duration, log zerolog.Logger) *SummaryCache {
	return &SummaryCache{
		db:  db,
		ttl: ttl,
		log: log.With().Str("cache", "dashboards").Logger(),
	}
}

// Migrate creates the cache table if it does not exist
func (c *SummaryCache) Migrate() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS dashboard_summaries (
			key TEXT PRIMARY KEY,
			updated_at INTEGER NOT NULL,
			data BLOB NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create dashboard_summaries table: %w", err)
	}
	return nil
}

// Get loads a cached summary into out. Returns false on miss, expiry or
// decode failure.
func (c *SummaryCache) Get(key string, out interface{}) bool {
	var updatedAt int64
	var data []byte
	err := c.db.QueryRow(
		`SELECT updated_at, data FROM dashboard_summaries WHERE key = ?`, key,
	).Scan(&updatedAt, &data)
	if err != nil {
		if err != sql.ErrNoRows {
			c.log.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		}
		return false
	}

	if time.Since(time.Unix(updatedAt, 0)) > c.ttl {
		return false
	}

	if err := msgpack.Unmarshal(data, out); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Cache decode failed")
		return false
	}
	return true
}

// Set stores a summary under the given key, replacing any previous entry.
func (c *SummaryCache) Set(key string, v interface{}) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Cache encode failed")
		return
	}

	_, err = c.db.Exec(
		`INSERT OR REPLACE INTO dashboard_summaries (key, updated_at, data) VALUES (?, ?, ?)`,
		key, time.Now().Unix(), data,
	)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}

// Invalidate drops all cached summaries, forcing recomputation.
func (c *SummaryCache) Invalidate() error {
	if _, err := c.db.Exec(`DELETE FROM dashboard_summaries`); err != nil {
		return fmt.Errorf("failed to invalidate summary cache: %w", err)
	}
	return nil
}
