package registry

import (
	"database/sql"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupTestRepo(t *testing.T) *Repository {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewRepository(db, zerolog.Nop())
	require.NoError(t, repo.Migrate())
	return repo
}

func TestRepository_SaveAndLatest(t *testing.T) {
	repo := setupTestRepo(t)

	stored, err := repo.Save(FixtureDataset())
	require.NoError(t, err)
	assert.NotEmpty(t, stored.SnapshotID)

	loaded, err := repo.Latest()
	require.NoError(t, err)
	assert.Equal(t, stored.SnapshotID, loaded.SnapshotID)
	assert.Len(t, loaded.Disputes, len(stored.Disputes))
	assert.Len(t, loaded.Regions, len(stored.Regions))
	assert.Equal(t, stored.Outcomes, loaded.Outcomes)
}

func TestRepository_SaveRejectsInvalidDataset(t *testing.T) {
	repo := setupTestRepo(t)

	ds := FixtureDataset()
	ds.Disputes[0].Region = "atlantis"

	_, err := repo.Save(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset rejected")

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestRepository_LatestWithoutSnapshots(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.Latest()
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestRepository_Get(t *testing.T) {
	repo := setupTestRepo(t)

	stored, err := repo.Save(FixtureDataset())
	require.NoError(t, err)

	loaded, err := repo.Get(stored.SnapshotID)
	require.NoError(t, err)
	assert.Equal(t, stored.SnapshotID, loaded.SnapshotID)

	_, err = repo.Get("missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestService_LoadSeedsFromFixtures(t *testing.T) {
	repo := setupTestRepo(t)
	svc := NewService(repo, zerolog.Nop())

	require.NoError(t, svc.Load())

	ds := svc.Dataset()
	require.NotNil(t, ds)
	assert.NotEmpty(t, ds.SnapshotID)
	assert.NotEmpty(t, ds.Disputes)

	n, err := svc.SnapshotCount()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// A second load serves the stored snapshot instead of reseeding
	svc2 := NewService(repo, zerolog.Nop())
	require.NoError(t, svc2.Load())
	assert.Equal(t, ds.SnapshotID, svc2.Dataset().SnapshotID)

	n, err = svc2.SnapshotCount()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestService_IngestReplacesServingSnapshot(t *testing.T) {
	repo := setupTestRepo(t)
	svc := NewService(repo, zerolog.Nop())
	require.NoError(t, svc.Load())
	first := svc.Dataset().SnapshotID

	stored, err := svc.Ingest(FixtureDataset())
	require.NoError(t, err)
	assert.NotEqual(t, first, stored.SnapshotID)
	assert.Equal(t, stored.SnapshotID, svc.Dataset().SnapshotID)
}

func TestDataset_RegionByID(t *testing.T) {
	ds := FixtureDataset()

	belgrade := ds.RegionByID("belgrade")
	require.NotNil(t, belgrade)
	assert.Equal(t, "Belgrade", belgrade.DisplayName)

	assert.Nil(t, ds.RegionByID("atlantis"))
}
