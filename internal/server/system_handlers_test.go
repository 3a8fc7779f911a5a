package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shalini630/serbian-land-trust/internal/database"
	"github.com/Shalini630/serbian-land-trust/internal/modules/registry"
)

func setupSystemHandlers(t *testing.T) *SystemHandlers {
	t.Helper()

	dir := t.TempDir()

	registryDB, err := database.New(database.Config{
		Path:    filepath.Join(dir, "registry.db"),
		Name:    "registry",
		Profile: database.ProfileRegistry,
	})
	require.NoError(t, err)
	t.Cleanup(func() { registryDB.Close() })

	cacheDB, err := database.New(database.Config{
		Path:    filepath.Join(dir, "cache.db"),
		Name:    "cache",
		Profile: database.ProfileCache,
	})
	require.NoError(t, err)
	t.Cleanup(func() { cacheDB.Close() })

	repo := registry.NewRepository(registryDB.Conn(), zerolog.Nop())
	require.NoError(t, repo.Migrate())

	svc := registry.NewService(repo, zerolog.Nop())
	require.NoError(t, svc.Load())

	return NewSystemHandlers(zerolog.Nop(), svc, map[string]*database.DB{
		"registry": registryDB,
		"cache":    cacheDB,
	}, time.Now())
}

func TestHandleSystemStatus(t *testing.T) {
	h := setupSystemHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/system/status", nil)
	rec := httptest.NewRecorder()
	h.HandleSystemStatus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var status SystemStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))

	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "healthy", status.Databases["registry"])
	assert.Equal(t, "healthy", status.Databases["cache"])
	assert.NotEmpty(t, status.SnapshotID)
	assert.Equal(t, 12, status.RecordCounts["disputes"])
	assert.Equal(t, 10, status.RecordCounts["regions"])
	assert.GreaterOrEqual(t, status.MemoryPercent, 0.0)
}
