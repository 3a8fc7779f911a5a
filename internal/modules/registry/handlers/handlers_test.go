package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "modernc.org/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shalini630/serbian-land-trust/internal/modules/registry"
)

func setupTestRouter(t *testing.T) chi.Router {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := registry.NewRepository(db, zerolog.Nop())
	require.NoError(t, repo.Migrate())

	svc := registry.NewService(repo, zerolog.Nop())
	require.NoError(t, svc.Load())

	r := chi.NewRouter()
	NewHandlers(svc, zerolog.Nop()).RegisterRoutes(r)
	return r
}

func doRequest(t *testing.T, router chi.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleListRegions(t *testing.T) {
	router := setupTestRouter(t)

	rec := doRequest(t, router, "/regions")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		SnapshotID string            `json:"snapshot_id"`
		Regions    []json.RawMessage `json:"regions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.SnapshotID)
	assert.Len(t, body.Regions, 10)
}

func TestHandleGetRegion(t *testing.T) {
	router := setupTestRouter(t)

	rec := doRequest(t, router, "/regions/belgrade")
	require.Equal(t, http.StatusOK, rec.Code)

	var region struct {
		ID           string  `json:"id"`
		DisputeRate  float64 `json:"dispute_rate"`
		TotalParcels int     `json:"total_parcels"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &region))
	assert.Equal(t, "belgrade", region.ID)
	assert.Equal(t, 245000, region.TotalParcels)
}

func TestHandleGetRegion_Unknown(t *testing.T) {
	router := setupTestRouter(t)

	rec := doRequest(t, router, "/regions/atlantis")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleListDisputes_Filtered(t *testing.T) {
	router := setupTestRouter(t)

	rec := doRequest(t, router, "/disputes?region=belgrade&status=court")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Total   int               `json:"total"`
		Records []json.RawMessage `json:"records"`
		Columns []json.RawMessage `json:"columns"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)
	assert.Len(t, body.Records, 2)
	assert.NotEmpty(t, body.Columns)
}

func TestHandleListDisputes_CSV(t *testing.T) {
	router := setupTestRouter(t)

	rec := doRequest(t, router, "/disputes?format=csv")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="disputes.csv"`, rec.Header().Get("Content-Disposition"))

	lines := strings.Split(strings.TrimRight(rec.Body.String(), "\n"), "\n")
	require.Len(t, lines, 13) // header plus the 12 fixture disputes
	assert.True(t, strings.HasPrefix(lines[0], "Case ID,"))
	assert.Contains(t, lines[1], "DSP-2024-001")
}

func TestHandleListTransfers_RangeFilter(t *testing.T) {
	router := setupTestRouter(t)

	rec := doRequest(t, router, "/transfers?status=pending")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Total)
}
