package charts

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shalini630/serbian-land-trust/internal/modules/filtering"
	"github.com/Shalini630/serbian-land-trust/internal/modules/registry"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := registry.NewRepository(db, zerolog.Nop())
	require.NoError(t, repo.Migrate())

	reg := registry.NewService(repo, zerolog.Nop())
	require.NoError(t, reg.Load())

	return NewService(reg, zerolog.Nop())
}

func TestService_DisputesByStatus(t *testing.T) {
	svc := setupTestService(t)

	points := svc.DisputesByStatus(filtering.Criteria{})

	require.Len(t, points, 4)
	assert.Equal(t, Point{Name: "open", Value: 5, Fill: "status-warning"}, points[0])
	assert.Equal(t, Point{Name: "investigation", Value: 3, Fill: "status-info"}, points[1])
	assert.Equal(t, Point{Name: "court", Value: 2, Fill: "status-danger"}, points[2])
	assert.Equal(t, Point{Name: "resolved", Value: 2, Fill: "status-success"}, points[3])
}

func TestService_DisputesByStatus_RegionFilter(t *testing.T) {
	svc := setupTestService(t)

	points := svc.DisputesByStatus(filtering.Criteria{Region: "belgrade"})

	require.Len(t, points, 4)
	assert.Equal(t, 1.0, points[0].Value) // open
	assert.Equal(t, 0.0, points[1].Value) // investigation, kept at zero
	assert.Equal(t, 2.0, points[2].Value) // court
}

func TestService_MortgagesByBank(t *testing.T) {
	svc := setupTestService(t)

	points := svc.MortgagesByBank(filtering.Criteria{}, 3)

	require.Len(t, points, 3)
	assert.Equal(t, "Banca Intesa", points[0].Name)
	assert.InDelta(t, 505_000, points[0].Value, 1e-6)
	assert.Equal(t, "UniCredit", points[1].Name)
	assert.Equal(t, "OTP Banka", points[2].Name)
}

func TestService_RegionDisputeRates(t *testing.T) {
	svc := setupTestService(t)

	points := svc.RegionDisputeRates()

	require.Len(t, points, 10)
	assert.Equal(t, "Belgrade", points[0].Name)
	assert.InDelta(t, 0.14, points[0].Value, 1e-9)
	assert.Equal(t, "rate-medium", points[0].Fill)
	assert.Equal(t, "Vojvodina", points[1].Name)
	assert.Equal(t, "rate-low", points[1].Fill)
	// Pčinja sits exactly on the high cutoff, which stays medium
	assert.Equal(t, "rate-medium", points[8].Fill)
}

func TestService_GrowthDivergence(t *testing.T) {
	svc := setupTestService(t)

	series := svc.GrowthDivergence()

	require.Len(t, series, 10)
	assert.Equal(t, "Jul 23", series[0].Month)
	assert.Equal(t, "Apr 24", series[9].Month)
	assert.InDelta(t, 13.7, series[9].Gap, 1e-9)
}

func TestService_StressSignals(t *testing.T) {
	svc := setupTestService(t)

	points := svc.StressSignals()

	require.Len(t, points, 5)
	assert.Equal(t, "Rapid resales (<12mo)", points[0].Name)
	assert.Equal(t, 2340.0, points[0].Value)
	assert.Equal(t, "severity-high", points[0].Fill)
	assert.Equal(t, "severity-medium", points[1].Fill)
}

func TestService_SubsidyUtilization(t *testing.T) {
	svc := setupTestService(t)

	points := svc.SubsidyUtilization()

	require.Len(t, points, 5)
	assert.Equal(t, "< €5,000", points[0].Name)
	assert.InDelta(t, 24_800_000, points[0].Value, 1e-6)
	assert.Equal(t, DefaultPalette[0], points[0].Fill)
}
