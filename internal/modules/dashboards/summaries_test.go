package dashboards

import (
	"testing"

	"github.com/Shalini630/serbian-land-trust/internal/modules/filtering"
	"github.com/Shalini630/serbian-land-trust/internal/modules/metrics"
	"github.com/Shalini630/serbian-land-trust/internal/modules/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureSnapshot(t *testing.T) *registry.Dataset {
	t.Helper()
	ds := registry.FixtureDataset()
	return &ds
}

func TestBuildDisputeSummary(t *testing.T) {
	ds := fixtureSnapshot(t)

	s := BuildDisputeSummary(ds, filtering.Criteria{})

	assert.Equal(t, 12, s.Total)
	assert.Equal(t, 10, s.ActiveCases)
	assert.InDelta(t, 2_187_000, s.TotalValue, 1e-6)
	assert.InDelta(t, 53.2, s.AvgDaysOpen, 1e-9)

	require.Len(t, s.ByStatus, 4)
	assert.Equal(t, "open", s.ByStatus[0].Category)
	assert.Equal(t, 5, s.ByStatus[0].Count)
	assert.Equal(t, "investigation", s.ByStatus[1].Category)
	assert.Equal(t, 3, s.ByStatus[1].Count)
	assert.Equal(t, "court", s.ByStatus[2].Category)
	assert.Equal(t, 2, s.ByStatus[2].Count)
	assert.Equal(t, "resolved", s.ByStatus[3].Category)
	assert.Equal(t, 2, s.ByStatus[3].Count)

	assert.InDelta(t, 16.7, s.ResolutionRate.Value, 1e-9)
}

func TestBuildDisputeSummary_RegionFilter(t *testing.T) {
	ds := fixtureSnapshot(t)

	s := BuildDisputeSummary(ds, filtering.Criteria{Region: "belgrade"})

	assert.Equal(t, 3, s.Total)
	assert.InDelta(t, 1_335_000, s.TotalValue, 1e-6)
}

func TestBuildTransferSummary(t *testing.T) {
	ds := fixtureSnapshot(t)

	s := BuildTransferSummary(ds, filtering.Criteria{})

	assert.Equal(t, 10, s.Total)
	assert.Equal(t, 3, s.Pending)
	assert.Equal(t, 4, s.Completed)
	assert.InDelta(t, 2_340_000, s.TotalValue, 1e-6)
	// the zero-value donation is excluded from the average
	assert.InDelta(t, 260_000, s.AvgValue, 1e-6)
	assert.InDelta(t, 27.0/7, s.AvgProcessingDays, 1e-9)
}

func TestBuildMortgageSummary(t *testing.T) {
	ds := fixtureSnapshot(t)

	s := BuildMortgageSummary(ds, filtering.Criteria{})

	assert.Equal(t, 10, s.Total)
	assert.Equal(t, 7, s.Active)
	assert.Equal(t, 2, s.Distressed)
	assert.InDelta(t, 1_720_000, s.TotalOriginated, 1e-6)
	assert.InDelta(t, 1_427_000, s.TotalOutstanding, 1e-6)
	assert.InDelta(t, 14960.0/9, s.AvgMonthlyPayment, 1e-6)

	require.Len(t, s.ByBank, 5)
	assert.Equal(t, "Banca Intesa", s.ByBank[0].Category)
	assert.InDelta(t, 505_000, s.ByBank[0].Value, 1e-6)
	assert.Equal(t, "UniCredit", s.ByBank[1].Category)
	assert.InDelta(t, 390_000, s.ByBank[1].Value, 1e-6)
	assert.Equal(t, "Erste Bank", s.ByBank[4].Category)

	assert.Equal(t, metrics.BandStressed, s.EMIRatio.Band)
}

func TestBuildRegionKPIs(t *testing.T) {
	ds := fixtureSnapshot(t)

	kpis, ok := BuildRegionKPIs(ds, "belgrade")
	require.True(t, ok)

	assert.Equal(t, "Belgrade", kpis.Region.DisplayName)
	assert.InDelta(t, 0.14, kpis.DisputeRate.Value, 1e-9)
	assert.Equal(t, 3, kpis.DisputeCount)
	assert.Equal(t, 3, kpis.TransferCount)
	assert.Equal(t, 3, kpis.MortgageCount)

	_, ok = BuildRegionKPIs(ds, "atlantis")
	assert.False(t, ok)
}

func TestBuildAllRegionKPIs_DatasetOrder(t *testing.T) {
	ds := fixtureSnapshot(t)

	all := BuildAllRegionKPIs(ds)

	require.Len(t, all, len(ds.Regions))
	for i, r := range ds.Regions {
		assert.Equal(t, r.ID, all[i].Region.ID)
	}
}
