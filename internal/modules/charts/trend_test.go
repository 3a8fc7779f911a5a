package charts

import (
	"testing"

	"github.com/Shalini630/serbian-land-trust/internal/domain"
	"github.com/Shalini630/serbian-land-trust/internal/modules/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGapStats(t *testing.T) {
	trend := []domain.GrowthPoint{
		{Month: "2024-01", PriceGrowth: 10, IncomeGrowth: 8},
		{Month: "2024-02", PriceGrowth: 12, IncomeGrowth: 8},
		{Month: "2024-03", PriceGrowth: 14, IncomeGrowth: 8},
	}

	s := GapStats(trend)

	assert.InDelta(t, 4.0, s.MeanGap, 1e-9)
	assert.InDelta(t, 2.0, s.StdDevGap, 1e-9)
}

func TestGapStats_Degenerate(t *testing.T) {
	assert.Equal(t, GrowthGapStats{}, GapStats(nil))

	single := GapStats([]domain.GrowthPoint{{Month: "2024-01", PriceGrowth: 9, IncomeGrowth: 4}})
	assert.InDelta(t, 5.0, single.MeanGap, 1e-9)
	assert.Equal(t, 0.0, single.StdDevGap)
}

func TestDivergenceSeries_BandsAgainstWindowDeviation(t *testing.T) {
	trend := []domain.GrowthPoint{
		{Month: "2024-01", PriceGrowth: 10, IncomeGrowth: 8},
		{Month: "2024-02", PriceGrowth: 12, IncomeGrowth: 8},
		{Month: "2024-03", PriceGrowth: 14, IncomeGrowth: 8},
	}

	series := DivergenceSeries(trend, metrics.DefaultPIDIThresholds())

	require.Len(t, series, 3)
	assert.Equal(t, "2024-01", series[0].Month)
	assert.InDelta(t, 1.0, series[0].PIDI, 1e-9)
	assert.Equal(t, metrics.BandNormal, series[0].Band)
	assert.InDelta(t, 2.0, series[1].PIDI, 1e-9)
	assert.Equal(t, metrics.BandNormal, series[1].Band)
	assert.InDelta(t, 3.0, series[2].PIDI, 1e-9)
	assert.Equal(t, metrics.BandWarning, series[2].Band)
	assert.InDelta(t, 6.0, series[2].Gap, 1e-9)
}

func TestDivergenceSeries_SingleMonthUndefined(t *testing.T) {
	series := DivergenceSeries([]domain.GrowthPoint{
		{Month: "2024-06", PriceGrowth: 9, IncomeGrowth: 4},
	}, metrics.DefaultPIDIThresholds())

	require.Len(t, series, 1)
	assert.Equal(t, metrics.BandUndefined, series[0].Band)
	assert.Equal(t, 0.0, series[0].PIDI)
}
