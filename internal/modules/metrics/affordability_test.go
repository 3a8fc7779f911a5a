package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceToIncomeRatio(t *testing.T) {
	tests := []struct {
		name      string
		price     float64
		income    float64
		wantValue float64
		wantBand  string
	}{
		{"affordable", 40000, 10000, 4.0, BandAffordable},
		{"boundary 5.0 is stressed", 50000, 10000, 5.0, BandStressed},
		{"stressed", 65000, 10000, 6.5, BandStressed},
		{"boundary 7.0 still stressed", 70000, 10000, 7.0, BandStressed},
		{"critical", 128000, 10000, 12.8, BandCritical},
		{"zero income undefined", 100000, 0, 0, BandUndefined},
		{"negative income undefined", 100000, -5, 0, BandUndefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PriceToIncomeRatio(tt.price, tt.income, DefaultPIRThresholds())
			assert.Equal(t, tt.wantBand, got.Band)
			assert.InDelta(t, tt.wantValue, got.Value, 1e-9)
		})
	}
}

func TestHousingAffordabilityIndex(t *testing.T) {
	p := DefaultHAIParams()

	// (1200 * 0.28) / 400 * 100 = 84 -> stressed
	stressed := HousingAffordabilityIndex(1200, 400, p)
	assert.Equal(t, BandStressed, stressed.Band)
	assert.InDelta(t, 84.0, stressed.Value, 0.01)

	affordable := HousingAffordabilityIndex(2000, 400, p)
	assert.Equal(t, BandAffordable, affordable.Band)

	critical := HousingAffordabilityIndex(1000, 500, p)
	assert.Equal(t, BandCritical, critical.Band)

	undefined := HousingAffordabilityIndex(1200, 0, p)
	assert.Equal(t, BandUndefined, undefined.Band)
	assert.Equal(t, 0.0, undefined.Value)
}

func TestEMIToIncomeRatio(t *testing.T) {
	tests := []struct {
		name     string
		emi      float64
		income   float64
		wantBand string
	}{
		{"acceptable", 300, 1000, BandAcceptable},
		{"boundary 35 elevated", 350, 1000, BandElevated},
		{"elevated", 380, 1000, BandElevated},
		{"boundary 40 still elevated", 400, 1000, BandElevated},
		{"stressed", 450, 1000, BandStressed},
		{"zero income undefined", 500, 0, BandUndefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EMIToIncomeRatio(tt.emi, tt.income, DefaultEMIThresholds())
			assert.Equal(t, tt.wantBand, got.Band)
		})
	}
}

func TestAffordabilityGapIndex(t *testing.T) {
	th := DefaultAGIThresholds()

	noGap := AffordabilityGapIndex(60000, 50000, th)
	assert.Equal(t, BandNoGap, noGap.Band)
	assert.InDelta(t, 20.0, noGap.Value, 1e-9)

	gap := AffordabilityGapIndex(45000, 50000, th)
	assert.Equal(t, BandGap, gap.Band)

	intervention := AffordabilityGapIndex(30000, 50000, th)
	assert.Equal(t, BandIntervention, intervention.Band)
	assert.InDelta(t, -40.0, intervention.Value, 1e-9)

	undefined := AffordabilityGapIndex(50000, 0, th)
	assert.Equal(t, BandUndefined, undefined.Band)
}

func TestDisputeRateBand(t *testing.T) {
	th := DefaultDisputeRateThresholds()

	assert.Equal(t, BandLowRisk, DisputeRateBand(0.09, th).Band)
	assert.Equal(t, BandMediumRisk, DisputeRateBand(0.10, th).Band)
	assert.Equal(t, BandMediumRisk, DisputeRateBand(0.14, th).Band)
	assert.Equal(t, BandMediumRisk, DisputeRateBand(0.15, th).Band)
	assert.Equal(t, BandHighRisk, DisputeRateBand(0.16, th).Band)
}
