package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceIncomeDivergenceIndex(t *testing.T) {
	th := DefaultPIDIThresholds()

	normal := PriceIncomeDivergenceIndex(8, 5, 2, th)
	assert.Equal(t, BandNormal, normal.Band)
	assert.InDelta(t, 1.5, normal.Value, 1e-9)

	warning := PriceIncomeDivergenceIndex(12, 4, 3, th)
	assert.Equal(t, BandWarning, warning.Band)

	bubble := PriceIncomeDivergenceIndex(18, 4, 4, th)
	assert.Equal(t, BandBubble, bubble.Band)
	assert.InDelta(t, 3.5, bubble.Value, 1e-9)

	undefined := PriceIncomeDivergenceIndex(18, 4, 0, th)
	assert.Equal(t, BandUndefined, undefined.Band)
}

func TestSpeculativeActivityIndex(t *testing.T) {
	th := DefaultSAIThresholds()

	normal := SpeculativeActivityIndex(100, 50, 50, 1000, th)
	assert.Equal(t, BandNormal, normal.Band)
	assert.InDelta(t, 0.2, normal.Value, 1e-9)

	high := SpeculativeActivityIndex(200, 100, 100, 1000, th)
	assert.Equal(t, BandHighSpeculation, high.Band)

	intervention := SpeculativeActivityIndex(300, 150, 150, 1000, th)
	assert.Equal(t, BandIntervention, intervention.Band)

	undefined := SpeculativeActivityIndex(10, 10, 10, 0, th)
	assert.Equal(t, BandUndefined, undefined.Band)
}

func TestCreditRiskComposite(t *testing.T) {
	w := DefaultCRCWeights()
	th := DefaultCRCThresholds()

	acceptable := CreditRiskComposite(CRCComponents{LTV: 0.5, DTI: 0.4, Subprime: 0.1, DefaultRate: 0.05}, w, th)
	assert.Equal(t, BandAcceptable, acceptable.Band)
	// 0.5*0.3 + 0.4*0.3 + 0.1*0.2 + 0.05*0.2 = 0.3
	assert.InDelta(t, 0.3, acceptable.Value, 0.001)

	deteriorating := CreditRiskComposite(CRCComponents{LTV: 0.8, DTI: 0.7, Subprime: 0.5, DefaultRate: 0.4}, w, th)
	assert.Equal(t, BandDeteriorating, deteriorating.Band)

	systemic := CreditRiskComposite(CRCComponents{LTV: 0.95, DTI: 0.9, Subprime: 0.8, DefaultRate: 0.7}, w, th)
	assert.Equal(t, BandSystemic, systemic.Band)

	undefined := CreditRiskComposite(CRCComponents{LTV: 0.5}, CRCWeights{}, th)
	assert.Equal(t, BandUndefined, undefined.Band)
}

func TestMarketStressScore(t *testing.T) {
	w := DefaultMSSWeights()
	th := DefaultMSSThresholds()

	tests := []struct {
		name     string
		c        MSSComponents
		wantBand string
	}{
		{"healthy", MSSComponents{Divergence: 20, Speculation: 20, Credit: 20, Vacancy: 20, Construction: 20}, BandHealthy},
		{"watch at 40", MSSComponents{Divergence: 40, Speculation: 40, Credit: 40, Vacancy: 40, Construction: 40}, BandWatch},
		{"elevated at 60", MSSComponents{Divergence: 60, Speculation: 60, Credit: 60, Vacancy: 60, Construction: 60}, BandElevated},
		{"crisis at 80", MSSComponents{Divergence: 80, Speculation: 80, Credit: 80, Vacancy: 80, Construction: 80}, BandCrisis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarketStressScore(tt.c, w, th)
			assert.Equal(t, tt.wantBand, got.Band)
		})
	}

	undefined := MarketStressScore(MSSComponents{Divergence: 50}, MSSWeights{}, th)
	assert.Equal(t, BandUndefined, undefined.Band)
}

func TestRiskScoreBand(t *testing.T) {
	assert.Equal(t, BandLowRisk, RiskScoreBand(38, 40, 70).Band)
	assert.Equal(t, BandMediumRisk, RiskScoreBand(40, 40, 70).Band)
	assert.Equal(t, BandMediumRisk, RiskScoreBand(61, 40, 70).Band)
	assert.Equal(t, BandMediumRisk, RiskScoreBand(70, 40, 70).Band)
	assert.Equal(t, BandHighRisk, RiskScoreBand(78, 40, 70).Band)
}
