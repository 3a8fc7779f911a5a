package dashboards

import (
	"github.com/Shalini630/serbian-land-trust/internal/domain"
	"github.com/Shalini630/serbian-land-trust/internal/modules/aggregation"
	"github.com/Shalini630/serbian-land-trust/internal/modules/charts"
	"github.com/Shalini630/serbian-land-trust/internal/modules/metrics"
	"github.com/Shalini630/serbian-land-trust/internal/modules/registry"
)

// City risk score cutoffs: 0-40 low, 40-70 medium, above 70 high.
const (
	cityRiskMedium = 40
	cityRiskHigh   = 70
)

// CityBubbleRisk is one city's row on the bubble protection dashboard.
type CityBubbleRisk struct {
	domain.BubbleCityRisk
	Band metrics.Result `json:"band"`
}

// BubbleSummary is the bubble protection dashboard payload.
type BubbleSummary struct {
	Cities        []CityBubbleRisk            `json:"cities"`
	AvgRiskScore  float64                     `json:"avg_risk_score"`
	Divergence    metrics.Result              `json:"divergence"`
	Speculation   metrics.Result              `json:"speculation"`
	CreditRisk    metrics.Result              `json:"credit_risk"`
	MarketStress  metrics.Result              `json:"market_stress"`
	StressSignals []domain.MarketStressSignal `json:"stress_signals"`
	GrowthTrend   []charts.DivergencePoint    `json:"growth_trend"`
}

// BuildBubbleSummary composes the bubble protection dashboard. The
// divergence index is taken at the latest trend month against the window's
// own gap deviation; speculation counts rapid resales, multi-property
// holdings and foreign cash inflows against total transfer volume.
func BuildBubbleSummary(ds *registry.Dataset) BubbleSummary {
	cities := make([]CityBubbleRisk, 0, len(ds.BubbleRisks))
	for _, c := range ds.BubbleRisks {
		cities = append(cities, CityBubbleRisk{
			BubbleCityRisk: c,
			Band:           metrics.RiskScoreBand(c.RiskScore, cityRiskMedium, cityRiskHigh),
		})
	}

	avgRisk := aggregation.Average(ds.BubbleRisks,
		func(c domain.BubbleCityRisk) float64 { return c.RiskScore },
		aggregation.AverageOptions{})

	trend := charts.DivergenceSeries(ds.GrowthTrend, metrics.DefaultPIDIThresholds())
	divergence := metrics.Result{Band: metrics.BandUndefined}
	if len(trend) > 0 {
		last := trend[len(trend)-1]
		divergence = metrics.Result{Value: last.PIDI, Band: last.Band}
	}

	speculation := buildSpeculation(ds)
	creditRisk := buildCreditRisk(ds)
	stress := metrics.MarketStressScore(metrics.MSSComponents{
		Divergence:   normalizePIDI(divergence),
		Speculation:  speculation.Value * 100,
		Credit:       creditRisk.Value * 100,
		Vacancy:      signalSeverityScore(ds.StressSignals, "Construction vs occupancy gap"),
		Construction: signalSeverityScore(ds.StressSignals, "Rapid resales (<12mo)"),
	}, metrics.DefaultMSSWeights(), metrics.DefaultMSSThresholds())

	return BubbleSummary{
		Cities:        cities,
		AvgRiskScore:  avgRisk,
		Divergence:    divergence,
		Speculation:   speculation,
		CreditRisk:    creditRisk,
		MarketStress:  stress,
		StressSignals: ds.StressSignals,
		GrowthTrend:   trend,
	}
}

func buildSpeculation(ds *registry.Dataset) metrics.Result {
	var rapidResales, multiProperty, cashInflows, total int
	for _, s := range ds.StressSignals {
		switch s.Signal {
		case "Rapid resales (<12mo)":
			rapidResales = s.Count
		case "Multiple properties/entity":
			multiProperty = s.Count
		case "Foreign investment spike":
			cashInflows = s.Count
		}
	}
	for _, m := range ds.MonthlyTrends {
		total += m.Transfers
	}
	return metrics.SpeculativeActivityIndex(rapidResales, multiProperty, cashInflows, total, metrics.DefaultSAIThresholds())
}

// buildCreditRisk derives the composite's normalized inputs from the
// mortgage book: outstanding-to-originated as the LTV proxy, the averaged
// payment-to-income ratio as DTI, and the distressed share for both the
// subprime and delinquency components.
func buildCreditRisk(ds *registry.Dataset) metrics.Result {
	var originated, outstanding float64
	var distressed int
	for _, m := range ds.Mortgages {
		originated += m.Amount
		outstanding += m.RemainingBalance
		if m.Status == domain.MortgageStatusDefaulted || m.Status == domain.MortgageStatusForeclosure {
			distressed++
		}
	}

	if originated <= 0 || len(ds.Mortgages) == 0 {
		return metrics.Result{Band: metrics.BandUndefined}
	}

	avgPayment := aggregation.Average(ds.Mortgages,
		func(m domain.MortgageRecord) float64 { return m.MonthlyPayment },
		aggregation.AverageOptions{ExcludeZero: true})
	meanMonthlyIncome := aggregation.Average(ds.Affordability,
		func(a domain.AffordabilityRecord) float64 { return a.MedianHouseholdIncome / 12 },
		aggregation.AverageOptions{})

	dti := 0.0
	if meanMonthlyIncome > 0 {
		dti = clamp01(avgPayment / meanMonthlyIncome)
	}

	distressedShare := float64(distressed) / float64(len(ds.Mortgages))

	return metrics.CreditRiskComposite(metrics.CRCComponents{
		LTV:         clamp01(outstanding / originated),
		DTI:         dti,
		Subprime:    distressedShare,
		DefaultRate: distressedShare,
	}, metrics.DefaultCRCWeights(), metrics.DefaultCRCThresholds())
}

// normalizePIDI maps the divergence index onto the stress score's 0-100
// scale, saturating at four deviations.
func normalizePIDI(r metrics.Result) float64 {
	if r.Band == metrics.BandUndefined {
		return 0
	}
	v := r.Value / 4 * 100
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// signalSeverityScore maps a named stress signal's severity onto the 0-100
// sub-index scale. A missing signal scores zero.
func signalSeverityScore(signals []domain.MarketStressSignal, name string) float64 {
	for _, s := range signals {
		if s.Signal != name {
			continue
		}
		switch s.Severity {
		case "high":
			return 80
		case "medium":
			return 50
		case "low":
			return 20
		}
	}
	return 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
