package dashboards

import (
	"github.com/Shalini630/serbian-land-trust/internal/domain"
	"github.com/Shalini630/serbian-land-trust/internal/modules/metrics"
	"github.com/Shalini630/serbian-land-trust/internal/modules/registry"
)

// MinisterialKPIs is the national totals block at the top of the
// ministerial overview.
type MinisterialKPIs struct {
	TotalParcels     int `json:"total_parcels"`
	ActiveDisputes   int `json:"active_disputes"`
	PendingTransfers int `json:"pending_transfers"`
	ActiveMortgages  int `json:"active_mortgages"`
	FraudAttempts    int `json:"fraud_attempts"`
}

// MinisterialSummary is the ministerial overview payload: the national KPI
// block, the four policy pillars and their composite index.
type MinisterialSummary struct {
	KPIs          MinisterialKPIs       `json:"kpis"`
	Pillars       metrics.MPIComponents `json:"pillars"`
	PolicyIndex   metrics.Result        `json:"policy_index"`
	MonthlyTrends []domain.MonthlyTrend `json:"monthly_trends"`
}

// BuildMinisterialSummary composes the ministerial overview. Pillar scores,
// each 0-100 with higher better:
//   - affordability: average share of households able to buy
//   - legal: share of properties fully verified
//   - subsidy: program utilization rate
//   - stability: inverse of the average city bubble risk
func BuildMinisterialSummary(ds *registry.Dataset) MinisterialSummary {
	var kpis MinisterialKPIs
	for _, r := range ds.Regions {
		kpis.TotalParcels += r.TotalParcels
		kpis.ActiveDisputes += r.ActiveDisputes
		kpis.PendingTransfers += r.PendingTransfers
		kpis.ActiveMortgages += r.ActiveMortgages
		kpis.FraudAttempts += r.FraudAttempts
	}

	affordability := BuildAffordabilitySummary(ds)
	legal := BuildLegalSummary(ds)
	subsidy := BuildSubsidySummary(ds)
	bubble := BuildBubbleSummary(ds)

	legalScore := 0.0
	if legal.Total > 0 {
		legalScore = float64(legal.Verified) / float64(legal.Total) * 100
	}

	pillars := metrics.MPIComponents{
		Affordability: affordability.AvgEligibleHouseholds,
		Legal:         legalScore,
		Subsidy:       subsidy.UtilizationRate,
		Stability:     100 - bubble.AvgRiskScore,
	}

	return MinisterialSummary{
		KPIs:          kpis,
		Pillars:       pillars,
		PolicyIndex:   metrics.MasterPolicyIndex(pillars, metrics.DefaultMPIWeights(), metrics.DefaultMPIThresholds()),
		MonthlyTrends: ds.MonthlyTrends,
	}
}
