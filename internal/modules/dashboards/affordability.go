package dashboards

import (
	"github.com/Shalini630/serbian-land-trust/internal/domain"
	"github.com/Shalini630/serbian-land-trust/internal/modules/aggregation"
	"github.com/Shalini630/serbian-land-trust/internal/modules/metrics"
	"github.com/Shalini630/serbian-land-trust/internal/modules/registry"
)

// AffordableCeilingMultiple is the annual-income multiple treated as an
// affordable purchase price when computing the affordability gap.
const AffordableCeilingMultiple = 4.0

// CityAffordability is one city's row on the affordability dashboard. The
// stored ratio is the authoritative display value; PIR is the independent
// recomputation from the price and income primitives.
type CityAffordability struct {
	CityID      string         `json:"city_id"`
	CityName    string         `json:"city_name"`
	StoredRatio float64        `json:"stored_ratio"`
	Status      string         `json:"status"`
	PIR         metrics.Result `json:"pir"`
	Gap         metrics.Result `json:"gap"`
}

// AffordabilitySummary is the housing affordability dashboard payload.
type AffordabilitySummary struct {
	Cities                []CityAffordability         `json:"cities"`
	ByStatus              []aggregation.CategoryCount `json:"by_status"`
	AvgEligibleHouseholds float64                     `json:"avg_eligible_households"`
	TotalNewUnits         int                         `json:"total_new_units"`
	NationalHAI           metrics.Result              `json:"national_hai"`
}

// affordabilityStatuses is the expected status enumeration, in display order.
var affordabilityStatuses = []string{"affordable", "stressed", "critical"}

// BuildAffordabilitySummary composes the affordability dashboard. The
// national affordability index uses the mean monthly income across cities
// against the average active mortgage payment.
func BuildAffordabilitySummary(ds *registry.Dataset) AffordabilitySummary {
	cities := make([]CityAffordability, 0, len(ds.Affordability))
	for _, a := range ds.Affordability {
		ceiling := a.MedianHouseholdIncome * AffordableCeilingMultiple
		cities = append(cities, CityAffordability{
			CityID:      a.CityID,
			CityName:    a.CityName,
			StoredRatio: a.PriceToIncomeRatio,
			Status:      a.AffordabilityStatus,
			PIR:         metrics.PriceToIncomeRatio(a.MedianHousePrice, a.MedianHouseholdIncome, metrics.DefaultPIRThresholds()),
			Gap:         metrics.AffordabilityGapIndex(ceiling, a.MedianHousePrice, metrics.DefaultAGIThresholds()),
		})
	}

	meanMonthlyIncome := aggregation.Average(ds.Affordability,
		func(a domain.AffordabilityRecord) float64 { return a.MedianHouseholdIncome / 12 },
		aggregation.AverageOptions{})
	avgPayment := aggregation.Average(ds.Mortgages,
		func(m domain.MortgageRecord) float64 { return m.MonthlyPayment },
		aggregation.AverageOptions{ExcludeZero: true})

	totalUnits := 0
	for _, a := range ds.Affordability {
		totalUnits += a.NewAffordableUnits
	}

	return AffordabilitySummary{
		Cities: cities,
		ByStatus: aggregation.CountByWithCategories(ds.Affordability,
			func(a domain.AffordabilityRecord) string { return a.AffordabilityStatus },
			affordabilityStatuses),
		AvgEligibleHouseholds: aggregation.Average(ds.Affordability,
			func(a domain.AffordabilityRecord) float64 { return a.EligibleHouseholds },
			aggregation.AverageOptions{}),
		TotalNewUnits: totalUnits,
		NationalHAI:   metrics.HousingAffordabilityIndex(meanMonthlyIncome, avgPayment, metrics.DefaultHAIParams()),
	}
}
