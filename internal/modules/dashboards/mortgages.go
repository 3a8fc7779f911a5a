package dashboards

import (
	"github.com/Shalini630/serbian-land-trust/internal/domain"
	"github.com/Shalini630/serbian-land-trust/internal/modules/aggregation"
	"github.com/Shalini630/serbian-land-trust/internal/modules/filtering"
	"github.com/Shalini630/serbian-land-trust/internal/modules/metrics"
	"github.com/Shalini630/serbian-land-trust/internal/modules/registry"
)

// MortgageSummary is the mortgage registry dashboard payload.
type MortgageSummary struct {
	Total             int                         `json:"total"`
	Active            int                         `json:"active"`
	Distressed        int                         `json:"distressed"`
	TotalOriginated   float64                     `json:"total_originated"`
	TotalOutstanding  float64                     `json:"total_outstanding"`
	AvgMonthlyPayment float64                     `json:"avg_monthly_payment"`
	ByStatus          []aggregation.CategoryCount `json:"by_status"`
	ByBank            []aggregation.CategoryValue `json:"by_bank"`
	EMIRatio          metrics.Result              `json:"emi_ratio"`
}

// BuildMortgageSummary composes the mortgage dashboard from the snapshot.
// The EMI ratio compares the average monthly payment against the national
// median monthly income derived from the affordability records.
func BuildMortgageSummary(ds *registry.Dataset, c filtering.Criteria) MortgageSummary {
	records := filtering.Apply(ds.Mortgages, c, registry.MortgageFields())

	avgPayment := aggregation.Average(records, func(m domain.MortgageRecord) float64 {
		return m.MonthlyPayment
	}, aggregation.AverageOptions{ExcludeZero: true})

	medianMonthlyIncome := aggregation.Average(ds.Affordability,
		func(a domain.AffordabilityRecord) float64 { return a.MedianHouseholdIncome / 12 },
		aggregation.AverageOptions{})

	return MortgageSummary{
		Total: len(records),
		Active: aggregation.CountWhere(records, func(m domain.MortgageRecord) bool {
			return m.Status == domain.MortgageStatusActive
		}),
		Distressed: aggregation.CountWhere(records, func(m domain.MortgageRecord) bool {
			return m.Status == domain.MortgageStatusDefaulted || m.Status == domain.MortgageStatusForeclosure
		}),
		TotalOriginated: aggregation.Sum(records, func(m domain.MortgageRecord) float64 {
			return m.Amount
		}),
		TotalOutstanding: aggregation.Sum(records, func(m domain.MortgageRecord) float64 {
			return m.RemainingBalance
		}),
		AvgMonthlyPayment: avgPayment,
		ByStatus: aggregation.CountByWithCategories(records,
			func(m domain.MortgageRecord) string { return m.Status },
			domain.MortgageStatuses),
		ByBank: aggregation.TopN(records,
			func(m domain.MortgageRecord) string { return m.Bank },
			func(m domain.MortgageRecord) float64 { return m.RemainingBalance },
			5),
		EMIRatio: metrics.EMIToIncomeRatio(avgPayment, medianMonthlyIncome, metrics.DefaultEMIThresholds()),
	}
}
