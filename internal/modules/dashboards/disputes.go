package dashboards

import (
	"github.com/Shalini630/serbian-land-trust/internal/domain"
	"github.com/Shalini630/serbian-land-trust/internal/modules/aggregation"
	"github.com/Shalini630/serbian-land-trust/internal/modules/filtering"
	"github.com/Shalini630/serbian-land-trust/internal/modules/metrics"
	"github.com/Shalini630/serbian-land-trust/internal/modules/registry"
)

// DisputeSummary is the dispute resolution dashboard payload.
type DisputeSummary struct {
	Total          int                         `json:"total"`
	ActiveCases    int                         `json:"active_cases"`
	TotalValue     float64                     `json:"total_value"`
	AvgDaysOpen    float64                     `json:"avg_days_open"`
	ByStatus       []aggregation.CategoryCount `json:"by_status"`
	ByType         []aggregation.CategoryCount `json:"by_type"`
	ResolutionRate metrics.Result              `json:"resolution_rate"`
}

// BuildDisputeSummary composes the dispute dashboard from the snapshot.
// AvgDaysOpen excludes zero values, which by dataset convention mark
// resolved cases rather than zero-day disputes.
func BuildDisputeSummary(ds *registry.Dataset, c filtering.Criteria) DisputeSummary {
	records := filtering.Apply(ds.Disputes, c, registry.DisputeFields())

	resolved := aggregation.CountWhere(records, func(d domain.DisputeRecord) bool {
		return d.Status == domain.DisputeStatusResolved
	})

	return DisputeSummary{
		Total:       len(records),
		ActiveCases: len(records) - resolved,
		TotalValue: aggregation.Sum(records, func(d domain.DisputeRecord) float64 {
			return d.EstimatedValue
		}),
		AvgDaysOpen: aggregation.Average(records, func(d domain.DisputeRecord) float64 {
			return float64(d.DaysOpen)
		}, aggregation.AverageOptions{ExcludeZero: true}),
		ByStatus: aggregation.CountByWithCategories(records,
			func(d domain.DisputeRecord) string { return d.Status },
			domain.DisputeStatuses),
		ByType: aggregation.CountByWithCategories(records,
			func(d domain.DisputeRecord) string { return d.Type },
			domain.DisputeTypes),
		ResolutionRate: metrics.DisputeResolutionRate(resolved, len(records), metrics.DefaultDRRThresholds()),
	}
}
