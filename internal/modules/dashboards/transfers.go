package dashboards

import (
	"github.com/Shalini630/serbian-land-trust/internal/domain"
	"github.com/Shalini630/serbian-land-trust/internal/modules/aggregation"
	"github.com/Shalini630/serbian-land-trust/internal/modules/filtering"
	"github.com/Shalini630/serbian-land-trust/internal/modules/registry"
)

// TransferSummary is the ownership transfer dashboard payload.
type TransferSummary struct {
	Total             int                         `json:"total"`
	Pending           int                         `json:"pending"`
	Completed         int                         `json:"completed"`
	TotalValue        float64                     `json:"total_value"`
	AvgValue          float64                     `json:"avg_value"`
	AvgProcessingDays float64                     `json:"avg_processing_days"`
	ByStatus          []aggregation.CategoryCount `json:"by_status"`
	ByType            []aggregation.CategoryCount `json:"by_type"`
}

// BuildTransferSummary composes the transfer dashboard from the snapshot.
// AvgValue excludes zero-valued records (donations carry value 0), and
// AvgProcessingDays excludes records still in flight.
func BuildTransferSummary(ds *registry.Dataset, c filtering.Criteria) TransferSummary {
	records := filtering.Apply(ds.Transfers, c, registry.TransferFields())

	return TransferSummary{
		Total: len(records),
		Pending: aggregation.CountWhere(records, func(t domain.TransferRecord) bool {
			return t.Status == domain.TransferStatusPending
		}),
		Completed: aggregation.CountWhere(records, func(t domain.TransferRecord) bool {
			return t.Status == domain.TransferStatusCompleted
		}),
		TotalValue: aggregation.Sum(records, func(t domain.TransferRecord) float64 {
			return t.Value
		}),
		AvgValue: aggregation.Average(records, func(t domain.TransferRecord) float64 {
			return t.Value
		}, aggregation.AverageOptions{ExcludeZero: true}),
		AvgProcessingDays: aggregation.Average(records, func(t domain.TransferRecord) float64 {
			return float64(t.ProcessingDays)
		}, aggregation.AverageOptions{ExcludeZero: true}),
		ByStatus: aggregation.CountByWithCategories(records,
			func(t domain.TransferRecord) string { return t.Status },
			domain.TransferStatuses),
		ByType: aggregation.CountByWithCategories(records,
			func(t domain.TransferRecord) string { return t.Type },
			domain.TransferTypes),
	}
}
