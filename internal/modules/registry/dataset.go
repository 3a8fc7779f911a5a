// Package registry owns the record store: the fixture dataset, its
// ingestion-boundary validation, and the SQLite-backed repository that
// persists and serves immutable snapshots of all collections.
package registry

import "github.com/Shalini630/serbian-land-trust/internal/domain"

// Dataset is one immutable snapshot of every record collection. Consumers
// (filter engine, aggregator, dashboard services) read through it and never
// mutate it.
type Dataset struct {
	SnapshotID string `json:"snapshot_id"`

	Regions       []domain.Region              `json:"regions"`
	Disputes      []domain.DisputeRecord       `json:"disputes"`
	Transfers     []domain.TransferRecord      `json:"transfers"`
	Mortgages     []domain.MortgageRecord      `json:"mortgages"`
	LegalStatuses []domain.PropertyLegalStatus `json:"legal_statuses"`
	Affordability []domain.AffordabilityRecord `json:"affordability"`
	Subsidies     []domain.SubsidyBracket      `json:"subsidies"`
	SubsidyFlags  []domain.SubsidyRedFlag      `json:"subsidy_flags"`
	Outcomes      domain.SubsidyOutcomes       `json:"outcomes"`
	BubbleRisks   []domain.BubbleCityRisk      `json:"bubble_risks"`
	StressSignals []domain.MarketStressSignal  `json:"stress_signals"`
	GrowthTrend   []domain.GrowthPoint         `json:"growth_trend"`
	MonthlyTrends []domain.MonthlyTrend        `json:"monthly_trends"`
}

// RegionByID returns the region with the given id, or nil when absent.
func (d *Dataset) RegionByID(id string) *domain.Region {
	for i := range d.Regions {
		if d.Regions[i].ID == id {
			return &d.Regions[i]
		}
	}
	return nil
}

// Counts returns per-collection record counts, used by the system status
// endpoint.
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		"regions":        len(d.Regions),
		"disputes":       len(d.Disputes),
		"transfers":      len(d.Transfers),
		"mortgages":      len(d.Mortgages),
		"legal_statuses": len(d.LegalStatuses),
		"affordability":  len(d.Affordability),
		"subsidies":      len(d.Subsidies),
		"bubble_risks":   len(d.BubbleRisks),
	}
}
