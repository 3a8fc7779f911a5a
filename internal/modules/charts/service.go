package charts

import (
	"github.com/Shalini630/serbian-land-trust/internal/domain"
	"github.com/Shalini630/serbian-land-trust/internal/modules/aggregation"
	"github.com/Shalini630/serbian-land-trust/internal/modules/filtering"
	"github.com/Shalini630/serbian-land-trust/internal/modules/metrics"
	"github.com/Shalini630/serbian-land-trust/internal/modules/registry"
	"github.com/rs/zerolog"
)

// Service provides chart data operations over the current dataset snapshot.
type Service struct {
	registry *registry.Service
	log      zerolog.Logger
}

// NewService creates a new charts service
func NewService(reg *registry.Service, log zerolog.Logger) *Service {
	return &Service{
		registry: reg,
		log:      log.With().Str("service", "charts").Logger(),
	}
}

// DisputesByStatus returns the dispute status breakdown as pie segments.
// All enumerated statuses appear even at zero count so the legend is stable.
func (s *Service) DisputesByStatus(c filtering.Criteria) []Point {
	ds := s.registry.Dataset()
	records := filtering.Apply(ds.Disputes, c, registry.DisputeFields())
	return FromCounts(aggregation.CountByWithCategories(
		records,
		func(d domain.DisputeRecord) string { return d.Status },
		domain.DisputeStatuses,
	))
}

// DisputesByType returns the dispute type breakdown.
func (s *Service) DisputesByType(c filtering.Criteria) []Point {
	ds := s.registry.Dataset()
	records := filtering.Apply(ds.Disputes, c, registry.DisputeFields())
	return FromCounts(aggregation.CountByWithCategories(
		records,
		func(d domain.DisputeRecord) string { return d.Type },
		domain.DisputeTypes,
	))
}

// TransfersByStatus returns the transfer status breakdown.
func (s *Service) TransfersByStatus(c filtering.Criteria) []Point {
	ds := s.registry.Dataset()
	records := filtering.Apply(ds.Transfers, c, registry.TransferFields())
	return FromCounts(aggregation.CountByWithCategories(
		records,
		func(t domain.TransferRecord) string { return t.Status },
		domain.TransferStatuses,
	))
}

// MortgagesByStatus returns the mortgage status breakdown.
func (s *Service) MortgagesByStatus(c filtering.Criteria) []Point {
	ds := s.registry.Dataset()
	records := filtering.Apply(ds.Mortgages, c, registry.MortgageFields())
	return FromCounts(aggregation.CountByWithCategories(
		records,
		func(m domain.MortgageRecord) string { return m.Status },
		domain.MortgageStatuses,
	))
}

// MortgagesByBank returns the banks ranked by outstanding balance,
// capped to the top n. Ties keep first-seen order.
func (s *Service) MortgagesByBank(c filtering.Criteria, n int) []Point {
	ds := s.registry.Dataset()
	records := filtering.Apply(ds.Mortgages, c, registry.MortgageFields())
	return FromValues(aggregation.TopN(
		records,
		func(m domain.MortgageRecord) string { return m.Bank },
		func(m domain.MortgageRecord) float64 { return m.RemainingBalance },
		n,
	))
}

// RegionDisputeRates returns per-region dispute rates with a banding fill.
func (s *Service) RegionDisputeRates() []Point {
	ds := s.registry.Dataset()
	t := metrics.DefaultDisputeRateThresholds()

	out := make([]Point, 0, len(ds.Regions))
	for _, r := range ds.Regions {
		band := metrics.DisputeRateBand(r.DisputeRate, t)
		out = append(out, Point{
			Name:  r.DisplayName,
			Value: r.DisputeRate,
			Fill:  "rate-" + band.Band,
		})
	}
	return out
}

// MonthlyActivity returns the raw monthly registry activity trend.
func (s *Service) MonthlyActivity() []domain.MonthlyTrend {
	return s.registry.Dataset().MonthlyTrends
}

// GrowthDivergence returns the price-income divergence trend with per-month
// index values and bands.
func (s *Service) GrowthDivergence() []DivergencePoint {
	return DivergenceSeries(s.registry.Dataset().GrowthTrend, metrics.DefaultPIDIThresholds())
}

// SubsidyUtilization returns utilized amounts per income bracket.
func (s *Service) SubsidyUtilization() []Point {
	ds := s.registry.Dataset()
	out := make([]Point, 0, len(ds.Subsidies))
	for i, b := range ds.Subsidies {
		out = append(out, Point{
			Name:  b.Bracket,
			Value: b.Utilized,
			Fill:  DefaultPalette[i%len(DefaultPalette)],
		})
	}
	return out
}

// StressSignals returns market stress signal counts with severity fills.
func (s *Service) StressSignals() []Point {
	ds := s.registry.Dataset()
	out := make([]Point, 0, len(ds.StressSignals))
	for _, sig := range ds.StressSignals {
		out = append(out, Point{
			Name:  sig.Signal,
			Value: float64(sig.Count),
			Fill:  "severity-" + sig.Severity,
		})
	}
	return out
}
