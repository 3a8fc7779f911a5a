package charts

import (
	"github.com/Shalini630/serbian-land-trust/internal/domain"
	"github.com/Shalini630/serbian-land-trust/internal/modules/metrics"
	"gonum.org/v1/gonum/stat"
)

// DivergencePoint is one month of the price-income divergence trend.
type DivergencePoint struct {
	Month        string  `json:"month"`
	PriceGrowth  float64 `json:"price_growth"`
	IncomeGrowth float64 `json:"income_growth"`
	Gap          float64 `json:"gap"`
	PIDI         float64 `json:"pidi"`
	Band         string  `json:"band"`
}

// GrowthGapStats summarizes the price-income growth gap over the trend window.
type GrowthGapStats struct {
	MeanGap   float64 `json:"mean_gap"`
	StdDevGap float64 `json:"std_dev_gap"`
}

// GapStats computes mean and sample standard deviation of the monthly
// price-income growth gap. Fewer than two points yield zero deviation.
func GapStats(trend []domain.GrowthPoint) GrowthGapStats {
	gaps := make([]float64, 0, len(trend))
	for _, p := range trend {
		gaps = append(gaps, p.PriceGrowth-p.IncomeGrowth)
	}
	if len(gaps) == 0 {
		return GrowthGapStats{}
	}
	s := GrowthGapStats{MeanGap: stat.Mean(gaps, nil)}
	if len(gaps) > 1 {
		s.StdDevGap = stat.StdDev(gaps, nil)
	}
	return s
}

// DivergenceSeries bands each month of the growth trend against the
// divergence index computed over the window's own gap deviation. Months stay
// in input order. With a degenerate deviation the index carries the
// undefined band and a zero value.
func DivergenceSeries(trend []domain.GrowthPoint, t metrics.PIDIThresholds) []DivergencePoint {
	stats := GapStats(trend)

	out := make([]DivergencePoint, 0, len(trend))
	for _, p := range trend {
		r := metrics.PriceIncomeDivergenceIndex(p.PriceGrowth, p.IncomeGrowth, stats.StdDevGap, t)
		out = append(out, DivergencePoint{
			Month:        p.Month,
			PriceGrowth:  p.PriceGrowth,
			IncomeGrowth: p.IncomeGrowth,
			Gap:          p.PriceGrowth - p.IncomeGrowth,
			PIDI:         r.Value,
			Band:         r.Band,
		})
	}
	return out
}
