package dashboards

import (
	"github.com/Shalini630/serbian-land-trust/internal/domain"
	"github.com/Shalini630/serbian-land-trust/internal/modules/aggregation"
	"github.com/Shalini630/serbian-land-trust/internal/modules/metrics"
	"github.com/Shalini630/serbian-land-trust/internal/modules/registry"
)

// RegionKPIs is one region's panel on the registry heat map: the stored
// registry totals plus the banded dispute rate and the snapshot record
// counts for the region.
type RegionKPIs struct {
	Region        domain.Region  `json:"region"`
	DisputeRate   metrics.Result `json:"dispute_rate"`
	DisputeCount  int            `json:"dispute_count"`
	TransferCount int            `json:"transfer_count"`
	MortgageCount int            `json:"mortgage_count"`
}

// BuildRegionKPIs computes the heat-map panel for a single region.
// Returns false when the region is unknown.
func BuildRegionKPIs(ds *registry.Dataset, regionID string) (RegionKPIs, bool) {
	region := ds.RegionByID(regionID)
	if region == nil {
		return RegionKPIs{}, false
	}

	return RegionKPIs{
		Region:      *region,
		DisputeRate: metrics.DisputeRateBand(region.DisputeRate, metrics.DefaultDisputeRateThresholds()),
		DisputeCount: aggregation.CountWhere(ds.Disputes, func(d domain.DisputeRecord) bool {
			return d.Region == regionID
		}),
		TransferCount: aggregation.CountWhere(ds.Transfers, func(t domain.TransferRecord) bool {
			return t.Region == regionID
		}),
		MortgageCount: aggregation.CountWhere(ds.Mortgages, func(m domain.MortgageRecord) bool {
			return m.Region == regionID
		}),
	}, true
}

// BuildAllRegionKPIs computes the heat-map panels for every region, in
// dataset order.
func BuildAllRegionKPIs(ds *registry.Dataset) []RegionKPIs {
	out := make([]RegionKPIs, 0, len(ds.Regions))
	for _, r := range ds.Regions {
		kpis, _ := BuildRegionKPIs(ds, r.ID)
		out = append(out, kpis)
	}
	return out
}
