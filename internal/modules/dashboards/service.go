// Package dashboards composes the policy dashboard summaries: each dashboard
// is a filter -> aggregate -> calculate pipeline over the current dataset
// snapshot, with the unfiltered summaries cached between refreshes.
package dashboards

import (
	"github.com/Shalini630/serbian-land-trust/internal/modules/filtering"
	"github.com/Shalini630/serbian-land-trust/internal/modules/registry"
	"github.com/rs/zerolog"
)

// Cache keys, one per dashboard.
const (
	cacheKeyDisputes      = "disputes"
	cacheKeyTransfers     = "transfers"
	cacheKeyMortgages     = "mortgages"
	cacheKeyAffordability = "affordability"
	cacheKeyLegal         = "legal"
	cacheKeySubsidy       = "subsidy"
	cacheKeyBubble        = "bubble"
	cacheKeyMinisterial   = "ministerial"
)

// Service provides the dashboard summaries. Filtered requests are always
// computed fresh; unfiltered summaries go through the cache.
type Service struct {
	registry *registry.Service
	cache    *SummaryCache
	log      zerolog.Logger
}

// NewService creates a new dashboards service. The cache may be nil, in
// which case every summary is computed on demand.
func NewService(reg *registry.Service, cache *SummaryCache, log zerolog.Logger) *Service {
	return &Service{
		registry: reg,
		cache:    cache,
		log:      log.With().Str("service", "dashboards").Logger(),
	}
}

// Disputes returns the dispute resolution dashboard.
func (s *Service) Disputes(c filtering.Criteria) DisputeSummary {
	if c.IsZero() && s.cache != nil {
		var cached DisputeSummary
		if s.cache.Get(cacheKeyDisputes, &cached) {
			return cached
		}
	}

	summary := BuildDisputeSummary(s.registry.Dataset(), c)
	if c.IsZero() && s.cache != nil {
		s.cache.Set(cacheKeyDisputes, summary)
	}
	return summary
}

// Transfers returns the ownership transfer dashboard.
func (s *Service) Transfers(c filtering.Criteria) TransferSummary {
	if c.IsZero() && s.cache != nil {
		var cached TransferSummary
		if s.cache.Get(cacheKeyTransfers, &cached) {
			return cached
		}
	}

	summary := BuildTransferSummary(s.registry.Dataset(), c)
	if c.IsZero() && s.cache != nil {
		s.cache.Set(cacheKeyTransfers, summary)
	}
	return summary
}

// Mortgages returns the mortgage registry dashboard.
func (s *Service) Mortgages(c filtering.Criteria) MortgageSummary {
	if c.IsZero() && s.cache != nil {
		var cached MortgageSummary
		if s.cache.Get(cacheKeyMortgages, &cached) {
			return cached
		}
	}

	summary := BuildMortgageSummary(s.registry.Dataset(), c)
	if c.IsZero() && s.cache != nil {
		s.cache.Set(cacheKeyMortgages, summary)
	}
	return summary
}

// Affordability returns the housing affordability dashboard.
func (s *Service) Affordability() AffordabilitySummary {
	if s.cache != nil {
		var cached AffordabilitySummary
		if s.cache.Get(cacheKeyAffordability, &cached) {
			return cached
		}
	}

	summary := BuildAffordabilitySummary(s.registry.Dataset())
	if s.cache != nil {
		s.cache.Set(cacheKeyAffordability, summary)
	}
	return summary
}

// Legal returns the legal compliance dashboard.
func (s *Service) Legal() LegalSummary {
	if s.cache != nil {
		var cached LegalSummary
		if s.cache.Get(cacheKeyLegal, &cached) {
			return cached
		}
	}

	summary := BuildLegalSummary(s.registry.Dataset())
	if s.cache != nil {
		s.cache.Set(cacheKeyLegal, summary)
	}
	return summary
}

// Subsidy returns the subsidy allocation dashboard.
func (s *Service) Subsidy() SubsidySummary {
	if s.cache != nil {
		var cached SubsidySummary
		if s.cache.Get(cacheKeySubsidy, &cached) {
			return cached
		}
	}

	summary := BuildSubsidySummary(s.registry.Dataset())
	if s.cache != nil {
		s.cache.Set(cacheKeySubsidy, summary)
	}
	return summary
}

// Bubble returns the bubble protection dashboard.
func (s *Service) Bubble() BubbleSummary {
	if s.cache != nil {
		var cached BubbleSummary
		if s.cache.Get(cacheKeyBubble, &cached) {
			return cached
		}
	}

	summary := BuildBubbleSummary(s.registry.Dataset())
	if s.cache != nil {
		s.cache.Set(cacheKeyBubble, summary)
	}
	return summary
}

// Ministerial returns the ministerial overview.
func (s *Service) Ministerial() MinisterialSummary {
	if s.cache != nil {
		var cached MinisterialSummary
		if s.cache.Get(cacheKeyMinisterial, &cached) {
			return cached
		}
	}

	summary := BuildMinisterialSummary(s.registry.Dataset())
	if s.cache != nil {
		s.cache.Set(cacheKeyMinisterial, summary)
	}
	return summary
}

// RegionKPIs returns the heat-map panel for one region.
func (s *Service) RegionKPIs(regionID string) (RegionKPIs, bool) {
	return BuildRegionKPIs(s.registry.Dataset(), regionID)
}

// AllRegionKPIs returns the heat-map panels for every region.
func (s *Service) AllRegionKPIs() []RegionKPIs {
	return BuildAllRegionKPIs(s.registry.Dataset())
}

// RefreshAll recomputes and re-caches every unfiltered summary. Called by
// the scheduler after the cache TTL window.
func (s *Service) RefreshAll() {
	if s.cache == nil {
		return
	}

	ds := s.registry.Dataset()
	s.cache.Set(cacheKeyDisputes, BuildDisputeSummary(ds, filtering.Criteria{}))
	s.cache.Set(cacheKeyTransfers, BuildTransferSummary(ds, filtering.Criteria{}))
	s.cache.Set(cacheKeyMortgages, BuildMortgageSummary(ds, filtering.Criteria{}))
	s.cache.Set(cacheKeyAffordability, BuildAffordabilitySummary(ds))
	s.cache.Set(cacheKeyLegal, BuildLegalSummary(ds))
	s.cache.Set(cacheKeySubsidy, BuildSubsidySummary(ds))
	s.cache.Set(cacheKeyBubble, BuildBubbleSummary(ds))
	s.cache.Set(cacheKeyMinisterial, BuildMinisterialSummary(ds))

	s.log.Debug().Msg("Dashboard summaries refreshed")
}
