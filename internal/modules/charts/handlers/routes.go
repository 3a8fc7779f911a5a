package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all chart routes
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Route("/charts", func(r chi.Router) {
		r.Route("/disputes", func(r chi.Router) {
			r.Get("/by-status", h.HandleDisputesByStatus)
			r.Get("/by-type", h.HandleDisputesByType)
		})

		r.Get("/transfers/by-status", h.HandleTransfersByStatus)

		r.Route("/mortgages", func(r chi.Router) {
			r.Get("/by-status", h.HandleMortgagesByStatus)
			r.Get("/by-bank", h.HandleMortgagesByBank)
		})

		r.Get("/regions/dispute-rates", h.HandleRegionDisputeRates)
		r.Get("/activity/monthly", h.HandleMonthlyActivity)
		r.Get("/growth/divergence", h.HandleGrowthDivergence)
		r.Get("/subsidies/utilization", h.HandleSubsidyUtilization)
		r.Get("/stress/signals", h.HandleStressSignals)
	})
}
