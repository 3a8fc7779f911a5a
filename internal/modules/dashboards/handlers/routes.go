package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all dashboard routes
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Route("/dashboards", func(r chi.Router) {
		r.Get("/disputes", h.HandleDisputes)
		r.Get("/transfers", h.HandleTransfers)
		r.Get("/mortgages", h.HandleMortgages)
		r.Get("/affordability", h.HandleAffordability)
		r.Get("/legal", h.HandleLegal)
		r.Get("/subsidy", h.HandleSubsidy)
		r.Get("/bubble", h.HandleBubble)
		r.Get("/ministerial", h.HandleMinisterial)
		r.Get("/regions", h.HandleRegionSummaries)
		r.Get("/regions/{id}", h.HandleRegionSummary)
	})
}
