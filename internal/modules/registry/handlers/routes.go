package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all registry routes
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Route("/regions", func(r chi.Router) {
		r.Get("/", h.HandleListRegions)
		r.Get("/{id}", h.HandleGetRegion)
	})

	r.Get("/disputes", h.HandleListDisputes)
	r.Get("/transfers", h.HandleListTransfers)
	r.Get("/mortgages", h.HandleListMortgages)
	r.Get("/legal", h.HandleListLegalStatuses)
}
