// Package handlers provides HTTP handlers for the dashboard summaries.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Shalini630/serbian-land-trust/internal/modules/dashboards"
	"github.com/Shalini630/serbian-land-trust/internal/modules/filtering"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers provides HTTP handlers for the dashboards module
type Handlers struct {
	service *dashboards.Service
	log     zerolog.Logger
}

// NewHandlers creates a new dashboards handlers instance
func NewHandlers(service *dashboards.Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		log:     log.With().Str("module", "dashboards_handlers").Logger(),
	}
}

func criteriaFromQuery(r *http.Request) filtering.Criteria {
	q := r.URL.Query()
	return filtering.Criteria{
		Region: q.Get("region"),
		Status: q.Get("status"),
		Search: q.Get("search"),
		Range:  q.Get("range"),
	}
}

// HandleDisputes handles GET /api/dashboards/disputes
func (h *Handlers) HandleDisputes(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.service.Disputes(criteriaFromQuery(r)))
}

// HandleTransfers handles GET /api/dashboards/transfers
func (h *Handlers) HandleTransfers(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.service.Transfers(criteriaFromQuery(r)))
}

// HandleMortgages handles GET /api/dashboards/mortgages
func (h *Handlers) HandleMortgages(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.service.Mortgages(criteriaFromQuery(r)))
}

// HandleAffordability handles GET /api/dashboards/affordability
func (h *Handlers) HandleAffordability(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.service.Affordability())
}

// HandleLegal handles GET /api/dashboards/legal
func (h *Handlers) HandleLegal(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.service.Legal())
}

// HandleSubsidy handles GET /api/dashboards/subsidy
func (h *Handlers) HandleSubsidy(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.service.Subsidy())
}

// HandleBubble handles GET /api/dashboards/bubble
func (h *Handlers) HandleBubble(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.service.Bubble())
}

// HandleMinisterial handles GET /api/dashboards/ministerial
func (h *Handlers) HandleMinisterial(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.service.Ministerial())
}

// HandleRegionSummaries handles GET /api/dashboards/regions
func (h *Handlers) HandleRegionSummaries(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.service.AllRegionKPIs())
}

// HandleRegionSummary handles GET /api/dashboards/regions/{id}
func (h *Handlers) HandleRegionSummary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	kpis, ok := h.service.RegionKPIs(id)
	if !ok {
		h.writeError(w, fmt.Sprintf("Unknown region: %s", id), http.StatusNotFound)
		return
	}
	h.writeJSON(w, kpis)
}

// writeJSON writes a JSON response
func (h *Handlers) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (h *Handlers) writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode error response")
	}
}
