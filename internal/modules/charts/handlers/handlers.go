// Package handlers provides HTTP handlers for chart data.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Shalini630/serbian-land-trust/internal/modules/charts"
	"github.com/Shalini630/serbian-land-trust/internal/modules/filtering"
	"github.com/rs/zerolog"
)

// Handlers provides HTTP handlers for the charts module
type Handlers struct {
	service *charts.Service
	log     zerolog.Logger
}

// NewHandlers creates a new charts handlers instance
func NewHandlers(service *charts.Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		log:     log.With().Str("module", "charts_handlers").Logger(),
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

// HandleDisputesByStatus handles GET /api/charts/disputes/by-status
func (h *Handlers) HandleDisputesByStatus(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.service.DisputesByStatus(criteriaFromQuery(r)))
}

// HandleDisputesByType handles GET /api/charts/disputes/by-type
func (h *Handlers) HandleDisputesByType(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.service.DisputesByType(criteriaFromQuery(r)))
}

// HandleTransfersByStatus handles GET /api/charts/transfers/by-status
func (h *Handlers) HandleTransfersByStatus(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.service.TransfersByStatus(criteriaFromQuery(r)))
}

// HandleMortgagesByStatus handles GET /api/charts/mortgages/by-status
func (h *Handlers) HandleMortgagesByStatus(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.service.MortgagesByStatus(criteriaFromQuery(r)))
}

// HandleMortgagesByBank handles GET /api/charts/mortgages/by-bank
// Accepts ?top=N, defaulting to 5.
func (h *Handlers) HandleMortgagesByBank(w http.ResponseWriter, r *http.Request) {
	top := 5
	if v := r.URL.Query().Get("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			h.writeError(w, "Invalid top parameter", http.StatusBadRequest)
			return
		}
		top = n
	}
	h.writeJSON(w, h.service.MortgagesByBank(criteriaFromQuery(r), top))
}

// HandleRegionDisputeRates handles GET /api/charts/regions/dispute-rates
func (h *Handlers) HandleRegionDisputeRates(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.service.RegionDisputeRates())
}

// HandleMonthlyActivity handles GET /api/charts/activity/monthly
func (h *Handlers) HandleMonthlyActivity(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.service.MonthlyActivity())
}

// HandleGrowthDivergence handles GET /api/charts/growth/divergence
func (h *Handlers) HandleGrowthDivergence(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.service.GrowthDivergence())
}

// HandleSubsidyUtilization handles GET /api/charts/subsidies/utilization
func (h *Handlers) HandleSubsidyUtilization(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.service.SubsidyUtilization())
}

// HandleStressSignals handles GET /api/charts/stress/signals
func (h *Handlers) HandleStressSignals(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.service.StressSignals())
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
