// Package handlers provides HTTP handlers for the registry record collections.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Shalini630/serbian-land-trust/internal/modules/export"
	"github.com/Shalini630/serbian-land-trust/internal/modules/filtering"
	"github.com/Shalini630/serbian-land-trust/internal/modules/registry"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers provides HTTP handlers for the registry module
type Handlers struct {
	service *registry.Service
	log     zerolog.Logger
}

// NewHandlers creates a new registry handlers instance
func NewHandlers(service *registry.Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		log:     log.With().Str("module", "registry_handlers").Logger(),
	}
}

// criteriaFromQuery builds filter criteria from the shared query params.
func criteriaFromQuery(r *http.Request) filtering.Criteria {
	q := r.URL.Query()
	return filtering.Criteria{
		Region: q.Get("region"),
		Status: q.Get("status"),
		Search: q.Get("search"),
		Range:  q.Get("range"),
	}
}

// HandleListRegions handles GET /api/regions
func (h *Handlers) HandleListRegions(w http.ResponseWriter, r *http.Request) {
	ds := h.service.Dataset()
	h.writeJSON(w, map[string]interface{}{
		"snapshot_id": ds.SnapshotID,
		"regions":     ds.Regions,
	})
}

// HandleGetRegion handles GET /api/regions/{id}
func (h *Handlers) HandleGetRegion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	region := h.service.Dataset().RegionByID(id)
	if region == nil {
		h.writeError(w, fmt.Sprintf("Unknown region: %s", id), http.StatusNotFound)
		return
	}
	h.writeJSON(w, region)
}

// HandleListDisputes handles GET /api/disputes
// Supports region/status/search/range filters and ?format=csv.
func (h *Handlers) HandleListDisputes(w http.ResponseWriter, r *http.Request) {
	ds := h.service.Dataset()
	records := filtering.Apply(ds.Disputes, criteriaFromQuery(r), registry.DisputeFields())

	if r.URL.Query().Get("format") == "csv" {
		h.writeCSV(w, "disputes.csv", export.DisputeTable(records))
		return
	}

	h.writeJSON(w, map[string]interface{}{
		"snapshot_id": ds.SnapshotID,
		"columns":     export.DisputeColumns,
		"records":     records,
		"total":       len(records),
	})
}

// HandleListTransfers handles GET /api/transfers
func (h *Handlers) HandleListTransfers(w http.ResponseWriter, r *http.Request) {
	ds := h.service.Dataset()
	records := filtering.Apply(ds.Transfers, criteriaFromQuery(r), registry.TransferFields())

	if r.URL.Query().Get("format") == "csv" {
		h.writeCSV(w, "transfers.csv", export.TransferTable(records))
		return
	}

	h.writeJSON(w, map[string]interface{}{
		"snapshot_id": ds.SnapshotID,
		"columns":     export.TransferColumns,
		"records":     records,
		"total":       len(records),
	})
}

// HandleListMortgages handles GET /api/mortgages
func (h *Handlers) HandleListMortgages(w http.ResponseWriter, r *http.Request) {
	ds := h.service.Dataset()
	records := filtering.Apply(ds.Mortgages, criteriaFromQuery(r), registry.MortgageFields())

	if r.URL.Query().Get("format") == "csv" {
		h.writeCSV(w, "mortgages.csv", export.MortgageTable(records))
		return
	}

	h.writeJSON(w, map[string]interface{}{
		"snapshot_id": ds.SnapshotID,
		"columns":     export.MortgageColumns,
		"records":     records,
		"total":       len(records),
	})
}

// HandleListLegalStatuses handles GET /api/legal
func (h *Handlers) HandleListLegalStatuses(w http.ResponseWriter, r *http.Request) {
	ds := h.service.Dataset()
	records := filtering.Apply(ds.LegalStatuses, criteriaFromQuery(r), registry.LegalStatusFields())

	h.writeJSON(w, map[string]interface{}{
		"snapshot_id": ds.SnapshotID,
		"records":     records,
		"total":       len(records),
	})
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

// writeCSV writes a table as a CSV attachment
func (h *Handlers) writeCSV(w http.ResponseWriter, filename string, t export.Table) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := export.WriteCSV(w, t); err != nil {
		h.log.Error().Err(err).Msg("Failed to write CSV response")
	}
}
