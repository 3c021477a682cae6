// Package handler implements the HTTP layer of the astroloh API.
//
// All handlers follow REST conventions; errors are returned as JSON with an
// {error, details} structure. Chart ids come from the mux path wildcards.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"astroloh/internal/calendar"
	"astroloh/internal/codec"
	"astroloh/internal/domain"
	"astroloh/internal/ephemeris"
	"astroloh/internal/repository"
	"astroloh/internal/service"
)

// ErrorResponse is the JSON error envelope
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ChartHandler handles chart CRUD, rendering and interaction requests
type ChartHandler struct {
	svc *service.ChartService
	eph *ephemeris.Client
}

// NewChartHandler creates a new chart handler. The ephemeris client may be
// nil when no upstream is configured; compute requests then return 503.
func NewChartHandler(svc *service.ChartService, eph *ephemeris.Client) *ChartHandler {
	return &ChartHandler{svc: svc, eph: eph}
}

// ListCharts returns all stored charts
func (h *ChartHandler) ListCharts(w http.ResponseWriter, r *http.Request) {
	charts, err := h.svc.ListCharts(r.Context())
	if err != nil {
		log.Printf("Failed to list charts: %v", err)
		writeError(w, "Failed to list charts", err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, charts)
}

// CreateChart stores a new chart
func (h *ChartHandler) CreateChart(w http.ResponseWriter, r *http.Request) {
	var chart domain.Chart
	if err := json.NewDecoder(r.Body).Decode(&chart); err != nil {
		writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.CreateChart(r.Context(), &chart); err != nil {
		log.Printf("Failed to create chart: %v", err)
		writeError(w, "Failed to create chart", err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(chart)
}

// GetChart returns a single chart
func (h *ChartHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	chart, err := h.svc.GetChart(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeChartError(w, "Failed to get chart", err)
		return
	}
	writeJSON(w, chart)
}

// UpdateChart replaces a chart document
func (h *ChartHandler) UpdateChart(w http.ResponseWriter, r *http.Request) {
	var chart domain.Chart
	if err := json.NewDecoder(r.Body).Decode(&chart); err != nil {
		writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}
	chart.ID = r.PathValue("id")

	if err := h.svc.UpdateChart(r.Context(), &chart); err != nil {
		h.writeChartError(w, "Failed to update chart", err)
		return
	}
	writeJSON(w, chart)
}

// DeleteChart removes a chart
func (h *ChartHandler) DeleteChart(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteChart(r.Context(), r.PathValue("id")); err != nil {
		h.writeChartError(w, "Failed to delete chart", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RenderSVG returns the chart wheel as an SVG document
func (h *ChartHandler) RenderSVG(w http.ResponseWriter, r *http.Request) {
	svg, err := h.svc.RenderSVG(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeChartError(w, "Failed to render chart", err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(svg))
}

// Layout returns the computed wheel geometry as JSON, for clients that
// draw the wheel themselves
func (h *ChartHandler) Layout(w http.ResponseWriter, r *http.Request) {
	layout, err := h.svc.Layout(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeChartError(w, "Failed to build layout", err)
		return
	}
	writeJSON(w, layout)
}

// Describe returns the accessible summary and per-planet labels
func (h *ChartHandler) Describe(w http.ResponseWriter, r *http.Request) {
	desc, labels, err := h.svc.Describe(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeChartError(w, "Failed to describe chart", err)
		return
	}
	writeJSON(w, map[string]any{"description": desc, "planet_labels": labels})
}

// Panel returns the detail panel for the current selection; null when
// nothing is selected
func (h *ChartHandler) Panel(w http.ResponseWriter, r *http.Request) {
	panel, err := h.svc.Panel(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeChartError(w, "Failed to build panel", err)
		return
	}
	writeJSON(w, panel)
}

// GetSelection returns the chart's current interaction state
func (h *ChartHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	// Confirm the chart exists before reporting state for it.
	if _, err := h.svc.GetChart(r.Context(), r.PathValue("id")); err != nil {
		h.writeChartError(w, "Failed to get chart", err)
		return
	}
	writeJSON(w, h.svc.Selection(r.PathValue("id")))
}

type planetRequest struct {
	Planet domain.PlanetID `json:"planet"`
}

// Hover records a pointer-enter on a planet
func (h *ChartHandler) Hover(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, h.svc.Hover)
}

// Activate toggles or switches the selected planet
func (h *ChartHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, h.svc.Activate)
}

// Unhover records a pointer-leave
func (h *ChartHandler) Unhover(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.svc.Unhover(r.Context(), id); err != nil {
		h.writeChartError(w, "Failed to update selection", err)
		return
	}
	writeJSON(w, h.svc.Selection(id))
}

func (h *ChartHandler) applyTransition(w http.ResponseWriter, r *http.Request,
	fn func(ctx context.Context, id string, planet domain.PlanetID) error) {

	var req planetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}
	if req.Planet == "" {
		writeError(w, "Invalid request body", "planet is required", http.StatusBadRequest)
		return
	}

	id := r.PathValue("id")
	if err := fn(r.Context(), id, req.Planet); err != nil {
		h.writeChartError(w, "Failed to update selection", err)
		return
	}
	writeJSON(w, h.svc.Selection(id))
}

type computeRequest struct {
	Name      string              `json:"name"`
	BirthDate time.Time           `json:"birth_date"`
	Options   domain.ChartOptions `json:"options"`
}

// Compute fetches positions from the ephemeris upstream and stores the
// resulting chart
func (h *ChartHandler) Compute(w http.ResponseWriter, r *http.Request) {
	if h.eph == nil {
		writeError(w, "Ephemeris not configured", "", http.StatusServiceUnavailable)
		return
	}

	var req computeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	planets, aspects, err := h.eph.Compute(r.Context(), req.BirthDate)
	if err != nil {
		log.Printf("Failed to compute positions: %v", err)
		writeError(w, "Failed to compute positions", err.Error(), http.StatusBadGateway)
		return
	}

	chart := domain.Chart{
		Name:      req.Name,
		BirthDate: req.BirthDate,
		Planets:   planets,
		Aspects:   aspects,
		Options:   req.Options,
	}
	if err := h.svc.CreateChart(r.Context(), &chart); err != nil {
		log.Printf("Failed to create chart: %v", err)
		writeError(w, "Failed to create chart", err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(chart)
}

// Import parses a chart document in the path's format and stores it
func (h *ChartHandler) Import(w http.ResponseWriter, r *http.Request) {
	imp, _, ok := codec.ForFormat(r.PathValue("format"))
	if !ok {
		writeError(w, "Unknown format", r.PathValue("format"), http.StatusBadRequest)
		return
	}

	chart, err := imp.Parse(r.Body)
	if err != nil {
		writeError(w, "Invalid chart document", err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.CreateChart(r.Context(), chart); err != nil {
		log.Printf("Failed to import chart: %v", err)
		writeError(w, "Failed to import chart", err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(chart)
}

// Export writes a chart document in the path's format
func (h *ChartHandler) Export(w http.ResponseWriter, r *http.Request) {
	_, exp, ok := codec.ForFormat(r.PathValue("format"))
	if !ok {
		writeError(w, "Unknown format", r.PathValue("format"), http.StatusBadRequest)
		return
	}

	chart, err := h.svc.GetChart(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeChartError(w, "Failed to get chart", err)
		return
	}

	switch exp.Format() {
	case "yaml":
		w.Header().Set("Content-Type", "application/yaml")
	default:
		w.Header().Set("Content-Type", "application/json")
	}
	if err := exp.Export(chart, w); err != nil {
		log.Printf("Failed to export chart: %v", err)
	}
}

// Calendar returns the month grid with charts bucketed by birth date
func (h *ChartHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		writeError(w, "Invalid year", r.PathValue("year"), http.StatusBadRequest)
		return
	}
	monthNum, err := strconv.Atoi(r.PathValue("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		writeError(w, "Invalid month", r.PathValue("month"), http.StatusBadRequest)
		return
	}
	month := time.Month(monthNum)

	from, to := calendar.Range(year, month)
	charts, err := h.svc.ChartsBetween(r.Context(), from, to)
	if err != nil {
		log.Printf("Failed to list charts: %v", err)
		writeError(w, "Failed to list charts", err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, calendar.Build(year, month, charts))
}

func (h *ChartHandler) writeChartError(w http.ResponseWriter, msg string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, "Not found", err.Error(), http.StatusNotFound)
		return
	}
	log.Printf("%s: %v", msg, err)
	writeError(w, msg, err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode JSON: %v", err)
	}
}

func writeError(w http.ResponseWriter, error, details string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Error:   error,
		Details: details,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}
