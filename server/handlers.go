package server

import (
	"encoding/json"
	"net/http"
	"time"

	"tripventura-pricing/models"
	"tripventura-pricing/services"
	"tripventura-pricing/storage"
	"tripventura-pricing/utils"
)

// Handler serves the dashboard data contract as JSON.
type Handler struct {
	session  *services.Session
	insights *services.InsightService
	logger   *utils.Logger
}

// NewHandler creates a Handler around the given session.
func NewHandler(session *services.Session, insights *services.InsightService, logger *utils.Logger) *Handler {
	return &Handler{
		session:  session,
		insights: insights,
		logger:   logger,
	}
}

// toursResponse is the session view the dashboard renders from.
type toursResponse struct {
	Tours      []models.TourRecord `json:"tours"`
	Selection  []string            `json:"selection"`
	SourceLive bool                `json:"sourceLive"`
	SyncError  string              `json:"syncError,omitempty"`
}

type toggleRequest struct {
	TourName string `json:"tourName"`
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// HandleGetTours returns the full record list plus the selection and the
// live/fallback state of the last load.
func (h *Handler) HandleGetTours(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.sessionView())
}

// HandleGetSelected returns only the selected subset, in record order.
func (h *Handler) HandleGetSelected(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, toursResponse{
		Tours:      h.session.SelectedRecords(),
		Selection:  h.session.SelectionNames(),
		SourceLive: h.session.SourceLive(),
		SyncError:  h.session.SyncError(),
	})
}

// HandleGetSummary returns the derived analytics over the current selection.
func (h *Handler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.insights.Generate(h.session.SelectedRecords()))
}

// HandleRefresh re-runs ingestion. The response carries the replaced record
// list; the previous selection is gone by design.
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	h.session.Refresh(r.Context())
	writeJSON(w, h.sessionView())
}

// HandleToggle flips one tour name in the selection.
func (h *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TourName == "" {
		http.Error(w, "tourName is required", http.StatusBadRequest)
		return
	}

	h.session.Toggle(req.TourName)
	writeJSON(w, h.sessionView())
}

// HandleSelectAll selects every record currently loaded.
func (h *Handler) HandleSelectAll(w http.ResponseWriter, r *http.Request) {
	h.session.SelectAll()
	writeJSON(w, h.sessionView())
}

// HandleDeselectAll empties the selection.
func (h *Handler) HandleDeselectAll(w http.ResponseWriter, r *http.Request) {
	h.session.DeselectAll()
	writeJSON(w, h.sessionView())
}

// HandleExport streams the current selection as the dated CSV download.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	doc := storage.ExportCSV(h.session.SelectedRecords())

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		`attachment; filename="`+storage.ExportFileName(time.Now())+`"`)
	if _, err := w.Write([]byte(doc)); err != nil {
		h.logger.Error("[http] Export write failed: %v", err)
	}
}

func (h *Handler) sessionView() toursResponse {
	return toursResponse{
		Tours:      h.session.Records(),
		Selection:  h.session.SelectionNames(),
		SourceLive: h.session.SourceLive(),
		SyncError:  h.session.SyncError(),
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
