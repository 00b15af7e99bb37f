package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkersten/stock-portfolio-tracker/internal/api/response"
	"github.com/dkersten/stock-portfolio-tracker/internal/apperrors"
	"github.com/dkersten/stock-portfolio-tracker/internal/service"
)

// SnapshotHandler handles HTTP requests for portfolio valuation snapshots.
type SnapshotHandler struct {
	snapshotService *service.SnapshotService
}

// NewSnapshotHandler creates a new SnapshotHandler with the provided service dependency.
func NewSnapshotHandler(snapshotService *service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotService: snapshotService,
	}
}

// RecordSnapshot handles POST requests to persist the portfolio's current
// aggregate market value. A portfolio with no positions records a zero-value
// snapshot; a missing portfolio is a 404.
//
// Endpoint: POST /api/portfolio/{uuid}/snapshot
// Response: 201 Created with Snapshot
// Error: 404 Not Found if the portfolio does not exist
// Error: 500 Internal Server Error if evaluation or persistence fails
func (h *SnapshotHandler) RecordSnapshot(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "uuid")

	snapshot, err := h.snapshotService.RecordSnapshot(r.Context(), portfolioID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPortfolioNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPortfolioNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRecordSnapshot.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, snapshot)
}

// Snapshots handles GET requests to list a portfolio's snapshots,
// ordered ascending by timestamp.
//
// Endpoint: GET /api/portfolio/{uuid}/snapshots
// Response: 200 OK with array of Snapshot
// Error: 404 Not Found if the portfolio does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *SnapshotHandler) Snapshots(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "uuid")

	snapshots, err := h.snapshotService.ListSnapshots(portfolioID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPortfolioNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPortfolioNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSnapshots.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, snapshots)
}
