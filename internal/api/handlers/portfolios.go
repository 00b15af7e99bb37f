package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkersten/stock-portfolio-tracker/internal/api/request"
	"github.com/dkersten/stock-portfolio-tracker/internal/api/response"
	"github.com/dkersten/stock-portfolio-tracker/internal/apperrors"
	"github.com/dkersten/stock-portfolio-tracker/internal/service"
	"github.com/dkersten/stock-portfolio-tracker/internal/validation"
)

// PortfolioHandler handles portfolio-related HTTP requests, including the
// derived holdings and performance views.
type PortfolioHandler struct {
	portfolioService   *service.PortfolioService
	holdingsService    *service.HoldingsService
	performanceService *service.PerformanceService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(
	portfolioService *service.PortfolioService,
	holdingsService *service.HoldingsService,
	performanceService *service.PerformanceService,
) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService:   portfolioService,
		holdingsService:    holdingsService,
		performanceService: performanceService,
	}
}

// Portfolios handles GET requests to list all portfolios.
//
// Endpoint: GET /api/portfolio
// Response: 200 OK with array of Portfolio
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) Portfolios(w http.ResponseWriter, _ *http.Request) {
	portfolios, err := h.portfolioService.GetAllPortfolios()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePortfolios.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, portfolios)
}

// CreatePortfolio handles POST requests to create a new portfolio.
//
// Endpoint: POST /api/portfolio
// Request Body: CreatePortfolioRequest (name)
// Response: 201 Created with Portfolio
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *PortfolioHandler) CreatePortfolio(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreatePortfolioRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreatePortfolio(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	portfolio, err := h.portfolioService.CreatePortfolio(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCreatePortfolio.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, portfolio)
}

// GetPortfolio handles GET requests to retrieve a single portfolio by ID.
//
// Endpoint: GET /api/portfolio/{uuid}
// Response: 200 OK with Portfolio
// Error: 404 Not Found if the portfolio does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "uuid")

	portfolio, err := h.portfolioService.GetPortfolio(portfolioID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPortfolioNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPortfolioNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePortfolio.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, portfolio)
}

// DeletePortfolio handles DELETE requests to remove a portfolio and,
// through cascading deletes, its transactions and snapshots.
//
// Endpoint: DELETE /api/portfolio/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if the portfolio does not exist
// Error: 500 Internal Server Error if deletion fails
func (h *PortfolioHandler) DeletePortfolio(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "uuid")

	err := h.portfolioService.DeletePortfolio(r.Context(), portfolioID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPortfolioNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPortfolioNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToDeletePortfolio.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// Holdings handles GET requests to compute a portfolio's current positions.
// An existing portfolio with no open positions returns an empty array, while
// a missing portfolio returns 404 - callers rely on that distinction.
//
// Endpoint: GET /api/portfolio/{uuid}/holdings
// Response: 200 OK with HoldingsResult
// Error: 404 Not Found if the portfolio does not exist
// Error: 500 Internal Server Error if computation fails
func (h *PortfolioHandler) Holdings(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "uuid")

	holdings, err := h.holdingsService.ComputeHoldings(portfolioID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPortfolioNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPortfolioNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeHoldings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, holdings)
}

// Performance handles GET requests to evaluate a portfolio against live quotes.
//
// Endpoint: GET /api/portfolio/{uuid}/performance
// Response: 200 OK with PortfolioPerformance
// Error: 404 Not Found if the portfolio does not exist
// Error: 500 Internal Server Error if evaluation fails
func (h *PortfolioHandler) Performance(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "uuid")

	performance, err := h.performanceService.EvaluatePerformance(portfolioID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPortfolioNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPortfolioNotFound.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToEvaluatePerformance.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, performance)
}
