package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkersten/stock-portfolio-tracker/internal/api/request"
	"github.com/dkersten/stock-portfolio-tracker/internal/api/response"
	"github.com/dkersten/stock-portfolio-tracker/internal/apperrors"
	"github.com/dkersten/stock-portfolio-tracker/internal/service"
)

// PriceHandler handles HTTP requests for quote lookups and the price cache.
type PriceHandler struct {
	priceService *service.PriceService
}

// NewPriceHandler creates a new PriceHandler with the provided service dependency.
func NewPriceHandler(priceService *service.PriceService) *PriceHandler {
	return &PriceHandler{
		priceService: priceService,
	}
}

// CurrentPrice handles GET requests for the latest available quote of a ticker.
//
// Endpoint: GET /api/price/{ticker}
// Response: 200 OK with StockPrice
// Error: 404 Not Found if the ticker is unpriceable
// Error: 400 Bad Request if the ticker is empty
func (h *PriceHandler) CurrentPrice(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	price, err := h.priceService.CurrentPrice(ticker)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidTicker) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidTicker.Error(), "")
			return
		}
		response.RespondError(w, http.StatusNotFound, apperrors.ErrPriceNotFound.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, price)
}

// HistoricalPrices handles GET requests for a ticker's daily OHLCV series.
//
// Endpoint: GET /api/price/{ticker}/history?period=1y
// Response: 200 OK with PriceChart
// Error: 400 Bad Request if the period is unknown or the ticker is empty
// Error: 404 Not Found if no data is available
func (h *PriceHandler) HistoricalPrices(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	period := r.URL.Query().Get("period")
	if period == "" {
		period = "1y"
	}

	chart, err := h.priceService.HistoricalPrices(ticker, period)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidTicker) || errors.Is(err, apperrors.ErrInvalidPeriod) {
			response.RespondError(w, http.StatusBadRequest, "invalid request", err.Error())
			return
		}
		response.RespondError(w, http.StatusNotFound, apperrors.ErrPriceNotFound.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, chart)
}

// StockInfo handles GET requests for a ticker's descriptive metadata.
//
// Endpoint: GET /api/price/{ticker}/info
// Response: 200 OK with StockInfo
// Error: 404 Not Found if the ticker is unknown to the quote source
// Error: 400 Bad Request if the ticker is empty
func (h *PriceHandler) StockInfo(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	info, err := h.priceService.StockInfo(ticker)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidTicker) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidTicker.Error(), "")
			return
		}
		response.RespondError(w, http.StatusNotFound, apperrors.ErrPriceNotFound.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, info)
}

// StoredPrices handles GET requests for a ticker's cached quote rows,
// oldest first.
//
// Endpoint: GET /api/price/{ticker}/stored
// Response: 200 OK with array of StockPrice
// Error: 400 Bad Request if the ticker is empty
// Error: 500 Internal Server Error if retrieval fails
func (h *PriceHandler) StoredPrices(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	prices, err := h.priceService.StoredPrices(ticker)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidTicker) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidTicker.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePriceHistory.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, prices)
}

// RefreshPrices handles POST requests to fetch and cache current quotes.
// An empty body or empty ticker list refreshes every held ticker. The
// response maps each ticker to whether its quote was fetched.
//
// Endpoint: POST /api/price/refresh
// Request Body: RefreshPricesRequest (optional tickers array)
// Response: 200 OK with map of ticker to success flag
// Error: 400 Bad Request if the request body is malformed
// Error: 500 Internal Server Error if persistence fails
func (h *PriceHandler) RefreshPrices(w http.ResponseWriter, r *http.Request) {
	var req request.RefreshPricesRequest
	if r.ContentLength > 0 {
		parsed, err := parseJSON[request.RefreshPricesRequest](r)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
			return
		}
		req = parsed
	}

	results, err := h.priceService.RefreshPrices(r.Context(), req.Tickers)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRefreshPrices.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, results)
}
