package service

import (
	"fmt"
	"log"

	"github.com/dkersten/stock-portfolio-tracker/internal/apperrors"
	"github.com/dkersten/stock-portfolio-tracker/internal/model"
	"github.com/dkersten/stock-portfolio-tracker/internal/yahoo"
)

// PerformanceService joins computed holdings with live quotes to produce
// gain/loss figures per position and for the portfolio as a whole.
type PerformanceService struct {
	holdingsService *HoldingsService
	yahooClient     yahoo.Client
}

// NewPerformanceService creates a new PerformanceService with the provided dependencies.
func NewPerformanceService(
	holdingsService *HoldingsService,
	yahooClient yahoo.Client,
) *PerformanceService {
	return &PerformanceService{
		holdingsService: holdingsService,
		yahooClient:     yahooClient,
	}
}

// EvaluatePerformance computes current holdings and enriches each position
// with a live quote, one serial lookup per ticker.
//
// Positions whose quote lookup fails are dropped from both the position list
// and the aggregate sums. That is lossy, so every skip is logged; "no data"
// and transport errors are treated identically as a failed lookup with no
// retry. An existing portfolio with no open positions yields a well-formed
// zero result. A missing portfolio propagates ErrPortfolioNotFound so
// callers can tell the two apart.
//
// The aggregate gain/loss percent is 0, not NaN, when the aggregate cost is 0.
func (s *PerformanceService) EvaluatePerformance(portfolioID string) (model.PortfolioPerformance, error) {
	holdings, err := s.holdingsService.ComputeHoldings(portfolioID)
	if err != nil {
		return model.PortfolioPerformance{}, err
	}

	performance := model.PortfolioPerformance{
		Positions: []model.PerformanceRecord{},
	}

	for _, position := range holdings.Positions {
		currentPrice, err := s.currentPrice(position.Ticker)
		if err != nil {
			log.Printf("skipping unpriceable position %s in portfolio %s: %v", position.Ticker, portfolioID, err)
			continue
		}

		currentValue := position.Shares * currentPrice
		gainLossAbs := currentValue - position.TotalCost
		gainLossPct := 0.0
		if position.TotalCost > 0 {
			gainLossPct = gainLossAbs / position.TotalCost * 100
		}

		performance.Positions = append(performance.Positions, model.PerformanceRecord{
			Ticker:       position.Ticker,
			Shares:       position.Shares,
			AvgCostBasis: position.AvgCostBasis,
			CurrentPrice: currentPrice,
			TotalCost:    position.TotalCost,
			CurrentValue: currentValue,
			GainLossAbs:  gainLossAbs,
			GainLossPct:  gainLossPct,
		})

		performance.TotalCost += position.TotalCost
		performance.TotalValue += currentValue
	}

	performance.GainLossAbs = performance.TotalValue - performance.TotalCost
	if performance.TotalCost > 0 {
		performance.GainLossPct = performance.GainLossAbs / performance.TotalCost * 100
	}

	return performance, nil
}

// currentPrice fetches the latest available closing price for a ticker.
// Any failure, whether transport, API error or an empty chart, is wrapped
// in apperrors.ErrPriceNotFound: the caller treats them all as "unpriceable".
func (s *PerformanceService) currentPrice(ticker string) (float64, error) {
	raw, err := s.yahooClient.QueryYahooFiveDaySymbol(ticker)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", apperrors.ErrPriceNotFound, ticker, err)
	}

	chart, err := s.yahooClient.ParseChart(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", apperrors.ErrPriceNotFound, ticker, err)
	}

	price, ok := chart.LatestClose()
	if !ok {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrPriceNotFound, ticker)
	}

	return price, nil
}
