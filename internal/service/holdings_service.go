package service

import (
	"fmt"
	"log"

	"github.com/dkersten/stock-portfolio-tracker/internal/model"
	"github.com/dkersten/stock-portfolio-tracker/internal/repository"
)

// HoldingsService derives per-ticker positions from a portfolio's ledger.
type HoldingsService struct {
	portfolioRepo   *repository.PortfolioRepository
	transactionRepo *repository.TransactionRepository
}

// NewHoldingsService creates a new HoldingsService with the provided repository dependencies.
func NewHoldingsService(
	portfolioRepo *repository.PortfolioRepository,
	transactionRepo *repository.TransactionRepository,
) *HoldingsService {
	return &HoldingsService{
		portfolioRepo:   portfolioRepo,
		transactionRepo: transactionRepo,
	}
}

// accumulator tracks the running share count and cost basis for one ticker
// while folding the ledger.
type accumulator struct {
	shares    float64
	totalCost float64
}

// ComputeHoldings folds the portfolio's full ledger, oldest first, into the
// set of currently open positions using the weighted-average cost method:
//
//   - buy of q shares at price p: shares += q, cost += q*p
//   - sell of q shares with holdings: shares -= q, cost -= q*avg, where avg
//     is the average cost before the sell. This keeps the average cost of the
//     remainder unchanged across partial sells.
//   - sell with no holdings: no-op on the accumulator, reported as an anomaly.
//
// A sell larger than the current holding is absorbed rather than rejected,
// matching how the ledger has historically been interpreted; it is surfaced
// in HoldingsResult.Anomalies so callers can tell it happened. Only tickers
// with strictly positive remaining shares are emitted, in order of first
// appearance in the ledger.
//
// Returns apperrors.ErrPortfolioNotFound when the portfolio does not exist,
// which callers must distinguish from an existing portfolio with no
// transactions (empty result, no error).
func (s *HoldingsService) ComputeHoldings(portfolioID string) (model.HoldingsResult, error) {
	if _, err := s.portfolioRepo.GetPortfolioOnID(portfolioID); err != nil {
		return model.HoldingsResult{}, err
	}

	transactions, err := s.transactionRepo.GetTransactionsPerPortfolio(portfolioID)
	if err != nil {
		return model.HoldingsResult{}, fmt.Errorf("failed to load ledger: %w", err)
	}

	accumulators := make(map[string]*accumulator)
	tickerOrder := []string{}
	anomalies := []string{}

	for _, t := range transactions {
		acc, ok := accumulators[t.Ticker]
		if !ok {
			acc = &accumulator{}
			accumulators[t.Ticker] = acc
			tickerOrder = append(tickerOrder, t.Ticker)
		}

		switch t.Type {
		case model.TransactionTypeBuy:
			acc.shares += t.Shares
			acc.totalCost += t.Shares * t.PricePerShare
		case model.TransactionTypeSell:
			if acc.shares <= 0 {
				anomalies = append(anomalies, fmt.Sprintf(
					"sell of %g shares of %s with no shares held", t.Shares, t.Ticker))
				continue
			}
			if t.Shares > acc.shares {
				anomalies = append(anomalies, fmt.Sprintf(
					"sell of %g shares of %s exceeds %g shares held", t.Shares, t.Ticker, acc.shares))
			}
			avg := acc.totalCost / acc.shares
			acc.shares -= t.Shares
			acc.totalCost -= t.Shares * avg
		}
	}

	for _, a := range anomalies {
		log.Printf("holdings anomaly in portfolio %s: %s", portfolioID, a)
	}

	positions := []model.Position{}
	for _, ticker := range tickerOrder {
		acc := accumulators[ticker]
		if acc.shares > 0 {
			positions = append(positions, model.Position{
				Ticker:       ticker,
				Shares:       acc.shares,
				AvgCostBasis: acc.totalCost / acc.shares,
				TotalCost:    acc.totalCost,
			})
		}
	}

	return model.HoldingsResult{Positions: positions, Anomalies: anomalies}, nil
}
