package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dkersten/stock-portfolio-tracker/internal/apperrors"
	"github.com/dkersten/stock-portfolio-tracker/internal/model"
	"github.com/dkersten/stock-portfolio-tracker/internal/repository"
	"github.com/dkersten/stock-portfolio-tracker/internal/yahoo"
)

// refreshConcurrency bounds concurrent quote fetches during a bulk refresh.
const refreshConcurrency = 4

// PriceService exposes quote lookups and maintains the stock_price cache.
// Cached prices are a historical record only; live valuations always
// re-query the source.
type PriceService struct {
	transactionRepo *repository.TransactionRepository
	priceRepo       *repository.PriceRepository
	yahooClient     yahoo.Client
}

// NewPriceService creates a new PriceService with the provided dependencies.
func NewPriceService(
	transactionRepo *repository.TransactionRepository,
	priceRepo *repository.PriceRepository,
	yahooClient yahoo.Client,
) *PriceService {
	return &PriceService{
		transactionRepo: transactionRepo,
		priceRepo:       priceRepo,
		yahooClient:     yahooClient,
	}
}

// CurrentPrice returns the latest available closing price and volume for a
// ticker. Any lookup failure is wrapped in apperrors.ErrPriceNotFound.
func (s *PriceService) CurrentPrice(ticker string) (model.StockPrice, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return model.StockPrice{}, apperrors.ErrInvalidTicker
	}

	raw, err := s.yahooClient.QueryYahooFiveDaySymbol(ticker)
	if err != nil {
		return model.StockPrice{}, fmt.Errorf("%w: %s: %v", apperrors.ErrPriceNotFound, ticker, err)
	}

	chart, err := s.yahooClient.ParseChart(raw)
	if err != nil {
		return model.StockPrice{}, fmt.Errorf("%w: %s: %v", apperrors.ErrPriceNotFound, ticker, err)
	}

	if len(chart.Indicators) == 0 {
		return model.StockPrice{}, fmt.Errorf("%w: %s", apperrors.ErrPriceNotFound, ticker)
	}

	latest := chart.Indicators[len(chart.Indicators)-1]

	return model.StockPrice{
		Ticker:    ticker,
		Price:     latest.PriceClose,
		Volume:    latest.Volume,
		Timestamp: latest.Date,
	}, nil
}

// HistoricalPrices returns the daily OHLCV series for a ticker over a named
// period such as "1mo" or "1y". Unknown periods are rejected before any
// network call; lookup failures surface as ErrPriceNotFound.
func (s *PriceService) HistoricalPrices(ticker, period string) (yahoo.PriceChart, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return yahoo.PriceChart{}, apperrors.ErrInvalidTicker
	}
	if !yahoo.ValidPeriods[period] {
		return yahoo.PriceChart{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidPeriod, period)
	}

	raw, err := s.yahooClient.QueryYahooRangeSymbol(ticker, period)
	if err != nil {
		return yahoo.PriceChart{}, fmt.Errorf("%w: %s: %v", apperrors.ErrPriceNotFound, ticker, err)
	}

	chart, err := s.yahooClient.ParseChart(raw)
	if err != nil {
		return yahoo.PriceChart{}, fmt.Errorf("%w: %s: %v", apperrors.ErrPriceNotFound, ticker, err)
	}

	return chart, nil
}

// StockInfo returns descriptive metadata for a ticker. The company name
// falls back from the long name to the short name to the ticker itself,
// since the chart API omits names for some instruments. Lookup failures
// surface as ErrPriceNotFound.
func (s *PriceService) StockInfo(ticker string) (model.StockInfo, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return model.StockInfo{}, apperrors.ErrInvalidTicker
	}

	raw, err := s.yahooClient.QueryYahooFiveDaySymbol(ticker)
	if err != nil {
		return model.StockInfo{}, fmt.Errorf("%w: %s: %v", apperrors.ErrPriceNotFound, ticker, err)
	}

	chart, err := s.yahooClient.ParseChart(raw)
	if err != nil {
		return model.StockInfo{}, fmt.Errorf("%w: %s: %v", apperrors.ErrPriceNotFound, ticker, err)
	}

	name := chart.LongName
	if name == "" {
		name = chart.Shortname
	}
	if name == "" {
		name = ticker
	}

	exchange := chart.FullExchangeName
	if exchange == "" {
		exchange = chart.ExchangeName
	}

	return model.StockInfo{
		Ticker:      ticker,
		CompanyName: name,
		Exchange:    exchange,
		Currency:    chart.Currency,
	}, nil
}

// StoredPrices returns the cached quote rows for a ticker, oldest first.
func (s *PriceService) StoredPrices(ticker string) ([]model.StockPrice, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, apperrors.ErrInvalidTicker
	}

	return s.priceRepo.GetPricesPerTicker(ticker)
}

// HeldTickers returns the distinct tickers appearing in any ledger.
func (s *PriceService) HeldTickers() ([]string, error) {
	return s.transactionRepo.GetHeldTickers()
}

// RefreshPrices fetches current quotes for the given tickers and persists
// them to the stock_price cache in one batch. When tickers is empty, all
// held tickers are refreshed. Fetches run concurrently but bounded; a
// ticker whose lookup fails is reported as false in the result map without
// failing the whole refresh. All successful quotes share one timestamp so
// a refresh reads as a single observation.
func (s *PriceService) RefreshPrices(ctx context.Context, tickers []string) (map[string]bool, error) {
	if len(tickers) == 0 {
		held, err := s.transactionRepo.GetHeldTickers()
		if err != nil {
			return nil, fmt.Errorf("failed to determine held tickers: %w", err)
		}
		tickers = held
	}

	results := make(map[string]bool, len(tickers))
	if len(tickers) == 0 {
		return results, nil
	}

	timestamp := time.Now().UTC()

	var mu sync.Mutex
	var prices []model.StockPrice

	// The group context only governs the fetches; the batch insert below
	// must still see the caller's context after Wait cancels gctx.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(refreshConcurrency)

	for _, ticker := range tickers {
		ticker := strings.ToUpper(strings.TrimSpace(ticker))

		mu.Lock()
		results[ticker] = false
		mu.Unlock()

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			quote, err := s.CurrentPrice(ticker)
			if err != nil {
				log.Printf("price refresh: could not fetch %s: %v", ticker, err)
				return nil
			}

			mu.Lock()
			prices = append(prices, model.StockPrice{
				ID:        uuid.New().String(),
				Ticker:    ticker,
				Price:     quote.Price,
				Volume:    quote.Volume,
				Timestamp: timestamp,
			})
			results[ticker] = true
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("price refresh interrupted: %w", err)
	}

	if err := s.priceRepo.InsertPrices(ctx, prices); err != nil {
		return nil, err
	}

	return results, nil
}
