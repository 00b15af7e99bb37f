package testutil

import (
	"database/sql"
	"testing"

	"github.com/dkersten/stock-portfolio-tracker/internal/repository"
	"github.com/dkersten/stock-portfolio-tracker/internal/service"
	"github.com/dkersten/stock-portfolio-tracker/internal/yahoo"
)

func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()

	portfolioRepo := repository.NewPortfolioRepository(db)

	return service.NewPortfolioService(portfolioRepo)
}

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)
	portfolioRepo := repository.NewPortfolioRepository(db)

	return service.NewTransactionService(transactionRepo, portfolioRepo)
}

func NewTestHoldingsService(t *testing.T, db *sql.DB) *service.HoldingsService {
	t.Helper()

	portfolioRepo := repository.NewPortfolioRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewHoldingsService(portfolioRepo, transactionRepo)
}

func NewTestPerformanceService(t *testing.T, db *sql.DB, quotes yahoo.Client) *service.PerformanceService {
	t.Helper()

	return service.NewPerformanceService(NewTestHoldingsService(t, db), quotes)
}

func NewTestSnapshotService(t *testing.T, db *sql.DB, quotes yahoo.Client) *service.SnapshotService {
	t.Helper()

	portfolioRepo := repository.NewPortfolioRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	return service.NewSnapshotService(
		NewTestPerformanceService(t, db, quotes),
		portfolioRepo,
		snapshotRepo,
	)
}

func NewTestPriceService(t *testing.T, db *sql.DB, quotes yahoo.Client) *service.PriceService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)
	priceRepo := repository.NewPriceRepository(db)

	return service.NewPriceService(transactionRepo, priceRepo, quotes)
}
