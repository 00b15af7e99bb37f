package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dkersten/stock-portfolio-tracker/internal/api/handlers"
	custommiddleware "github.com/dkersten/stock-portfolio-tracker/internal/api/middleware"
	"github.com/dkersten/stock-portfolio-tracker/internal/config"
	"github.com/dkersten/stock-portfolio-tracker/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	portfolioService *service.PortfolioService,
	holdingsService *service.HoldingsService,
	performanceService *service.PerformanceService,
	transactionService *service.TransactionService,
	snapshotService *service.SnapshotService,
	priceService *service.PriceService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(portfolioService, holdingsService, performanceService)
			snapshotHandler := handlers.NewSnapshotHandler(snapshotService)

			r.Get("/", portfolioHandler.Portfolios)
			r.Post("/", portfolioHandler.CreatePortfolio)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", portfolioHandler.GetPortfolio)
				r.Delete("/", portfolioHandler.DeletePortfolio)
				r.Get("/holdings", portfolioHandler.Holdings)
				r.Get("/performance", portfolioHandler.Performance)
				r.Post("/snapshot", snapshotHandler.RecordSnapshot)
				r.Get("/snapshots", snapshotHandler.Snapshots)
			})
		})

		r.Route("/transaction", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(transactionService)

			r.Post("/", transactionHandler.CreateTransaction)

			r.Route("/portfolio/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", transactionHandler.TransactionsPerPortfolio)
			})
		})

		r.Route("/price", func(r chi.Router) {
			priceHandler := handlers.NewPriceHandler(priceService)

			r.Post("/refresh", priceHandler.RefreshPrices)
			r.Get("/{ticker}", priceHandler.CurrentPrice)
			r.Get("/{ticker}/history", priceHandler.HistoricalPrices)
			r.Get("/{ticker}/info", priceHandler.StockInfo)
			r.Get("/{ticker}/stored", priceHandler.StoredPrices)
		})
	})

	return r
}
