package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dkersten/stock-portfolio-tracker/internal/api"
	"github.com/dkersten/stock-portfolio-tracker/internal/config"
	"github.com/dkersten/stock-portfolio-tracker/internal/database"
	"github.com/dkersten/stock-portfolio-tracker/internal/repository"
	"github.com/dkersten/stock-portfolio-tracker/internal/service"
	"github.com/dkersten/stock-portfolio-tracker/internal/yahoo"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	portfolioRepo := repository.NewPortfolioRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	priceRepo := repository.NewPriceRepository(db)

	yahooClient := yahoo.NewFinanceClient()

	// Create services
	systemService := service.NewSystemService(db)
	portfolioService := service.NewPortfolioService(portfolioRepo)
	transactionService := service.NewTransactionService(transactionRepo, portfolioRepo)
	holdingsService := service.NewHoldingsService(portfolioRepo, transactionRepo)
	performanceService := service.NewPerformanceService(holdingsService, yahooClient)
	snapshotService := service.NewSnapshotService(performanceService, portfolioRepo, snapshotRepo)
	priceService := service.NewPriceService(transactionRepo, priceRepo, yahooClient)

	// Scheduled jobs (disabled unless a schedule is configured)
	scheduler := cron.New()
	if cfg.Scheduler.PriceRefreshSchedule != "" {
		_, err := scheduler.AddFunc(cfg.Scheduler.PriceRefreshSchedule, func() {
			results, err := priceService.RefreshPrices(context.Background(), nil)
			if err != nil {
				log.Printf("Scheduled price refresh failed: %v", err)
				return
			}
			log.Printf("Scheduled price refresh completed for %d tickers", len(results))
		})
		if err != nil {
			log.Fatalf("Invalid price refresh schedule %q: %v", cfg.Scheduler.PriceRefreshSchedule, err)
		}
	}
	if cfg.Scheduler.SnapshotSchedule != "" {
		_, err := scheduler.AddFunc(cfg.Scheduler.SnapshotSchedule, func() {
			portfolios, err := portfolioService.GetAllPortfolios()
			if err != nil {
				log.Printf("Scheduled snapshot failed to list portfolios: %v", err)
				return
			}
			for _, p := range portfolios {
				if _, err := snapshotService.RecordSnapshot(context.Background(), p.ID); err != nil {
					log.Printf("Scheduled snapshot failed for portfolio %s: %v", p.ID, err)
				}
			}
		})
		if err != nil {
			log.Fatalf("Invalid snapshot schedule %q: %v", cfg.Scheduler.SnapshotSchedule, err)
		}
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(
		systemService,
		portfolioService,
		holdingsService,
		performanceService,
		transactionService,
		snapshotService,
		priceService,
		cfg,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
