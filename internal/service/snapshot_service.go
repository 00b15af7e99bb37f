package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dkersten/stock-portfolio-tracker/internal/model"
	"github.com/dkersten/stock-portfolio-tracker/internal/repository"
)

// SnapshotService records and lists point-in-time valuations of a portfolio.
type SnapshotService struct {
	performanceService *PerformanceService
	portfolioRepo      *repository.PortfolioRepository
	snapshotRepo       *repository.SnapshotRepository
}

// NewSnapshotService creates a new SnapshotService with the provided dependencies.
func NewSnapshotService(
	performanceService *PerformanceService,
	portfolioRepo *repository.PortfolioRepository,
	snapshotRepo *repository.SnapshotRepository,
) *SnapshotService {
	return &SnapshotService{
		performanceService: performanceService,
		portfolioRepo:      portfolioRepo,
		snapshotRepo:       snapshotRepo,
	}
}

// RecordSnapshot evaluates the portfolio's current aggregate market value and
// persists it stamped with the current time. Evaluation happens first; if it
// fails nothing is written, so a failed snapshot never leaves a partial
// record. A portfolio with no positions is still a valid subject: its zero
// valuation is recorded.
func (s *SnapshotService) RecordSnapshot(ctx context.Context, portfolioID string) (*model.Snapshot, error) {
	performance, err := s.performanceService.EvaluatePerformance(portfolioID)
	if err != nil {
		return nil, err
	}

	snapshot := &model.Snapshot{
		ID:           uuid.New().String(),
		PortfolioID:  portfolioID,
		TotalValue:   performance.TotalValue,
		SnapshotDate: time.Now().UTC(),
	}

	if err := s.snapshotRepo.InsertSnapshot(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to record snapshot: %w", err)
	}

	return snapshot, nil
}

// ListSnapshots returns all snapshots for a portfolio, ordered ascending by
// timestamp. Returns ErrPortfolioNotFound for a missing portfolio so callers
// can distinguish it from a portfolio that simply has no snapshots yet.
func (s *SnapshotService) ListSnapshots(portfolioID string) ([]model.Snapshot, error) {
	if _, err := s.portfolioRepo.GetPortfolioOnID(portfolioID); err != nil {
		return nil, err
	}

	return s.snapshotRepo.GetSnapshotsPerPortfolio(portfolioID)
}
