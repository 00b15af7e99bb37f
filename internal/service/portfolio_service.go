package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dkersten/stock-portfolio-tracker/internal/api/request"
	"github.com/dkersten/stock-portfolio-tracker/internal/model"
	"github.com/dkersten/stock-portfolio-tracker/internal/repository"
)

// PortfolioService handles portfolio lifecycle operations.
type PortfolioService struct {
	portfolioRepo *repository.PortfolioRepository
}

// NewPortfolioService creates a new PortfolioService with the provided repository dependencies.
func NewPortfolioService(portfolioRepo *repository.PortfolioRepository) *PortfolioService {
	return &PortfolioService{
		portfolioRepo: portfolioRepo,
	}
}

// CreatePortfolio creates a new named portfolio.
func (s *PortfolioService) CreatePortfolio(ctx context.Context, req request.CreatePortfolioRequest) (*model.Portfolio, error) {
	portfolio := &model.Portfolio{
		ID:        uuid.New().String(),
		Name:      req.Name,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.portfolioRepo.InsertPortfolio(ctx, portfolio); err != nil {
		return nil, fmt.Errorf("failed to create portfolio: %w", err)
	}

	return portfolio, nil
}

// GetAllPortfolios retrieves all portfolios ordered by creation time.
func (s *PortfolioService) GetAllPortfolios() ([]model.Portfolio, error) {
	return s.portfolioRepo.GetPortfolios()
}

// GetPortfolio retrieves a single portfolio by ID.
// Returns ErrPortfolioNotFound if it does not exist.
func (s *PortfolioService) GetPortfolio(portfolioID string) (model.Portfolio, error) {
	return s.portfolioRepo.GetPortfolioOnID(portfolioID)
}

// DeletePortfolio removes a portfolio together with its transactions and
// snapshots (cascading delete). Returns ErrPortfolioNotFound if it does not exist.
func (s *PortfolioService) DeletePortfolio(ctx context.Context, portfolioID string) error {
	return s.portfolioRepo.DeletePortfolio(ctx, portfolioID)
}
