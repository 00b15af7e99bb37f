package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dkersten/stock-portfolio-tracker/internal/api/request"
	"github.com/dkersten/stock-portfolio-tracker/internal/model"
	"github.com/dkersten/stock-portfolio-tracker/internal/repository"
)

// TransactionService handles ledger-related business logic operations.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	portfolioRepo   *repository.PortfolioRepository
}

// NewTransactionService creates a new TransactionService with the provided repository dependencies.
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
	portfolioRepo *repository.PortfolioRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		portfolioRepo:   portfolioRepo,
	}
}

// CreateTransaction appends a validated buy or sell event to a portfolio's
// ledger. The request must already have passed validation.ValidateCreateTransaction;
// this method additionally checks that the portfolio exists before writing,
// so a rejected request never leaves a row behind. The ticker is normalized
// to upper case and the type to lower case before storage.
func (s *TransactionService) CreateTransaction(ctx context.Context, req request.CreateTransactionRequest) (*model.Transaction, error) {
	if _, err := s.portfolioRepo.GetPortfolioOnID(req.PortfolioID); err != nil {
		return nil, err
	}

	transactionDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse transaction date: %w", err)
	}

	transaction := &model.Transaction{
		ID:            uuid.New().String(),
		PortfolioID:   req.PortfolioID,
		Ticker:        strings.ToUpper(strings.TrimSpace(req.Ticker)),
		Type:          strings.ToLower(strings.TrimSpace(req.Type)),
		Shares:        req.Shares,
		PricePerShare: req.PricePerShare,
		Date:          transactionDate,
		Notes:         req.Notes,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.transactionRepo.InsertTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return transaction, nil
}

// GetTransactionsPerPortfolio retrieves the full ledger for a portfolio,
// oldest first. Returns ErrPortfolioNotFound for a missing portfolio.
func (s *TransactionService) GetTransactionsPerPortfolio(portfolioID string) ([]model.Transaction, error) {
	if _, err := s.portfolioRepo.GetPortfolioOnID(portfolioID); err != nil {
		return nil, err
	}

	return s.transactionRepo.GetTransactionsPerPortfolio(portfolioID)
}
