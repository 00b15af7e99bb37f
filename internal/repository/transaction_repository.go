package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dkersten/stock-portfolio-tracker/internal/model"
)

// TransactionRepository provides data access methods for the transaction table.
// The table is the portfolio ledger: append-only, ordered retrieval by date.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// InsertTransaction appends a transaction to the ledger.
func (s *TransactionRepository) InsertTransaction(ctx context.Context, t *model.Transaction) error {
	query := `
		INSERT INTO "transaction" (id, portfolio_id, ticker, type, shares, price_per_share, date, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		t.ID,
		t.PortfolioID,
		t.Ticker,
		t.Type,
		t.Shares,
		t.PricePerShare,
		t.Date.UTC().Format("2006-01-02"),
		t.Notes,
		t.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// GetTransactionsPerPortfolio retrieves the full ledger for a portfolio,
// oldest first. Date ties are broken by insertion order (created_at, then
// rowid), which the holdings fold relies on. Returns an empty slice if the
// portfolio has no transactions.
func (s *TransactionRepository) GetTransactionsPerPortfolio(portfolioID string) ([]model.Transaction, error) {
	query := `
		SELECT id, portfolio_id, ticker, type, shares, price_per_share, date, notes, created_at
		FROM "transaction"
		WHERE portfolio_id = ?
		ORDER BY date ASC, created_at ASC, rowid ASC
	`

	rows, err := s.db.Query(query, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}

	for rows.Next() {
		var t model.Transaction
		var dateStr, createdAtStr string
		var notes sql.NullString

		err := rows.Scan(
			&t.ID,
			&t.PortfolioID,
			&t.Ticker,
			&t.Type,
			&t.Shares,
			&t.PricePerShare,
			&dateStr,
			&notes,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction table results: %w", err)
		}

		t.Date, err = ParseTime(dateStr)
		if err != nil || t.Date.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		t.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil || t.CreatedAt.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		if notes.Valid {
			t.Notes = notes.String
		}

		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return transactions, nil
}

// CountTransactions returns the number of ledger rows for a portfolio.
func (s *TransactionRepository) CountTransactions(portfolioID string) (int, error) {
	var count int

	err := s.db.QueryRow(`SELECT COUNT(*) FROM "transaction" WHERE portfolio_id = ?`, portfolioID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	return count, nil
}

// GetHeldTickers returns the distinct tickers appearing in any ledger,
// used by the price refresh job to decide what to fetch.
func (s *TransactionRepository) GetHeldTickers() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT ticker FROM "transaction" ORDER BY ticker ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct tickers: %w", err)
	}
	defer rows.Close()

	tickers := []string{}

	for rows.Next() {
		var ticker string
		if err := rows.Scan(&ticker); err != nil {
			return nil, fmt.Errorf("failed to scan ticker: %w", err)
		}
		tickers = append(tickers, ticker)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tickers: %w", err)
	}

	return tickers, nil
}
