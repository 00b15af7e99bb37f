package testutil

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dkersten/stock-portfolio-tracker/internal/model"
)

// MakeID returns a fresh UUID string for test entities.
func MakeID() string {
	return uuid.New().String()
}

// PortfolioBuilder provides a fluent interface for creating test portfolios.
//
// Example usage:
//
//	// Simple creation with defaults
//	portfolio := testutil.NewPortfolio().Build(t, db)
//
//	// Customized portfolio
//	portfolio := testutil.NewPortfolio().
//	    WithName("Custom Portfolio").
//	    Build(t, db)
type PortfolioBuilder struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// NewPortfolio creates a PortfolioBuilder with sensible defaults.
func NewPortfolio() *PortfolioBuilder {
	id := MakeID()
	return &PortfolioBuilder{
		ID:        id,
		Name:      fmt.Sprintf("Test Portfolio %s", id[:8]),
		CreatedAt: time.Now().UTC(),
	}
}

// WithID sets a custom ID.
func (b *PortfolioBuilder) WithID(id string) *PortfolioBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *PortfolioBuilder) WithName(name string) *PortfolioBuilder {
	b.Name = name
	return b
}

// Build creates the portfolio in the database and returns it.
func (b *PortfolioBuilder) Build(t *testing.T, db *sql.DB) model.Portfolio {
	t.Helper()

	query := `
		INSERT INTO portfolio (id, name, created_at)
		VALUES (?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.CreatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test portfolio: %v", err)
	}

	return model.Portfolio{
		ID:        b.ID,
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
	}
}

// CreatePortfolio creates a portfolio with the given name and default values.
func CreatePortfolio(t *testing.T, db *sql.DB, name string) model.Portfolio {
	t.Helper()
	return NewPortfolio().WithName(name).Build(t, db)
}

// TransactionBuilder provides a fluent interface for creating test ledger entries.
//
// Example usage:
//
//	tx := testutil.NewTransaction(portfolio.ID).
//	    Buy("AAPL", 10, 150).
//	    OnDate("2024-01-15").
//	    Build(t, db)
type TransactionBuilder struct {
	ID            string
	PortfolioID   string
	Ticker        string
	Type          string
	Shares        float64
	PricePerShare float64
	Date          string
	Notes         string
	CreatedAt     time.Time
}

// NewTransaction creates a TransactionBuilder with sensible defaults:
// a buy of 10 shares of AAPL at 100.
func NewTransaction(portfolioID string) *TransactionBuilder {
	return &TransactionBuilder{
		ID:            MakeID(),
		PortfolioID:   portfolioID,
		Ticker:        "AAPL",
		Type:          model.TransactionTypeBuy,
		Shares:        10,
		PricePerShare: 100,
		Date:          "2024-01-15",
		CreatedAt:     time.Now().UTC(),
	}
}

// Buy configures the builder as a buy of the given ticker, shares and price.
func (b *TransactionBuilder) Buy(ticker string, shares, price float64) *TransactionBuilder {
	b.Type = model.TransactionTypeBuy
	b.Ticker = ticker
	b.Shares = shares
	b.PricePerShare = price
	return b
}

// Sell configures the builder as a sell of the given ticker, shares and price.
func (b *TransactionBuilder) Sell(ticker string, shares, price float64) *TransactionBuilder {
	b.Type = model.TransactionTypeSell
	b.Ticker = ticker
	b.Shares = shares
	b.PricePerShare = price
	return b
}

// OnDate sets the execution date (YYYY-MM-DD).
func (b *TransactionBuilder) OnDate(date string) *TransactionBuilder {
	b.Date = date
	return b
}

// WithNotes sets the free-text note.
func (b *TransactionBuilder) WithNotes(notes string) *TransactionBuilder {
	b.Notes = notes
	return b
}

// WithCreatedAt sets the insertion timestamp, used to control tie-breaking
// between transactions on the same date.
func (b *TransactionBuilder) WithCreatedAt(createdAt time.Time) *TransactionBuilder {
	b.CreatedAt = createdAt
	return b
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	query := `
		INSERT INTO "transaction" (id, portfolio_id, ticker, type, shares, price_per_share, date, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.PortfolioID, b.Ticker, b.Type, b.Shares, b.PricePerShare,
		b.Date, b.Notes, b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	date, err := time.Parse("2006-01-02", b.Date)
	if err != nil {
		t.Fatalf("Invalid test transaction date %q: %v", b.Date, err)
	}

	return model.Transaction{
		ID:            b.ID,
		PortfolioID:   b.PortfolioID,
		Ticker:        b.Ticker,
		Type:          b.Type,
		Shares:        b.Shares,
		PricePerShare: b.PricePerShare,
		Date:          date,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
	}
}

// SnapshotBuilder provides a fluent interface for creating test snapshots.
type SnapshotBuilder struct {
	ID           string
	PortfolioID  string
	TotalValue   float64
	SnapshotDate time.Time
}

// NewSnapshot creates a SnapshotBuilder with sensible defaults.
func NewSnapshot(portfolioID string) *SnapshotBuilder {
	return &SnapshotBuilder{
		ID:           MakeID(),
		PortfolioID:  portfolioID,
		TotalValue:   1000,
		SnapshotDate: time.Now().UTC(),
	}
}

// WithValue sets the aggregate value.
func (b *SnapshotBuilder) WithValue(value float64) *SnapshotBuilder {
	b.TotalValue = value
	return b
}

// At sets the snapshot timestamp.
func (b *SnapshotBuilder) At(date time.Time) *SnapshotBuilder {
	b.SnapshotDate = date
	return b
}

// Build creates the snapshot in the database and returns it.
func (b *SnapshotBuilder) Build(t *testing.T, db *sql.DB) model.Snapshot {
	t.Helper()

	query := `
		INSERT INTO portfolio_snapshot (id, portfolio_id, total_value, snapshot_date)
		VALUES (?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.PortfolioID, b.TotalValue, b.SnapshotDate.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test snapshot: %v", err)
	}

	return model.Snapshot{
		ID:           b.ID,
		PortfolioID:  b.PortfolioID,
		TotalValue:   b.TotalValue,
		SnapshotDate: b.SnapshotDate,
	}
}

// CountTransactions returns the number of ledger rows for a portfolio,
// for asserting that rejected requests wrote nothing.
func CountTransactions(t *testing.T, db *sql.DB, portfolioID string) int {
	t.Helper()

	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM "transaction" WHERE portfolio_id = ?`, portfolioID).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count transactions: %v", err)
	}

	return count
}

// CountSnapshots returns the number of snapshot rows for a portfolio.
func CountSnapshots(t *testing.T, db *sql.DB, portfolioID string) int {
	t.Helper()

	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM portfolio_snapshot WHERE portfolio_id = ?`, portfolioID).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count snapshots: %v", err)
	}

	return count
}
