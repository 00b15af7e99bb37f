package model

import "time"

// Transaction types accepted by the ledger.
const (
	TransactionTypeBuy  = "buy"
	TransactionTypeSell = "sell"
)

// Transaction represents a single buy or sell event in a portfolio's ledger.
// Transactions are immutable once written; they are removed only by cascading
// portfolio deletion.
type Transaction struct {
	ID            string    `json:"id"`
	PortfolioID   string    `json:"portfolioId"`
	Ticker        string    `json:"ticker"`
	Type          string    `json:"type"`
	Shares        float64   `json:"shares"`
	PricePerShare float64   `json:"pricePerShare"`
	Date          time.Time `json:"date"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}
