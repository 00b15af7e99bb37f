package request

// CreateTransactionRequest represents the request body for appending a
// buy or sell event to a portfolio's ledger.
type CreateTransactionRequest struct {
	PortfolioID   string  `json:"portfolioId"`
	Ticker        string  `json:"ticker"`
	Type          string  `json:"type"`
	Shares        float64 `json:"shares"`
	PricePerShare float64 `json:"pricePerShare"`
	Date          string  `json:"date"`
	Notes         string  `json:"notes,omitempty"`
}
