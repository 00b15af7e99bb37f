package request

// RefreshPricesRequest represents the request body for a bulk price refresh.
// When Tickers is empty, the refresh covers every ticker held in any ledger.
type RefreshPricesRequest struct {
	Tickers []string `json:"tickers,omitempty"`
}
