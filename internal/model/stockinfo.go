package model

// StockInfo is descriptive metadata about a listed instrument, assembled
// from the quote source's chart metadata. The chart API does not report
// sector or market cap, so the record is limited to identity fields.
type StockInfo struct {
	Ticker      string `json:"ticker"`
	CompanyName string `json:"companyName"`
	Exchange    string `json:"exchange,omitempty"`
	Currency    string `json:"currency"`
}
