package model

// Position represents a per-ticker aggregate derived from a portfolio's
// transaction ledger. Positions are computed fresh on every request and are
// never persisted.
//
// TotalCost and Shares are co-derived: a sell reduces both proportionally,
// which keeps AvgCostBasis of the remainder unchanged across partial sells.
type Position struct {
	Ticker       string  `json:"ticker"`
	Shares       float64 `json:"shares"`
	AvgCostBasis float64 `json:"avgCostBasis"`
	TotalCost    float64 `json:"totalCost"`
}

// HoldingsResult is the output of a holdings computation: the open positions
// plus any anomalies observed while folding the ledger (currently only
// over-sells against an empty position).
type HoldingsResult struct {
	Positions []Position `json:"positions"`
	Anomalies []string   `json:"anomalies,omitempty"`
}

// PerformanceRecord is a Position enriched with a live quote.
type PerformanceRecord struct {
	Ticker       string  `json:"ticker"`
	Shares       float64 `json:"shares"`
	AvgCostBasis float64 `json:"avgCostBasis"`
	CurrentPrice float64 `json:"currentPrice"`
	TotalCost    float64 `json:"totalCost"`
	CurrentValue float64 `json:"currentValue"`
	GainLossAbs  float64 `json:"gainLossAbs"`
	GainLossPct  float64 `json:"gainLossPct"`
}

// PortfolioPerformance aggregates the priced positions of a portfolio.
// Positions whose price lookup failed are excluded from both the list and
// the aggregate sums.
type PortfolioPerformance struct {
	Positions   []PerformanceRecord `json:"positions"`
	TotalCost   float64             `json:"totalCost"`
	TotalValue  float64             `json:"totalValue"`
	GainLossAbs float64             `json:"gainLossAbs"`
	GainLossPct float64             `json:"gainLossPct"`
}
