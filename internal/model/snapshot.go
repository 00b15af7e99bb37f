package model

import "time"

// Snapshot is an immutable, timestamped record of a portfolio's aggregate
// market value, written only by explicit user action or the snapshot job.
type Snapshot struct {
	ID           string    `json:"id"`
	PortfolioID  string    `json:"portfolioId"`
	TotalValue   float64   `json:"totalValue"`
	SnapshotDate time.Time `json:"snapshotDate"`
}
