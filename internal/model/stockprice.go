package model

import "time"

// StockPrice is a cached quote written by the price refresh job.
// Volume is nullable in the source data; 0 means "not reported".
type StockPrice struct {
	ID        string    `json:"id"`
	Ticker    string    `json:"ticker"`
	Price     float64   `json:"price"`
	Volume    int64     `json:"volume,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
