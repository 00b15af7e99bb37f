package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dkersten/stock-portfolio-tracker/internal/model"
)

// PriceRepository provides data access methods for the stock_price table,
// the cache of fetched quotes written by the price refresh job.
type PriceRepository struct {
	db *sql.DB
}

// NewPriceRepository creates a new PriceRepository with the provided database connection.
func NewPriceRepository(db *sql.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

// InsertPrices writes a batch of quote rows in a single database transaction,
// so a failed refresh never leaves a partial batch behind.
func (s *PriceRepository) InsertPrices(ctx context.Context, prices []model.StockPrice) error {
	if len(prices) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	query := `
		INSERT INTO stock_price (id, ticker, price, volume, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`

	for _, p := range prices {
		var volume any
		if p.Volume > 0 {
			volume = p.Volume
		}

		_, err := tx.ExecContext(ctx, query,
			p.ID,
			p.Ticker,
			p.Price,
			volume,
			p.Timestamp.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("failed to insert stock price: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit stock prices: %w", err)
	}

	return nil
}

// GetPricesPerTicker retrieves all cached quotes for a ticker,
// ordered ascending by timestamp. Returns an empty slice if none exist.
func (s *PriceRepository) GetPricesPerTicker(ticker string) ([]model.StockPrice, error) {
	query := `
		SELECT id, ticker, price, volume, timestamp
		FROM stock_price
		WHERE ticker = ?
		ORDER BY timestamp ASC, rowid ASC
	`

	rows, err := s.db.Query(query, ticker)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock_price table: %w", err)
	}
	defer rows.Close()

	prices := []model.StockPrice{}

	for rows.Next() {
		var p model.StockPrice
		var timestampStr string
		var volume sql.NullInt64

		err := rows.Scan(&p.ID, &p.Ticker, &p.Price, &volume, &timestampStr)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock_price table results: %w", err)
		}

		p.Timestamp, err = ParseTime(timestampStr)
		if err != nil || p.Timestamp.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		if volume.Valid {
			p.Volume = volume.Int64
		}

		prices = append(prices, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock_price table: %w", err)
	}

	return prices, nil
}
