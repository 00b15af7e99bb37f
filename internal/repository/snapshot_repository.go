package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dkersten/stock-portfolio-tracker/internal/model"
)

// SnapshotRepository provides data access methods for the portfolio_snapshot table.
// Snapshots are append-only; rows are removed only by cascading portfolio deletion.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// InsertSnapshot appends a snapshot row.
func (s *SnapshotRepository) InsertSnapshot(ctx context.Context, snapshot *model.Snapshot) error {
	query := `
		INSERT INTO portfolio_snapshot (id, portfolio_id, total_value, snapshot_date)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		snapshot.ID,
		snapshot.PortfolioID,
		snapshot.TotalValue,
		snapshot.SnapshotDate.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	return nil
}

// GetSnapshotsPerPortfolio retrieves all snapshots for a portfolio,
// ordered ascending by snapshot date. Returns an empty slice if none exist.
func (s *SnapshotRepository) GetSnapshotsPerPortfolio(portfolioID string) ([]model.Snapshot, error) {
	query := `
		SELECT id, portfolio_id, total_value, snapshot_date
		FROM portfolio_snapshot
		WHERE portfolio_id = ?
		ORDER BY snapshot_date ASC, rowid ASC
	`

	rows, err := s.db.Query(query, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio_snapshot table: %w", err)
	}
	defer rows.Close()

	snapshots := []model.Snapshot{}

	for rows.Next() {
		var snapshot model.Snapshot
		var dateStr string

		err := rows.Scan(
			&snapshot.ID,
			&snapshot.PortfolioID,
			&snapshot.TotalValue,
			&dateStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan portfolio_snapshot table results: %w", err)
		}

		snapshot.SnapshotDate, err = ParseTime(dateStr)
		if err != nil || snapshot.SnapshotDate.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio_snapshot table: %w", err)
	}

	return snapshots, nil
}
