package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dkersten/stock-portfolio-tracker/internal/apperrors"
	"github.com/dkersten/stock-portfolio-tracker/internal/model"
)

// PortfolioRepository provides data access methods for the portfolio table.
type PortfolioRepository struct {
	db *sql.DB
}

// NewPortfolioRepository creates a new PortfolioRepository with the provided database connection.
func NewPortfolioRepository(db *sql.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

// InsertPortfolio writes a new portfolio row.
func (s *PortfolioRepository) InsertPortfolio(ctx context.Context, p *model.Portfolio) error {
	query := `
		INSERT INTO portfolio (id, name, created_at)
		VALUES (?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query, p.ID, p.Name, p.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert portfolio: %w", err)
	}

	return nil
}

// GetPortfolios retrieves all portfolios ordered by creation time.
// Returns an empty slice if none exist.
func (s *PortfolioRepository) GetPortfolios() ([]model.Portfolio, error) {
	query := `
		SELECT id, name, created_at
		FROM portfolio
		ORDER BY created_at ASC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio table: %w", err)
	}
	defer rows.Close()

	portfolios := []model.Portfolio{}

	for rows.Next() {
		var p model.Portfolio
		var createdAtStr string

		err := rows.Scan(&p.ID, &p.Name, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to scan portfolio table results: %w", err)
		}

		p.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		portfolios = append(portfolios, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio table: %w", err)
	}

	return portfolios, nil
}

// GetPortfolioOnID retrieves a single portfolio by ID.
// Returns apperrors.ErrPortfolioNotFound if no row exists.
func (s *PortfolioRepository) GetPortfolioOnID(portfolioID string) (model.Portfolio, error) {
	query := `
		SELECT id, name, created_at
		FROM portfolio
		WHERE id = ?
	`
	var p model.Portfolio
	var createdAtStr string

	err := s.db.QueryRow(query, portfolioID).Scan(&p.ID, &p.Name, &createdAtStr)
	if err == sql.ErrNoRows {
		return model.Portfolio{}, apperrors.ErrPortfolioNotFound
	}
	if err != nil {
		return model.Portfolio{}, fmt.Errorf("failed to query portfolio: %w", err)
	}

	p.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Portfolio{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return p, nil
}

// PortfolioExists reports whether a portfolio row exists for the given ID.
func (s *PortfolioRepository) PortfolioExists(portfolioID string) (bool, error) {
	var exists bool

	err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM portfolio WHERE id = ?)`, portfolioID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to query portfolio existence: %w", err)
	}

	return exists, nil
}

// DeletePortfolio removes a portfolio row. Transactions and snapshots are
// removed by the ON DELETE CASCADE constraints on their foreign keys.
// Returns apperrors.ErrPortfolioNotFound if no row was deleted.
func (s *PortfolioRepository) DeletePortfolio(ctx context.Context, portfolioID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM portfolio WHERE id = ?`, portfolioID)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPortfolioNotFound
	}

	return nil
}
