package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/dkersten/stock-portfolio-tracker/internal/api/request"
	"github.com/dkersten/stock-portfolio-tracker/internal/model"
)

// ValidTransactionType contains the allowed transaction type values.
// The ledger records ownership changes only, so buys and sells are the
// whole vocabulary.
var ValidTransactionType = map[string]bool{
	model.TransactionTypeBuy:  true,
	model.TransactionTypeSell: true,
}

// ValidateCreateTransaction validates a transaction creation request.
// Checks all required fields and validates their formats and constraints.
//
// Required fields:
//   - portfolioId: Must be a valid UUID
//   - ticker: Must be non-empty, 10 characters or less
//   - type: Must be buy or sell (case-insensitive)
//   - shares: Must be positive
//   - pricePerShare: Must be positive
//   - date: Must be in YYYY-MM-DD format
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.PortfolioID); err != nil {
		return err
	}

	if strings.TrimSpace(req.Ticker) == "" {
		errors["ticker"] = "ticker is required"
	} else if len(strings.TrimSpace(req.Ticker)) > 10 {
		errors["ticker"] = "ticker must be 10 characters or less"
	}

	transactionType := strings.ToLower(strings.TrimSpace(req.Type))
	if transactionType == "" {
		errors["type"] = "type is required"
	} else if !ValidTransactionType[transactionType] {
		errors["type"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if req.Shares <= 0.0 {
		errors["shares"] = "shares must be positive"
	}

	if req.PricePerShare <= 0.0 {
		errors["pricePerShare"] = "pricePerShare must be positive"
	}

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		errors["date"] = err.Error()
	}

	if len(req.Notes) > 200 {
		errors["notes"] = "notes must be 200 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
