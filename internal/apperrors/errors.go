package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist. Callers use
// them to distinguish "does not exist" from "exists but is empty".
var (
	// ErrPortfolioNotFound indicates that a portfolio with the given ID does not exist.
	ErrPortfolioNotFound = errors.New("portfolio not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrPriceNotFound indicates that the price source returned no usable data
	// for a ticker. The ticker is treated as unpriceable, not as a system fault.
	ErrPriceNotFound = errors.New("price not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidTransactionType indicates a transaction type other than buy or sell.
	ErrInvalidTransactionType = errors.New("transaction type must be buy or sell")

	// ErrNonPositiveShares indicates a share quantity of zero or less.
	ErrNonPositiveShares = errors.New("shares must be positive")

	// ErrNonPositivePrice indicates a price per share of zero or less.
	ErrNonPositivePrice = errors.New("price per share must be positive")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrInvalidTicker indicates an empty or malformed ticker symbol.
	ErrInvalidTicker = errors.New("invalid ticker symbol")

	// ErrInvalidPeriod indicates an unsupported historical price period.
	ErrInvalidPeriod = errors.New("invalid period")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These indicate that an operation failed, but not due to
// missing entities or validation issues.
var (
	// Portfolio operation errors
	ErrFailedToRetrievePortfolios = errors.New("failed to retrieve portfolios")
	ErrFailedToRetrievePortfolio  = errors.New("failed to retrieve portfolio")
	ErrFailedToCreatePortfolio    = errors.New("failed to create portfolio")
	ErrFailedToDeletePortfolio    = errors.New("failed to delete portfolio")

	// Transaction operation errors
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToCreateTransaction    = errors.New("failed to create transaction")

	// Holdings and performance operation errors
	ErrFailedToComputeHoldings     = errors.New("failed to compute holdings")
	ErrFailedToEvaluatePerformance = errors.New("failed to evaluate performance")
	ErrFailedToRecordSnapshot      = errors.New("failed to record snapshot")
	ErrFailedToRetrieveSnapshots   = errors.New("failed to retrieve snapshots")

	// Price operation errors
	ErrFailedToRetrievePrice        = errors.New("failed to retrieve price")
	ErrFailedToRetrievePriceHistory = errors.New("failed to retrieve price history")
	ErrFailedToRefreshPrices        = errors.New("failed to refresh prices")
)
