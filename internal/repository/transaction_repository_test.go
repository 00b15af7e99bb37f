package repository_test

import (
	"testing"
	"time"

	"github.com/dkersten/stock-portfolio-tracker/internal/repository"
	"github.com/dkersten/stock-portfolio-tracker/internal/testutil"
)

// TestTransactionRepository_GetTransactionsPerPortfolio tests ledger ordering.
//
// WHY: The holdings fold processes the ledger strictly oldest first, with
// date ties broken by insertion order. If this ordering drifts, sells can
// fold before the buys that precede them and corrupt every derived position.
func TestTransactionRepository_GetTransactionsPerPortfolio(t *testing.T) {
	t.Run("orders by date ascending", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		repo := repository.NewTransactionRepository(db)

		portfolio := testutil.CreatePortfolio(t, db, "Ordered")
		// Inserted newest first on purpose.
		testutil.NewTransaction(portfolio.ID).Buy("AAPL", 1, 170).OnDate("2024-03-01").Build(t, db)
		testutil.NewTransaction(portfolio.ID).Buy("AAPL", 1, 160).OnDate("2024-02-01").Build(t, db)
		testutil.NewTransaction(portfolio.ID).Buy("AAPL", 1, 150).OnDate("2024-01-01").Build(t, db)

		// Execute
		transactions, err := repo.GetTransactionsPerPortfolio(portfolio.ID)

		// Assert
		if err != nil {
			t.Fatalf("GetTransactionsPerPortfolio() returned unexpected error: %v", err)
		}
		if len(transactions) != 3 {
			t.Fatalf("Expected 3 transactions, got %d", len(transactions))
		}

		wantPrices := []float64{150, 160, 170}
		for i, want := range wantPrices {
			if transactions[i].PricePerShare != want {
				t.Errorf("Transaction %d: expected price %v, got %v", i, want, transactions[i].PricePerShare)
			}
		}
	})

	t.Run("breaks date ties by created_at", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		repo := repository.NewTransactionRepository(db)

		portfolio := testutil.CreatePortfolio(t, db, "Tied")
		base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		testutil.NewTransaction(portfolio.ID).
			Sell("AAPL", 4, 95).OnDate("2024-03-01").WithCreatedAt(base.Add(time.Minute)).Build(t, db)
		testutil.NewTransaction(portfolio.ID).
			Buy("AAPL", 10, 90).OnDate("2024-03-01").WithCreatedAt(base).Build(t, db)

		// Execute
		transactions, err := repo.GetTransactionsPerPortfolio(portfolio.ID)

		// Assert
		if err != nil {
			t.Fatalf("GetTransactionsPerPortfolio() returned unexpected error: %v", err)
		}
		if len(transactions) != 2 {
			t.Fatalf("Expected 2 transactions, got %d", len(transactions))
		}
		if transactions[0].Type != "buy" || transactions[1].Type != "sell" {
			t.Errorf("Expected buy then sell by created_at, got %s then %s",
				transactions[0].Type, transactions[1].Type)
		}
	})

	t.Run("scopes results to the portfolio", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		repo := repository.NewTransactionRepository(db)

		mine := testutil.CreatePortfolio(t, db, "Mine")
		other := testutil.CreatePortfolio(t, db, "Other")
		testutil.NewTransaction(mine.ID).Buy("AAPL", 1, 150).Build(t, db)
		testutil.NewTransaction(other.ID).Buy("MSFT", 1, 300).Build(t, db)

		// Execute
		transactions, err := repo.GetTransactionsPerPortfolio(mine.ID)

		// Assert
		if err != nil {
			t.Fatalf("GetTransactionsPerPortfolio() returned unexpected error: %v", err)
		}
		if len(transactions) != 1 || transactions[0].Ticker != "AAPL" {
			t.Errorf("Expected only the portfolio's own ledger, got %v", transactions)
		}
	})

	t.Run("round-trips notes including empty", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		repo := repository.NewTransactionRepository(db)

		portfolio := testutil.CreatePortfolio(t, db, "Notes")
		testutil.NewTransaction(portfolio.ID).Buy("AAPL", 1, 150).OnDate("2024-01-01").Build(t, db)
		testutil.NewTransaction(portfolio.ID).
			Buy("AAPL", 1, 151).OnDate("2024-01-02").WithNotes("dip buy").Build(t, db)

		// Execute
		transactions, err := repo.GetTransactionsPerPortfolio(portfolio.ID)

		// Assert
		if err != nil {
			t.Fatalf("GetTransactionsPerPortfolio() returned unexpected error: %v", err)
		}
		if transactions[0].Notes != "" {
			t.Errorf("Expected empty notes, got %q", transactions[0].Notes)
		}
		if transactions[1].Notes != "dip buy" {
			t.Errorf("Expected notes 'dip buy', got %q", transactions[1].Notes)
		}
	})
}

// TestTransactionRepository_GetHeldTickers tests ticker enumeration.
//
// WHY: The scheduled price refresh derives its work list from this query;
// duplicates would mean duplicate fetches and duplicate cache rows.
func TestTransactionRepository_GetHeldTickers(t *testing.T) {
	t.Run("returns distinct tickers across portfolios", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		repo := repository.NewTransactionRepository(db)

		p1 := testutil.CreatePortfolio(t, db, "One")
		p2 := testutil.CreatePortfolio(t, db, "Two")
		testutil.NewTransaction(p1.ID).Buy("AAPL", 1, 150).Build(t, db)
		testutil.NewTransaction(p1.ID).Buy("MSFT", 1, 300).Build(t, db)
		testutil.NewTransaction(p2.ID).Buy("AAPL", 2, 155).Build(t, db)

		// Execute
		tickers, err := repo.GetHeldTickers()

		// Assert
		if err != nil {
			t.Fatalf("GetHeldTickers() returned unexpected error: %v", err)
		}
		if len(tickers) != 2 {
			t.Fatalf("Expected 2 distinct tickers, got %v", tickers)
		}
		if tickers[0] != "AAPL" || tickers[1] != "MSFT" {
			t.Errorf("Expected [AAPL MSFT], got %v", tickers)
		}
	})

	t.Run("returns empty slice with no ledger rows", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		repo := repository.NewTransactionRepository(db)

		// Execute
		tickers, err := repo.GetHeldTickers()

		// Assert
		if err != nil {
			t.Fatalf("GetHeldTickers() returned unexpected error: %v", err)
		}
		if len(tickers) != 0 {
			t.Errorf("Expected no tickers, got %v", tickers)
		}
	})
}

// TestParseTime tests the storage date formats.
//
// WHY: Dates arrive in three formats depending on the column (date-only
// ledger dates, RFC3339 timestamps, legacy SQLite datetime). All must
// normalize to UTC.
func TestParseTime(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "date only",
			input: "2024-01-15",
			want:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "RFC3339",
			input: "2024-01-15T09:30:00Z",
			want:  time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
		},
		{
			name:  "sqlite datetime",
			input: "2024-01-15 09:30:00",
			want:  time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repository.ParseTime(tc.input)
			if err != nil {
				t.Fatalf("ParseTime(%q) returned unexpected error: %v", tc.input, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParseTime(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}

	t.Run("rejects unknown format", func(t *testing.T) {
		if _, err := repository.ParseTime("Jan 15 2024"); err == nil {
			t.Error("Expected error for unknown format, got nil")
		}
	})
}
