package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/dkersten/stock-portfolio-tracker/internal/api/request"

	"github.com/google/uuid"
)

func validRequest() request.CreateTransactionRequest {
	return request.CreateTransactionRequest{
		PortfolioID:   uuid.New().String(),
		Ticker:        "AAPL",
		Type:          "buy",
		Shares:        10,
		PricePerShare: 150.5,
		Date:          "2024-01-15",
	}
}

// TestValidateCreateTransaction tests ledger request validation.
//
// WHY: Validation is the only gate between user input and the append-only
// ledger. Anything that slips through is permanent.
func TestValidateCreateTransaction(t *testing.T) {
	t.Run("accepts a well-formed buy", func(t *testing.T) {
		if err := ValidateCreateTransaction(validRequest()); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("accepts sell and mixed-case types", func(t *testing.T) {
		for _, typ := range []string{"sell", "Sell", "BUY", " buy "} {
			req := validRequest()
			req.Type = typ
			if err := ValidateCreateTransaction(req); err != nil {
				t.Errorf("Expected type %q to validate, got %v", typ, err)
			}
		}
	})

	t.Run("rejects invalid fields", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*request.CreateTransactionRequest)
			field  string
		}{
			{
				name:   "unknown type hold",
				mutate: func(r *request.CreateTransactionRequest) { r.Type = "hold" },
				field:  "type",
			},
			{
				name:   "empty type",
				mutate: func(r *request.CreateTransactionRequest) { r.Type = "" },
				field:  "type",
			},
			{
				name:   "zero shares",
				mutate: func(r *request.CreateTransactionRequest) { r.Shares = 0 },
				field:  "shares",
			},
			{
				name:   "negative shares",
				mutate: func(r *request.CreateTransactionRequest) { r.Shares = -1 },
				field:  "shares",
			},
			{
				name:   "zero price",
				mutate: func(r *request.CreateTransactionRequest) { r.PricePerShare = 0 },
				field:  "pricePerShare",
			},
			{
				name:   "negative price",
				mutate: func(r *request.CreateTransactionRequest) { r.PricePerShare = -0.01 },
				field:  "pricePerShare",
			},
			{
				name:   "empty ticker",
				mutate: func(r *request.CreateTransactionRequest) { r.Ticker = "  " },
				field:  "ticker",
			},
			{
				name:   "overlong ticker",
				mutate: func(r *request.CreateTransactionRequest) { r.Ticker = "ABCDEFGHIJK" },
				field:  "ticker",
			},
			{
				name:   "empty date",
				mutate: func(r *request.CreateTransactionRequest) { r.Date = "" },
				field:  "date",
			},
			{
				name:   "wrong date format",
				mutate: func(r *request.CreateTransactionRequest) { r.Date = "15-01-2024" },
				field:  "date",
			},
			{
				name:   "overlong notes",
				mutate: func(r *request.CreateTransactionRequest) { r.Notes = strings.Repeat("x", 201) },
				field:  "notes",
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				req := validRequest()
				tc.mutate(&req)

				err := ValidateCreateTransaction(req)
				if err == nil {
					t.Fatal("Expected validation error, got nil")
				}

				var vErr *Error
				if !errors.As(err, &vErr) {
					t.Fatalf("Expected *validation.Error, got %T", err)
				}
				if _, ok := vErr.Fields[tc.field]; !ok {
					t.Errorf("Expected error on field %q, got %v", tc.field, vErr.Fields)
				}
			})
		}
	})

	t.Run("rejects malformed portfolio ID", func(t *testing.T) {
		req := validRequest()
		req.PortfolioID = "not-a-uuid"

		err := ValidateCreateTransaction(req)
		if !errors.Is(err, ErrInvalidUUID) {
			t.Errorf("Expected ErrInvalidUUID, got %v", err)
		}
	})
}

// TestValidateCreatePortfolio tests portfolio name validation.
func TestValidateCreatePortfolio(t *testing.T) {
	cases := []struct {
		name    string
		reqName string
		wantErr bool
	}{
		{name: "valid name", reqName: "Retirement", wantErr: false},
		{name: "empty name", reqName: "", wantErr: true},
		{name: "whitespace name", reqName: "   ", wantErr: true},
		{name: "max length name", reqName: strings.Repeat("a", 100), wantErr: false},
		{name: "overlong name", reqName: strings.Repeat("a", 101), wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCreatePortfolio(request.CreatePortfolioRequest{Name: tc.reqName})
			if tc.wantErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

// TestValidateUUID tests UUID format checking.
func TestValidateUUID(t *testing.T) {
	if err := ValidateUUID(uuid.New().String()); err != nil {
		t.Errorf("Expected valid UUID to pass, got %v", err)
	}
	if err := ValidateUUID("123"); !errors.Is(err, ErrInvalidUUID) {
		t.Errorf("Expected ErrInvalidUUID, got %v", err)
	}
}
