package handlers

import (
	"bytes"
	"net/http/httptest"
	"testing"
)

// TestParseJSON tests the parseJSON helper.
// This is an internal test (package handlers, not handlers_test) because
// parseJSON is unexported.
func TestParseJSON(t *testing.T) {
	type payload struct {
		Name  string  `json:"name"`
		Count float64 `json:"count"`
	}

	t.Run("decodes a well-formed body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", bytes.NewBufferString(`{"name": "AAPL", "count": 2.5}`))

		got, err := parseJSON[payload](req)
		if err != nil {
			t.Fatalf("parseJSON() returned unexpected error: %v", err)
		}
		if got.Name != "AAPL" || got.Count != 2.5 {
			t.Errorf("Unexpected decoded value: %+v", got)
		}
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", bytes.NewBufferString(`{"name": "AAPL", "extra": true}`))

		if _, err := parseJSON[payload](req); err == nil {
			t.Error("Expected error for unknown field, got nil")
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", bytes.NewBufferString(`{"name": `))

		if _, err := parseJSON[payload](req); err == nil {
			t.Error("Expected error for malformed JSON, got nil")
		}
	})
}
