package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dkersten/stock-portfolio-tracker/internal/api/handlers"
	"github.com/dkersten/stock-portfolio-tracker/internal/model"
	"github.com/dkersten/stock-portfolio-tracker/internal/testutil"
)

// TestSnapshotHandler_RecordSnapshot tests the POST /api/portfolio/{uuid}/snapshot endpoint.
//
// WHY: Snapshots are user-triggered writes derived from live data; the
// handler must return the stored record so the client can display it
// without a second round trip.
func TestSnapshotHandler_RecordSnapshot(t *testing.T) {
	t.Run("POST records and returns the snapshot", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		quotes := testutil.NewMockQuoteClient().WithPrice("AAPL", 180)
		handler := handlers.NewSnapshotHandler(testutil.NewTestSnapshotService(t, db, quotes))

		portfolio := testutil.CreatePortfolio(t, db, "Snap")
		testutil.NewTransaction(portfolio.ID).Buy("AAPL", 10, 150).OnDate("2024-01-10").Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodPost,
			"/api/portfolio/"+portfolio.ID+"/snapshot",
			map[string]string{"uuid": portfolio.ID},
		)
		w := httptest.NewRecorder()

		// Execute
		handler.RecordSnapshot(w, req)

		// Assert
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Snapshot
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.TotalValue != 1800 {
			t.Errorf("Expected snapshot value 1800, got %v", response.TotalValue)
		}
		if count := testutil.CountSnapshots(t, db, portfolio.ID); count != 1 {
			t.Errorf("Expected 1 persisted snapshot, got %d", count)
		}
	})

	t.Run("POST returns 404 for missing portfolio", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSnapshotHandler(testutil.NewTestSnapshotService(t, db, testutil.NewMockQuoteClient()))

		missingID := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(
			http.MethodPost,
			"/api/portfolio/"+missingID+"/snapshot",
			map[string]string{"uuid": missingID},
		)
		w := httptest.NewRecorder()

		// Execute
		handler.RecordSnapshot(w, req)

		// Assert
		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

// TestSnapshotHandler_Snapshots tests the GET /api/portfolio/{uuid}/snapshots endpoint.
//
// WHY: The history feeds value-over-time charts, which assume ascending order.
func TestSnapshotHandler_Snapshots(t *testing.T) {
	t.Run("GET returns snapshots oldest first", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSnapshotHandler(testutil.NewTestSnapshotService(t, db, testutil.NewMockQuoteClient()))

		portfolio := testutil.CreatePortfolio(t, db, "Charted")
		base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		testutil.NewSnapshot(portfolio.ID).WithValue(1500).At(base.AddDate(0, 2, 0)).Build(t, db)
		testutil.NewSnapshot(portfolio.ID).WithValue(1000).At(base).Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/portfolio/"+portfolio.ID+"/snapshots",
			map[string]string{"uuid": portfolio.ID},
		)
		w := httptest.NewRecorder()

		// Execute
		handler.Snapshots(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var response []model.Snapshot
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(response) != 2 {
			t.Fatalf("Expected 2 snapshots, got %d", len(response))
		}
		if response[0].TotalValue != 1000 || response[1].TotalValue != 1500 {
			t.Errorf("Expected ascending order by date, got %v then %v", response[0].TotalValue, response[1].TotalValue)
		}
	})

	t.Run("GET returns 404 for missing portfolio", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSnapshotHandler(testutil.NewTestSnapshotService(t, db, testutil.NewMockQuoteClient()))

		missingID := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/portfolio/"+missingID+"/snapshots",
			map[string]string{"uuid": missingID},
		)
		w := httptest.NewRecorder()

		// Execute
		handler.Snapshots(w, req)

		// Assert
		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}
