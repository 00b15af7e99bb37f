package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkersten/stock-portfolio-tracker/internal/api/handlers"
	"github.com/dkersten/stock-portfolio-tracker/internal/service"
	"github.com/dkersten/stock-portfolio-tracker/internal/testutil"
	"github.com/dkersten/stock-portfolio-tracker/internal/version"
)

// TestSystemHandler_Health tests the GET /api/system/health endpoint.
//
// WHY: Deployment tooling decides restarts based on this endpoint, so the
// healthy and unhealthy shapes both matter.
func TestSystemHandler_Health(t *testing.T) {
	t.Run("GET returns healthy when database responds", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSystemHandler(service.NewSystemService(db))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()

		// Execute
		handler.Health(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var response handlers.HealthResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.Status != "healthy" {
			t.Errorf("Expected status healthy, got %q", response.Status)
		}
		if response.Database != "connected" {
			t.Errorf("Expected database connected, got %q", response.Database)
		}
	})

	t.Run("GET returns 503 when database is down", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSystemHandler(service.NewSystemService(db))
		db.Close()

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()

		// Execute
		handler.Health(w, req)

		// Assert
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("Expected status 503, got %d", w.Code)
		}

		var response handlers.HealthResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.Status != "unhealthy" {
			t.Errorf("Expected status unhealthy, got %q", response.Status)
		}
	})
}

// TestSystemHandler_Version tests the GET /api/system/version endpoint.
//
// WHY: The version string is stamped at build time; the endpoint must echo
// whatever the binary carries.
func TestSystemHandler_Version(t *testing.T) {
	t.Run("GET returns the application version", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSystemHandler(service.NewSystemService(db))

		req := httptest.NewRequest(http.MethodGet, "/api/system/version", nil)
		w := httptest.NewRecorder()

		// Execute
		handler.Version(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var response handlers.VersionResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.AppVersion != version.Version {
			t.Errorf("Expected version %q, got %q", version.Version, response.AppVersion)
		}
	})
}
