package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/1Cealus/InvestmentTracker/internal/api/handlers"
	"github.com/1Cealus/InvestmentTracker/internal/service"
	"github.com/1Cealus/InvestmentTracker/internal/testutil"
)

// TestSystemHandler_Health tests the health endpoint.
//
// WHY: Deployment probes rely on this endpoint distinguishing a live
// database from a dead one.
func TestSystemHandler_Health(t *testing.T) {
	t.Run("reports healthy with a live database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSystemHandler(service.NewSystemService(db))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		rec := httptest.NewRecorder()

		handler.Health(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"status":"healthy"`) {
			t.Errorf("Expected healthy status, got %s", rec.Body.String())
		}
	})

	t.Run("reports unhealthy with a closed database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSystemHandler(service.NewSystemService(db))
		db.Close()

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		rec := httptest.NewRecorder()

		handler.Health(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("Expected status 503, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"status":"unhealthy"`) {
			t.Errorf("Expected unhealthy status, got %s", rec.Body.String())
		}
	})
}
