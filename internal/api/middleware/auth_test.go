package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/1Cealus/InvestmentTracker/internal/api/middleware"
	"github.com/1Cealus/InvestmentTracker/internal/auth"
	"github.com/1Cealus/InvestmentTracker/internal/testutil"
)

// TestRequireAuth tests the bearer-token middleware.
//
// WHY: Every investment route depends on this gate. It must reject missing,
// malformed, expired and orphaned tokens, and must hand the wrapped handler
// the right user ID on success.
func TestRequireAuth(t *testing.T) {
	t.Run("passes a valid token and exposes the user ID", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		authService := testutil.NewTestAuthService(t, db)
		user := testutil.NewUser().Build(t, db)

		token, err := auth.GenerateToken(user.ID, testutil.TestJWTSecret, time.Hour)
		if err != nil {
			t.Fatalf("GenerateToken() returned unexpected error: %v", err)
		}

		var gotUserID int64
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUserID, _ = middleware.UserIDFromContext(r.Context())
		})
		protected := middleware.RequireAuth(authService, testutil.TestJWTSecret)(next)

		req := httptest.NewRequest(http.MethodGet, "/api/investments", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		// Execute
		protected.ServeHTTP(rec, req)

		// Assert
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}
		if gotUserID != user.ID {
			t.Errorf("Expected user ID %d in context, got %d", user.ID, gotUserID)
		}
	})

	t.Run("rejects a missing Authorization header", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		authService := testutil.NewTestAuthService(t, db)

		protected := middleware.RequireAuth(authService, testutil.TestJWTSecret)(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("Handler must not be reached without a token")
			}))

		req := httptest.NewRequest(http.MethodGet, "/api/investments", nil)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", rec.Code)
		}
	})

	t.Run("rejects a token signed with the wrong secret", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		authService := testutil.NewTestAuthService(t, db)
		user := testutil.NewUser().Build(t, db)

		token, err := auth.GenerateToken(user.ID, "some-other-secret", time.Hour)
		if err != nil {
			t.Fatalf("GenerateToken() returned unexpected error: %v", err)
		}

		protected := middleware.RequireAuth(authService, testutil.TestJWTSecret)(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("Handler must not be reached with a forged token")
			}))

		req := httptest.NewRequest(http.MethodGet, "/api/investments", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", rec.Code)
		}
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		authService := testutil.NewTestAuthService(t, db)
		user := testutil.NewUser().Build(t, db)

		token, err := auth.GenerateToken(user.ID, testutil.TestJWTSecret, -time.Minute)
		if err != nil {
			t.Fatalf("GenerateToken() returned unexpected error: %v", err)
		}

		protected := middleware.RequireAuth(authService, testutil.TestJWTSecret)(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("Handler must not be reached with an expired token")
			}))

		req := httptest.NewRequest(http.MethodGet, "/api/investments", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", rec.Code)
		}
	})

	t.Run("rejects a token for a deleted account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		authService := testutil.NewTestAuthService(t, db)
		user := testutil.NewUser().Build(t, db)

		token, err := auth.GenerateToken(user.ID, testutil.TestJWTSecret, time.Hour)
		if err != nil {
			t.Fatalf("GenerateToken() returned unexpected error: %v", err)
		}
		if err := authService.DeleteUser(context.Background(), user.ID); err != nil {
			t.Fatalf("DeleteUser() returned unexpected error: %v", err)
		}

		protected := middleware.RequireAuth(authService, testutil.TestJWTSecret)(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("Handler must not be reached for a deleted account")
			}))

		req := httptest.NewRequest(http.MethodGet, "/api/investments", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", rec.Code)
		}
	})
}
