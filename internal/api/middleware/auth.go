package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/1Cealus/InvestmentTracker/internal/api/response"
	"github.com/1Cealus/InvestmentTracker/internal/auth"
	"github.com/1Cealus/InvestmentTracker/internal/service"
)

type contextKey string

const userIDKey contextKey = "userID"

// RequireAuth validates the Bearer token on incoming requests and places the
// authenticated user's ID in the request context. Requests without a valid
// token for an existing account get 401 Unauthorized.
//
// Example usage in router:
//
//	r.Route("/investments", func(r chi.Router) {
//	    r.Use(middleware.RequireAuth(authService, cfg.Auth.JWTSecret))
//	    r.Get("/", handler.List)
//	})
func RequireAuth(authService *service.AuthService, jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || tokenStr == "" {
				response.RespondError(w, http.StatusUnauthorized, "missing or malformed Authorization header", nil)
				return
			}

			claims, err := auth.ParseToken(tokenStr, jwtSecret)
			if err != nil {
				response.RespondError(w, http.StatusUnauthorized, "invalid or expired token", nil)
				return
			}

			// A token can outlive its account; reject if the user is gone.
			if _, err := authService.GetUser(r.Context(), claims.UserID); err != nil {
				response.RespondError(w, http.StatusUnauthorized, "invalid or expired token", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
		})
	}
}

// WithUserID returns a context carrying the given user ID exactly as
// RequireAuth stores it. Useful for driving handlers directly.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromContext returns the authenticated user's ID stored by RequireAuth.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
