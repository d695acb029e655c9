package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/1Cealus/InvestmentTracker/internal/api/handlers"
	custommiddleware "github.com/1Cealus/InvestmentTracker/internal/api/middleware"
	"github.com/1Cealus/InvestmentTracker/internal/config"
	"github.com/1Cealus/InvestmentTracker/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(systemService *service.SystemService, authService *service.AuthService, investmentService *service.InvestmentService, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
		})

		// Public auth namespace
		r.Route("/auth", func(r chi.Router) {
			authHandler := handlers.NewAuthHandler(authService)
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Everything under /investments requires a bearer token
		r.Route("/investments", func(r chi.Router) {
			r.Use(custommiddleware.RequireAuth(authService, cfg.Auth.JWTSecret))

			investmentHandler := handlers.NewInvestmentHandler(investmentService)
			r.Get("/", investmentHandler.List)
			r.Post("/", investmentHandler.Create)
			r.Delete("/", investmentHandler.DeleteAll)
			r.Post("/import", investmentHandler.Import)
			r.Get("/stats", investmentHandler.Stats)
			r.Get("/search", investmentHandler.Search)
			r.Get("/date-range", investmentHandler.DateRange)

			r.Route("/{id}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateIDMiddleware)
				r.Get("/", investmentHandler.Get)
				r.Put("/", investmentHandler.Update)
				r.Delete("/", investmentHandler.Delete)
			})
		})
	})

	return r
}
