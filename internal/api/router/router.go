// Package router wires the site API endpoints onto a chi router.
package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kitchencraft/site-api/internal/calculator"
	"github.com/kitchencraft/site-api/internal/catalog"
	"github.com/kitchencraft/site-api/internal/contact"
	httpmiddleware "github.com/kitchencraft/site-api/internal/http/middleware"
	"github.com/kitchencraft/site-api/internal/leads"
	"github.com/kitchencraft/site-api/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	ContactHandler     *contact.Handler
	CatalogHandler     *catalog.Handler
	CalculatorHandler  *calculator.Handler
	LeadsHandler       *leads.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
	AdminToken         string

	// Submission rate limit, requests/sec per IP. Zero disables limiting.
	SubmitRateLimit float64
	SubmitBurst     int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		if cfg.ContactHandler != nil {
			submit := api.With()
			if cfg.SubmitRateLimit > 0 {
				submit = api.With(httpmiddleware.RateLimit(cfg.SubmitRateLimit, cfg.SubmitBurst))
			}
			submit.Post("/contact", cfg.ContactHandler.Submit)
		}
		if cfg.CatalogHandler != nil {
			api.Get("/projects", cfg.CatalogHandler.List)
			api.Get("/projects/featured", cfg.CatalogHandler.Featured)
		}
		if cfg.CalculatorHandler != nil {
			api.Post("/calculator/quote", cfg.CalculatorHandler.Quote)
		}
	})

	if cfg.LeadsHandler != nil {
		r.Route("/admin", func(admin chi.Router) {
			admin.Use(requireAdminToken(cfg.AdminToken))
			admin.Get("/leads", cfg.LeadsHandler.List)
			admin.Get("/leads/{id}", cfg.LeadsHandler.Get)
		})
	}

	return r
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
