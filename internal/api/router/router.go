package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ddlogi/quote-platform/internal/distance"
	httpmiddleware "github.com/ddlogi/quote-platform/internal/http/middleware"
	"github.com/ddlogi/quote-platform/internal/inquiry"
	"github.com/ddlogi/quote-platform/internal/quotes"
	"github.com/ddlogi/quote-platform/internal/slots"
	"github.com/ddlogi/quote-platform/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger          *logging.Logger
	QuotesHandler   *quotes.Handler
	SlotsHandler    *slots.Handler
	DistanceHandler *distance.Handler
	InquiryHandler  *inquiry.Handler

	AdminJWTSecret string
	AdminEmails    []string

	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
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

	// Public endpoints (quote widget, booking calendar, health checks)
	r.Group(func(public chi.Router) {
		public.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"ok"}`))
		})
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}

		public.Route("/api", func(api chi.Router) {
			api.Get("/catalog", cfg.QuotesHandler.GetCatalog)
			api.Route("/quotes", func(r chi.Router) {
				r.Post("/move", cfg.QuotesHandler.ComputeMove)
				r.Post("/clean", cfg.QuotesHandler.ComputeClean)
			})
			api.Route("/slots", func(r chi.Router) {
				r.Get("/catalog", cfg.SlotsHandler.GetCatalog)
				r.Get("/{date}", cfg.SlotsHandler.GetConfirmed)
			})
			if cfg.DistanceHandler != nil {
				api.Post("/distance", cfg.DistanceHandler.Resolve)
			}
			api.Route("/inquiries", func(r chi.Router) {
				r.Post("/move", cfg.InquiryHandler.BuildMove)
				r.Post("/clean", cfg.InquiryHandler.BuildClean)
			})
		})
	})

	// Admin endpoints (slot confirmation panel)
	r.Group(func(admin chi.Router) {
		admin.Use(httpmiddleware.AdminJWT(cfg.AdminJWTSecret, cfg.AdminEmails))
		admin.Route("/api/admin/slots", func(r chi.Router) {
			r.Get("/", cfg.SlotsHandler.ListConfirmed)
			r.Post("/", cfg.SlotsHandler.Reserve)
			r.Delete("/{id}", cfg.SlotsHandler.Cancel)
		})
	})

	return r
}
