/*
server.go - HTTP router and middleware configuration

Routes the browser presentation layer's requests to the engine. Every
endpoint is stateless: results are computed per request from the reference
tables loaded at startup.

ROUTES:
  GET  /api/brackets     ordered age brackets
  GET  /api/options      denominations, religiosity levels, default filters
  GET  /api/reference    loaded reference tables
  POST /api/calculate    filters + optional polygyny -> CalculatorResult
  GET  /api/templates    built-in scenario templates
  POST /api/compare      scenario + templates -> ComparisonSet
  POST /api/break-even   scenario + category -> break-even share
*/
package api

import (
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// DefaultAllowedOrigins are the local dev-server origins.
var DefaultAllowedOrigins = []string{"http://localhost:5173", "http://localhost:8080"}

// Options configures the router.
type Options struct {
	AllowedOrigins []string
	// Logger receives one event per request; nil logs to stderr.
	Logger *zerolog.Logger
	// DisableRequestLog drops the request logger, e.g. in tests.
	DisableRequestLog bool
}

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, opts Options) *chi.Mux {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = DefaultAllowedOrigins
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if !opts.DisableRequestLog {
		logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		if opts.Logger != nil {
			logger = *opts.Logger
		}
		r.Use(NewRequestLogger(logger))
	}
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/brackets", h.ListBrackets)
		r.Get("/options", h.GetOptions)
		r.Get("/reference", h.GetReference)
		r.Post("/calculate", h.Calculate)
		r.Get("/templates", h.ListTemplates)
		r.Post("/compare", h.Compare)
		r.Post("/break-even", h.BreakEven)
	})

	return r
}
