// Package router sets up the HTTP routes and middleware chain of the public
// site server.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sitefront/internal/handlers"
	"sitefront/internal/metrics"
	"sitefront/internal/middleware"
)

// Deps are the handlers and assets the router mounts. Metrics, Static and
// HookLimiter may be nil.
type Deps struct {
	Public      *handlers.Public
	Hooks       *handlers.Hooks
	Metrics     *metrics.Metrics
	Static      fs.FS
	ImageHosts  []string
	HookLimiter *middleware.RateLimiter
}

// New creates the configured Chi router.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders(d.ImageHosts...))

	r.Get("/health", healthHandler)
	r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())

	if d.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(d.Static)))
	}

	// Content webhook, rate limited per client.
	r.Group(func(r chi.Router) {
		if d.HookLimiter != nil {
			r.Use(d.HookLimiter.Middleware)
		}
		r.Post("/hooks/content", d.Hooks.ContentPublished)
	})

	// Public site.
	r.Get("/", d.Public.Homepage)
	r.Get("/case-studies", d.Public.CaseStudies)
	r.Get("/case-studies/*", d.Public.CaseStudy)
	r.Get("/*", d.Public.Page)
	r.NotFound(d.Public.NotFound)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
