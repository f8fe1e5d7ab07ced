package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	apiMiddleware "github.com/sdmc-web/envsettings/internal/api/middleware"
	"github.com/sdmc-web/envsettings/internal/resolver"
	"github.com/sdmc-web/envsettings/internal/settings"
)

// NewRouter creates the HTTP handler for a resolution result.
//
// The trusted host patterns are compiled here, so an invalid pattern is an
// error at startup rather than a failure on every request.
func NewRouter(result resolver.Result, logger *slog.Logger) (http.Handler, error) {
	if logger == nil {
		logger = slog.Default()
	}

	resolved := result.Settings()
	hosts, err := settings.CompileHosts(resolved.TrustedHostPatterns)
	if err != nil {
		return nil, err
	}

	h := NewSettingsHandler(result, hosts, logger)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(logger))

	// Load balancers probe by IP, so health stays outside the host check.
	r.Get("/health", h.Health)

	r.Group(func(r chi.Router) {
		r.Use(apiMiddleware.TrustedHosts(hosts))
		r.Get("/settings", h.GetSettings)
		r.Get("/hosts/check", h.CheckHost)
	})

	return r, nil
}
