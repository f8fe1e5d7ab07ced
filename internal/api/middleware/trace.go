package middleware

import (
	"log/slog"
	"net/http"

	"github.com/sdmc-web/envsettings/internal/api/shared"
	"github.com/sdmc-web/envsettings/internal/platform/logger"
)

// NewTraceMiddleware adds a trace ID to the request context and stores a
// request-scoped logger carrying it.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			log := base.With(slog.String("trace_id", shared.GetTraceID(ctx)))

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("host", r.Host),
				slog.String("remote_addr", r.RemoteAddr))

			ctx = logger.WithLogger(ctx, log)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
