package middleware

import (
	"log/slog"
	"net/http"

	"github.com/Manoj-Murari/task-analyzer/internal/api/shared"
	"github.com/Manoj-Murari/task-analyzer/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that assigns every request a trace ID
// and stores a logger carrying it in the request context, so handlers, the
// service and the stores all log with the same trace_id.
// If base is nil, slog.Default() is used.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
