package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ivashin/servekit/logger"
)

const traceIDHeader = "X-Trace-ID"

// TraceID returns middleware that assigns a trace ID to every request and
// attaches a request-scoped child of log, enriched with that ID, to the
// request context. Downstream handlers retrieve it with logger.FromRequest.
//
// An incoming X-Trace-ID header is honored; otherwise a fresh UUID is
// generated. The ID is echoed back on the response in the same header.
func TraceID(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			traceID := r.Header.Get(traceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			l := log.GetChildLogger()
			l.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("trace_id", traceID)
			})
			r = r.WithContext(l.WithContext(ctx))

			w.Header().Set(traceIDHeader, traceID)
			next.ServeHTTP(w, r)
		})
	}
}
