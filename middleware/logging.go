package middleware

import (
	"net/http"
	"time"

	"github.com/ivashin/servekit/logger"
)

// Logging returns middleware that emits one informational log record per
// request, recording method, URI, response status, duration and body size.
// The record goes to the request-scoped logger, so it carries the trace ID
// when TraceID runs above this middleware.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
