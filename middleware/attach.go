package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ivashin/servekit/logger"
)

// Attach wraps next with the default servekit middleware stack: trace-ID
// injection, request logging and permissive CORS, in that order from the
// outside in. The logger is the parent for all request-scoped loggers.
func Attach(next http.Handler, log *logger.Logger) http.Handler {
	h := CORS()(next)
	h = Logging(h)
	h = TraceID(log)(h)
	return h
}

// DefaultRouter returns a bare chi router with nothing attached.
//
// Deprecated: earlier versions attached CORS and logging middleware here,
// but layers added to an empty router are lost when routes are mounted
// afterwards. Build the router first and wrap it with Attach instead.
func DefaultRouter() *chi.Mux {
	return chi.NewRouter()
}
