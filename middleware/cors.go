package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS returns middleware that allows cross-origin requests from any origin
// with the Content-Type and Authorization headers and the GET, POST and
// OPTIONS methods. Preflight OPTIONS requests are answered by the middleware
// itself and never reach the wrapped handler.
func CORS() func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	})

	return c.Handler
}
