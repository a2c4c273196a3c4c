package middlewares

import (
	"net/http"

	"github.com/go-chi/cors"
)

// Cors allows cross-origin calls from a single origin.
func Cors(allowedOrigin string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{allowedOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         1800,
	})
}
