package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS returns a middleware allowing the marketing site's origin to call
// the booking API from the browser. Each entry must be a full origin
// (scheme + host, no trailing slash).
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
