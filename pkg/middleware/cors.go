package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS wraps the router with a permissive CORS policy. Tighten the origins
// when a frontend domain is known.
func CORS() func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	return c.Handler
}
