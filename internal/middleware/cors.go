package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

func newCORS(origins []string) *cors.Cors {
	if len(origins) == 0 {
		return nil
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", SessionHeader},
		ExposedHeaders:   []string{SessionHeader, "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           600,
	})
}

// CORS wraps the whole router so preflight requests are answered before
// routing. Without allowed origins next is returned unchanged.
func (m Middleware) CORS(next http.Handler) http.Handler {
	if m.cors == nil {
		return next
	}
	return m.cors.Handler(next)
}
