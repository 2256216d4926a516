package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// DefaultCORSOrigin всегда разрешён (локальный фронтенд).
const DefaultCORSOrigin = "http://localhost:3000"

// WithCORS разрешает запросы с указанных origin, плюс DefaultCORSOrigin.
func WithCORS(origins []string) func(http.Handler) http.Handler {
	allowed := []string{DefaultCORSOrigin}
	for _, o := range origins {
		if o != "" && o != DefaultCORSOrigin {
			allowed = append(allowed, o)
		}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowed,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Encoding"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
