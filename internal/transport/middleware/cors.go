package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/heartmarshall/reuse-backend/internal/config"
)

// CORS handles Cross-Origin Resource Sharing, including preflight requests.
func CORS(cfg config.CORSConfig) Middleware {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   cfg.Methods(),
		AllowedHeaders:   cfg.Headers(),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
