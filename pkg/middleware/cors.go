package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
)

// CORSMiddleware allows the listed origins, or any origin when the list holds "*".
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return FromHTTP(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", TraceIDHeader},
		ExposedHeaders: []string{TraceIDHeader},
		MaxAge:         300,
	}))
}
