package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/httprate"
)

// RateLimitByIP limits each client IP to requestLimit calls per window. A
// non-positive limit disables limiting.
func RateLimitByIP(requestLimit int, window time.Duration) gin.HandlerFunc {
	if requestLimit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return FromHTTP(httprate.Limit(
		requestLimit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(rateLimitExceededHandler(window)),
	))
}

func rateLimitExceededHandler(window time.Duration) http.HandlerFunc {
	retryAfter := strconv.Itoa(int(window.Seconds()))
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", retryAfter)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"Rate limit exceeded. Please try again later."}`))
	}
}
