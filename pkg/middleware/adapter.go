package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FromHTTP runs a net/http middleware inside the gin chain. When the wrapped
// middleware answers on its own (a CORS preflight, a rate limit reply) the
// rest of the chain is aborted.
func FromHTTP(mw func(http.Handler) http.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		passed := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passed = true
			c.Request = r
			c.Next()
		})

		mw(next).ServeHTTP(c.Writer, c.Request)

		if !passed {
			c.Abort()
		}
	}
}
