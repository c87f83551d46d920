package middlewares

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ProxyAuth gates proxied calls on the shared secret header. An empty
// expected key means the operator chose to run unauthenticated; that is
// logged once at startup, not silently defaulted.
func (m *Middlewares) ProxyAuth(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expected == "" {
			c.Next()
			return
		}

		key := c.GetHeader(HeaderProxyKey)
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
			c.String(http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		c.Next()
	}
}

// ProxyGate rejects anything outside the Bot API path space before auth or
// forwarding happens.
func (m *Middlewares) ProxyGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !pathProxyable(path) {
			c.String(http.StatusNotFound, "Not found")
			c.Abort()
			return
		}
		c.Next()
	}
}

func pathProxyable(path string) bool {
	return strings.HasPrefix(path, "/bot") || strings.HasPrefix(path, "/file/bot")
}
