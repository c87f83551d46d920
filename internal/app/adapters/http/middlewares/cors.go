package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetCORS applies the permissive header set every proxy response carries.
// Proxied responses call it again after copying upstream headers so the
// proxy's values always win.
func SetCORS(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET,HEAD,POST,PUT,DELETE,OPTIONS")
	h.Set("Access-Control-Allow-Headers", "*")
}

func (m *Middlewares) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		SetCORS(c.Writer.Header())
		c.Next()
	}
}

// Preflight short-circuits CORS preflight for any path with an empty 204.
func (m *Middlewares) Preflight() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
