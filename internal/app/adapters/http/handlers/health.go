package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) HealthHandler(c *gin.Context) {
	c.String(http.StatusOK, "Telegram Bot API Proxy with Auto-Delete\n")
}
