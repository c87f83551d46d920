package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/cpu"
)

var startApp = time.Now()

// StatusHandler reports process health for operators, behind admin auth.
func (h *Handlers) StatusHandler(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	percent, _ := cpu.Percent(0, false)
	if len(percent) == 0 {
		percent = append(percent, 0)
	}

	c.JSON(http.StatusOK, gin.H{
		"uptime":              time.Since(startApp).Truncate(time.Second).String(),
		"cpu_percent":         percent[0],
		"mem_sys_mb":          m.Sys / 1024 / 1024,
		"goroutines":          runtime.NumGoroutine(),
		"autodelete_enabled":  h.cfg.AutoDeleteEnabled(),
		"keywords_configured": len(h.cfg.AutoDelete.Keywords),
	})
}
