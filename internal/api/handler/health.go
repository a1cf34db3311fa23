package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	source string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(sourceName string) *HealthHandler {
	return &HealthHandler{source: sourceName}
}

// Health returns the health status of the service. It does not call upstream.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"source": h.source,
	})
}
