package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	llmEnabled bool
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(llmEnabled bool) *HealthHandler {
	return &HealthHandler{llmEnabled: llmEnabled}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "llm_enabled": h.llmEnabled})
}
