package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pleadmd/internal/port"
	"pleadmd/internal/provider"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	store port.KeyValueStore
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store port.KeyValueStore) *HealthHandler {
	return &HealthHandler{store: store}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "settings store not reachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ProviderHandler lists the LLM providers.
type ProviderHandler struct {
	registry *provider.Registry
}

// NewProviderHandler creates a new ProviderHandler.
func NewProviderHandler(registry *provider.Registry) *ProviderHandler {
	return &ProviderHandler{registry: registry}
}

// List handles GET /api/v1/providers
// @Summary List LLM providers
// @Tags providers
// @Produce json
// @Success 200 {object} APIResponse{data=[]domain.ProviderDescriptor}
// @Router /providers [get]
func (h *ProviderHandler) List(c *gin.Context) {
	RespondOK(c, h.registry.List())
}
