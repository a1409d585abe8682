package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RootHandler returns the API banner.
// @Summary      API banner
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *Handlers) RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Dashboard Component Assistant API"})
}

// HealthHandler reports service liveness.
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handlers) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
