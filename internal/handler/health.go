package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthHandler reports process and store liveness
type HealthHandler struct {
	client *mongo.Client
	log    *zap.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(client *mongo.Client, log *zap.Logger) *HealthHandler {
	return &HealthHandler{client: client, log: log}
}

// Check handles GET /health
// @Summary Liveness check including store connectivity
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.client.Ping(ctx, nil); err != nil {
		h.log.Error("health check ping failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "connected"})
}
