package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	startedAt time.Time
	env       string
}

func NewHealthHandler(env string) *HealthHandler {
	return &HealthHandler{startedAt: time.Now(), env: env}
}

func (h *HealthHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/health", h.Health)
}

func (h *HealthHandler) Health(c *gin.Context) {
	respondOK(c, gin.H{
		"status":    "ok",
		"env":       h.env,
		"uptime":    time.Since(h.startedAt).Round(time.Second).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
