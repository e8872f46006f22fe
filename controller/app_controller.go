package controller

import (
	"fmt"
	"net/http"

	"reading-app-backend/models"
	"reading-app-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// healthyStatus is reported by the health check
const healthyStatus = "healthy"

// AppController serves the application identity and liveness endpoints
type AppController struct {
	settings *models.Settings
	logger   logger.Logger
}

// NewAppController creates a new AppController
func NewAppController(settings *models.Settings, log logger.Logger) *AppController {
	return &AppController{
		settings: settings,
		logger:   log,
	}
}

// Root godoc
// @Summary Application identity
// @Description Returns the application name, version and environment
// @Tags app
// @Produce json
// @Success 200 {object} models.RootResponse
// @Router / [get]
func (h *AppController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, models.RootResponse{
		Message:     fmt.Sprintf("Welcome to %s", h.settings.AppName),
		Version:     h.settings.AppVersion,
		Environment: h.settings.Environment,
	})
}

// Health godoc
// @Summary Health check
// @Description Liveness probe for monitoring
// @Tags app
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *AppController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{Status: healthyStatus})
}
