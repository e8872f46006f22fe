package controller

import (
	"net/http"

	"reading-app-backend/middelware"
	"reading-app-backend/models"
	"reading-app-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	App *AppController

	settings *models.Settings
	logger   logger.Logger
}

func NewController(settings *models.Settings, log logger.Logger) *Controller {
	return &Controller{
		App:      NewAppController(settings, log),
		settings: settings,
		logger:   log,
	}
}

// NewRouter builds the HTTP application: middleware, CORS policy and routes.
// The gin mode is left to the caller since it is process-wide.
func NewRouter(settings *models.Settings, log logger.Logger) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	c := NewController(settings, log)
	c.RegisterMiddleware(r)
	c.RegisterRoutes(r)

	return r
}

// RegisterMiddleware installs the request pipeline shared by every route
func (c *Controller) RegisterMiddleware(r *gin.Engine) {
	logging := middelware.NewLoggingMiddleware(c.logger)
	cors := middelware.NewCORSMiddleware(middelware.NewCORSPolicy(c.settings))

	r.Use(
		middelware.RequestID(),
		logging.StructuredLogger(),
		logging.Recovery(c.settings.Debug),
		cors.CORS(),
	)
}

func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/", c.App.Root)
	r.GET("/health", c.App.Health)

	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, models.ErrorResponse{Detail: "Not Found"})
	})
	r.NoMethod(func(ctx *gin.Context) {
		ctx.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{Detail: "Method Not Allowed"})
	})
}
