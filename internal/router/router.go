package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"pleadmd/internal/handler"
	"pleadmd/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Health     *handler.HealthHandler
	Provider   *handler.ProviderHandler
	Extract    *handler.ExtractHandler
	Conversion *handler.ConversionHandler
	Settings   *handler.SettingsHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(h Handlers, allowedOrigins []string, logger zerolog.Logger) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	v1 := r.Group("/api/v1")

	v1.GET("/providers", h.Provider.List)
	v1.POST("/extract", h.Extract.Extract)
	v1.POST("/convert", h.Conversion.Convert)
	v1.POST("/process", h.Conversion.Process)

	v1.GET("/settings", h.Settings.GetSettings)
	v1.PUT("/settings", h.Settings.UpdateSettings)

	examples := v1.Group("/examples")
	examples.GET("", h.Settings.ListExamples)
	examples.POST("", h.Settings.CreateExample)
	examples.PUT("/:id", h.Settings.UpdateExample)
	examples.DELETE("/:id", h.Settings.DeleteExample)

	return r
}
