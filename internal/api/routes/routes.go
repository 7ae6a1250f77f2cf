package routes

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"jobradar/internal/api/handlers"
	"jobradar/internal/api/middleware"
	"jobradar/internal/config"
	"jobradar/internal/match"
	"jobradar/internal/search"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, svc *search.Service, matcher *match.Matcher) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	e.Use(middleware.TimeoutConfig(cfg.Server.ReadTimeout))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(svc))
		health.GET("/live", handlers.LivenessHandler)
	}

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		jobs := v1.Group("/jobs")
		{
			jobs.POST("/search", handlers.SearchHandler(svc))
		}

		v1.POST("/match", handlers.MatchHandler(matcher))
		v1.POST("/match/batch", handlers.BatchMatchHandler(matcher))

		v1.GET("/providers", handlers.ProvidersHandler(svc))
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"service": "JobRadar Aggregator",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
