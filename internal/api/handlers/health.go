package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jobradar/internal/logging"
	"jobradar/internal/search"
	"jobradar/pkg/models"
	"jobradar/pkg/utils"
)

var startTime = time.Now()

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	requestID := utils.GenerateRequestID()
	logger := logging.GetGlobalLogger()

	logger.Debug("Health check requested", map[string]interface{}{"request_id": requestID})

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler handles readiness probe requests. The service is ready
// when at least one provider is enabled.
func ReadinessHandler(svc *search.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		status := "ready"
		code := http.StatusOK

		providersCheck := "ok"
		if len(svc.EnabledProviders()) == 0 {
			status = "degraded"
			providersCheck = "no providers enabled"
			code = http.StatusServiceUnavailable
		}

		response := models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks: map[string]string{
				"api":       "ok",
				"providers": providersCheck,
			},
		}

		return c.JSON(code, response)
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
	}

	return c.JSON(http.StatusOK, response)
}
