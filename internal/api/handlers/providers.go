package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobradar/internal/search"
	"jobradar/pkg/models"
)

// ProvidersHandler reports the registered providers and their circuit
// state. Credentials are never included.
func ProvidersHandler(svc *search.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		entries := svc.Providers()

		statuses := make([]models.ProviderStatus, 0, len(entries))
		for _, entry := range entries {
			statuses = append(statuses, models.ProviderStatus{
				Key:               entry.Config.Key,
				Name:              entry.Config.Name,
				Priority:          entry.Config.Priority,
				RequiresAuth:      entry.Config.RequiresAuth,
				Enabled:           entry.Enabled,
				CircuitOpen:       svc.Breaker(entry.Config.Key).IsOpen(),
				RequestsPerMinute: entry.Config.RequestsPerMinute,
			})
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"providers": statuses,
		})
	}
}
