package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"jobradar/internal/logging"
	"jobradar/internal/search"
	"jobradar/pkg/models"
	"jobradar/pkg/utils"
)

var validate = validator.New()

// SearchHandler handles multi-provider job search requests
func SearchHandler(svc *search.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger().WithField("request_id", requestID)

		var req models.SearchRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind search request", map[string]interface{}{
				"error": err.Error(),
			})
			return errorResponse(c, requestID, "invalid_request",
				utils.NewBadRequestError("Invalid request format"))
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Search request validation failed", map[string]interface{}{
				"error": err.Error(),
			})
			return errorResponse(c, requestID, "validation_failed",
				utils.NewValidationError(err.Error()))
		}

		logger.Info("Processing search request", map[string]interface{}{
			"query":    req.Query,
			"location": req.Location,
			"limit":    req.Limit,
		})

		// The aggregator never fails hard; a total provider outage comes
		// back as an empty list.
		jobs := svc.SearchJobs(c.Request().Context(), req.Params())

		var queried []string
		for _, entry := range svc.EnabledProviders() {
			queried = append(queried, entry.Config.Key)
		}

		response := models.SearchResponse{
			Success:          true,
			Jobs:             jobs,
			Total:            len(jobs),
			ProvidersQueried: queried,
			ProcessingTime:   time.Since(startTime),
			RequestID:        requestID,
		}

		logger.Info("Search request completed", map[string]interface{}{
			"results":         len(jobs),
			"processing_time": utils.FormatDuration(time.Since(startTime)),
		})

		return c.JSON(http.StatusOK, response)
	}
}
