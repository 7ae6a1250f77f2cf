package handlers

import (
	"time"

	"github.com/labstack/echo/v4"

	"jobradar/pkg/models"
	"jobradar/pkg/utils"
)

// errorResponse renders a CustomError as the shared API error envelope,
// taking the HTTP status from the error's code
func errorResponse(c echo.Context, requestID, slug string, err *utils.CustomError) error {
	return c.JSON(err.Code, models.ErrorResponse{
		Error:     slug,
		Message:   err.Error(),
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}
