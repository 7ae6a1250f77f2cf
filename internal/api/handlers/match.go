package handlers

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"jobradar/internal/logging"
	"jobradar/internal/match"
	"jobradar/pkg/models"
	"jobradar/pkg/utils"
)

// MatchHandler scores a single job against a candidate profile
func MatchHandler(matcher *match.Matcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger().WithField("request_id", requestID)

		var req models.MatchRequest
		if err := c.Bind(&req); err != nil {
			return errorResponse(c, requestID, "invalid_request",
				utils.NewBadRequestError("Invalid request format"))
		}

		if err := validate.Struct(&req); err != nil {
			return errorResponse(c, requestID, "validation_failed",
				utils.NewValidationError(err.Error()))
		}

		result := matcher.GenerateAdvancedMatch(req.Job, req.Profile)

		logger.Info("Match request completed", map[string]interface{}{
			"job_id":     result.JobID,
			"fit_score":  result.FitScore,
			"confidence": result.Confidence,
		})

		return c.JSON(http.StatusOK, models.MatchResponse{
			Success:   true,
			Result:    result,
			RequestID: requestID,
		})
	}
}

// BatchMatchHandler scores a list of jobs against one profile and returns
// the results sorted by descending fit score
func BatchMatchHandler(matcher *match.Matcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger().WithField("request_id", requestID)

		var req models.BatchMatchRequest
		if err := c.Bind(&req); err != nil {
			return errorResponse(c, requestID, "invalid_request",
				utils.NewBadRequestError("Invalid request format"))
		}

		if err := validate.Struct(&req); err != nil {
			return errorResponse(c, requestID, "validation_failed",
				utils.NewValidationError(err.Error()))
		}

		results := make([]*models.AdvancedMatchResult, 0, len(req.Jobs))
		for _, job := range req.Jobs {
			results = append(results, matcher.GenerateAdvancedMatch(job, req.Profile))
		}

		sort.SliceStable(results, func(i, j int) bool {
			return results[i].FitScore > results[j].FitScore
		})

		logger.Info("Batch match request completed", map[string]interface{}{
			"jobs": len(results),
		})

		return c.JSON(http.StatusOK, models.BatchMatchResponse{
			Success:   true,
			Results:   results,
			RequestID: requestID,
		})
	}
}
