package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/usecase/dashboard"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles goal progress and calendar endpoints.
type DashboardController struct {
	goalProgressUseCase  *dashboard.GetGoalProgressUseCase
	goalsProgressUseCase *dashboard.ListGoalsProgressUseCase
	calendarUseCase      *dashboard.GetCalendarMonthUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	goalProgressUseCase *dashboard.GetGoalProgressUseCase,
	goalsProgressUseCase *dashboard.ListGoalsProgressUseCase,
	calendarUseCase *dashboard.GetCalendarMonthUseCase,
) *DashboardController {
	return &DashboardController{
		goalProgressUseCase:  goalProgressUseCase,
		goalsProgressUseCase: goalsProgressUseCase,
		calendarUseCase:      calendarUseCase,
	}
}

// GetGoalProgress handles GET /goals/:id/progress requests.
// Progress is recomputed from the ledger on every call.
func (c *DashboardController) GetGoalProgress(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse goal ID from URL
	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	// Execute use case
	output, err := c.goalProgressUseCase.Execute(ctx.Request.Context(), dashboard.GetGoalProgressInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToGoalProgressResponse(output))
}

// ListGoalsProgress handles GET /goals/progress requests.
func (c *DashboardController) ListGoalsProgress(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Execute use case
	output, err := c.goalsProgressUseCase.Execute(ctx.Request.Context(), dashboard.ListGoalsProgressInput{
		UserID: userID,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToGoalProgressListResponse(output.Goals))
}

// GetCalendarMonth handles GET /calendar requests.
// Month and year default to the current month when absent.
func (c *DashboardController) GetCalendarMonth(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	now := time.Now().UTC()
	month := int(now.Month())
	year := now.Year()

	// Parse optional month/year query params
	if monthStr := ctx.Query("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid month parameter",
			})
			return
		}
		month = parsed
	}
	if yearStr := ctx.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year parameter",
			})
			return
		}
		year = parsed
	}

	// Execute use case
	output, err := c.calendarUseCase.Execute(ctx.Request.Context(), dashboard.GetCalendarMonthInput{
		UserID: userID,
		Month:  time.Month(month),
		Year:   year,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToCalendarMonthResponse(output))
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		statusCode := c.getStatusCodeForGoalError(goalErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *DashboardController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedGoalAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidGoalPeriod, domainerror.ErrCodeInvalidGoalMonth:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
