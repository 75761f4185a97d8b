package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/usecase/activity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// ActivityController handles activity ledger endpoints.
type ActivityController struct {
	logUseCase     *activity.LogActivityUseCase
	deleteUseCase  *activity.DeleteActivityUseCase
	listUseCase    *activity.ListActivitiesUseCase
	balanceUseCase *activity.GetBalanceUseCase
}

// NewActivityController creates a new activity controller instance.
func NewActivityController(
	logUseCase *activity.LogActivityUseCase,
	deleteUseCase *activity.DeleteActivityUseCase,
	listUseCase *activity.ListActivitiesUseCase,
	balanceUseCase *activity.GetBalanceUseCase,
) *ActivityController {
	return &ActivityController{
		logUseCase:     logUseCase,
		deleteUseCase:  deleteUseCase,
		listUseCase:    listUseCase,
		balanceUseCase: balanceUseCase,
	}
}

// Log handles POST /activities requests.
func (c *ActivityController) Log(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse request body
	var req dto.LogActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	// Parse habit ID
	habitID, err := uuid.Parse(req.HabitID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID format",
		})
		return
	}

	// Execute use case
	output, err := c.logUseCase.Execute(ctx.Request.Context(), activity.LogActivityInput{
		UserID:  userID,
		HabitID: habitID,
	})
	if err != nil {
		c.handleActivityError(ctx, err)
		return
	}

	// Build response
	response := dto.LogActivityResponse{
		Activity: dto.ToActivityResponse(output.Entry),
		Balance:  output.Balance,
	}
	for _, g := range output.CompletedGoals {
		response.CompletedGoals = append(response.CompletedGoals, dto.ToGoalResponse(g))
	}
	ctx.JSON(http.StatusCreated, response)
}

// Delete handles DELETE /activities/:id requests.
// Removing an entry reverse-applies its point delta; repeating the call is a
// no-op.
func (c *ActivityController) Delete(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse activity ID from URL
	activityID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid activity ID format",
		})
		return
	}

	// Execute use case
	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), activity.DeleteActivityInput{
		UserID:     userID,
		ActivityID: activityID,
	})
	if err != nil {
		c.handleActivityError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BalanceResponse{
		Balance: output.Balance,
	})
}

// List handles GET /activities requests.
func (c *ActivityController) List(ctx *gin.Context) {
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
	output, err := c.listUseCase.Execute(ctx.Request.Context(), activity.ListActivitiesInput{
		UserID: userID,
	})
	if err != nil {
		c.handleActivityError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToActivityListResponse(output.Entries, output.Balance))
}

// Balance handles GET /activities/balance requests.
func (c *ActivityController) Balance(ctx *gin.Context) {
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
	output, err := c.balanceUseCase.Execute(ctx.Request.Context(), activity.GetBalanceInput{
		UserID: userID,
	})
	if err != nil {
		c.handleActivityError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BalanceResponse{
		Balance: output.Balance,
	})
}

// handleActivityError handles activity errors and returns appropriate HTTP responses.
func (c *ActivityController) handleActivityError(ctx *gin.Context, err error) {
	var activityErr *domainerror.ActivityError
	if errors.As(err, &activityErr) {
		statusCode := c.getStatusCodeForActivityError(activityErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: activityErr.Message,
			Code:  string(activityErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForActivityError maps activity error codes to HTTP status codes.
func (c *ActivityController) getStatusCodeForActivityError(code domainerror.ActivityErrorCode) int {
	switch code {
	case domainerror.ErrCodeActivityNotFound, domainerror.ErrCodeActivityHabitNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedActivity:
		return http.StatusForbidden
	case domainerror.ErrCodeNoSession:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
