package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/usecase/habit"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// HabitController handles habit registry endpoints.
type HabitController struct {
	listUseCase   *habit.ListHabitsUseCase
	createUseCase *habit.CreateHabitUseCase
	updateUseCase *habit.UpdateHabitUseCase
	deleteUseCase *habit.DeleteHabitUseCase
}

// NewHabitController creates a new habit controller instance.
func NewHabitController(
	listUseCase *habit.ListHabitsUseCase,
	createUseCase *habit.CreateHabitUseCase,
	updateUseCase *habit.UpdateHabitUseCase,
	deleteUseCase *habit.DeleteHabitUseCase,
) *HabitController {
	return &HabitController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /habits requests.
func (c *HabitController) List(ctx *gin.Context) {
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
	output, err := c.listUseCase.Execute(ctx.Request.Context(), habit.ListHabitsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve habits",
		})
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToHabitListResponse(output.Habits))
}

// Create handles POST /habits requests.
func (c *HabitController) Create(ctx *gin.Context) {
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
	var req dto.CreateHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingHabitFields),
		})
		return
	}

	// Build input
	input := habit.CreateHabitInput{
		UserID:    userID,
		Name:      req.Name,
		Direction: entity.HabitDirection(req.Direction),
		Value:     req.Value,
		Cost:      req.Cost,
	}
	if req.Icon != nil {
		input.Icon = *req.Icon
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusCreated, dto.ToHabitResponse(output.Habit))
}

// Update handles PATCH /habits/:id requests.
func (c *HabitController) Update(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse habit ID from URL
	habitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID format",
		})
		return
	}

	// Parse request body
	var req dto.UpdateHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	// Build input
	input := habit.UpdateHabitInput{
		HabitID: habitID,
		UserID:  userID,
		Name:    req.Name,
		Value:   req.Value,
		Cost:    req.Cost,
		Icon:    req.Icon,
	}
	if req.Direction != nil {
		direction := entity.HabitDirection(*req.Direction)
		input.Direction = &direction
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToHabitResponse(output.Habit))
}

// Delete handles DELETE /habits/:id requests.
// Deleting a habit never touches ledger entries already logged against it.
func (c *HabitController) Delete(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse habit ID from URL
	habitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID format",
		})
		return
	}

	// Execute use case
	err = c.deleteUseCase.Execute(ctx.Request.Context(), habit.DeleteHabitInput{
		HabitID: habitID,
		UserID:  userID,
	})
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// handleHabitError handles habit errors and returns appropriate HTTP responses.
func (c *HabitController) handleHabitError(ctx *gin.Context, err error) {
	var habitErr *domainerror.HabitError
	if errors.As(err, &habitErr) {
		statusCode := c.getStatusCodeForHabitError(habitErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: habitErr.Message,
			Code:  string(habitErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForHabitError maps habit error codes to HTTP status codes.
func (c *HabitController) getStatusCodeForHabitError(code domainerror.HabitErrorCode) int {
	switch code {
	case domainerror.ErrCodeHabitNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedHabit:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidHabitDirection,
		domainerror.ErrCodeInvalidHabitMagnitude,
		domainerror.ErrCodeHabitNameTooLong,
		domainerror.ErrCodeMissingHabitFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
