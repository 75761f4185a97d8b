package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/usecase/resource"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// ResourceController handles tracked resource endpoints.
type ResourceController struct {
	listUseCase   *resource.ListResourcesUseCase
	createUseCase *resource.CreateResourceUseCase
	updateUseCase *resource.UpdateResourceUseCase
	deleteUseCase *resource.DeleteResourceUseCase
}

// NewResourceController creates a new resource controller instance.
func NewResourceController(
	listUseCase *resource.ListResourcesUseCase,
	createUseCase *resource.CreateResourceUseCase,
	updateUseCase *resource.UpdateResourceUseCase,
	deleteUseCase *resource.DeleteResourceUseCase,
) *ResourceController {
	return &ResourceController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /resources requests.
func (c *ResourceController) List(ctx *gin.Context) {
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
	output, err := c.listUseCase.Execute(ctx.Request.Context(), resource.ListResourcesInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve resources",
		})
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToResourceListResponse(output.Resources))
}

// Create handles POST /resources requests.
func (c *ResourceController) Create(ctx *gin.Context) {
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
	var req dto.CreateResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingResourceFields),
		})
		return
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), resource.CreateResourceInput{
		UserID:   userID,
		Title:    req.Title,
		Category: entity.ResourceCategory(req.Category),
		Total:    req.Total,
		Current:  req.Current,
	})
	if err != nil {
		c.handleResourceError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusCreated, dto.ToResourceResponse(output.Resource))
}

// Update handles PATCH /resources/:id requests.
func (c *ResourceController) Update(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse resource ID from URL
	resourceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid resource ID format",
		})
		return
	}

	// Parse request body
	var req dto.UpdateResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	// Build input
	input := resource.UpdateResourceInput{
		ResourceID: resourceID,
		UserID:     userID,
		Title:      req.Title,
		Total:      req.Total,
		Current:    req.Current,
	}
	if req.Status != nil {
		status := entity.ResourceStatus(*req.Status)
		input.Status = &status
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleResourceError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToResourceResponse(output.Resource))
}

// Delete handles DELETE /resources/:id requests.
func (c *ResourceController) Delete(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse resource ID from URL
	resourceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid resource ID format",
		})
		return
	}

	// Execute use case
	err = c.deleteUseCase.Execute(ctx.Request.Context(), resource.DeleteResourceInput{
		ResourceID: resourceID,
		UserID:     userID,
	})
	if err != nil {
		c.handleResourceError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// handleResourceError handles resource errors and returns appropriate HTTP responses.
func (c *ResourceController) handleResourceError(ctx *gin.Context, err error) {
	var resourceErr *domainerror.ResourceError
	if errors.As(err, &resourceErr) {
		statusCode := c.getStatusCodeForResourceError(resourceErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: resourceErr.Message,
			Code:  string(resourceErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForResourceError maps resource error codes to HTTP status codes.
func (c *ResourceController) getStatusCodeForResourceError(code domainerror.ResourceErrorCode) int {
	switch code {
	case domainerror.ErrCodeResourceNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedResource:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidResourceCategory,
		domainerror.ErrCodeInvalidResourceProgress,
		domainerror.ErrCodeMissingResourceFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
