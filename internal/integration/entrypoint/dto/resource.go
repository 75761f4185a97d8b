package dto

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CreateResourceRequest represents the request body for resource creation.
type CreateResourceRequest struct {
	Title    string `json:"title" binding:"required,min=1,max=200"`
	Category string `json:"category" binding:"required,oneof=book paper project"`
	Total    int    `json:"total" binding:"required,gt=0"`
	Current  int    `json:"current" binding:"omitempty,gte=0"`
}

// UpdateResourceRequest represents the request body for resource update.
type UpdateResourceRequest struct {
	Title   *string `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Total   *int    `json:"total,omitempty" binding:"omitempty,gt=0"`
	Current *int    `json:"current,omitempty" binding:"omitempty,gte=0"`
	Status  *string `json:"status,omitempty" binding:"omitempty,oneof=active completed paused"`
}

// ResourceResponse represents a single resource in API responses.
type ResourceResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Total     int       `json:"total"`
	Current   int       `json:"current"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResourceListResponse represents the response for listing resources.
type ResourceListResponse struct {
	Resources []ResourceResponse `json:"resources"`
}

// ToResourceResponse converts a domain Resource entity to a ResourceResponse DTO.
func ToResourceResponse(r *entity.Resource) ResourceResponse {
	return ResourceResponse{
		ID:        r.ID.String(),
		UserID:    r.UserID.String(),
		Title:     r.Title,
		Category:  string(r.Category),
		Total:     r.Total,
		Current:   r.Current,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ToResourceListResponse converts a list of resources to ResourceListResponse.
func ToResourceListResponse(resources []*entity.Resource) ResourceListResponse {
	responses := make([]ResourceResponse, len(resources))
	for i, r := range resources {
		responses[i] = ToResourceResponse(r)
	}
	return ResourceListResponse{
		Resources: responses,
	}
}
