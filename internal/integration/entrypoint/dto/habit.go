package dto

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CreateHabitRequest represents the request body for habit creation.
type CreateHabitRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=100"`
	Direction string  `json:"direction" binding:"required,oneof=good bad"`
	Value     int     `json:"value" binding:"omitempty,gt=0"`
	Cost      int     `json:"cost" binding:"omitempty,gt=0"`
	Icon      *string `json:"icon,omitempty"`
}

// UpdateHabitRequest represents the request body for habit update.
type UpdateHabitRequest struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Direction *string `json:"direction,omitempty" binding:"omitempty,oneof=good bad"`
	Value     *int    `json:"value,omitempty" binding:"omitempty,gt=0"`
	Cost      *int    `json:"cost,omitempty" binding:"omitempty,gt=0"`
	Icon      *string `json:"icon,omitempty"`
}

// HabitResponse represents a single habit in API responses.
type HabitResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Direction string    `json:"direction"`
	Value     int       `json:"value"`
	Cost      int       `json:"cost"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HabitListResponse represents the response for listing habits.
type HabitListResponse struct {
	Habits []HabitResponse `json:"habits"`
}

// ToHabitResponse converts a domain Habit entity to a HabitResponse DTO.
func ToHabitResponse(h *entity.Habit) HabitResponse {
	return HabitResponse{
		ID:        h.ID.String(),
		UserID:    h.UserID.String(),
		Name:      h.Name,
		Direction: string(h.Direction),
		Value:     h.Value,
		Cost:      h.Cost,
		Icon:      h.Icon,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

// ToHabitListResponse converts a list of habits to HabitListResponse.
func ToHabitListResponse(habits []*entity.Habit) HabitListResponse {
	responses := make([]HabitResponse, len(habits))
	for i, h := range habits {
		responses[i] = ToHabitResponse(h)
	}
	return HabitListResponse{
		Habits: responses,
	}
}
