package dto

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// LogActivityRequest represents the request body for logging an activity.
type LogActivityRequest struct {
	HabitID string `json:"habit_id" binding:"required,uuid"`
}

// ActivityResponse represents a single ledger entry in API responses.
type ActivityResponse struct {
	ID         string    `json:"id"`
	HabitID    string    `json:"habit_id"`
	HabitName  string    `json:"habit_name"`
	PointDelta int       `json:"point_delta"`
	OccurredAt time.Time `json:"occurred_at"`
}

// LogActivityResponse represents the response after logging an activity.
type LogActivityResponse struct {
	Activity       ActivityResponse `json:"activity"`
	Balance        int              `json:"balance"`
	CompletedGoals []GoalResponse   `json:"completed_goals,omitempty"`
}

// ActivityListResponse represents the response for listing activities.
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Balance    int                `json:"balance"`
}

// BalanceResponse represents the response for the balance endpoint.
type BalanceResponse struct {
	Balance int `json:"balance"`
}

// ToActivityResponse converts a domain ActivityEntry to an ActivityResponse DTO.
func ToActivityResponse(e *entity.ActivityEntry) ActivityResponse {
	return ActivityResponse{
		ID:         e.ID.String(),
		HabitID:    e.HabitID.String(),
		HabitName:  e.HabitName,
		PointDelta: e.PointDelta,
		OccurredAt: e.OccurredAt,
	}
}

// ToActivityListResponse converts ledger entries and a balance to an ActivityListResponse.
func ToActivityListResponse(entries []*entity.ActivityEntry, balance int) ActivityListResponse {
	responses := make([]ActivityResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToActivityResponse(e)
	}
	return ActivityListResponse{
		Activities: responses,
		Balance:    balance,
	}
}
