package dto

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title         string  `json:"title" binding:"required,min=1,max=200"`
	Period        string  `json:"period" binding:"required,oneof=weekly monthly quarterly"`
	TargetType    string  `json:"target_type" binding:"required,oneof=habit_count points_earned"`
	TargetHabitID *string `json:"target_habit_id,omitempty" binding:"omitempty,uuid"`
	TargetValue   int     `json:"target_value" binding:"required,gt=0"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Title         *string `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Period        *string `json:"period,omitempty" binding:"omitempty,oneof=weekly monthly quarterly"`
	TargetType    *string `json:"target_type,omitempty" binding:"omitempty,oneof=habit_count points_earned"`
	TargetHabitID *string `json:"target_habit_id,omitempty"`
	TargetValue   *int    `json:"target_value,omitempty" binding:"omitempty,gt=0"`
}

// SetMonthlyGoalRequest represents the request body for setting the
// month-wide points target.
type SetMonthlyGoalRequest struct {
	Month        int `json:"month" binding:"required,min=1,max=12"`
	Year         int `json:"year" binding:"required,gte=2000"`
	TargetPoints int `json:"target_points" binding:"required,gt=0"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	Period        string    `json:"period"`
	TargetType    string    `json:"target_type"`
	TargetHabitID *string   `json:"target_habit_id,omitempty"`
	TargetValue   int       `json:"target_value"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// MonthlyGoalResponse represents the month-wide points target in API responses.
type MonthlyGoalResponse struct {
	ID           string `json:"id"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`
	TargetPoints int    `json:"target_points"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	response := GoalResponse{
		ID:          g.ID.String(),
		UserID:      g.UserID.String(),
		Title:       g.Title,
		Period:      string(g.Period),
		TargetType:  string(g.TargetType),
		TargetValue: g.TargetValue,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}

	if g.TargetHabitID != nil {
		habitID := g.TargetHabitID.String()
		response.TargetHabitID = &habitID
	}

	return response
}

// ToGoalListResponse converts a list of goals to GoalListResponse.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}
	return GoalListResponse{
		Goals: responses,
	}
}

// ToMonthlyGoalResponse converts a domain MonthlyGoal to a MonthlyGoalResponse DTO.
func ToMonthlyGoalResponse(g *entity.MonthlyGoal) MonthlyGoalResponse {
	return MonthlyGoalResponse{
		ID:           g.ID.String(),
		Month:        int(g.Month),
		Year:         g.Year,
		TargetPoints: g.TargetPoints,
	}
}
