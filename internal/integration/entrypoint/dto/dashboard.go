package dto

import (
	"time"

	"github.com/habit-tracker/backend/internal/application/usecase/dashboard"
)

// GoalProgressResponse represents a goal with its live progress.
type GoalProgressResponse struct {
	Goal        GoalResponse         `json:"goal"`
	WindowStart time.Time            `json:"window_start"`
	WindowEnd   time.Time            `json:"window_end"`
	Current     int                  `json:"current"`
	Percent     int                  `json:"percent"`
	IsComplete  bool                 `json:"is_complete"`
	DayBuckets  []DayBucketResponse  `json:"day_buckets,omitempty"`
	WeekBuckets []WeekBucketResponse `json:"week_buckets,omitempty"`
}

// GoalProgressListResponse represents the response for listing goals with progress.
type GoalProgressListResponse struct {
	Goals []GoalProgressResponse `json:"goals"`
}

// DayBucketResponse is one cell of the 30-day activity strip.
type DayBucketResponse struct {
	Date    string `json:"date"`
	Present bool   `json:"present"`
}

// WeekBucketResponse is one cell of the 12-week intensity strip.
type WeekBucketResponse struct {
	Index     int     `json:"index"`
	Value     int     `json:"value"`
	Intensity float64 `json:"intensity"`
}

// CalendarDayResponse is one day cell of the calendar month summary.
type CalendarDayResponse struct {
	Day    int `json:"day"`
	Points int `json:"points"`
	Count  int `json:"count"`
}

// CalendarMonthResponse represents the calendar month summary.
type CalendarMonthResponse struct {
	Days        []CalendarDayResponse `json:"days"`
	TotalPoints int                   `json:"total_points"`
	Goal        *MonthlyGoalResponse  `json:"goal,omitempty"`
	GoalPercent int                   `json:"goal_percent"`
}

// ToGoalProgressResponse converts a progress output to a GoalProgressResponse DTO.
func ToGoalProgressResponse(output *dashboard.GetGoalProgressOutput) GoalProgressResponse {
	response := GoalProgressResponse{
		Goal:        ToGoalResponse(output.Goal),
		WindowStart: output.Window.Start,
		WindowEnd:   output.Window.End,
		Current:     output.Progress.Current,
		Percent:     output.Progress.Percent,
		IsComplete:  output.Progress.IsComplete,
	}

	if len(output.DayBuckets) > 0 {
		response.DayBuckets = make([]DayBucketResponse, len(output.DayBuckets))
		for i, b := range output.DayBuckets {
			response.DayBuckets[i] = DayBucketResponse{
				Date:    b.Date.Format("2006-01-02"),
				Present: b.Present,
			}
		}
	}

	if len(output.WeekBuckets) > 0 {
		response.WeekBuckets = make([]WeekBucketResponse, len(output.WeekBuckets))
		for i, b := range output.WeekBuckets {
			response.WeekBuckets[i] = WeekBucketResponse{
				Index:     b.Index,
				Value:     b.Value,
				Intensity: b.Intensity,
			}
		}
	}

	return response
}

// ToGoalProgressListResponse converts a list of progress outputs to a
// GoalProgressListResponse.
func ToGoalProgressListResponse(outputs []*dashboard.GetGoalProgressOutput) GoalProgressListResponse {
	goals := make([]GoalProgressResponse, len(outputs))
	for i, output := range outputs {
		goals[i] = ToGoalProgressResponse(output)
	}
	return GoalProgressListResponse{
		Goals: goals,
	}
}

// ToCalendarMonthResponse converts the calendar month output to a
// CalendarMonthResponse DTO.
func ToCalendarMonthResponse(output *dashboard.GetCalendarMonthOutput) CalendarMonthResponse {
	days := make([]CalendarDayResponse, len(output.Days))
	for i, d := range output.Days {
		days[i] = CalendarDayResponse{
			Day:    d.Day,
			Points: d.Points,
			Count:  d.Count,
		}
	}

	response := CalendarMonthResponse{
		Days:        days,
		TotalPoints: output.TotalPoints,
		GoalPercent: output.GoalPercent,
	}

	if output.Goal != nil {
		goalResponse := ToMonthlyGoalResponse(output.Goal)
		response.Goal = &goalResponse
	}

	return response
}
