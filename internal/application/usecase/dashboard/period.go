// Package dashboard contains goal-progress and visualization use cases.
package dashboard

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// Window is the progress-to-date range a goal is measured over. Start is the
// beginning of the current period at midnight; End is the reference instant,
// so the window is always open-ended at "now".
type Window struct {
	Start time.Time
	End   time.Time
}

// ResolveWindow returns the window containing the reference instant for the
// given goal period.
func ResolveWindow(period entity.GoalPeriod, ref time.Time) (Window, error) {
	loc := ref.Location()

	switch period {
	case entity.GoalPeriodWeekly:
		// Week starts on Monday (ISO), regardless of locale.
		weekday := int(ref.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start := time.Date(ref.Year(), ref.Month(), ref.Day()-(weekday-1), 0, 0, 0, 0, loc)
		return Window{Start: start, End: ref}, nil
	case entity.GoalPeriodMonthly:
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc)
		return Window{Start: start, End: ref}, nil
	case entity.GoalPeriodQuarterly:
		quarter := (int(ref.Month()) - 1) / 3
		start := time.Date(ref.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, loc)
		return Window{Start: start, End: ref}, nil
	default:
		return Window{}, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalPeriod,
			"invalid goal period",
			domainerror.ErrInvalidGoalPeriod,
		)
	}
}
