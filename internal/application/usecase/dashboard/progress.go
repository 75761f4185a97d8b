package dashboard

import (
	"math"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// Progress is the live progress of a goal over its current window. There is
// no stored "current" field anywhere; progress is always recomputed from the
// ledger so it stays consistent after retroactive edits or deletions.
type Progress struct {
	Current    int
	Percent    int
	IsComplete bool
}

// ComputeProgress filters the ledger entries into the goal's window and
// target scope and reduces them to a current value and a bounded percentage.
// Entries are matched on occurredAt >= window start; display order of the
// input is irrelevant.
func ComputeProgress(goal *entity.Goal, entries []*entity.ActivityEntry, window Window) Progress {
	filtered := FilterWindowEntries(goal, entries, window)

	current := 0
	switch goal.TargetType {
	case entity.GoalTargetPointsEarned:
		for _, e := range filtered {
			if e.PointDelta > 0 {
				current += e.PointDelta
			}
		}
	default: // habit count
		current = len(filtered)
	}

	percent := 0
	if goal.TargetValue > 0 {
		percent = int(math.Round(100 * float64(current) / float64(goal.TargetValue)))
	} else if current > 0 {
		// Non-positive targets are a caller-validation failure; clamp
		// instead of dividing.
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	return Progress{
		Current:    current,
		Percent:    percent,
		IsComplete: percent >= 100,
	}
}

// FilterWindowEntries returns the entries inside the goal's window, narrowed
// to the goal's habit when the goal is scoped to one.
func FilterWindowEntries(goal *entity.Goal, entries []*entity.ActivityEntry, window Window) []*entity.ActivityEntry {
	var filtered []*entity.ActivityEntry
	for _, e := range entries {
		if e.DeletedAt != nil {
			continue
		}
		if e.OccurredAt.Before(window.Start) {
			continue
		}
		if goal.TargetHabitID != nil && e.HabitID != *goal.TargetHabitID {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}
