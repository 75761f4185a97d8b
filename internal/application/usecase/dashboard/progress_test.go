package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

func entryFor(userID, habitID uuid.UUID, delta int, occurredAt time.Time) *entity.ActivityEntry {
	return &entity.ActivityEntry{
		ID:         uuid.New(),
		UserID:     userID,
		HabitID:    habitID,
		HabitName:  "test",
		PointDelta: delta,
		OccurredAt: occurredAt,
	}
}

func TestComputeProgressHabitCount(t *testing.T) {
	userID := uuid.New()
	h1 := uuid.New()
	h2 := uuid.New()
	now := time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)
	window, _ := ResolveWindow(entity.GoalPeriodWeekly, now)

	inWindow := window.Start.Add(6 * time.Hour)
	entries := []*entity.ActivityEntry{
		entryFor(userID, h1, 10, inWindow),
		entryFor(userID, h1, 10, inWindow.Add(time.Hour)),
		entryFor(userID, h2, 5, inWindow),
		entryFor(userID, h2, 5, inWindow),
		entryFor(userID, h2, 5, inWindow),
		entryFor(userID, h2, 5, inWindow),
		entryFor(userID, h2, 5, inWindow),
		entryFor(userID, h1, 10, window.Start.Add(-time.Hour)), // previous week
	}

	goal := entity.NewGoal(userID, "Run three times", entity.GoalPeriodWeekly, entity.GoalTargetHabitCount, &h1, 3)
	progress := ComputeProgress(goal, entries, window)

	if progress.Current != 2 {
		t.Errorf("current = %d, want 2", progress.Current)
	}
	if progress.Percent != 67 {
		t.Errorf("percent = %d, want 67", progress.Percent)
	}
	if progress.IsComplete {
		t.Error("goal should not be complete at 2/3")
	}
}

func TestComputeProgressPointsEarnedExcludesSpending(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)
	window, _ := ResolveWindow(entity.GoalPeriodMonthly, now)

	inWindow := window.Start.Add(time.Hour)
	entries := []*entity.ActivityEntry{
		entryFor(userID, uuid.New(), 20, inWindow),
		entryFor(userID, uuid.New(), 30, inWindow),
		entryFor(userID, uuid.New(), -15, inWindow),
		entryFor(userID, uuid.New(), 10, inWindow),
	}

	goal := entity.NewGoal(userID, "Earn 100", entity.GoalPeriodMonthly, entity.GoalTargetPointsEarned, nil, 100)
	progress := ComputeProgress(goal, entries, window)

	if progress.Current != 60 {
		t.Errorf("current = %d, want 60 (spending excluded, not netted to 45)", progress.Current)
	}
	if progress.Percent != 60 {
		t.Errorf("percent = %d, want 60", progress.Percent)
	}
}

func TestComputeProgressPercentBounds(t *testing.T) {
	userID := uuid.New()
	habitID := uuid.New()
	now := time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)
	window, _ := ResolveWindow(entity.GoalPeriodWeekly, now)
	inWindow := window.Start.Add(time.Hour)

	tests := []struct {
		name        string
		entryCount  int
		targetValue int
		wantPercent int
		wantDone    bool
	}{
		{name: "empty ledger", entryCount: 0, targetValue: 5, wantPercent: 0, wantDone: false},
		{name: "exactly complete", entryCount: 5, targetValue: 5, wantPercent: 100, wantDone: true},
		{name: "overshoot clamps to 100", entryCount: 12, targetValue: 5, wantPercent: 100, wantDone: true},
		{name: "zero target does not divide", entryCount: 3, targetValue: 0, wantPercent: 100, wantDone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []*entity.ActivityEntry
			for i := 0; i < tt.entryCount; i++ {
				entries = append(entries, entryFor(userID, habitID, 1, inWindow))
			}
			goal := entity.NewGoal(userID, "g", entity.GoalPeriodWeekly, entity.GoalTargetHabitCount, &habitID, tt.targetValue)
			progress := ComputeProgress(goal, entries, window)

			if progress.Percent < 0 || progress.Percent > 100 {
				t.Fatalf("percent %d out of [0, 100]", progress.Percent)
			}
			if progress.Percent != tt.wantPercent {
				t.Errorf("percent = %d, want %d", progress.Percent, tt.wantPercent)
			}
			if progress.IsComplete != tt.wantDone {
				t.Errorf("isComplete = %v, want %v", progress.IsComplete, tt.wantDone)
			}
		})
	}
}

func TestComputeProgressIgnoresDeletedEntries(t *testing.T) {
	userID := uuid.New()
	habitID := uuid.New()
	now := time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)
	window, _ := ResolveWindow(entity.GoalPeriodWeekly, now)

	deleted := entryFor(userID, habitID, 10, window.Start.Add(time.Hour))
	deletedAt := now
	deleted.DeletedAt = &deletedAt

	entries := []*entity.ActivityEntry{
		entryFor(userID, habitID, 10, window.Start.Add(time.Hour)),
		deleted,
	}

	goal := entity.NewGoal(userID, "g", entity.GoalPeriodWeekly, entity.GoalTargetHabitCount, &habitID, 3)
	if progress := ComputeProgress(goal, entries, window); progress.Current != 1 {
		t.Errorf("current = %d, want 1 (deleted entry excluded)", progress.Current)
	}
}
