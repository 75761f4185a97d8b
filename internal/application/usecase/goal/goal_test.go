package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

type fakeGoalRepo struct {
	goals map[uuid.UUID]*entity.Goal
}

func newFakeGoalRepo(goals ...*entity.Goal) *fakeGoalRepo {
	r := &fakeGoalRepo{goals: make(map[uuid.UUID]*entity.Goal)}
	for _, g := range goals {
		r.goals[g.ID] = g
	}
	return r
}

func (r *fakeGoalRepo) Create(_ context.Context, goal *entity.Goal) error {
	r.goals[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	g, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	return g, nil
}

func (r *fakeGoalRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, g := range r.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) FindByUserAndPeriod(_ context.Context, userID uuid.UUID, period entity.GoalPeriod) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, g := range r.goals {
		if g.UserID == userID && g.Period == period {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) Update(_ context.Context, goal *entity.Goal) error {
	r.goals[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.goals, id)
	return nil
}

type fakeHabitRepo struct {
	habits map[uuid.UUID]*entity.Habit
}

func newFakeHabitRepo(habits ...*entity.Habit) *fakeHabitRepo {
	r := &fakeHabitRepo{habits: make(map[uuid.UUID]*entity.Habit)}
	for _, h := range habits {
		r.habits[h.ID] = h
	}
	return r
}

func (r *fakeHabitRepo) Create(_ context.Context, habit *entity.Habit) error {
	r.habits[habit.ID] = habit
	return nil
}

func (r *fakeHabitRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Habit, error) {
	h, ok := r.habits[id]
	if !ok {
		return nil, domainerror.ErrHabitNotFound
	}
	return h, nil
}

func (r *fakeHabitRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Habit, error) {
	return nil, nil
}

func (r *fakeHabitRepo) Update(_ context.Context, habit *entity.Habit) error { return nil }

func (r *fakeHabitRepo) Delete(_ context.Context, id uuid.UUID) error { return nil }

type fakeMonthlyGoalRepo struct {
	goals map[uuid.UUID]*entity.MonthlyGoal
}

func newFakeMonthlyGoalRepo() *fakeMonthlyGoalRepo {
	return &fakeMonthlyGoalRepo{goals: make(map[uuid.UUID]*entity.MonthlyGoal)}
}

func (r *fakeMonthlyGoalRepo) Create(_ context.Context, goal *entity.MonthlyGoal) error {
	r.goals[goal.ID] = goal
	return nil
}

func (r *fakeMonthlyGoalRepo) FindByUserAndMonth(_ context.Context, userID uuid.UUID, month time.Month, year int) (*entity.MonthlyGoal, error) {
	for _, g := range r.goals {
		if g.UserID == userID && g.Month == month && g.Year == year {
			return g, nil
		}
	}
	return nil, domainerror.ErrGoalNotFound
}

func (r *fakeMonthlyGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.goals, id)
	return nil
}

func wantGoalErrorCode(t *testing.T, err error, code domainerror.GoalErrorCode) {
	t.Helper()
	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) {
		t.Fatalf("expected GoalError, got %v", err)
	}
	if goalErr.Code != code {
		t.Errorf("code = %s, want %s", goalErr.Code, code)
	}
}

func TestCreateGoalValidation(t *testing.T) {
	userID := uuid.New()
	habit := entity.NewHabit(userID, "Run", entity.HabitDirectionGood, 10, 0, "activity")
	otherHabit := entity.NewHabit(uuid.New(), "Swim", entity.HabitDirectionGood, 10, 0, "activity")
	habitRepo := newFakeHabitRepo(habit, otherHabit)

	tests := []struct {
		name     string
		input    CreateGoalInput
		wantCode domainerror.GoalErrorCode
	}{
		{
			name: "valid habit-scoped goal",
			input: CreateGoalInput{
				UserID:        userID,
				Title:         "Run three times a week",
				Period:        entity.GoalPeriodWeekly,
				TargetType:    entity.GoalTargetHabitCount,
				TargetHabitID: &habit.ID,
				TargetValue:   3,
			},
		},
		{
			name: "valid unscoped points goal",
			input: CreateGoalInput{
				UserID:      userID,
				Title:       "Earn 500 this quarter",
				Period:      entity.GoalPeriodQuarterly,
				TargetType:  entity.GoalTargetPointsEarned,
				TargetValue: 500,
			},
		},
		{
			name: "missing title",
			input: CreateGoalInput{
				UserID:      userID,
				Period:      entity.GoalPeriodWeekly,
				TargetType:  entity.GoalTargetHabitCount,
				TargetValue: 3,
			},
			wantCode: domainerror.ErrCodeMissingGoalFields,
		},
		{
			name: "invalid period",
			input: CreateGoalInput{
				UserID:      userID,
				Title:       "g",
				Period:      "yearly",
				TargetType:  entity.GoalTargetHabitCount,
				TargetValue: 3,
			},
			wantCode: domainerror.ErrCodeInvalidGoalPeriod,
		},
		{
			name: "invalid target type",
			input: CreateGoalInput{
				UserID:      userID,
				Title:       "g",
				Period:      entity.GoalPeriodWeekly,
				TargetType:  "streak",
				TargetValue: 3,
			},
			wantCode: domainerror.ErrCodeInvalidGoalTargetType,
		},
		{
			name: "zero target value",
			input: CreateGoalInput{
				UserID:      userID,
				Title:       "g",
				Period:      entity.GoalPeriodWeekly,
				TargetType:  entity.GoalTargetHabitCount,
				TargetValue: 0,
			},
			wantCode: domainerror.ErrCodeInvalidTargetValue,
		},
		{
			name: "scoped habit belongs to someone else",
			input: CreateGoalInput{
				UserID:        userID,
				Title:         "g",
				Period:        entity.GoalPeriodWeekly,
				TargetType:    entity.GoalTargetHabitCount,
				TargetHabitID: &otherHabit.ID,
				TargetValue:   3,
			},
			wantCode: domainerror.ErrCodeHabitDoesNotBelongUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateGoalUseCase(newFakeGoalRepo(), habitRepo)

			output, err := uc.Execute(context.Background(), tt.input)
			if tt.wantCode != "" {
				wantGoalErrorCode(t, err, tt.wantCode)
				return
			}
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if output.Goal.ID == uuid.Nil {
				t.Error("goal was not assigned an id")
			}
		})
	}
}

func TestUpdateGoalAuthorization(t *testing.T) {
	owner := uuid.New()
	goal := entity.NewGoal(owner, "g", entity.GoalPeriodWeekly, entity.GoalTargetHabitCount, nil, 3)
	uc := NewUpdateGoalUseCase(newFakeGoalRepo(goal), newFakeHabitRepo())

	title := "renamed"
	_, err := uc.Execute(context.Background(), UpdateGoalInput{
		GoalID: goal.ID,
		UserID: uuid.New(),
		Title:  &title,
	})
	wantGoalErrorCode(t, err, domainerror.ErrCodeUnauthorizedGoalAccess)
}

func TestSetMonthlyGoalReplacesByDeleteThenInsert(t *testing.T) {
	userID := uuid.New()
	repo := newFakeMonthlyGoalRepo()
	uc := NewSetMonthlyGoalUseCase(repo)
	ctx := context.Background()

	first, err := uc.Execute(ctx, SetMonthlyGoalInput{UserID: userID, Month: time.June, Year: 2025, TargetPoints: 200})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	second, err := uc.Execute(ctx, SetMonthlyGoalInput{UserID: userID, Month: time.June, Year: 2025, TargetPoints: 300})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(repo.goals) != 1 {
		t.Fatalf("got %d monthly goals, want 1 after replacement", len(repo.goals))
	}
	if _, ok := repo.goals[first.Goal.ID]; ok {
		t.Error("old goal row still present; replacement must delete then insert")
	}
	if second.Goal.ID == first.Goal.ID {
		t.Error("replacement reused the old id; expected a fresh row")
	}
	if repo.goals[second.Goal.ID].TargetPoints != 300 {
		t.Errorf("target points = %d, want 300", repo.goals[second.Goal.ID].TargetPoints)
	}
}

func TestSetMonthlyGoalValidation(t *testing.T) {
	uc := NewSetMonthlyGoalUseCase(newFakeMonthlyGoalRepo())

	_, err := uc.Execute(context.Background(), SetMonthlyGoalInput{UserID: uuid.New(), Month: 13, Year: 2025, TargetPoints: 100})
	wantGoalErrorCode(t, err, domainerror.ErrCodeInvalidGoalMonth)

	_, err = uc.Execute(context.Background(), SetMonthlyGoalInput{UserID: uuid.New(), Month: time.June, Year: 2025, TargetPoints: 0})
	wantGoalErrorCode(t, err, domainerror.ErrCodeInvalidTargetValue)
}
