package habit

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

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
	var out []*entity.Habit
	for _, h := range r.habits {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHabitRepo) Update(_ context.Context, habit *entity.Habit) error {
	r.habits[habit.ID] = habit
	return nil
}

func (r *fakeHabitRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.habits, id)
	return nil
}

func TestCreateHabit(t *testing.T) {
	tests := []struct {
		name     string
		input    CreateHabitInput
		wantCode domainerror.HabitErrorCode
	}{
		{
			name: "valid good habit",
			input: CreateHabitInput{
				UserID:    uuid.New(),
				Name:      "Morning run",
				Direction: entity.HabitDirectionGood,
				Value:     10,
			},
		},
		{
			name: "valid bad habit",
			input: CreateHabitInput{
				UserID:    uuid.New(),
				Name:      "Junk food",
				Direction: entity.HabitDirectionBad,
				Cost:      15,
				Icon:      "pizza",
			},
		},
		{
			name: "missing name",
			input: CreateHabitInput{
				UserID:    uuid.New(),
				Direction: entity.HabitDirectionGood,
				Value:     10,
			},
			wantCode: domainerror.ErrCodeMissingHabitFields,
		},
		{
			name: "name too long",
			input: CreateHabitInput{
				UserID:    uuid.New(),
				Name:      strings.Repeat("x", MaxHabitNameLength+1),
				Direction: entity.HabitDirectionGood,
				Value:     10,
			},
			wantCode: domainerror.ErrCodeHabitNameTooLong,
		},
		{
			name: "invalid direction",
			input: CreateHabitInput{
				UserID:    uuid.New(),
				Name:      "Run",
				Direction: "sideways",
				Value:     10,
			},
			wantCode: domainerror.ErrCodeInvalidHabitDirection,
		},
		{
			name: "good habit without a reward value",
			input: CreateHabitInput{
				UserID:    uuid.New(),
				Name:      "Run",
				Direction: entity.HabitDirectionGood,
				Cost:      10, // wrong magnitude for the direction
			},
			wantCode: domainerror.ErrCodeInvalidHabitMagnitude,
		},
		{
			name: "negative magnitude",
			input: CreateHabitInput{
				UserID:    uuid.New(),
				Name:      "Run",
				Direction: entity.HabitDirectionGood,
				Value:     -5,
			},
			wantCode: domainerror.ErrCodeInvalidHabitMagnitude,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeHabitRepo()
			uc := NewCreateHabitUseCase(repo)

			output, err := uc.Execute(context.Background(), tt.input)
			if tt.wantCode != "" {
				var habitErr *domainerror.HabitError
				if !errors.As(err, &habitErr) {
					t.Fatalf("expected HabitError, got %v", err)
				}
				if habitErr.Code != tt.wantCode {
					t.Errorf("code = %s, want %s", habitErr.Code, tt.wantCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if output.Habit.ID == uuid.Nil {
				t.Error("habit was not assigned an id")
			}
			if _, ok := repo.habits[output.Habit.ID]; !ok {
				t.Error("habit was not persisted")
			}
			if tt.input.Icon == "" && output.Habit.Icon != entity.DefaultHabitIcon {
				t.Errorf("icon = %q, want default %q", output.Habit.Icon, entity.DefaultHabitIcon)
			}
		})
	}
}

func TestUpdateHabitDoesNotTouchOtherUsers(t *testing.T) {
	owner := uuid.New()
	habit := entity.NewHabit(owner, "Read", entity.HabitDirectionGood, 7, 0, "book")
	uc := NewUpdateHabitUseCase(newFakeHabitRepo(habit))

	newName := "Read more"
	_, err := uc.Execute(context.Background(), UpdateHabitInput{
		HabitID: habit.ID,
		UserID:  uuid.New(), // not the owner
		Name:    &newName,
	})

	var habitErr *domainerror.HabitError
	if !errors.As(err, &habitErr) || habitErr.Code != domainerror.ErrCodeNotAuthorizedHabit {
		t.Fatalf("expected authorization error, got %v", err)
	}
	if habit.Name != "Read" {
		t.Errorf("habit name changed to %q despite failed authorization", habit.Name)
	}
}

func TestUpdateHabitPartialFields(t *testing.T) {
	owner := uuid.New()
	habit := entity.NewHabit(owner, "Read", entity.HabitDirectionGood, 7, 0, "book")
	uc := NewUpdateHabitUseCase(newFakeHabitRepo(habit))

	newValue := 12
	output, err := uc.Execute(context.Background(), UpdateHabitInput{
		HabitID: habit.ID,
		UserID:  owner,
		Value:   &newValue,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if output.Habit.Value != 12 {
		t.Errorf("value = %d, want 12", output.Habit.Value)
	}
	if output.Habit.Name != "Read" || output.Habit.Icon != "book" {
		t.Error("untouched fields were modified")
	}
}

func TestDeleteHabit(t *testing.T) {
	owner := uuid.New()
	habit := entity.NewHabit(owner, "Read", entity.HabitDirectionGood, 7, 0, "book")
	repo := newFakeHabitRepo(habit)
	uc := NewDeleteHabitUseCase(repo)

	if err := uc.Execute(context.Background(), DeleteHabitInput{HabitID: habit.ID, UserID: owner}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if _, ok := repo.habits[habit.ID]; ok {
		t.Error("habit still present after delete")
	}

	err := uc.Execute(context.Background(), DeleteHabitInput{HabitID: habit.ID, UserID: owner})
	var habitErr *domainerror.HabitError
	if !errors.As(err, &habitErr) || habitErr.Code != domainerror.ErrCodeHabitNotFound {
		t.Errorf("expected not-found error on second delete, got %v", err)
	}
}
