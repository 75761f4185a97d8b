package resource

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

type fakeResourceRepo struct {
	resources map[uuid.UUID]*entity.Resource
}

func newFakeResourceRepo(resources ...*entity.Resource) *fakeResourceRepo {
	r := &fakeResourceRepo{resources: make(map[uuid.UUID]*entity.Resource)}
	for _, res := range resources {
		r.resources[res.ID] = res
	}
	return r
}

func (r *fakeResourceRepo) Create(_ context.Context, resource *entity.Resource) error {
	r.resources[resource.ID] = resource
	return nil
}

func (r *fakeResourceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Resource, error) {
	res, ok := r.resources[id]
	if !ok {
		return nil, domainerror.ErrResourceNotFound
	}
	return res, nil
}

func (r *fakeResourceRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Resource, error) {
	var out []*entity.Resource
	for _, res := range r.resources {
		if res.UserID == userID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeResourceRepo) Update(_ context.Context, resource *entity.Resource) error {
	r.resources[resource.ID] = resource
	return nil
}

func (r *fakeResourceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.resources, id)
	return nil
}

func wantResourceErrorCode(t *testing.T, err error, code domainerror.ResourceErrorCode) {
	t.Helper()
	var resErr *domainerror.ResourceError
	if !errors.As(err, &resErr) {
		t.Fatalf("expected ResourceError, got %v", err)
	}
	if resErr.Code != code {
		t.Errorf("code = %s, want %s", resErr.Code, code)
	}
}

func TestCreateResource(t *testing.T) {
	tests := []struct {
		name     string
		input    CreateResourceInput
		wantCode domainerror.ResourceErrorCode
	}{
		{
			name: "valid book",
			input: CreateResourceInput{
				UserID:   uuid.New(),
				Title:    "The Go Programming Language",
				Category: entity.ResourceCategoryBook,
				Total:    380,
			},
		},
		{
			name: "missing title",
			input: CreateResourceInput{
				UserID:   uuid.New(),
				Category: entity.ResourceCategoryBook,
				Total:    100,
			},
			wantCode: domainerror.ErrCodeMissingResourceFields,
		},
		{
			name: "invalid category",
			input: CreateResourceInput{
				UserID:   uuid.New(),
				Title:    "x",
				Category: "movie",
				Total:    100,
			},
			wantCode: domainerror.ErrCodeInvalidResourceCategory,
		},
		{
			name: "current beyond total",
			input: CreateResourceInput{
				UserID:   uuid.New(),
				Title:    "x",
				Category: entity.ResourceCategoryPaper,
				Total:    10,
				Current:  11,
			},
			wantCode: domainerror.ErrCodeInvalidResourceProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateResourceUseCase(newFakeResourceRepo())

			output, err := uc.Execute(context.Background(), tt.input)
			if tt.wantCode != "" {
				wantResourceErrorCode(t, err, tt.wantCode)
				return
			}
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if output.Resource.Status != entity.ResourceStatusActive {
				t.Errorf("status = %s, want active", output.Resource.Status)
			}
		})
	}
}

func TestUpdateResourceCompletesWhenCurrentReachesTotal(t *testing.T) {
	userID := uuid.New()
	res := entity.NewResource(userID, "Thesis", entity.ResourceCategoryProject, 5, 4)
	uc := NewUpdateResourceUseCase(newFakeResourceRepo(res))

	current := 5
	output, err := uc.Execute(context.Background(), UpdateResourceInput{
		ResourceID: res.ID,
		UserID:     userID,
		Current:    &current,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if output.Resource.Status != entity.ResourceStatusCompleted {
		t.Errorf("status = %s, want completed on current == total", output.Resource.Status)
	}
}

func TestUpdateResourceAuthorization(t *testing.T) {
	res := entity.NewResource(uuid.New(), "Book", entity.ResourceCategoryBook, 100, 0)
	uc := NewUpdateResourceUseCase(newFakeResourceRepo(res))

	current := 10
	_, err := uc.Execute(context.Background(), UpdateResourceInput{
		ResourceID: res.ID,
		UserID:     uuid.New(),
		Current:    &current,
	})
	wantResourceErrorCode(t, err, domainerror.ErrCodeNotAuthorizedResource)
}
