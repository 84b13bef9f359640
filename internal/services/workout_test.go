package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-manager/internal/apperr"
	"github.com/magabrotheeeer/gym-manager/internal/models"
)

type WorkoutRepoMock struct{ mock.Mock }

func (m *WorkoutRepoMock) CreateWorkout(ctx context.Context, w models.Workout) (int64, error) {
	args := m.Called(ctx, w)
	return args.Get(0).(int64), args.Error(1)
}
func (m *WorkoutRepoMock) ListWorkouts(ctx context.Context) ([]*models.Workout, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Workout), args.Error(1)
}

func TestWorkoutService_Create(t *testing.T) {
	tests := []struct {
		name       string
		req        models.DummyWorkout
		setupMocks func(r *WorkoutRepoMock)
		wantErr    bool
	}{
		{
			name: "success create",
			req:  models.DummyWorkout{Name: "Morning Yoga", Duration: "45", Difficulty: "Beginner"},
			setupMocks: func(r *WorkoutRepoMock) {
				r.On("CreateWorkout", mock.Anything, models.Workout{
					Name:       "Morning Yoga",
					Duration:   45,
					Difficulty: "Beginner",
				}).Return(int64(3), nil).Once()
			},
		},
		{
			name:       "missing name",
			req:        models.DummyWorkout{Duration: "45", Difficulty: "Beginner"},
			setupMocks: func(_ *WorkoutRepoMock) {},
			wantErr:    true,
		},
		{
			name:       "missing difficulty",
			req:        models.DummyWorkout{Name: "Morning Yoga", Duration: "45"},
			setupMocks: func(_ *WorkoutRepoMock) {},
			wantErr:    true,
		},
		{
			name:       "non-numeric duration",
			req:        models.DummyWorkout{Name: "Morning Yoga", Duration: "long", Difficulty: "Beginner"},
			setupMocks: func(_ *WorkoutRepoMock) {},
			wantErr:    true,
		},
		{
			name:       "zero duration",
			req:        models.DummyWorkout{Name: "Morning Yoga", Duration: "0", Difficulty: "Beginner"},
			setupMocks: func(_ *WorkoutRepoMock) {},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(WorkoutRepoMock)
			tt.setupMocks(repo)
			service := NewWorkoutService(repo, newNoopLogger())

			_, err := service.Create(context.Background(), tt.req)
			if tt.wantErr {
				require.Error(t, err)
				var validation *apperr.ValidationError
				assert.ErrorAs(t, err, &validation)
				repo.AssertNotCalled(t, "CreateWorkout", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}
