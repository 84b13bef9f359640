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

type AttendanceRepoMock struct{ mock.Mock }

func (m *AttendanceRepoMock) CreateCheckin(ctx context.Context, memberID int64) (int64, error) {
	args := m.Called(ctx, memberID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *AttendanceRepoMock) ListAttendance(ctx context.Context) ([]*models.AttendanceInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AttendanceInfo), args.Error(1)
}

func TestAttendanceService_RecordCheckin(t *testing.T) {
	tests := []struct {
		name       string
		memberID   string
		setupMocks func(r *AttendanceRepoMock)
		wantErr    bool
	}{
		{
			name:     "success check-in",
			memberID: "12",
			setupMocks: func(r *AttendanceRepoMock) {
				r.On("CreateCheckin", mock.Anything, int64(12)).Return(int64(1), nil).Once()
			},
		},
		{
			name:       "non-numeric member id",
			memberID:   "abc",
			setupMocks: func(_ *AttendanceRepoMock) {},
			wantErr:    true,
		},
		{
			name:       "empty member id",
			memberID:   "",
			setupMocks: func(_ *AttendanceRepoMock) {},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(AttendanceRepoMock)
			tt.setupMocks(repo)
			service := NewAttendanceService(repo, newNoopLogger())

			_, err := service.RecordCheckin(context.Background(), tt.memberID)
			if tt.wantErr {
				require.Error(t, err)
				var validation *apperr.ValidationError
				assert.ErrorAs(t, err, &validation)
				repo.AssertNotCalled(t, "CreateCheckin", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}
