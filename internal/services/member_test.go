package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-manager/internal/apperr"
	"github.com/magabrotheeeer/gym-manager/internal/models"
)

type MemberRepoMock struct{ mock.Mock }

func (m *MemberRepoMock) CreateMember(ctx context.Context, member models.Member) (int64, error) {
	args := m.Called(ctx, member)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MemberRepoMock) GetMember(ctx context.Context, id int64) (*models.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}
func (m *MemberRepoMock) ListMembers(ctx context.Context, searchTerm string) ([]*models.MemberInfo, error) {
	args := m.Called(ctx, searchTerm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MemberInfo), args.Error(1)
}
func (m *MemberRepoMock) UpdateMember(ctx context.Context, id int64, fields []models.FieldUpdate) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MemberRepoMock) DeleteMember(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestMemberService_Create(t *testing.T) {
	valid := models.DummyMember{
		Name:           "John Smith",
		Email:          "john@example.com",
		Phone:          "555-0101",
		MembershipType: "Premium",
		JoinDate:       "2024-01-01",
		EndDate:        "2024-12-31",
	}

	tests := []struct {
		name        string
		setupMocks  func(r *MemberRepoMock)
		req         models.DummyMember
		wantID      int64
		wantErr     bool
		wantNoWrite bool
	}{
		{
			name: "success create",
			setupMocks: func(r *MemberRepoMock) {
				r.On("CreateMember", mock.Anything, mock.MatchedBy(func(m models.Member) bool {
					return m.Name == "John Smith" &&
						m.Email != nil && *m.Email == "john@example.com" &&
						m.MembershipType == "Premium"
				})).Return(int64(42), nil).Once()
			},
			req:    valid,
			wantID: 42,
		},
		{
			name: "empty email and phone normalized to absent",
			setupMocks: func(r *MemberRepoMock) {
				r.On("CreateMember", mock.Anything, mock.MatchedBy(func(m models.Member) bool {
					return m.Email == nil && m.Phone == nil
				})).Return(int64(1), nil).Once()
			},
			req: models.DummyMember{
				Name:           "John Smith",
				MembershipType: "Basic",
				JoinDate:       "2024-01-01",
				EndDate:        "2024-12-31",
			},
			wantID: 1,
		},
		{
			name:        "missing required name",
			setupMocks:  func(_ *MemberRepoMock) {},
			req:         models.DummyMember{MembershipType: "Basic", JoinDate: "2024-01-01", EndDate: "2024-12-31"},
			wantErr:     true,
			wantNoWrite: true,
		},
		{
			name:        "invalid join date",
			setupMocks:  func(_ *MemberRepoMock) {},
			req: models.DummyMember{
				Name:           "John Smith",
				MembershipType: "Basic",
				JoinDate:       "01-01-2024",
				EndDate:        "2024-12-31",
			},
			wantErr:     true,
			wantNoWrite: true,
		},
		{
			name:       "end date before join date performs no write",
			setupMocks: func(_ *MemberRepoMock) {},
			req: models.DummyMember{
				Name:           "John Smith",
				MembershipType: "Basic",
				JoinDate:       "2024-06-01",
				EndDate:        "2024-01-01",
			},
			wantErr:     true,
			wantNoWrite: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MemberRepoMock)
			tt.setupMocks(repo)
			service := NewMemberService(repo, newNoopLogger())

			id, err := service.Create(context.Background(), tt.req)
			if tt.wantErr {
				require.Error(t, err)
				var validation *apperr.ValidationError
				assert.ErrorAs(t, err, &validation)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
			if tt.wantNoWrite {
				repo.AssertNotCalled(t, "CreateMember", mock.Anything, mock.Anything)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestMemberService_Update(t *testing.T) {
	tests := []struct {
		name       string
		updates    map[string]string
		setupMocks func(r *MemberRepoMock)
		wantErr    bool
	}{
		{
			name:    "unknown fields ignored, known applied",
			updates: map[string]string{"name": "John S.", "notAField": "Y"},
			setupMocks: func(r *MemberRepoMock) {
				r.On("UpdateMember", mock.Anything, int64(5), []models.FieldUpdate{
					{Column: "name", Value: "John S."},
				}).Return(int64(1), nil).Once()
			},
		},
		{
			name:    "empty email normalized to null",
			updates: map[string]string{"email": "", "phone": "555-0101"},
			setupMocks: func(r *MemberRepoMock) {
				r.On("UpdateMember", mock.Anything, int64(5), []models.FieldUpdate{
					{Column: "email", Value: nil},
					{Column: "phone", Value: "555-0101"},
				}).Return(int64(1), nil).Once()
			},
		},
		{
			name:       "empty update set rejected",
			updates:    map[string]string{},
			setupMocks: func(_ *MemberRepoMock) {},
			wantErr:    true,
		},
		{
			name:       "only unknown fields rejected",
			updates:    map[string]string{"notAField": "Y"},
			setupMocks: func(_ *MemberRepoMock) {},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MemberRepoMock)
			tt.setupMocks(repo)
			service := NewMemberService(repo, newNoopLogger())

			_, err := service.Update(context.Background(), 5, tt.updates)
			if tt.wantErr {
				require.Error(t, err)
				var validation *apperr.ValidationError
				assert.ErrorAs(t, err, &validation)
				repo.AssertNotCalled(t, "UpdateMember", mock.Anything, mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestMemberService_Delete(t *testing.T) {
	repo := new(MemberRepoMock)
	repo.On("DeleteMember", mock.Anything, int64(7)).Return(int64(0), nil).Once()
	service := NewMemberService(repo, newNoopLogger())

	// Удаление несуществующего ID — успех с нулём строк.
	count, err := service.Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
	repo.AssertExpectations(t)
}

func TestMemberService_List(t *testing.T) {
	repo := new(MemberRepoMock)
	repo.On("ListMembers", mock.Anything, "smith").Return([]*models.MemberInfo{
		{ID: 1, Name: "John Smith", Status: "Active"},
	}, nil).Once()
	service := NewMemberService(repo, newNoopLogger())

	members, err := service.List(context.Background(), "smith")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Active", members[0].Status)
	repo.AssertExpectations(t)
}
