package services

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/magabrotheeeer/gym-manager/internal/apperr"
	"github.com/magabrotheeeer/gym-manager/internal/models"
)

// AttendanceRepository определяет методы для работы с посещениями в хранилище.
type AttendanceRepository interface {
	// CreateCheckin добавляет отметку участника и возвращает её ID.
	CreateCheckin(ctx context.Context, memberID int64) (int64, error)
	// ListAttendance возвращает журнал посещений с именем участника.
	ListAttendance(ctx context.Context) ([]*models.AttendanceInfo, error)
}

// AttendanceService реализует бизнес-логику журнала посещений.
type AttendanceService struct {
	repo AttendanceRepository
	log  *slog.Logger
}

// NewAttendanceService создает новый экземпляр AttendanceService.
func NewAttendanceService(repo AttendanceRepository, log *slog.Logger) *AttendanceService {
	return &AttendanceService{
		repo: repo,
		log:  log,
	}
}

// RecordCheckin отмечает участника в зале. Идентификатор должен парситься
// в целое число; активность абонемента при этом не проверяется.
func (s *AttendanceService) RecordCheckin(ctx context.Context, memberID string) (int64, error) {
	id, err := strconv.ParseInt(memberID, 10, 64)
	if err != nil {
		return 0, apperr.NewValidation("invalid member id: %s", memberID)
	}

	checkinID, err := s.repo.CreateCheckin(ctx, id)
	if err != nil {
		return 0, err
	}
	s.log.Info("recorded check-in", slog.Int64("member_id", id))
	return checkinID, nil
}

// List возвращает журнал посещений, от новых отметок к старым.
func (s *AttendanceService) List(ctx context.Context) ([]*models.AttendanceInfo, error) {
	return s.repo.ListAttendance(ctx)
}
