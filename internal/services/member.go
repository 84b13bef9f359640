// Package services содержит бизнес-логику операций над участниками,
// платежами, посещениями, тренировками и отчётами. Каждая операция
// валидирует вход до обращения к хранилищу, чтобы исключить частичные
// побочные эффекты.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/gym-manager/internal/apperr"
	"github.com/magabrotheeeer/gym-manager/internal/lib/sl"
	"github.com/magabrotheeeer/gym-manager/internal/models"
)

// dateLayout — формат дат, приходящих из UI-слоя и хранящихся в таблицах.
const dateLayout = "2006-01-02"

// allowedMemberFields — белый список колонок для частичного обновления
// участника, в фиксированном порядке применения. Неизвестные поля
// молча игнорируются.
var allowedMemberFields = []string{"name", "email", "phone", "membership_type", "join_date", "end_date"}

// MemberRepository определяет методы для работы с участниками в хранилище.
type MemberRepository interface {
	// CreateMember добавляет нового участника и возвращает его ID.
	CreateMember(ctx context.Context, m models.Member) (int64, error)
	// GetMember возвращает участника по ID.
	GetMember(ctx context.Context, id int64) (*models.Member, error)
	// ListMembers возвращает участников с производным статусом и фильтром поиска.
	ListMembers(ctx context.Context, searchTerm string) ([]*models.MemberInfo, error)
	// UpdateMember обновляет перечисленные колонки участника по ID.
	UpdateMember(ctx context.Context, id int64, fields []models.FieldUpdate) (int64, error)
	// DeleteMember удаляет участника по ID вместе с зависимыми записями.
	DeleteMember(ctx context.Context, id int64) (int64, error)
}

// MemberService реализует бизнес-логику работы с участниками.
type MemberService struct {
	repo     MemberRepository
	log      *slog.Logger
	validate *validator.Validate
}

// NewMemberService создает новый экземпляр MemberService.
func NewMemberService(repo MemberRepository, log *slog.Logger) *MemberService {
	return &MemberService{
		repo:     repo,
		log:      log,
		validate: validator.New(),
	}
}

// Create добавляет нового участника и возвращает его ID. Пустые email и
// телефон нормализуются в отсутствие значения. Дата окончания раньше даты
// вступления — ошибка валидации до записи.
func (s *MemberService) Create(ctx context.Context, req models.DummyMember) (int64, error) {
	if err := s.validate.Struct(req); err != nil {
		return 0, apperr.ValidationFromTags(err.(validator.ValidationErrors))
	}
	joinDate, err := time.Parse(dateLayout, req.JoinDate)
	if err != nil {
		return 0, apperr.NewValidation("invalid join date: %s", req.JoinDate)
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return 0, apperr.NewValidation("invalid end date: %s", req.EndDate)
	}
	if endDate.Before(joinDate) {
		return 0, apperr.NewValidation("end date must not be earlier than join date")
	}

	m := models.Member{
		Name:           req.Name,
		Email:          optional(req.Email),
		Phone:          optional(req.Phone),
		MembershipType: req.MembershipType,
		JoinDate:       req.JoinDate,
		EndDate:        req.EndDate,
	}
	id, err := s.repo.CreateMember(ctx, m)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new member", slog.Int64("id", id))
	return id, nil
}

// List возвращает участников со статусом, отфильтрованных по searchTerm.
// Пустой searchTerm возвращает всех участников.
func (s *MemberService) List(ctx context.Context, searchTerm string) ([]*models.MemberInfo, error) {
	return s.repo.ListMembers(ctx, searchTerm)
}

// Read возвращает участника по ID с сырыми датами.
func (s *MemberService) Read(ctx context.Context, id int64) (*models.Member, error) {
	return s.repo.GetMember(ctx, id)
}

// Update применяет частичное обновление участника. Учитываются только поля
// из белого списка, пустые email и телефон превращаются в отсутствие
// значения. Пустой итоговый набор полей — ошибка валидации.
func (s *MemberService) Update(ctx context.Context, id int64, updates map[string]string) (int64, error) {
	var fields []models.FieldUpdate
	for _, column := range allowedMemberFields {
		value, ok := updates[column]
		if !ok {
			continue
		}
		if (column == "email" || column == "phone") && value == "" {
			fields = append(fields, models.FieldUpdate{Column: column, Value: nil})
			continue
		}
		fields = append(fields, models.FieldUpdate{Column: column, Value: value})
	}
	if len(fields) == 0 {
		return 0, apperr.NewValidation("no valid fields provided for update")
	}

	count, err := s.repo.UpdateMember(ctx, id, fields)
	if err != nil {
		return 0, err
	}
	s.log.Info("updated member", slog.Int64("id", id), slog.Int64("rows", count))
	return count, nil
}

// Delete удаляет участника по ID вместе с его платежами и посещениями.
// Несуществующий ID — успех с нулём удалённых строк, задокументированная
// мягкость контракта.
func (s *MemberService) Delete(ctx context.Context, id int64) (int64, error) {
	count, err := s.repo.DeleteMember(ctx, id)
	if err != nil {
		s.log.Error("failed to delete member", slog.Int64("id", id), sl.Err(err))
		return 0, err
	}
	s.log.Info("deleted member", slog.Int64("id", id), slog.Int64("rows", count))
	return count, nil
}

// optional нормализует пустую строку в отсутствие значения.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
