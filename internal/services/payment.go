package services

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/gym-manager/internal/apperr"
	"github.com/magabrotheeeer/gym-manager/internal/models"
)

// PaymentRepository определяет методы для работы с платежами в хранилище.
type PaymentRepository interface {
	// CreatePayment добавляет платёж участника и возвращает его ID.
	CreatePayment(ctx context.Context, memberID int64, amount float64) (int64, error)
	// ListPayments возвращает платежи с именем участника.
	ListPayments(ctx context.Context) ([]*models.PaymentInfo, error)
}

// PaymentService реализует бизнес-логику работы с платежами.
type PaymentService struct {
	repo     PaymentRepository
	log      *slog.Logger
	validate *validator.Validate
}

// NewPaymentService создает новый экземпляр PaymentService.
func NewPaymentService(repo PaymentRepository, log *slog.Logger) *PaymentService {
	return &PaymentService{
		repo:     repo,
		log:      log,
		validate: validator.New(),
	}
}

// Create регистрирует платёж участника. Идентификатор участника должен
// парситься в положительное целое, сумма — в строго положительное число;
// иначе ошибка валидации до записи.
func (s *PaymentService) Create(ctx context.Context, req models.DummyPayment) (int64, error) {
	if err := s.validate.Struct(req); err != nil {
		return 0, apperr.ValidationFromTags(err.(validator.ValidationErrors))
	}
	memberID, err := strconv.ParseInt(req.MemberID, 10, 64)
	if err != nil || memberID <= 0 {
		return 0, apperr.NewValidation("valid member id is required")
	}
	amount, err := strconv.ParseFloat(req.Amount, 64)
	if err != nil || amount <= 0 {
		return 0, apperr.NewValidation("positive amount is required")
	}

	id, err := s.repo.CreatePayment(ctx, memberID, amount)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new payment",
		slog.Int64("id", id),
		slog.Int64("member_id", memberID),
		slog.Float64("amount", amount))
	return id, nil
}

// List возвращает платежи с именем участника, от новых к старым.
func (s *PaymentService) List(ctx context.Context) ([]*models.PaymentInfo, error) {
	return s.repo.ListPayments(ctx)
}
