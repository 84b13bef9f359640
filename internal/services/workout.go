package services

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/gym-manager/internal/apperr"
	"github.com/magabrotheeeer/gym-manager/internal/models"
)

// WorkoutRepository определяет методы для работы с тренировками в хранилище.
type WorkoutRepository interface {
	// CreateWorkout добавляет тренировку и возвращает её ID.
	CreateWorkout(ctx context.Context, w models.Workout) (int64, error)
	// ListWorkouts возвращает все тренировки.
	ListWorkouts(ctx context.Context) ([]*models.Workout, error)
}

// WorkoutService реализует бизнес-логику работы с тренировками.
type WorkoutService struct {
	repo     WorkoutRepository
	log      *slog.Logger
	validate *validator.Validate
}

// NewWorkoutService создает новый экземпляр WorkoutService.
func NewWorkoutService(repo WorkoutRepository, log *slog.Logger) *WorkoutService {
	return &WorkoutService{
		repo:     repo,
		log:      log,
		validate: validator.New(),
	}
}

// Create добавляет тренировку. Название и сложность обязательны,
// длительность должна парситься в положительное целое. Повторное название
// без учёта регистра отклоняет хранилище.
func (s *WorkoutService) Create(ctx context.Context, req models.DummyWorkout) (int64, error) {
	if err := s.validate.Struct(req); err != nil {
		return 0, apperr.ValidationFromTags(err.(validator.ValidationErrors))
	}
	duration, err := strconv.Atoi(req.Duration)
	if err != nil || duration <= 0 {
		return 0, apperr.NewValidation("positive duration in minutes is required")
	}

	w := models.Workout{
		Name:       req.Name,
		Duration:   duration,
		Difficulty: req.Difficulty,
	}
	id, err := s.repo.CreateWorkout(ctx, w)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new workout", slog.Int64("id", id), slog.String("name", req.Name))
	return id, nil
}

// List возвращает все тренировки, упорядоченные по названию.
func (s *WorkoutService) List(ctx context.Context) ([]*models.Workout, error) {
	return s.repo.ListWorkouts(ctx)
}
