package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/gym-manager/internal/apperr"
	"github.com/magabrotheeeer/gym-manager/internal/models"
)

// CreateWorkout вставляет новую тренировку и возвращает её ID.
// Повторное название без учёта регистра даёт ConstraintViolationError.
func (s *Storage) CreateWorkout(ctx context.Context, w models.Workout) (int64, error) {
	const op = "storage.CreateWorkout"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	stmt := `INSERT INTO workouts (name, duration, difficulty) VALUES (?, ?, ?)`
	res, err := s.Command(ctx, stmt, w.Name, w.Duration, w.Difficulty)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.LastInsertID, nil
}

// ListWorkouts возвращает все тренировки, упорядоченные по названию без
// учёта регистра.
func (s *Storage) ListWorkouts(ctx context.Context) ([]*models.Workout, error) {
	const op = "storage.ListWorkouts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	stmt := `SELECT id, name, duration, difficulty
			 FROM workouts
			 ORDER BY name COLLATE NOCASE`
	rows, err := s.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Workout
	for rows.Next() {
		var item models.Workout
		if err := rows.Scan(&item.ID, &item.Name, &item.Duration, &item.Difficulty); err != nil {
			return nil, fmt.Errorf("%s: %w", op, &apperr.QueryError{Stmt: stmt, Err: err})
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, &apperr.QueryError{Stmt: stmt, Err: err})
	}
	return result, nil
}
