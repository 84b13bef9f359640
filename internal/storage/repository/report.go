package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/gym-manager/internal/apperr"
	"github.com/magabrotheeeer/gym-manager/internal/models"
)

// DashboardStats собирает сводку стартового экрана: количество участников
// и тренировок, сумму всех платежей и число уникальных участников с
// отметкой за сегодня.
func (s *Storage) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	const op = "storage.DashboardStats"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var stats models.DashboardStats

	stmt := `SELECT COUNT(*) FROM members`
	if err := s.DB.QueryRowContext(ctx, stmt).Scan(&stats.TotalMembers); err != nil {
		return nil, fmt.Errorf("%s: %w", op, &apperr.QueryError{Stmt: stmt, Err: err})
	}

	stmt = `SELECT COUNT(*) FROM workouts`
	if err := s.DB.QueryRowContext(ctx, stmt).Scan(&stats.TotalWorkouts); err != nil {
		return nil, fmt.Errorf("%s: %w", op, &apperr.QueryError{Stmt: stmt, Err: err})
	}

	stmt = `SELECT COALESCE(SUM(amount), 0) FROM payments`
	if err := s.DB.QueryRowContext(ctx, stmt).Scan(&stats.TotalPayments); err != nil {
		return nil, fmt.Errorf("%s: %w", op, &apperr.QueryError{Stmt: stmt, Err: err})
	}

	stmt = `SELECT COUNT(DISTINCT member_id)
			FROM attendance
			WHERE date(check_in) = date('now')`
	if err := s.DB.QueryRowContext(ctx, stmt).Scan(&stats.ActiveMembers); err != nil {
		return nil, fmt.Errorf("%s: %w", op, &apperr.QueryError{Stmt: stmt, Err: err})
	}

	return &stats, nil
}

// MonthlyTotals собирает сырые агрегаты за месяц вида YYYY-MM: сумму
// платежей, количество отметок и число уникальных участников среди них.
// Округление и средние вычисляет отчётный сервис.
func (s *Storage) MonthlyTotals(ctx context.Context, month string) (*models.MonthlyTotals, error) {
	const op = "storage.MonthlyTotals"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var totals models.MonthlyTotals

	stmt := `SELECT COALESCE(SUM(amount), 0)
			 FROM payments
			 WHERE strftime('%Y-%m', payment_date) = ?`
	if err := s.DB.QueryRowContext(ctx, stmt, month).Scan(&totals.TotalPayments); err != nil {
		return nil, fmt.Errorf("%s: %w", op, &apperr.QueryError{Stmt: stmt, Err: err})
	}

	stmt = `SELECT COUNT(*), COUNT(DISTINCT member_id)
			FROM attendance
			WHERE strftime('%Y-%m', check_in) = ?`
	if err := s.DB.QueryRowContext(ctx, stmt, month).Scan(&totals.TotalCheckins, &totals.UniqueMembers); err != nil {
		return nil, fmt.Errorf("%s: %w", op, &apperr.QueryError{Stmt: stmt, Err: err})
	}

	return &totals, nil
}
