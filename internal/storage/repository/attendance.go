package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/gym-manager/internal/apperr"
	"github.com/magabrotheeeer/gym-manager/internal/models"
)

// CreateCheckin вставляет отметку участника и возвращает её ID.
// Момент отметки назначается хранилищем (текущее время).
func (s *Storage) CreateCheckin(ctx context.Context, memberID int64) (int64, error) {
	const op = "storage.CreateCheckin"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	stmt := `INSERT INTO attendance (member_id) VALUES (?)`
	res, err := s.Command(ctx, stmt, memberID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.LastInsertID, nil
}

// ListAttendance возвращает журнал посещений с именем участника,
// упорядоченный по моменту отметки по убыванию.
func (s *Storage) ListAttendance(ctx context.Context) ([]*models.AttendanceInfo, error) {
	const op = "storage.ListAttendance"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	stmt := `SELECT a.id, a.check_in,
				 strftime('%Y-%m-%d %H:%M:%S', a.check_in) AS check_in_time,
				 m.id AS member_id, m.name AS member_name
			 FROM attendance a
			 JOIN members m ON a.member_id = m.id
			 ORDER BY a.check_in DESC`
	rows, err := s.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.AttendanceInfo
	for rows.Next() {
		var item models.AttendanceInfo
		if err := rows.Scan(&item.ID, &item.CheckIn, &item.CheckInTime,
			&item.MemberID, &item.MemberName); err != nil {
			return nil, fmt.Errorf("%s: %w", op, &apperr.QueryError{Stmt: stmt, Err: err})
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, &apperr.QueryError{Stmt: stmt, Err: err})
	}
	return result, nil
}
