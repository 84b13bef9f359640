package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/gym-manager/internal/apperr"
	"github.com/magabrotheeeer/gym-manager/internal/models"
)

// CreateMember вставляет нового участника и возвращает его ID.
func (s *Storage) CreateMember(ctx context.Context, m models.Member) (int64, error) {
	const op = "storage.CreateMember"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	stmt := `INSERT INTO members (name, email, phone, membership_type, join_date, end_date)
			 VALUES (?, ?, ?, ?, ?, ?)`
	res, err := s.Command(ctx, stmt,
		m.Name, m.Email, m.Phone, m.MembershipType, m.JoinDate, m.EndDate)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.LastInsertID, nil
}

// GetMember возвращает участника по его ID с сырыми датами.
// Отсутствующий ID даёт apperr.ErrNotFound.
func (s *Storage) GetMember(ctx context.Context, id int64) (*models.Member, error) {
	const op = "storage.GetMember"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	stmt := `SELECT id, name, email, phone, membership_type,
				 strftime('%Y-%m-%d', join_date) AS join_date,
				 strftime('%Y-%m-%d', end_date) AS end_date
			 FROM members
			 WHERE id = ?`
	row := s.DB.QueryRowContext(ctx, stmt, id)

	var result models.Member
	if err := row.Scan(&result.ID, &result.Name, &result.Email, &result.Phone,
		&result.MembershipType, &result.JoinDate, &result.EndDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, &apperr.QueryError{Stmt: stmt, Err: err})
	}
	return &result, nil
}

// ListMembers возвращает участников, упорядоченных по имени без учёта
// регистра, с производным статусом. Непустой searchTerm фильтрует по
// подстроке в имени, email, телефоне или типе абонемента без учёта регистра.
func (s *Storage) ListMembers(ctx context.Context, searchTerm string) ([]*models.MemberInfo, error) {
	const op = "storage.ListMembers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	stmt := `SELECT id, name, email, phone, membership_type,
				 strftime('%Y-%m-%d', join_date) AS join_date,
				 strftime('%Y-%m-%d', end_date) AS end_date,
				 CASE
					 WHEN date(end_date) >= date('now') THEN 'Active'
					 ELSE 'Expired'
				 END AS status
			 FROM members`
	var args []any
	if searchTerm != "" {
		stmt += `
			 WHERE name LIKE ? OR email LIKE ? OR phone LIKE ? OR membership_type LIKE ?`
		pattern := "%" + searchTerm + "%"
		args = append(args, pattern, pattern, pattern, pattern)
	}
	stmt += `
			 ORDER BY name COLLATE NOCASE`

	rows, err := s.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.MemberInfo
	for rows.Next() {
		var item models.MemberInfo
		if err := rows.Scan(&item.ID, &item.Name, &item.Email, &item.Phone,
			&item.MembershipType, &item.JoinDate, &item.EndDate, &item.Status); err != nil {
			return nil, fmt.Errorf("%s: %w", op, &apperr.QueryError{Stmt: stmt, Err: err})
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, &apperr.QueryError{Stmt: stmt, Err: err})
	}
	return result, nil
}

// UpdateMember обновляет перечисленные колонки участника и возвращает
// количество изменённых строк. Белый список колонок обеспечивает сервисный
// слой, здесь принимаются только готовые пары колонка-значение.
func (s *Storage) UpdateMember(ctx context.Context, id int64, fields []models.FieldUpdate) (int64, error) {
	const op = "storage.UpdateMember"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	setParts := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	for _, f := range fields {
		setParts = append(setParts, f.Column+" = ?")
		args = append(args, f.Value)
	}
	args = append(args, id)

	stmt := "UPDATE members SET " + strings.Join(setParts, ", ") + " WHERE id = ?"
	res, err := s.Command(ctx, stmt, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.RowsAffected, nil
}

// DeleteMember удаляет участника по ID и возвращает количество удалённых
// строк. Платежи и посещения участника удаляются каскадно на уровне
// хранилища. Удаление несуществующего ID — успех с нулём строк.
func (s *Storage) DeleteMember(ctx context.Context, id int64) (int64, error) {
	const op = "storage.DeleteMember"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	stmt := `DELETE FROM members WHERE id = ?`
	res, err := s.Command(ctx, stmt, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.RowsAffected, nil
}
