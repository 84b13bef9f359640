package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/gym-manager/internal/apperr"
	"github.com/magabrotheeeer/gym-manager/internal/models"
)

// CreatePayment вставляет платёж участника и возвращает его ID.
// Дата платежа назначается хранилищем (текущая дата).
func (s *Storage) CreatePayment(ctx context.Context, memberID int64, amount float64) (int64, error) {
	const op = "storage.CreatePayment"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	stmt := `INSERT INTO payments (member_id, amount) VALUES (?, ?)`
	res, err := s.Command(ctx, stmt, memberID, amount)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.LastInsertID, nil
}

// ListPayments возвращает платежи с именем участника через LEFT JOIN,
// упорядоченные по дате платежа по убыванию, затем по имени. LEFT JOIN
// сохраняет строку платежа даже при отсутствии ссылки на участника, хотя
// при каскадном удалении осиротевшие платежи на практике не возникают.
func (s *Storage) ListPayments(ctx context.Context) ([]*models.PaymentInfo, error) {
	const op = "storage.ListPayments"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	stmt := `SELECT p.id, p.amount, strftime('%Y-%m-%d', p.payment_date) AS payment_date,
				 m.id AS member_id, m.name AS member_name
			 FROM payments p
			 LEFT JOIN members m ON p.member_id = m.id
			 ORDER BY p.payment_date DESC, m.name COLLATE NOCASE`
	rows, err := s.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.PaymentInfo
	for rows.Next() {
		var item models.PaymentInfo
		if err := rows.Scan(&item.ID, &item.Amount, &item.PaymentDate,
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
