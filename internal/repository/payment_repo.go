package repository

import (
	"context"

	"github.com/toruktube/revive-app-sub001/internal/calendar"
	"github.com/toruktube/revive-app-sub001/internal/models"
)

type PaymentRepository struct {
	db DBTX
}

func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) ListAll(ctx context.Context) ([]models.Payment, error) {
	query := `
		SELECT id, client_id, amount::float8, issue_date, status, concept
		FROM payments
		ORDER BY issue_date DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]models.Payment, 0)
	for rows.Next() {
		var payment models.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.ClientID,
			&payment.Amount,
			&payment.IssueDate,
			&payment.Status,
			&payment.Concept,
		); err != nil {
			return nil, err
		}
		payment.IssueDate = calendar.CivilDay(payment.IssueDate)
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
