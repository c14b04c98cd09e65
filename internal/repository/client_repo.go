package repository

import (
	"context"

	"github.com/toruktube/revive-app-sub001/internal/models"
)

type ClientRepository struct {
	db DBTX
}

func NewClientRepository(db DBTX) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) ListAll(ctx context.Context) ([]models.Client, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, goal, active, joined_at
		FROM clients
		ORDER BY last_name ASC, first_name ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]models.Client, 0)
	for rows.Next() {
		var client models.Client
		if err := rows.Scan(
			&client.ID,
			&client.FirstName,
			&client.LastName,
			&client.Email,
			&client.Phone,
			&client.Goal,
			&client.Active,
			&client.JoinedAt,
		); err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}
