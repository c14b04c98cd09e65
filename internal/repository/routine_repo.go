package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/toruktube/revive-app-sub001/internal/models"
)

type RoutineRepository struct {
	db DBTX
}

func NewRoutineRepository(db DBTX) *RoutineRepository {
	return &RoutineRepository{db: db}
}

func (r *RoutineRepository) ListAll(ctx context.Context) ([]models.Routine, error) {
	query := `
		SELECT id, client_id, name, description, exercises, created_at
		FROM routines
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routines := make([]models.Routine, 0)
	for rows.Next() {
		var routine models.Routine
		var exercises []byte
		if err := rows.Scan(
			&routine.ID,
			&routine.ClientID,
			&routine.Name,
			&routine.Description,
			&exercises,
			&routine.CreatedAt,
		); err != nil {
			return nil, err
		}
		routine.Exercises = make([]models.Exercise, 0)
		if len(exercises) > 0 {
			if err := json.Unmarshal(exercises, &routine.Exercises); err != nil {
				return nil, fmt.Errorf("routine %s exercises: %w", routine.ID, err)
			}
		}
		routines = append(routines, routine)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return routines, nil
}
