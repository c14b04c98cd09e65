package repository

import (
	"context"

	"github.com/toruktube/revive-app-sub001/internal/calendar"
	"github.com/toruktube/revive-app-sub001/internal/models"
)

type NoteRepository struct {
	db DBTX
}

func NewNoteRepository(db DBTX) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) ListAll(ctx context.Context) ([]models.Note, error) {
	query := `
		SELECT id, client_id, note_date, energy_level, mood, adherence, body, created_at
		FROM journal_notes
		ORDER BY note_date DESC, created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(
			&note.ID,
			&note.ClientID,
			&note.Date,
			&note.EnergyLevel,
			&note.Mood,
			&note.Adherence,
			&note.Text,
			&note.CreatedAt,
		); err != nil {
			return nil, err
		}
		note.Date = calendar.CivilDay(note.Date)
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notes, nil
}
