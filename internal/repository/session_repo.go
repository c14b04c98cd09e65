package repository

import (
	"context"
	"fmt"

	"github.com/toruktube/revive-app-sub001/internal/calendar"
	"github.com/toruktube/revive-app-sub001/internal/models"
)

type SessionRepository struct {
	db DBTX
}

func NewSessionRepository(db DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

// ListAll returns every session with start and end times normalized to
// zero-padded HH:MM. A row with an unparseable time fails the whole load.
func (r *SessionRepository) ListAll(ctx context.Context) ([]models.Session, error) {
	query := `
		SELECT id, client_id, session_date, start_time, end_time, status
		FROM sessions
		ORDER BY session_date ASC, start_time ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]models.Session, 0)
	for rows.Next() {
		var session models.Session
		if err := rows.Scan(
			&session.ID,
			&session.ClientID,
			&session.Date,
			&session.StartTime,
			&session.EndTime,
			&session.Status,
		); err != nil {
			return nil, err
		}
		if err := normalizeSessionClock(&session); err != nil {
			return nil, err
		}
		session.Date = calendar.CivilDay(session.Date)
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

func normalizeSessionClock(session *models.Session) error {
	start, err := calendar.NormalizeClock(session.StartTime)
	if err != nil {
		return fmt.Errorf("session %s start: %w", session.ID, err)
	}
	end, err := calendar.NormalizeClock(session.EndTime)
	if err != nil {
		return fmt.Errorf("session %s end: %w", session.ID, err)
	}
	session.StartTime = start
	session.EndTime = end
	return nil
}
