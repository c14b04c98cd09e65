package repository

import (
	"context"

	"github.com/toruktube/revive-app-sub001/internal/models"
)

type MessageRepository struct {
	db DBTX
}

func NewMessageRepository(db DBTX) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) ListAll(ctx context.Context) ([]models.Message, error) {
	query := `
		SELECT id, conversation_id, content, direction, status, sent_at
		FROM messages
		ORDER BY conversation_id ASC, sent_at ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		var message models.Message
		if err := rows.Scan(
			&message.ID,
			&message.ConversationID,
			&message.Content,
			&message.Direction,
			&message.Status,
			&message.Timestamp,
		); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}
