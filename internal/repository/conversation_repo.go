package repository

import (
	"context"
	"log"

	"github.com/toruktube/revive-app-sub001/internal/models"
)

type ConversationRepository struct {
	db DBTX
}

func NewConversationRepository(db DBTX) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// ListAll returns conversations without their messages. UnreadCount is the
// stored counter, not a recount of unread rows.
func (r *ConversationRepository) ListAll(ctx context.Context) ([]models.Conversation, error) {
	query := `
		SELECT id, client_id, unread_count
		FROM conversations
		ORDER BY id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	conversations := make([]models.Conversation, 0)
	for rows.Next() {
		var conversation models.Conversation
		if err := rows.Scan(
			&conversation.ID,
			&conversation.ClientID,
			&conversation.UnreadCount,
		); err != nil {
			return nil, err
		}
		conversation.Messages = make([]models.Message, 0)
		conversations = append(conversations, conversation)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return conversations, nil
}

// Thread attaches messages to their conversations and fills the summary
// fields from the last message. A message whose conversation is unknown has
// no thread to join; it is logged and left out.
func Thread(conversations []models.Conversation, messages []models.Message) []models.Conversation {
	index := make(map[string]int, len(conversations))
	for i := range conversations {
		index[conversations[i].ID] = i
	}
	for _, message := range messages {
		i, ok := index[message.ConversationID]
		if !ok {
			log.Printf("message %s references unknown conversation %s", message.ID, message.ConversationID)
			continue
		}
		conversations[i].Messages = append(conversations[i].Messages, message)
	}
	return summarize(conversations)
}

func summarize(conversations []models.Conversation) []models.Conversation {
	for i := range conversations {
		if n := len(conversations[i].Messages); n > 0 {
			last := conversations[i].Messages[n-1]
			conversations[i].LastMessage = last.Content
			conversations[i].LastMessageTime = last.Timestamp
		}
	}
	return conversations
}
