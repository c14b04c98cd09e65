package models

import "time"

type MessageDirection string

const (
	DirectionSent     MessageDirection = "sent"
	DirectionReceived MessageDirection = "received"
)

type MessageStatus string

const (
	MessageSent      MessageStatus = "sent"
	MessageDelivered MessageStatus = "delivered"
	MessageRead      MessageStatus = "read"
)

type Message struct {
	ID             string           `json:"id"`
	ConversationID string           `json:"conversation_id"`
	Content        string           `json:"content"`
	Direction      MessageDirection `json:"direction"`
	Status         MessageStatus    `json:"status"`
	Timestamp      time.Time        `json:"timestamp"`
}

// Conversation keeps Messages ordered by Timestamp ascending. LastMessage and
// LastMessageTime mirror the tail of Messages for list views.
type Conversation struct {
	ID              string    `json:"id"`
	ClientID        string    `json:"client_id"`
	Messages        []Message `json:"messages"`
	UnreadCount     int       `json:"unread_count"`
	LastMessage     string    `json:"last_message"`
	LastMessageTime time.Time `json:"last_message_time"`
}

type ConversationSummary struct {
	ID              string    `json:"id"`
	ClientID        string    `json:"client_id"`
	UnreadCount     int       `json:"unread_count"`
	LastMessage     string    `json:"last_message"`
	LastMessageTime time.Time `json:"last_message_time"`
}

func (c Conversation) Summary() ConversationSummary {
	return ConversationSummary{
		ID:              c.ID,
		ClientID:        c.ClientID,
		UnreadCount:     c.UnreadCount,
		LastMessage:     c.LastMessage,
		LastMessageTime: c.LastMessageTime,
	}
}

// Clone returns a copy whose Messages slice does not alias c's.
func (c Conversation) Clone() Conversation {
	out := c
	out.Messages = append([]Message(nil), c.Messages...)
	return out
}
