// Package conversation maintains append-only message threads, their
// denormalized list-view fields and the currently viewed conversation.
package conversation

import (
	"sort"
	"strings"
	"time"

	"github.com/toruktube/revive-app-sub001/internal/models"
)

// Engine is not safe for concurrent use; callers serialize access.
type Engine struct {
	now           func() time.Time
	newID         func() string
	conversations []models.Conversation
	index         map[string]int
	activeID      string
}

func NewEngine(conversations []models.Conversation, now func() time.Time, newID func() string) *Engine {
	e := &Engine{
		now:           now,
		newID:         newID,
		conversations: make([]models.Conversation, 0, len(conversations)),
		index:         make(map[string]int, len(conversations)),
	}
	for _, c := range conversations {
		c = c.Clone()
		sort.SliceStable(c.Messages, func(i, j int) bool {
			return c.Messages[i].Timestamp.Before(c.Messages[j].Timestamp)
		})
		syncSummary(&c)
		e.index[c.ID] = len(e.conversations)
		e.conversations = append(e.conversations, c)
	}
	return e
}

// Send appends an outgoing message. It reports false when the conversation
// does not exist or content is blank.
func (e *Engine) Send(conversationID, content string) (models.Message, bool) {
	return e.appendMessage(conversationID, content, models.DirectionSent, models.MessageSent)
}

// Receive appends an incoming message and bumps the unread counter unless
// the conversation is the active one.
func (e *Engine) Receive(conversationID, content string) (models.Message, bool) {
	msg, ok := e.appendMessage(conversationID, content, models.DirectionReceived, models.MessageDelivered)
	if !ok {
		return msg, false
	}
	if conversationID == e.activeID {
		e.markRead(e.index[conversationID])
		msg.Status = models.MessageRead
	} else {
		e.conversations[e.index[conversationID]].UnreadCount++
	}
	return msg, true
}

func (e *Engine) appendMessage(
	conversationID string,
	content string,
	direction models.MessageDirection,
	status models.MessageStatus,
) (models.Message, bool) {
	i, ok := e.index[conversationID]
	if !ok {
		return models.Message{}, false
	}
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return models.Message{}, false
	}

	c := &e.conversations[i]
	ts := e.now()
	if n := len(c.Messages); n > 0 && ts.Before(c.Messages[n-1].Timestamp) {
		ts = c.Messages[n-1].Timestamp
	}

	msg := models.Message{
		ID:             e.newID(),
		ConversationID: conversationID,
		Content:        trimmed,
		Direction:      direction,
		Status:         status,
		Timestamp:      ts,
	}
	c.Messages = append(c.Messages, msg)
	c.LastMessage = msg.Content
	c.LastMessageTime = msg.Timestamp
	return msg, true
}

// MarkRead clears the unread counter and flags received messages as read.
func (e *Engine) MarkRead(conversationID string) bool {
	i, ok := e.index[conversationID]
	if !ok {
		return false
	}
	e.markRead(i)
	return true
}

func (e *Engine) markRead(i int) {
	c := &e.conversations[i]
	c.UnreadCount = 0
	for j := range c.Messages {
		if c.Messages[j].Direction == models.DirectionReceived {
			c.Messages[j].Status = models.MessageRead
		}
	}
}

func (e *Engine) SetActive(conversationID string) bool {
	if _, ok := e.index[conversationID]; !ok {
		return false
	}
	e.activeID = conversationID
	return true
}

func (e *Engine) ClearActive() {
	e.activeID = ""
}

// Active resolves the active conversation from the owned list on every
// call, so it always reflects the latest appended messages.
func (e *Engine) Active() (models.Conversation, bool) {
	if e.activeID == "" {
		return models.Conversation{}, false
	}
	return e.Get(e.activeID)
}

func (e *Engine) Get(conversationID string) (models.Conversation, bool) {
	i, ok := e.index[conversationID]
	if !ok {
		return models.Conversation{}, false
	}
	return e.conversations[i].Clone(), true
}

// Conversations returns deep copies in their original order.
func (e *Engine) Conversations() []models.Conversation {
	out := make([]models.Conversation, 0, len(e.conversations))
	for _, c := range e.conversations {
		out = append(out, c.Clone())
	}
	return out
}

func (e *Engine) Summaries() []models.ConversationSummary {
	out := make([]models.ConversationSummary, 0, len(e.conversations))
	for _, c := range e.conversations {
		out = append(out, c.Summary())
	}
	return out
}

// TotalUnread sums unread counters over every conversation.
func (e *Engine) TotalUnread() int {
	total := 0
	for _, c := range e.conversations {
		total += c.UnreadCount
	}
	return total
}

func syncSummary(c *models.Conversation) {
	n := len(c.Messages)
	if n == 0 {
		return
	}
	last := c.Messages[n-1]
	c.LastMessage = last.Content
	c.LastMessageTime = last.Timestamp
}
