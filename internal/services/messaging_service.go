package services

import (
	"sort"
	"strings"
	"sync"

	"github.com/toruktube/revive-app-sub001/internal/conversation"
	"github.com/toruktube/revive-app-sub001/internal/filter"
	"github.com/toruktube/revive-app-sub001/internal/models"
	"github.com/toruktube/revive-app-sub001/internal/repository"
)

type conversationStore interface {
	Conversations() []models.Conversation
	ReplaceConversations(conversations []models.Conversation)
}

type clientReader interface {
	Client(id string) (models.Client, bool)
}

// MessageListener is notified after a message has been committed.
type MessageListener interface {
	MessageAppended(conversation models.ConversationSummary, message models.Message)
}

type ConversationItem struct {
	models.ConversationSummary
	ClientName string `json:"client_name"`

	firstName string
	lastName  string
}

type ActiveConversation struct {
	models.Conversation
	ClientName string `json:"client_name"`
}

// MessagingView.TotalUnread covers every conversation, not only those
// matching the current search.
type MessagingView struct {
	Conversations []ConversationItem  `json:"conversations"`
	Active        *ActiveConversation `json:"active,omitempty"`
	TotalUnread   int                 `json:"total_unread"`
	Query         string              `json:"query,omitempty"`
}

type MessagingService struct {
	mu        sync.Mutex
	store     conversationStore
	clients   clientReader
	engine    *conversation.Engine
	query     string
	criteria  filter.Criteria[ConversationItem]
	listeners []MessageListener
	view      MessagingView
}

func NewMessagingService(store *repository.Store, opts ...Option) *MessagingService {
	o := buildOptions(opts)
	s := &MessagingService{
		store:    store,
		clients:  store,
		engine:   conversation.NewEngine(store.Conversations(), o.now, o.newID),
		criteria: filter.Criteria[ConversationItem]{},
	}
	s.recompute()
	return s
}

func (s *MessagingService) Subscribe(listener MessageListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

func (s *MessagingService) View() MessagingView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.clone()
}

// SetQuery searches client names and the last message body.
func (s *MessagingService) SetQuery(query string) MessagingView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = strings.TrimSpace(query)
	s.criteria.Set(filter.Substring("query", s.query,
		func(c ConversationItem) string { return c.firstName },
		func(c ConversationItem) string { return c.lastName },
		func(c ConversationItem) string { return c.LastMessage },
	))
	s.recompute()
	return s.view.clone()
}

// SelectConversation makes id the active conversation and marks it read.
func (s *MessagingService) SelectConversation(id string) (MessagingView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.engine.SetActive(id) {
		return s.view.clone(), ErrNotFound
	}
	s.engine.MarkRead(id)
	s.commit()
	return s.view.clone(), nil
}

func (s *MessagingService) CloseConversation() MessagingView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.ClearActive()
	s.recompute()
	return s.view.clone()
}

func (s *MessagingService) MarkRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.engine.MarkRead(id) {
		return ErrNotFound
	}
	s.commit()
	return nil
}

func (s *MessagingService) SendMessage(conversationID string, content string) (models.Message, error) {
	return s.appendMessage(conversationID, content, s.engine.Send)
}

// ReceiveMessage records a message from the client side of a conversation.
func (s *MessagingService) ReceiveMessage(conversationID string, content string) (models.Message, error) {
	return s.appendMessage(conversationID, content, s.engine.Receive)
}

func (s *MessagingService) appendMessage(
	conversationID string,
	content string,
	apply func(conversationID, content string) (models.Message, bool),
) (models.Message, error) {
	s.mu.Lock()
	if _, ok := s.engine.Get(conversationID); !ok {
		s.mu.Unlock()
		return models.Message{}, ErrNotFound
	}
	message, ok := apply(conversationID, content)
	if !ok {
		s.mu.Unlock()
		return models.Message{}, ErrInvalidInput
	}
	s.commit()
	updated, _ := s.engine.Get(conversationID)
	listeners := append([]MessageListener(nil), s.listeners...)
	s.mu.Unlock()

	for _, listener := range listeners {
		listener.MessageAppended(updated.Summary(), message)
	}
	return message, nil
}

func (s *MessagingService) commit() {
	s.store.ReplaceConversations(s.engine.Conversations())
	s.recompute()
}

func (s *MessagingService) recompute() {
	summaries := s.engine.Summaries()
	items := make([]ConversationItem, 0, len(summaries))
	for _, summary := range summaries {
		item := ConversationItem{ConversationSummary: summary}
		if client, ok := s.clients.Client(summary.ClientID); ok {
			item.ClientName = client.FullName()
			item.firstName = client.FirstName
			item.lastName = client.LastName
		}
		items = append(items, item)
	}

	filtered := s.criteria.Apply(items)
	sort.SliceStable(filtered, func(i, j int) bool {
		if !filtered[i].LastMessageTime.Equal(filtered[j].LastMessageTime) {
			return filtered[i].LastMessageTime.After(filtered[j].LastMessageTime)
		}
		return filtered[i].ID < filtered[j].ID
	})

	view := MessagingView{
		Conversations: filtered,
		TotalUnread:   s.engine.TotalUnread(),
		Query:         s.query,
	}
	if active, ok := s.engine.Active(); ok {
		name := ""
		if client, found := s.clients.Client(active.ClientID); found {
			name = client.FullName()
		}
		view.Active = &ActiveConversation{Conversation: active, ClientName: name}
	}
	s.view = view
}
