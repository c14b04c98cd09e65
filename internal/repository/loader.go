package repository

import (
	"context"
	"fmt"

	"github.com/toruktube/revive-app-sub001/internal/models"
	"golang.org/x/sync/errgroup"
)

// PostgresLoader reads a Snapshot from the database. It never writes back;
// mutations made during a view session stay in the Store.
type PostgresLoader struct {
	clients       *ClientRepository
	sessions      *SessionRepository
	payments      *PaymentRepository
	notes         *NoteRepository
	conversations *ConversationRepository
	messages      *MessageRepository
	routines      *RoutineRepository
}

func NewPostgresLoader(db DBTX) *PostgresLoader {
	return &PostgresLoader{
		clients:       NewClientRepository(db),
		sessions:      NewSessionRepository(db),
		payments:      NewPaymentRepository(db),
		notes:         NewNoteRepository(db),
		conversations: NewConversationRepository(db),
		messages:      NewMessageRepository(db),
		routines:      NewRoutineRepository(db),
	}
}

func (l *PostgresLoader) Load(ctx context.Context) (Snapshot, error) {
	var snapshot Snapshot
	var conversations []models.Conversation
	var messages []models.Message

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snapshot.Clients, err = l.clients.ListAll(ctx)
		return wrapLoad("clients", err)
	})
	g.Go(func() (err error) {
		snapshot.Sessions, err = l.sessions.ListAll(ctx)
		return wrapLoad("sessions", err)
	})
	g.Go(func() (err error) {
		snapshot.Payments, err = l.payments.ListAll(ctx)
		return wrapLoad("payments", err)
	})
	g.Go(func() (err error) {
		snapshot.Notes, err = l.notes.ListAll(ctx)
		return wrapLoad("journal notes", err)
	})
	g.Go(func() (err error) {
		conversations, err = l.conversations.ListAll(ctx)
		return wrapLoad("conversations", err)
	})
	g.Go(func() (err error) {
		messages, err = l.messages.ListAll(ctx)
		return wrapLoad("messages", err)
	})
	g.Go(func() (err error) {
		snapshot.Routines, err = l.routines.ListAll(ctx)
		return wrapLoad("routines", err)
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	snapshot.Conversations = Thread(conversations, messages)
	return snapshot, nil
}

func wrapLoad(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("load %s: %w", what, err)
}
