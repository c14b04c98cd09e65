package repository

import (
	"context"
	"sync"

	"github.com/toruktube/revive-app-sub001/internal/models"
)

// Snapshot is the full set of collections a view session starts from.
type Snapshot struct {
	Clients       []models.Client
	Sessions      []models.Session
	Payments      []models.Payment
	Notes         []models.Note
	Conversations []models.Conversation
	Routines      []models.Routine
}

type Loader interface {
	Load(ctx context.Context) (Snapshot, error)
}

// StaticLoader serves a fixed snapshot, e.g. the demo seed.
type StaticLoader struct {
	Snapshot Snapshot
}

func (l StaticLoader) Load(_ context.Context) (Snapshot, error) {
	return l.Snapshot, nil
}

// Store is the in-memory working copy of a Snapshot. Accessors return
// copies; each collection is written only by the service that owns it.
type Store struct {
	mu            sync.RWMutex
	clients       []models.Client
	clientIndex   map[string]int
	sessions      []models.Session
	payments      []models.Payment
	notes         []models.Note
	conversations []models.Conversation
	routines      []models.Routine
}

func NewStore(snapshot Snapshot) *Store {
	s := &Store{
		clients:       append([]models.Client(nil), snapshot.Clients...),
		clientIndex:   make(map[string]int, len(snapshot.Clients)),
		sessions:      append([]models.Session(nil), snapshot.Sessions...),
		payments:      append([]models.Payment(nil), snapshot.Payments...),
		notes:         append([]models.Note(nil), snapshot.Notes...),
		conversations: cloneConversations(snapshot.Conversations),
		routines:      cloneRoutines(snapshot.Routines),
	}
	for i, c := range s.clients {
		s.clientIndex[c.ID] = i
	}
	return s
}

// Open loads a snapshot and wraps it in a Store.
func Open(ctx context.Context, loader Loader) (*Store, error) {
	snapshot, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return NewStore(snapshot), nil
}

func (s *Store) Clients() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Client(nil), s.clients...)
}

func (s *Store) Client(id string) (models.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.clientIndex[id]
	if !ok {
		return models.Client{}, false
	}
	return s.clients[i], true
}

// ClientName returns the display name for id, or "" when the client is
// unknown.
func (s *Store) ClientName(id string) string {
	c, ok := s.Client(id)
	if !ok {
		return ""
	}
	return c.FullName()
}

func (s *Store) Sessions() []models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Session(nil), s.sessions...)
}

func (s *Store) AppendSession(session models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append(s.sessions, session)
}

func (s *Store) UpdateSessionStatus(id string, status models.SessionStatus) (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			s.sessions[i].Status = status
			return s.sessions[i], true
		}
	}
	return models.Session{}, false
}

func (s *Store) Payments() []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Payment(nil), s.payments...)
}

func (s *Store) AppendPayment(payment models.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = append(s.payments, payment)
}

func (s *Store) Notes() []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Note(nil), s.notes...)
}

func (s *Store) AppendNote(note models.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append(s.notes, note)
}

func (s *Store) Conversations() []models.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneConversations(s.conversations)
}

// ReplaceConversations commits the messaging state after a mutation.
func (s *Store) ReplaceConversations(conversations []models.Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations = cloneConversations(conversations)
}

func (s *Store) Routines() []models.Routine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRoutines(s.routines)
}

func (s *Store) AppendRoutine(routine models.Routine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	routine.Exercises = append([]models.Exercise(nil), routine.Exercises...)
	s.routines = append(s.routines, routine)
}

func cloneConversations(in []models.Conversation) []models.Conversation {
	out := make([]models.Conversation, 0, len(in))
	for _, c := range in {
		out = append(out, c.Clone())
	}
	return out
}

func cloneRoutines(in []models.Routine) []models.Routine {
	out := make([]models.Routine, 0, len(in))
	for _, r := range in {
		r.Exercises = append([]models.Exercise(nil), r.Exercises...)
		out = append(out, r)
	}
	return out
}
