package services

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/toruktube/revive-app-sub001/internal/filter"
	"github.com/toruktube/revive-app-sub001/internal/models"
	"github.com/toruktube/revive-app-sub001/internal/repository"
	"github.com/toruktube/revive-app-sub001/internal/stats"
)

type noteStore interface {
	Notes() []models.Note
	AppendNote(note models.Note)
}

type JournalFilter struct {
	ClientID     *string  `json:"client_id,omitempty"`
	MinEnergy    *float64 `json:"min_energy,omitempty"`
	MaxEnergy    *float64 `json:"max_energy,omitempty"`
	MinMood      *float64 `json:"min_mood,omitempty"`
	MaxMood      *float64 `json:"max_mood,omitempty"`
	MinAdherence *float64 `json:"min_adherence,omitempty"`
	MaxAdherence *float64 `json:"max_adherence,omitempty"`
	Query        string   `json:"query,omitempty"`
}

type JournalEntry struct {
	models.Note
	ClientName string `json:"client_name"`
}

// JournalView averages are computed over the filtered notes only.
type JournalView struct {
	Notes   []JournalEntry    `json:"notes"`
	Summary stats.NoteSummary `json:"summary"`
	Filter  JournalFilter     `json:"filter"`
}

type AddNoteInput struct {
	ClientID    string
	Date        time.Time
	EnergyLevel int
	Mood        int
	Adherence   int
	Text        string
}

type JournalService struct {
	mu       sync.Mutex
	opts     options
	notes    noteStore
	clients  clientDirectory
	filter   JournalFilter
	criteria filter.Criteria[JournalEntry]
	view     JournalView
}

func NewJournalService(store *repository.Store, opts ...Option) *JournalService {
	s := &JournalService{
		opts:     buildOptions(opts),
		notes:    store,
		clients:  store,
		criteria: filter.Criteria[JournalEntry]{},
	}
	s.recompute()
	return s
}

func (s *JournalService) View() JournalView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.clone()
}

func (s *JournalService) SetFilter(f JournalFilter) JournalView {
	s.mu.Lock()
	defer s.mu.Unlock()

	f.Query = strings.TrimSpace(f.Query)
	s.filter = f
	s.criteria.Set(filter.Exact("client_id", func(n JournalEntry) string { return n.ClientID }, f.ClientID))
	s.criteria.Set(filter.Range("energy", func(n JournalEntry) float64 { return float64(n.EnergyLevel) }, f.MinEnergy, f.MaxEnergy))
	s.criteria.Set(filter.Range("mood", func(n JournalEntry) float64 { return float64(n.Mood) }, f.MinMood, f.MaxMood))
	s.criteria.Set(filter.Range("adherence", func(n JournalEntry) float64 { return float64(n.Adherence) }, f.MinAdherence, f.MaxAdherence))
	s.criteria.Set(filter.Substring("query", f.Query,
		func(n JournalEntry) string { return n.Text },
		func(n JournalEntry) string { return n.ClientName },
	))
	s.recompute()
	return s.view.clone()
}

func (s *JournalService) AddNote(input AddNoteInput) (models.Note, error) {
	clientID := strings.TrimSpace(input.ClientID)
	text := strings.TrimSpace(input.Text)
	if clientID == "" || text == "" {
		return models.Note{}, ErrInvalidInput
	}
	for _, v := range []int{input.EnergyLevel, input.Mood, input.Adherence} {
		if v < models.ScaleMin || v > models.ScaleMax {
			return models.Note{}, ErrInvalidInput
		}
	}
	if !clientExists(s.clients, clientID) {
		return models.Note{}, ErrNotFound
	}

	note := models.Note{
		ID:          s.opts.newID(),
		ClientID:    clientID,
		Date:        s.opts.dayOrToday(input.Date),
		EnergyLevel: input.EnergyLevel,
		Mood:        input.Mood,
		Adherence:   input.Adherence,
		Text:        text,
		CreatedAt:   s.opts.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes.AppendNote(note)
	s.recompute()
	return note, nil
}

func (s *JournalService) recompute() {
	notes := s.notes.Notes()
	entries := make([]JournalEntry, 0, len(notes))
	for _, note := range notes {
		entries = append(entries, JournalEntry{Note: note, ClientName: s.clients.ClientName(note.ClientID)})
	}

	filtered := s.criteria.Apply(entries)
	sort.SliceStable(filtered, func(i, j int) bool {
		if !filtered[i].Date.Equal(filtered[j].Date) {
			return filtered[i].Date.After(filtered[j].Date)
		}
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	records := make([]models.Note, 0, len(filtered))
	for _, entry := range filtered {
		records = append(records, entry.Note)
	}

	s.view = JournalView{
		Notes:   filtered,
		Summary: stats.SummarizeNotes(records),
		Filter:  s.filter,
	}
}
