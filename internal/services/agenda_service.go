package services

import (
	"strings"
	"sync"
	"time"

	"github.com/toruktube/revive-app-sub001/internal/calendar"
	"github.com/toruktube/revive-app-sub001/internal/filter"
	"github.com/toruktube/revive-app-sub001/internal/models"
	"github.com/toruktube/revive-app-sub001/internal/repository"
	"github.com/toruktube/revive-app-sub001/internal/stats"
)

type sessionStore interface {
	Sessions() []models.Session
	AppendSession(session models.Session)
	UpdateSessionStatus(id string, status models.SessionStatus) (models.Session, bool)
}

type AgendaFilter struct {
	ClientID *string               `json:"client_id,omitempty"`
	Status   *models.SessionStatus `json:"status,omitempty"`
	Query    string                `json:"query,omitempty"`
}

type AgendaItem struct {
	models.Session
	ClientName string `json:"client_name"`
}

type AgendaDay struct {
	Date    time.Time    `json:"date"`
	Key     string       `json:"key"`
	Weekday string       `json:"weekday"`
	Items   []AgendaItem `json:"items"`
}

type AgendaView struct {
	WeekStart time.Time            `json:"week_start"`
	WeekEnd   time.Time            `json:"week_end"`
	Days      []AgendaDay          `json:"days"`
	Summary   stats.SessionSummary `json:"summary"`
	Filter    AgendaFilter         `json:"filter"`
}

type ScheduleSessionInput struct {
	ClientID  string
	Date      time.Time
	StartTime string
	EndTime   string
}

type AgendaService struct {
	mu        sync.Mutex
	opts      options
	sessions  sessionStore
	clients   clientDirectory
	weekStart time.Time
	filter    AgendaFilter
	criteria  filter.Criteria[AgendaItem]
	view      AgendaView
}

func NewAgendaService(store *repository.Store, opts ...Option) *AgendaService {
	s := &AgendaService{
		opts:     buildOptions(opts),
		sessions: store,
		clients:  store,
		criteria: filter.Criteria[AgendaItem]{},
	}
	s.weekStart = calendar.Today(s.opts.now)
	s.recompute()
	return s
}

func (s *AgendaService) View() AgendaView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.clone()
}

func (s *AgendaService) SetWeek(date time.Time) AgendaView {
	return s.navigate(func(time.Time) time.Time {
		return calendar.WeekStart(calendar.CivilDay(date))
	})
}

func (s *AgendaService) NextWeek() AgendaView {
	return s.navigate(calendar.NextWeek)
}

func (s *AgendaService) PreviousWeek() AgendaView {
	return s.navigate(calendar.PreviousWeek)
}

func (s *AgendaService) Today() AgendaView {
	return s.navigate(func(time.Time) time.Time {
		return calendar.Today(s.opts.now)
	})
}

func (s *AgendaService) navigate(move func(weekStart time.Time) time.Time) AgendaView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weekStart = move(s.weekStart)
	s.recompute()
	return s.view.clone()
}

func (s *AgendaService) SetFilter(f AgendaFilter) AgendaView {
	s.mu.Lock()
	defer s.mu.Unlock()

	f.Query = strings.TrimSpace(f.Query)
	s.filter = f
	s.criteria.Set(filter.Exact("client_id", func(i AgendaItem) string { return i.ClientID }, f.ClientID))
	s.criteria.Set(filter.Exact("status", func(i AgendaItem) models.SessionStatus { return i.Status }, f.Status))
	s.criteria.Set(filter.Substring("query", f.Query, func(i AgendaItem) string { return i.ClientName }))
	s.recompute()
	return s.view.clone()
}

func (s *AgendaService) ScheduleSession(input ScheduleSessionInput) (models.Session, error) {
	clientID := strings.TrimSpace(input.ClientID)
	if clientID == "" || input.Date.IsZero() {
		return models.Session{}, ErrInvalidInput
	}
	start, err := calendar.NormalizeClock(input.StartTime)
	if err != nil {
		return models.Session{}, ErrInvalidInput
	}
	end, err := calendar.NormalizeClock(input.EndTime)
	if err != nil || end <= start {
		return models.Session{}, ErrInvalidInput
	}
	if !clientExists(s.clients, clientID) {
		return models.Session{}, ErrNotFound
	}

	session := models.Session{
		ID:        s.opts.newID(),
		ClientID:  clientID,
		Date:      calendar.CivilDay(input.Date),
		StartTime: start,
		EndTime:   end,
		Status:    models.SessionScheduled,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.AppendSession(session)
	s.recompute()
	return session, nil
}

// UpdateSessionStatus completes or cancels a scheduled session. Completed
// and cancelled sessions are final.
func (s *AgendaService) UpdateSessionStatus(sessionID string, requestedStatus string) (models.Session, error) {
	next, err := normalizeRequestedStatus(requestedStatus)
	if err != nil {
		return models.Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := findSession(s.sessions.Sessions(), sessionID)
	if !ok {
		return models.Session{}, ErrNotFound
	}
	if current.Status != models.SessionScheduled {
		return models.Session{}, ErrInvalidStateTransition
	}

	updated, ok := s.sessions.UpdateSessionStatus(sessionID, next)
	if !ok {
		return models.Session{}, ErrNotFound
	}
	s.recompute()
	return updated, nil
}

func (s *AgendaService) recompute() {
	start, end := calendar.Range(s.weekStart)

	sessions := s.sessions.Sessions()
	items := make([]AgendaItem, 0, len(sessions))
	names := make(map[string]string)
	for _, session := range sessions {
		if session.Date.Before(start) || !session.Date.Before(end) {
			continue
		}
		name, ok := names[session.ClientID]
		if !ok {
			name = s.clients.ClientName(session.ClientID)
			names[session.ClientID] = name
		}
		items = append(items, AgendaItem{Session: session, ClientName: name})
	}

	filtered := s.criteria.Apply(items)
	inWeek := make([]models.Session, 0, len(filtered))
	for _, item := range filtered {
		inWeek = append(inWeek, item.Session)
	}

	week := calendar.BucketByDay(inWeek, start)
	days := make([]AgendaDay, 0, calendar.DaysPerWeek)
	for _, day := range week.Days {
		dayItems := make([]AgendaItem, 0, len(day.Sessions))
		for _, session := range day.Sessions {
			dayItems = append(dayItems, AgendaItem{Session: session, ClientName: names[session.ClientID]})
		}
		days = append(days, AgendaDay{
			Date:    day.Date,
			Key:     day.Key,
			Weekday: day.Date.Weekday().String(),
			Items:   dayItems,
		})
	}

	s.view = AgendaView{
		WeekStart: start,
		WeekEnd:   calendar.AddDays(end, -1),
		Days:      days,
		Summary:   stats.SummarizeSessions(inWeek),
		Filter:    s.filter,
	}
}

func findSession(sessions []models.Session, id string) (models.Session, bool) {
	for _, session := range sessions {
		if session.ID == id {
			return session, true
		}
	}
	return models.Session{}, false
}

func normalizeRequestedStatus(status string) (models.SessionStatus, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "complete", "completed":
		return models.SessionCompleted, nil
	case "cancel", "cancelled", "canceled":
		return models.SessionCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}
