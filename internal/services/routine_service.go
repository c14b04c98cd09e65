package services

import (
	"sort"
	"strings"
	"sync"

	"github.com/toruktube/revive-app-sub001/internal/filter"
	"github.com/toruktube/revive-app-sub001/internal/models"
	"github.com/toruktube/revive-app-sub001/internal/repository"
)

type routineStore interface {
	Routines() []models.Routine
	AppendRoutine(routine models.Routine)
}

type RoutineFilter struct {
	ClientID *string `json:"client_id,omitempty"`
	Query    string  `json:"query,omitempty"`
}

type RoutineItem struct {
	models.Routine
	ClientName string `json:"client_name"`
}

type RoutineView struct {
	Routines []RoutineItem `json:"routines"`
	Filter   RoutineFilter `json:"filter"`
}

type AddRoutineInput struct {
	ClientID    string
	Name        string
	Description *string
	Exercises   []models.Exercise
}

type RoutineService struct {
	mu       sync.Mutex
	opts     options
	routines routineStore
	clients  clientDirectory
	filter   RoutineFilter
	criteria filter.Criteria[RoutineItem]
	view     RoutineView
}

func NewRoutineService(store *repository.Store, opts ...Option) *RoutineService {
	s := &RoutineService{
		opts:     buildOptions(opts),
		routines: store,
		clients:  store,
		criteria: filter.Criteria[RoutineItem]{},
	}
	s.recompute()
	return s
}

func (s *RoutineService) View() RoutineView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.clone()
}

func (s *RoutineService) SetFilter(f RoutineFilter) RoutineView {
	s.mu.Lock()
	defer s.mu.Unlock()

	f.Query = strings.TrimSpace(f.Query)
	s.filter = f
	s.criteria.Set(filter.Exact("client_id", func(r RoutineItem) string { return r.ClientID }, f.ClientID))
	s.criteria.Set(filter.Substring("query", f.Query,
		func(r RoutineItem) string { return r.Name },
		func(r RoutineItem) string { return r.ClientName },
	))
	s.recompute()
	return s.view.clone()
}

func (s *RoutineService) AddRoutine(input AddRoutineInput) (models.Routine, error) {
	clientID := strings.TrimSpace(input.ClientID)
	name := strings.TrimSpace(input.Name)
	if clientID == "" || name == "" || len(input.Exercises) == 0 {
		return models.Routine{}, ErrInvalidInput
	}

	var description *string
	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description)
		if trimmed == "" {
			return models.Routine{}, ErrInvalidInput
		}
		description = &trimmed
	}

	exercises := make([]models.Exercise, 0, len(input.Exercises))
	for _, exercise := range input.Exercises {
		exercise.Name = strings.TrimSpace(exercise.Name)
		if exercise.Name == "" || exercise.Sets <= 0 || exercise.Reps <= 0 || exercise.RestSeconds < 0 {
			return models.Routine{}, ErrInvalidInput
		}
		exercises = append(exercises, exercise)
	}

	if !clientExists(s.clients, clientID) {
		return models.Routine{}, ErrNotFound
	}

	routine := models.Routine{
		ID:          s.opts.newID(),
		ClientID:    clientID,
		Name:        name,
		Description: description,
		Exercises:   exercises,
		CreatedAt:   s.opts.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.routines.AppendRoutine(routine)
	s.recompute()
	return routine, nil
}

func (s *RoutineService) recompute() {
	routines := s.routines.Routines()
	items := make([]RoutineItem, 0, len(routines))
	for _, routine := range routines {
		items = append(items, RoutineItem{Routine: routine, ClientName: s.clients.ClientName(routine.ClientID)})
	}

	filtered := s.criteria.Apply(items)
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	s.view = RoutineView{Routines: filtered, Filter: s.filter}
}
