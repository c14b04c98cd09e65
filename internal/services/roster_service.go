package services

import (
	"sort"
	"strings"
	"sync"

	"github.com/toruktube/revive-app-sub001/internal/filter"
	"github.com/toruktube/revive-app-sub001/internal/models"
	"github.com/toruktube/revive-app-sub001/internal/repository"
)

type clientLister interface {
	Clients() []models.Client
}

type RosterFilter struct {
	Query  string `json:"query,omitempty"`
	Active *bool  `json:"active,omitempty"`
}

type RosterView struct {
	Clients []models.Client `json:"clients"`
	Total   int             `json:"total"`
	Active  int             `json:"active"`
	Filter  RosterFilter    `json:"filter"`
}

// RosterService is a read-only view over the client directory.
type RosterService struct {
	mu       sync.Mutex
	clients  clientLister
	filter   RosterFilter
	criteria filter.Criteria[models.Client]
	view     RosterView
}

func NewRosterService(store *repository.Store) *RosterService {
	s := &RosterService{
		clients:  store,
		criteria: filter.Criteria[models.Client]{},
	}
	s.recompute()
	return s
}

func (s *RosterService) View() RosterView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.clone()
}

func (s *RosterService) SetFilter(f RosterFilter) RosterView {
	s.mu.Lock()
	defer s.mu.Unlock()

	f.Query = strings.TrimSpace(f.Query)
	s.filter = f
	s.criteria.Set(filter.Exact("active", func(c models.Client) bool { return c.Active }, f.Active))
	s.criteria.Set(filter.Substring("query", f.Query,
		func(c models.Client) string { return c.FirstName },
		func(c models.Client) string { return c.LastName },
		func(c models.Client) string { return c.Email },
	))
	s.recompute()
	return s.view.clone()
}

func (s *RosterService) recompute() {
	filtered := s.criteria.Apply(s.clients.Clients())
	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filter.Fold(filtered[i].LastName), filter.Fold(filtered[j].LastName)
		if a != b {
			return a < b
		}
		return filter.Fold(filtered[i].FirstName) < filter.Fold(filtered[j].FirstName)
	})

	active := 0
	for _, c := range filtered {
		if c.Active {
			active++
		}
	}
	s.view = RosterView{Clients: filtered, Total: len(filtered), Active: active, Filter: s.filter}
}
