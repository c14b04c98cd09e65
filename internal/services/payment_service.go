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

type paymentStore interface {
	Payments() []models.Payment
	AppendPayment(payment models.Payment)
}

type PaymentFilter struct {
	ClientID  *string               `json:"client_id,omitempty"`
	Status    *models.PaymentStatus `json:"status,omitempty"`
	MinAmount *float64              `json:"min_amount,omitempty"`
	MaxAmount *float64              `json:"max_amount,omitempty"`
	From      *time.Time            `json:"from,omitempty"`
	To        *time.Time            `json:"to,omitempty"`
	Query     string                `json:"query,omitempty"`
}

type PaymentItem struct {
	models.Payment
	ClientName string `json:"client_name"`
}

type PaymentView struct {
	Payments []PaymentItem        `json:"payments"`
	Summary  stats.PaymentSummary `json:"summary"`
	Filter   PaymentFilter        `json:"filter"`
}

type RegisterPaymentInput struct {
	ClientID  string
	Amount    float64
	IssueDate time.Time
	Status    models.PaymentStatus
	Concept   string
}

type PaymentService struct {
	mu       sync.Mutex
	opts     options
	payments paymentStore
	clients  clientDirectory
	filter   PaymentFilter
	criteria filter.Criteria[PaymentItem]
	view     PaymentView
}

func NewPaymentService(store *repository.Store, opts ...Option) *PaymentService {
	s := &PaymentService{
		opts:     buildOptions(opts),
		payments: store,
		clients:  store,
		criteria: filter.Criteria[PaymentItem]{},
	}
	s.recompute()
	return s
}

func (s *PaymentService) View() PaymentView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.clone()
}

func (s *PaymentService) SetFilter(f PaymentFilter) PaymentView {
	s.mu.Lock()
	defer s.mu.Unlock()

	f.Query = strings.TrimSpace(f.Query)
	s.filter = f

	var from, to *float64
	if f.From != nil {
		from = floatPtr(dayNumber(*f.From))
	}
	if f.To != nil {
		to = floatPtr(dayNumber(*f.To))
	}

	s.criteria.Set(filter.Exact("client_id", func(p PaymentItem) string { return p.ClientID }, f.ClientID))
	s.criteria.Set(filter.Exact("status", func(p PaymentItem) models.PaymentStatus { return p.Status }, f.Status))
	s.criteria.Set(filter.Range("amount", func(p PaymentItem) float64 { return p.Amount }, f.MinAmount, f.MaxAmount))
	s.criteria.Set(filter.Range("issue_date", func(p PaymentItem) float64 { return dayNumber(p.IssueDate) }, from, to))
	s.criteria.Set(filter.Substring("query", f.Query,
		func(p PaymentItem) string { return p.ClientName },
		func(p PaymentItem) string { return p.Concept },
	))
	s.recompute()
	return s.view.clone()
}

func (s *PaymentService) RegisterPayment(input RegisterPaymentInput) (models.Payment, error) {
	clientID := strings.TrimSpace(input.ClientID)
	if clientID == "" || input.Amount <= 0 {
		return models.Payment{}, ErrInvalidInput
	}
	status := input.Status
	if status == "" {
		status = models.PaymentPending
	}
	if !validPaymentStatus(status) {
		return models.Payment{}, ErrInvalidStatus
	}
	if !clientExists(s.clients, clientID) {
		return models.Payment{}, ErrNotFound
	}

	payment := models.Payment{
		ID:        s.opts.newID(),
		ClientID:  clientID,
		Amount:    stats.RoundCents(input.Amount),
		IssueDate: s.opts.dayOrToday(input.IssueDate),
		Status:    status,
		Concept:   strings.TrimSpace(input.Concept),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments.AppendPayment(payment)
	s.recompute()
	return payment, nil
}

func (s *PaymentService) recompute() {
	payments := s.payments.Payments()
	items := make([]PaymentItem, 0, len(payments))
	for _, payment := range payments {
		items = append(items, PaymentItem{Payment: payment, ClientName: s.clients.ClientName(payment.ClientID)})
	}

	filtered := s.criteria.Apply(items)
	sort.SliceStable(filtered, func(i, j int) bool {
		if !filtered[i].IssueDate.Equal(filtered[j].IssueDate) {
			return filtered[i].IssueDate.After(filtered[j].IssueDate)
		}
		return filtered[i].ID > filtered[j].ID
	})

	records := make([]models.Payment, 0, len(filtered))
	for _, item := range filtered {
		records = append(records, item.Payment)
	}

	s.view = PaymentView{
		Payments: filtered,
		Summary:  stats.SummarizePayments(records),
		Filter:   s.filter,
	}
}

func validPaymentStatus(status models.PaymentStatus) bool {
	switch status {
	case models.PaymentPaid, models.PaymentPending, models.PaymentOverdue:
		return true
	default:
		return false
	}
}
