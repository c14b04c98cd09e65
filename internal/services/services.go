package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/toruktube/revive-app-sub001/internal/calendar"
	"github.com/toruktube/revive-app-sub001/internal/models"
)

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidStatus          = errors.New("invalid status")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrNotFound               = errors.New("not found")
)

type clientDirectory interface {
	Client(id string) (models.Client, bool)
	ClientName(id string) string
}

// clientExists reports whether id names a known client. Names may be blank,
// so ClientName cannot answer this.
func clientExists(clients clientDirectory, id string) bool {
	_, ok := clients.Client(id)
	return ok
}

type options struct {
	now   func() time.Time
	newID func() string
}

type Option func(*options)

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		if newID != nil {
			o.newID = newID
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now, newID: NewID}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewID returns a random identifier for records created during a session.
func NewID() string {
	return uuid.NewString()
}

func (o options) today() time.Time {
	return calendar.CivilDay(o.now())
}

// dayOrToday keeps a caller-supplied date as a calendar day and falls back
// to today when it is unset.
func (o options) dayOrToday(t time.Time) time.Time {
	if t.IsZero() {
		return o.today()
	}
	return calendar.CivilDay(t)
}

func dayNumber(t time.Time) float64 {
	return float64(calendar.CivilDay(t).Unix() / 86400)
}

func floatPtr(v float64) *float64 {
	return &v
}
