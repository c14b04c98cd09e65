// Package calendar computes Monday-based weeks and buckets sessions per day.
package calendar

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/toruktube/revive-app-sub001/internal/models"
)

const (
	DaysPerWeek = 7
	DayLayout   = "2006-01-02"
)

var ErrInvalidClock = errors.New("invalid clock time")

// WeekStart returns midnight of the Monday of t's week in t's location.
// Sunday belongs to the week that started the Monday before it.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % DaysPerWeek
	return AddDays(day, -offset)
}

func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

func NextWeek(weekStart time.Time) time.Time {
	return AddDays(WeekStart(weekStart), DaysPerWeek)
}

func PreviousWeek(weekStart time.Time) time.Time {
	return AddDays(WeekStart(weekStart), -DaysPerWeek)
}

func Today(now func() time.Time) time.Time {
	return WeekStart(CivilDay(now()))
}

// Range returns the half-open interval [start, end) covered by the week
// starting at weekStart.
func Range(weekStart time.Time) (time.Time, time.Time) {
	start := WeekStart(weekStart)
	return start, AddDays(start, DaysPerWeek)
}

// CivilDay truncates t to its calendar day and pins it to UTC, keeping the
// year, month and day as seen in t's own location.
func CivilDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

func ParseDay(value string) (time.Time, error) {
	return time.Parse(DayLayout, strings.TrimSpace(value))
}

// NormalizeClock turns "H:MM" or "HH:MM" into zero-padded "HH:MM" so that
// start times order correctly as strings.
func NormalizeClock(value string) (string, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

type Day struct {
	Date     time.Time        `json:"date"`
	Key      string           `json:"key"`
	Sessions []models.Session `json:"sessions"`
}

type Week struct {
	Start time.Time        `json:"start"`
	Days  [DaysPerWeek]Day `json:"days"`
}

// Map returns the buckets keyed by ISO date. It always has seven keys.
func (w Week) Map() map[string][]models.Session {
	out := make(map[string][]models.Session, DaysPerWeek)
	for _, day := range w.Days {
		out[day.Key] = day.Sessions
	}
	return out
}

// BucketByDay groups sessions into the seven days starting at weekStart.
// Each day is sorted by start time; sessions outside the week are skipped.
func BucketByDay(sessions []models.Session, weekStart time.Time) Week {
	start := WeekStart(weekStart)
	week := Week{Start: start}
	index := make(map[string]int, DaysPerWeek)
	for i := 0; i < DaysPerWeek; i++ {
		date := AddDays(start, i)
		key := DayKey(date)
		week.Days[i] = Day{Date: date, Key: key, Sessions: []models.Session{}}
		index[key] = i
	}

	for _, session := range sessions {
		i, ok := index[DayKey(session.Date)]
		if !ok {
			continue
		}
		week.Days[i].Sessions = append(week.Days[i].Sessions, session)
	}

	for i := range week.Days {
		sortByStart(week.Days[i].Sessions)
	}
	return week
}

func sortByStart(sessions []models.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		a, b := clockKey(sessions[i].StartTime), clockKey(sessions[j].StartTime)
		if a != b {
			return a < b
		}
		return sessions[i].ID < sessions[j].ID
	})
}

func clockKey(value string) string {
	if normalized, err := NormalizeClock(value); err == nil {
		return normalized
	}
	return value
}
