package repository

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/toruktube/revive-app-sub001/internal/models"
)

type stubRows struct {
	values [][]any
	pos    int
	err    error
}

func (r *stubRows) Close() {}
func (r *stubRows) Err() error { return r.err }
func (r *stubRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *stubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *stubRows) RawValues() [][]byte { return nil }
func (r *stubRows) Conn() *pgx.Conn { return nil }

func (r *stubRows) Next() bool {
	if r.pos >= len(r.values) {
		return false
	}
	r.pos++
	return true
}

func (r *stubRows) Values() ([]any, error) {
	return r.values[r.pos-1], nil
}

func (r *stubRows) Scan(dest ...any) error {
	row := r.values[r.pos-1]
	if len(row) != len(dest) {
		return errors.New("column count mismatch")
	}
	for i := range dest {
		target := reflect.ValueOf(dest[i]).Elem()
		if row[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		value := reflect.ValueOf(row[i])
		if !value.Type().ConvertibleTo(target.Type()) {
			return errors.New("unsupported scan target " + target.Type().String())
		}
		target.Set(value.Convert(target.Type()))
	}
	return nil
}

type stubDBTX struct {
	tables map[string][][]any
	fail   string
}

func (db *stubDBTX) Query(_ context.Context, query string, _ ...any) (pgx.Rows, error) {
	for table, rows := range db.tables {
		if strings.Contains(query, "FROM "+table+"\n") {
			if table == db.fail {
				return nil, errors.New("relation does not exist")
			}
			return &stubRows{values: rows}, nil
		}
	}
	return &stubRows{}, nil
}

var loadTime = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func fixtureTables() map[string][][]any {
	return map[string][][]any{
		"clients": {
			{"cl-1", "Lucía", "Fernández", "lucia@example.com", "", "Hypertrophy", true, loadTime},
		},
		"sessions": {
			{"se-1", "cl-1", loadTime.Add(3 * time.Hour), "9:00", "10:00", "scheduled"},
		},
		"payments": {
			{"pa-1", "cl-1", 120.5, loadTime, "paid", "Monthly plan"},
		},
		"journal_notes": {
			{"no-1", "cl-1", loadTime, 4, 3, 5, "Good week", loadTime.Add(time.Hour)},
		},
		"conversations": {
			{"co-1", "cl-1", 2},
			{"co-2", "cl-9", 0},
		},
		"messages": {
			{"me-1", "co-1", "hi", "received", "delivered", loadTime.Add(time.Minute)},
			{"me-2", "co-1", "hello", "sent", "sent", loadTime.Add(2 * time.Minute)},
			{"me-3", "co-x", "orphan", "sent", "sent", loadTime},
		},
		"routines": {
			{"ro-1", "cl-1", "Strength A", nil, []byte(`[{"name":"Squat","sets":5,"reps":5}]`), loadTime},
		},
	}
}

func TestPostgresLoaderBuildsSnapshot(t *testing.T) {
	loader := NewPostgresLoader(&stubDBTX{tables: fixtureTables()})

	snapshot, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(snapshot.Clients) != 1 || snapshot.Clients[0].FullName() != "Lucía Fernández" {
		t.Fatalf("unexpected clients %+v", snapshot.Clients)
	}
	session := snapshot.Sessions[0]
	if session.StartTime != "09:00" {
		t.Fatalf("expected normalized start time, got %q", session.StartTime)
	}
	if !session.Date.Equal(loadTime) {
		t.Fatalf("expected session date truncated to day, got %v", session.Date)
	}
	if session.Status != models.SessionScheduled {
		t.Fatalf("unexpected status %q", session.Status)
	}
	if snapshot.Payments[0].Amount != 120.5 {
		t.Fatalf("unexpected amount %v", snapshot.Payments[0].Amount)
	}
	if snapshot.Notes[0].Adherence != 5 {
		t.Fatalf("unexpected note %+v", snapshot.Notes[0])
	}

	if len(snapshot.Conversations) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(snapshot.Conversations))
	}
	thread := snapshot.Conversations[0]
	if len(thread.Messages) != 2 || thread.LastMessage != "hello" {
		t.Fatalf("unexpected thread %+v", thread)
	}
	if thread.UnreadCount != 2 {
		t.Fatalf("expected stored unread count, got %d", thread.UnreadCount)
	}
	if len(snapshot.Conversations[1].Messages) != 0 {
		t.Fatalf("expected empty thread for co-2")
	}

	routine := snapshot.Routines[0]
	if routine.Description != nil || len(routine.Exercises) != 1 || routine.Exercises[0].Name != "Squat" {
		t.Fatalf("unexpected routine %+v", routine)
	}
}

func TestPostgresLoaderWrapsTableErrors(t *testing.T) {
	loader := NewPostgresLoader(&stubDBTX{tables: fixtureTables(), fail: "payments"})

	_, err := loader.Load(context.Background())
	if err == nil {
		t.Fatalf("expected load error")
	}
	if !strings.Contains(err.Error(), "load payments") {
		t.Fatalf("expected wrapped payments error, got %v", err)
	}
}

func TestPostgresLoaderRejectsMalformedClock(t *testing.T) {
	tables := fixtureTables()
	tables["sessions"] = [][]any{{"se-1", "cl-1", loadTime, "25:00", "10:00", "scheduled"}}

	_, err := NewPostgresLoader(&stubDBTX{tables: tables}).Load(context.Background())
	if err == nil || !strings.Contains(err.Error(), "session se-1 start") {
		t.Fatalf("expected clock error, got %v", err)
	}
}
