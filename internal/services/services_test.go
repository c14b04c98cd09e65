package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/toruktube/revive-app-sub001/internal/models"
	"github.com/toruktube/revive-app-sub001/internal/repository"
)

var testNow = time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

func testOptions() []Option {
	n := 0
	return []Option{
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	}
}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return d
}

func ptr[V any](v V) *V { return &v }

func testStore(t *testing.T) *repository.Store {
	t.Helper()
	return repository.NewStore(repository.Snapshot{
		Clients: []models.Client{
			{ID: "c1", FirstName: "Lucía", LastName: "Fernández", Active: true},
			{ID: "c2", FirstName: "Marcos", LastName: "Peña", Active: true},
			{ID: "c3", FirstName: "Ana", LastName: "Ruiz", Active: false},
		},
		Sessions: []models.Session{
			{ID: "s1", ClientID: "c1", Date: date(t, "2024-06-10"), StartTime: "09:00", EndTime: "10:00", Status: models.SessionCompleted},
			{ID: "s2", ClientID: "c2", Date: date(t, "2024-06-10"), StartTime: "08:00", EndTime: "09:00", Status: models.SessionCancelled},
			{ID: "s3", ClientID: "c1", Date: date(t, "2024-06-13"), StartTime: "18:00", EndTime: "19:00", Status: models.SessionScheduled},
			{ID: "s4", ClientID: "c2", Date: date(t, "2024-06-17"), StartTime: "07:00", EndTime: "08:00", Status: models.SessionScheduled},
			{ID: "s5", ClientID: "ghost", Date: date(t, "2024-06-11"), StartTime: "12:00", EndTime: "13:00", Status: models.SessionCompleted},
		},
		Payments: []models.Payment{
			{ID: "p1", ClientID: "c1", Amount: 100, IssueDate: date(t, "2024-06-01"), Status: models.PaymentPaid, Concept: "June plan"},
			{ID: "p2", ClientID: "c2", Amount: 50, IssueDate: date(t, "2024-06-05"), Status: models.PaymentPending, Concept: "Single session"},
		},
		Notes: []models.Note{
			{ID: "n1", ClientID: "c1", Date: date(t, "2024-06-03"), EnergyLevel: 5, Mood: 4, Adherence: 5, Text: "Great squat day", CreatedAt: date(t, "2024-06-03")},
			{ID: "n2", ClientID: "c2", Date: date(t, "2024-06-04"), EnergyLevel: 3, Mood: 3, Adherence: 2, Text: "Tired after work", CreatedAt: date(t, "2024-06-04")},
			{ID: "n3", ClientID: "c1", Date: date(t, "2024-06-05"), EnergyLevel: 4, Mood: 5, Adherence: 4, Text: "Knee feels better", CreatedAt: date(t, "2024-06-05")},
		},
		Conversations: []models.Conversation{
			{
				ID:          "cv1",
				ClientID:    "c1",
				UnreadCount: 2,
				Messages: []models.Message{
					{ID: "m1", ConversationID: "cv1", Content: "Can we move Friday?", Direction: models.DirectionReceived, Status: models.MessageDelivered, Timestamp: testNow.Add(-2 * time.Hour)},
				},
			},
			{
				ID:          "cv2",
				ClientID:    "c2",
				UnreadCount: 1,
				Messages: []models.Message{
					{ID: "m2", ConversationID: "cv2", Content: "Protein question", Direction: models.DirectionReceived, Status: models.MessageDelivered, Timestamp: testNow.Add(-time.Hour)},
				},
			},
		},
	})
}
