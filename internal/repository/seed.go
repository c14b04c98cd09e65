package repository

import (
	"time"

	"github.com/toruktube/revive-app-sub001/internal/calendar"
	"github.com/toruktube/revive-app-sub001/internal/models"
)

// Seed returns the demo roster used when no database is configured. Dates
// are laid out around the week containing now so the agenda is never empty.
func Seed(now time.Time) Snapshot {
	monday := calendar.WeekStart(calendar.CivilDay(now))
	day := func(offset int) time.Time { return calendar.AddDays(monday, offset) }
	at := func(offset, hour, minute int) time.Time {
		return day(offset).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	}
	description := "Full-body strength block, three days a week"

	return Snapshot{
		Clients: []models.Client{
			{ID: "cl-1", FirstName: "Lucía", LastName: "Fernández", Email: "lucia@example.com", Goal: "Hypertrophy", Active: true, JoinedAt: day(-120)},
			{ID: "cl-2", FirstName: "Marcos", LastName: "Peña", Email: "marcos@example.com", Goal: "Fat loss", Active: true, JoinedAt: day(-90)},
			{ID: "cl-3", FirstName: "Ana", LastName: "Ruiz", Email: "ana@example.com", Goal: "Marathon prep", Active: true, JoinedAt: day(-45)},
			{ID: "cl-4", FirstName: "Javier", LastName: "Ortega", Email: "javier@example.com", Goal: "Mobility", Active: false, JoinedAt: day(-200)},
			{ID: "cl-5", FirstName: "Sofía", LastName: "Navarro", Email: "sofia@example.com", Goal: "Strength", Active: true, JoinedAt: day(-14)},
		},
		Sessions: []models.Session{
			{ID: "se-1", ClientID: "cl-1", Date: day(-7), StartTime: "08:00", EndTime: "09:00", Status: models.SessionCompleted},
			{ID: "se-2", ClientID: "cl-2", Date: day(-5), StartTime: "18:00", EndTime: "19:00", Status: models.SessionCancelled},
			{ID: "se-3", ClientID: "cl-1", Date: day(0), StartTime: "09:00", EndTime: "10:00", Status: models.SessionCompleted},
			{ID: "se-4", ClientID: "cl-3", Date: day(0), StartTime: "07:30", EndTime: "08:30", Status: models.SessionCompleted},
			{ID: "se-5", ClientID: "cl-2", Date: day(1), StartTime: "19:00", EndTime: "20:00", Status: models.SessionCancelled},
			{ID: "se-6", ClientID: "cl-5", Date: day(2), StartTime: "10:00", EndTime: "11:00", Status: models.SessionScheduled},
			{ID: "se-7", ClientID: "cl-3", Date: day(3), StartTime: "07:30", EndTime: "08:30", Status: models.SessionScheduled},
			{ID: "se-8", ClientID: "cl-1", Date: day(4), StartTime: "09:00", EndTime: "10:00", Status: models.SessionScheduled},
			{ID: "se-9", ClientID: "cl-5", Date: day(9), StartTime: "10:00", EndTime: "11:00", Status: models.SessionScheduled},
		},
		Payments: []models.Payment{
			{ID: "pa-1", ClientID: "cl-1", Amount: 120, IssueDate: day(-30), Status: models.PaymentPaid, Concept: "Monthly plan"},
			{ID: "pa-2", ClientID: "cl-2", Amount: 90, IssueDate: day(-28), Status: models.PaymentOverdue, Concept: "Monthly plan"},
			{ID: "pa-3", ClientID: "cl-3", Amount: 150, IssueDate: day(-10), Status: models.PaymentPaid, Concept: "Running block"},
			{ID: "pa-4", ClientID: "cl-5", Amount: 45, IssueDate: day(-2), Status: models.PaymentPending, Concept: "Single session"},
			{ID: "pa-5", ClientID: "cl-1", Amount: 120, IssueDate: day(0), Status: models.PaymentPending, Concept: "Monthly plan"},
		},
		Notes: []models.Note{
			{ID: "no-1", ClientID: "cl-1", Date: day(-7), EnergyLevel: 4, Mood: 4, Adherence: 5, Text: "Hit a squat PR, sleeping well.", CreatedAt: at(-7, 10, 0)},
			{ID: "no-2", ClientID: "cl-2", Date: day(-5), EnergyLevel: 2, Mood: 3, Adherence: 2, Text: "Skipped cardio, work stress.", CreatedAt: at(-5, 20, 0)},
			{ID: "no-3", ClientID: "cl-3", Date: day(0), EnergyLevel: 5, Mood: 5, Adherence: 4, Text: "Long run felt easy.", CreatedAt: at(0, 9, 0)},
			{ID: "no-4", ClientID: "cl-1", Date: day(0), EnergyLevel: 3, Mood: 4, Adherence: 4, Text: "Slight knee discomfort on lunges.", CreatedAt: at(0, 10, 30)},
		},
		Conversations: summarize([]models.Conversation{
			{
				ID:          "co-1",
				ClientID:    "cl-1",
				UnreadCount: 1,
				Messages: []models.Message{
					{ID: "me-1", ConversationID: "co-1", Content: "Can we move Friday to 10?", Direction: models.DirectionReceived, Status: models.MessageDelivered, Timestamp: at(-1, 18, 5)},
				},
			},
			{
				ID:       "co-2",
				ClientID: "cl-2",
				Messages: []models.Message{
					{ID: "me-2", ConversationID: "co-2", Content: "Sorry about today, rescheduling.", Direction: models.DirectionReceived, Status: models.MessageRead, Timestamp: at(-5, 17, 0)},
					{ID: "me-3", ConversationID: "co-2", Content: "No problem, see you next week.", Direction: models.DirectionSent, Status: models.MessageSent, Timestamp: at(-5, 17, 20)},
				},
			},
			{
				ID:          "co-3",
				ClientID:    "cl-3",
				UnreadCount: 2,
				Messages: []models.Message{
					{ID: "me-4", ConversationID: "co-3", Content: "Race registration done!", Direction: models.DirectionReceived, Status: models.MessageDelivered, Timestamp: at(0, 7, 0)},
					{ID: "me-5", ConversationID: "co-3", Content: "Should I taper next week?", Direction: models.DirectionReceived, Status: models.MessageDelivered, Timestamp: at(0, 7, 2)},
				},
			},
		}),
		Routines: []models.Routine{
			{
				ID:          "ro-1",
				ClientID:    "cl-1",
				Name:        "Strength A",
				Description: &description,
				Exercises: []models.Exercise{
					{Name: "Back squat", Sets: 5, Reps: 5, RestSeconds: 180},
					{Name: "Bench press", Sets: 5, Reps: 5, RestSeconds: 180},
					{Name: "Barbell row", Sets: 3, Reps: 8, RestSeconds: 120},
				},
				CreatedAt: at(-20, 12, 0),
			},
		},
	}
}
