package services

import (
	"testing"

	"github.com/toruktube/revive-app-sub001/internal/models"
	"github.com/toruktube/revive-app-sub001/internal/repository"
)

func TestReturnedViewsDoNotAliasCache(t *testing.T) {
	store := testStore(t)

	agenda := NewAgendaService(store, testOptions()...)
	view := agenda.View()
	if len(view.Days[0].Items) == 0 {
		t.Fatalf("expected sessions on monday")
	}
	name := view.Days[0].Items[0].ClientName
	view.Days[0].Items[0].ClientName = "changed"
	view.Days[0].Items = nil
	if got := agenda.View().Days[0].Items; len(got) == 0 || got[0].ClientName != name {
		t.Fatalf("agenda cache was modified through a returned view: %+v", got)
	}

	payments := NewPaymentService(store, testOptions()...)
	ledger := payments.View()
	amount := ledger.Payments[0].Amount
	ledger.Payments[0].Amount = 0
	if got := payments.View().Payments[0].Amount; got != amount {
		t.Fatalf("payment cache was modified: %v", got)
	}

	journal := NewJournalService(store, testOptions()...)
	notes := journal.View()
	text := notes.Notes[0].Text
	notes.Notes[0].Text = "changed"
	if got := journal.View().Notes[0].Text; got != text {
		t.Fatalf("journal cache was modified: %q", got)
	}

	messaging := NewMessagingService(store, testOptions()...)
	selected, err := messaging.SelectConversation("cv1")
	if err != nil {
		t.Fatalf("SelectConversation: %v", err)
	}
	selected.Active.Messages[0].Content = "changed"
	selected.Conversations[0].LastMessage = "changed"
	fresh := messaging.View()
	if fresh.Active.Messages[0].Content == "changed" || fresh.Conversations[0].LastMessage == "changed" {
		t.Fatalf("messaging cache was modified: %+v", fresh)
	}

	roster := NewRosterService(store)
	clients := roster.View()
	clients.Clients[0].FirstName = "changed"
	if roster.View().Clients[0].FirstName == "changed" {
		t.Fatalf("roster cache was modified")
	}
}

func TestRoutineViewCopiesExercises(t *testing.T) {
	service := NewRoutineService(testStore(t), testOptions()...)
	if _, err := service.AddRoutine(AddRoutineInput{
		ClientID:  "c1",
		Name:      "Push",
		Exercises: []models.Exercise{{Name: "Bench", Sets: 3, Reps: 8}},
	}); err != nil {
		t.Fatalf("AddRoutine: %v", err)
	}

	view := service.View()
	view.Routines[0].Exercises[0].Sets = 99
	if got := service.View().Routines[0].Exercises[0].Sets; got != 3 {
		t.Fatalf("routine cache was modified: %d sets", got)
	}
}

func TestMutationsAcceptClientsWithBlankNames(t *testing.T) {
	store := repository.NewStore(repository.Snapshot{
		Clients: []models.Client{{ID: "anon", Active: true}},
	})

	if _, err := NewAgendaService(store, testOptions()...).ScheduleSession(ScheduleSessionInput{
		ClientID: "anon", Date: testNow, StartTime: "09:00", EndTime: "10:00",
	}); err != nil {
		t.Fatalf("ScheduleSession: %v", err)
	}
	if _, err := NewPaymentService(store, testOptions()...).RegisterPayment(RegisterPaymentInput{
		ClientID: "anon", Amount: 30,
	}); err != nil {
		t.Fatalf("RegisterPayment: %v", err)
	}
	if _, err := NewJournalService(store, testOptions()...).AddNote(AddNoteInput{
		ClientID: "anon", EnergyLevel: 3, Mood: 3, Adherence: 3, Text: "ok",
	}); err != nil {
		t.Fatalf("AddNote: %v", err)
	}
	if _, err := NewRoutineService(store, testOptions()...).AddRoutine(AddRoutineInput{
		ClientID: "anon", Name: "Core", Exercises: []models.Exercise{{Name: "Plank", Sets: 3, Reps: 1}},
	}); err != nil {
		t.Fatalf("AddRoutine: %v", err)
	}
}
