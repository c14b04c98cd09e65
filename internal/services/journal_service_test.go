package services

import (
	"errors"
	"testing"
)

func TestJournalAveragesFollowFilter(t *testing.T) {
	service := NewJournalService(testStore(t), testOptions()...)

	view := service.View()
	if view.Summary.EnergyAverage != 4.0 {
		t.Fatalf("expected energy average 4.0, got %v", view.Summary.EnergyAverage)
	}
	if view.Notes[0].ID != "n3" {
		t.Fatalf("expected newest note first, got %s", view.Notes[0].ID)
	}

	view = service.SetFilter(JournalFilter{MinEnergy: ptr(5.0)})
	if len(view.Notes) != 1 || view.Notes[0].EnergyLevel != 5 {
		t.Fatalf("unexpected filtered notes %+v", view.Notes)
	}
	if view.Summary.EnergyAverage != 5.0 {
		t.Fatalf("expected energy average 5.0, got %v", view.Summary.EnergyAverage)
	}

	view = service.SetFilter(JournalFilter{ClientID: ptr("c1"), Query: "KNEE"})
	if len(view.Notes) != 1 || view.Notes[0].ID != "n3" {
		t.Fatalf("unexpected search result %+v", view.Notes)
	}

	view = service.SetFilter(JournalFilter{ClientID: ptr("c3")})
	if len(view.Notes) != 0 || view.Summary.EnergyAverage != 0 || view.Summary.MoodAverage != 0 {
		t.Fatalf("expected empty journal with zero averages, got %+v", view.Summary)
	}
}

func TestAddNote(t *testing.T) {
	service := NewJournalService(testStore(t), testOptions()...)

	note, err := service.AddNote(AddNoteInput{ClientID: "c2", EnergyLevel: 1, Mood: 2, Adherence: 3, Text: "  Sick this week "})
	if err != nil {
		t.Fatalf("AddNote: %v", err)
	}
	if note.Text != "Sick this week" || !note.CreatedAt.Equal(testNow) {
		t.Fatalf("unexpected note %+v", note)
	}

	view := service.View()
	if len(view.Notes) != 4 || view.Notes[0].ID != note.ID {
		t.Fatalf("expected new note first, got %+v", view.Notes)
	}
	if view.Summary.EnergyAverage != 3.3 {
		t.Fatalf("expected energy average 3.3, got %v", view.Summary.EnergyAverage)
	}

	for i, input := range []AddNoteInput{
		{ClientID: "c1", EnergyLevel: 0, Mood: 3, Adherence: 3, Text: "x"},
		{ClientID: "c1", EnergyLevel: 3, Mood: 6, Adherence: 3, Text: "x"},
		{ClientID: "c1", EnergyLevel: 3, Mood: 3, Adherence: 3, Text: "   "},
	} {
		if _, err := service.AddNote(input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
	if _, err := service.AddNote(AddNoteInput{ClientID: "ghost", EnergyLevel: 3, Mood: 3, Adherence: 3, Text: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
