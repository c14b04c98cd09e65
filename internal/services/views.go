package services

import "github.com/toruktube/revive-app-sub001/internal/models"

// The clone methods copy every slice a view holds so callers can modify a
// returned view without touching the cached one.

func (v AgendaView) clone() AgendaView {
	days := make([]AgendaDay, len(v.Days))
	for i, day := range v.Days {
		day.Items = append([]AgendaItem{}, day.Items...)
		days[i] = day
	}
	v.Days = days
	return v
}

func (v PaymentView) clone() PaymentView {
	v.Payments = append([]PaymentItem{}, v.Payments...)
	return v
}

func (v JournalView) clone() JournalView {
	v.Notes = append([]JournalEntry{}, v.Notes...)
	return v
}

func (v MessagingView) clone() MessagingView {
	v.Conversations = append([]ConversationItem{}, v.Conversations...)
	if v.Active != nil {
		active := *v.Active
		active.Conversation = active.Conversation.Clone()
		v.Active = &active
	}
	return v
}

func (v RoutineView) clone() RoutineView {
	routines := make([]RoutineItem, len(v.Routines))
	for i, item := range v.Routines {
		item.Exercises = append([]models.Exercise{}, item.Exercises...)
		if item.Description != nil {
			description := *item.Description
			item.Description = &description
		}
		routines[i] = item
	}
	v.Routines = routines
	return v
}

func (v RosterView) clone() RosterView {
	v.Clients = append([]models.Client{}, v.Clients...)
	return v
}
