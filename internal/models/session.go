package models

import "time"

type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// Session is a training slot booked with one client. Date is the calendar
// day at midnight UTC; StartTime and EndTime are zero-padded "HH:MM".
type Session struct {
	ID        string        `json:"id"`
	ClientID  string        `json:"client_id"`
	Date      time.Time     `json:"date"`
	StartTime string        `json:"start_time"`
	EndTime   string        `json:"end_time"`
	Status    SessionStatus `json:"status"`
}

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentOverdue PaymentStatus = "overdue"
)

type Payment struct {
	ID        string        `json:"id"`
	ClientID  string        `json:"client_id"`
	Amount    float64       `json:"amount"`
	IssueDate time.Time     `json:"issue_date"`
	Status    PaymentStatus `json:"status"`
	Concept   string        `json:"concept,omitempty"`
}
