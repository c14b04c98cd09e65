package models

import "time"

const (
	ScaleMin = 1
	ScaleMax = 5
)

// Note is a journal entry about a client. Energy, mood and adherence are
// rated on a ScaleMin..ScaleMax scale.
type Note struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	Date        time.Time `json:"date"`
	EnergyLevel int       `json:"energy_level"`
	Mood        int       `json:"mood"`
	Adherence   int       `json:"adherence"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"created_at"`
}
