package stats

import "github.com/toruktube/revive-app-sub001/internal/models"

type SessionSummary struct {
	Total          int `json:"total"`
	Scheduled      int `json:"scheduled"`
	Completed      int `json:"completed"`
	Cancelled      int `json:"cancelled"`
	AttendanceRate int `json:"attendance_rate"`
}

func SummarizeSessions(sessions []models.Session) SessionSummary {
	var s SessionSummary
	for _, session := range sessions {
		s.Total++
		switch session.Status {
		case models.SessionScheduled:
			s.Scheduled++
		case models.SessionCompleted:
			s.Completed++
		case models.SessionCancelled:
			s.Cancelled++
		}
	}
	s.AttendanceRate = Percent(s.Completed, s.Total)
	return s
}

type PaymentSummary struct {
	Count          int     `json:"count"`
	PaidCount      int     `json:"paid_count"`
	PendingCount   int     `json:"pending_count"`
	OverdueCount   int     `json:"overdue_count"`
	TotalCollected float64 `json:"total_collected"`
	TotalPending   float64 `json:"total_pending"`
	TotalOverdue   float64 `json:"total_overdue"`
}

func SummarizePayments(payments []models.Payment) PaymentSummary {
	var s PaymentSummary
	for _, payment := range payments {
		s.Count++
		switch payment.Status {
		case models.PaymentPaid:
			s.PaidCount++
			s.TotalCollected += payment.Amount
		case models.PaymentPending:
			s.PendingCount++
			s.TotalPending += payment.Amount
		case models.PaymentOverdue:
			s.OverdueCount++
			s.TotalOverdue += payment.Amount
		}
	}
	s.TotalCollected = RoundCents(s.TotalCollected)
	s.TotalPending = RoundCents(s.TotalPending)
	s.TotalOverdue = RoundCents(s.TotalOverdue)
	return s
}

type NoteSummary struct {
	Count            int     `json:"count"`
	EnergyAverage    float64 `json:"energy_average"`
	MoodAverage      float64 `json:"mood_average"`
	AdherenceAverage float64 `json:"adherence_average"`
}

func SummarizeNotes(notes []models.Note) NoteSummary {
	var energy, mood, adherence float64
	for _, note := range notes {
		energy += float64(note.EnergyLevel)
		mood += float64(note.Mood)
		adherence += float64(note.Adherence)
	}
	return NoteSummary{
		Count:            len(notes),
		EnergyAverage:    mean(energy, len(notes)),
		MoodAverage:      mean(mood, len(notes)),
		AdherenceAverage: mean(adherence, len(notes)),
	}
}
