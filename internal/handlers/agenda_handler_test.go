package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/toruktube/revive-app-sub001/internal/models"
	"github.com/toruktube/revive-app-sub001/internal/services"
)

type stubAgendaService struct {
	calls         []string
	weekDate      time.Time
	filter        services.AgendaFilter
	scheduleInput services.ScheduleSessionInput
	scheduleErr   error
	statusID      string
	status        string
	statusErr     error
}

func (s *stubAgendaService) View() services.AgendaView {
	s.calls = append(s.calls, "view")
	return services.AgendaView{}
}

func (s *stubAgendaService) SetWeek(date time.Time) services.AgendaView {
	s.calls = append(s.calls, "set_week")
	s.weekDate = date
	return services.AgendaView{WeekStart: date}
}

func (s *stubAgendaService) NextWeek() services.AgendaView {
	s.calls = append(s.calls, "next")
	return services.AgendaView{}
}

func (s *stubAgendaService) PreviousWeek() services.AgendaView {
	s.calls = append(s.calls, "previous")
	return services.AgendaView{}
}

func (s *stubAgendaService) Today() services.AgendaView {
	s.calls = append(s.calls, "today")
	return services.AgendaView{}
}

func (s *stubAgendaService) SetFilter(f services.AgendaFilter) services.AgendaView {
	s.calls = append(s.calls, "filter")
	s.filter = f
	return services.AgendaView{Filter: f}
}

func (s *stubAgendaService) ScheduleSession(input services.ScheduleSessionInput) (models.Session, error) {
	s.scheduleInput = input
	if s.scheduleErr != nil {
		return models.Session{}, s.scheduleErr
	}
	return models.Session{ID: "new", ClientID: input.ClientID, Date: input.Date, StartTime: input.StartTime, EndTime: input.EndTime, Status: models.SessionScheduled}, nil
}

func (s *stubAgendaService) UpdateSessionStatus(sessionID string, requestedStatus string) (models.Session, error) {
	s.statusID = sessionID
	s.status = requestedStatus
	return models.Session{ID: sessionID, Status: models.SessionCompleted}, s.statusErr
}

func newAgendaApp(service *stubAgendaService) *fiber.App {
	handler := NewAgendaHandler(service)
	app := fiber.New()
	app.Get("/api/v1/agenda", handler.GetAgenda)
	app.Put("/api/v1/agenda/week", handler.ChangeWeek)
	app.Put("/api/v1/agenda/filter", handler.SetFilter)
	app.Post("/api/v1/agenda/sessions", handler.ScheduleSession)
	app.Put("/api/v1/agenda/sessions/:id/status", handler.UpdateSessionStatus)
	return app
}

func TestChangeWeekDispatchesActions(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"action":"next"}`, "next"},
		{`{"action":"previous"}`, "previous"},
		{`{"action":"TODAY"}`, "today"},
		{`{"date":"2024-06-19"}`, "set_week"},
	}

	for _, tc := range tests {
		service := &stubAgendaService{}
		resp := doJSON(t, newAgendaApp(service), http.MethodPut, "/api/v1/agenda/week", tc.body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", tc.body, resp.StatusCode)
		}
		if len(service.calls) != 1 || service.calls[0] != tc.want {
			t.Fatalf("%s: expected %q, got %v", tc.body, tc.want, service.calls)
		}
	}
}

func TestChangeWeekRejectsUnknownAction(t *testing.T) {
	service := &stubAgendaService{}
	for _, body := range []string{`{"action":"sideways"}`, `{"date":"19/06/2024"}`} {
		resp := doJSON(t, newAgendaApp(service), http.MethodPut, "/api/v1/agenda/week", body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", body, resp.StatusCode)
		}
	}
	if len(service.calls) != 0 {
		t.Fatalf("expected no service calls, got %v", service.calls)
	}
}

func TestSetAgendaFilterForwardsCriteria(t *testing.T) {
	service := &stubAgendaService{}
	resp := doJSON(t, newAgendaApp(service), http.MethodPut, "/api/v1/agenda/filter", `{"client_id":"c1","status":"scheduled","query":"luc"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if service.filter.ClientID == nil || *service.filter.ClientID != "c1" {
		t.Fatalf("unexpected client filter %+v", service.filter)
	}
	if service.filter.Status == nil || *service.filter.Status != models.SessionScheduled || service.filter.Query != "luc" {
		t.Fatalf("unexpected filter %+v", service.filter)
	}
}

func TestScheduleSessionReturnsCreatedSession(t *testing.T) {
	service := &stubAgendaService{}
	resp := doJSON(t, newAgendaApp(service), http.MethodPost, "/api/v1/agenda/sessions", `{"client_id":"c1","date":"2024-06-14","start_time":"9:00","end_time":"10:00"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	want := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	if !service.scheduleInput.Date.Equal(want) || service.scheduleInput.StartTime != "9:00" {
		t.Fatalf("unexpected forwarded input %+v", service.scheduleInput)
	}

	var body struct {
		Session models.Session `json:"session"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.Session.ID != "new" || body.Session.Status != models.SessionScheduled {
		t.Fatalf("unexpected response %+v", body.Session)
	}
}

func TestScheduleSessionRequiresDate(t *testing.T) {
	resp := doJSON(t, newAgendaApp(&stubAgendaService{}), http.MethodPost, "/api/v1/agenda/sessions", `{"client_id":"c1","start_time":"09:00","end_time":"10:00"}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestUpdateSessionStatusMapsErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{services.ErrInvalidStatus, http.StatusBadRequest},
		{services.ErrNotFound, http.StatusNotFound},
		{services.ErrInvalidStateTransition, http.StatusUnprocessableEntity},
	}

	for _, tc := range tests {
		service := &stubAgendaService{statusErr: tc.err}
		resp := doJSON(t, newAgendaApp(service), http.MethodPut, "/api/v1/agenda/sessions/s3/status", `{"status":"complete"}`)
		resp.Body.Close()

		if resp.StatusCode != tc.want {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, resp.StatusCode)
		}
		if service.statusID != "s3" || service.status != "complete" {
			t.Fatalf("unexpected forwarded status %q %q", service.statusID, service.status)
		}
	}
}
