package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/toruktube/revive-app-sub001/internal/models"
	"github.com/toruktube/revive-app-sub001/internal/services"
)

type agendaApplicationService interface {
	View() services.AgendaView
	SetWeek(date time.Time) services.AgendaView
	NextWeek() services.AgendaView
	PreviousWeek() services.AgendaView
	Today() services.AgendaView
	SetFilter(f services.AgendaFilter) services.AgendaView
	ScheduleSession(input services.ScheduleSessionInput) (models.Session, error)
	UpdateSessionStatus(sessionID string, requestedStatus string) (models.Session, error)
}

type AgendaHandler struct {
	service agendaApplicationService
}

func NewAgendaHandler(service agendaApplicationService) *AgendaHandler {
	return &AgendaHandler{service: service}
}

type changeWeekRequest struct {
	Action string `json:"action"`
	Date   string `json:"date"`
}

type scheduleSessionRequest struct {
	ClientID  string `json:"client_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type updateSessionStatusRequest struct {
	Status string `json:"status"`
}

func (h *AgendaHandler) GetAgenda(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"agenda": h.service.View()})
}

func (h *AgendaHandler) ChangeWeek(c *fiber.Ctx) error {
	var req changeWeekRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.Date) != "" {
		day, err := parseOptionalDay(req.Date)
		if err != nil {
			return badRequest(c, "date must use YYYY-MM-DD")
		}
		return c.JSON(fiber.Map{"agenda": h.service.SetWeek(day)})
	}

	var view services.AgendaView
	switch strings.ToLower(strings.TrimSpace(req.Action)) {
	case "next":
		view = h.service.NextWeek()
	case "previous", "prev":
		view = h.service.PreviousWeek()
	case "today":
		view = h.service.Today()
	default:
		return badRequest(c, "action must be next, previous or today")
	}
	return c.JSON(fiber.Map{"agenda": view})
}

func (h *AgendaHandler) SetFilter(c *fiber.Ctx) error {
	var req services.AgendaFilter
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	return c.JSON(fiber.Map{"agenda": h.service.SetFilter(req)})
}

func (h *AgendaHandler) ScheduleSession(c *fiber.Ctx) error {
	var req scheduleSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	day, err := parseOptionalDay(req.Date)
	if err != nil || day.IsZero() {
		return badRequest(c, "date must use YYYY-MM-DD")
	}

	session, err := h.service.ScheduleSession(services.ScheduleSessionInput{
		ClientID:  req.ClientID,
		Date:      day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"session": session})
}

func (h *AgendaHandler) UpdateSessionStatus(c *fiber.Ctx) error {
	sessionID := strings.TrimSpace(c.Params("id"))
	if sessionID == "" {
		return badRequest(c, "Invalid session id")
	}

	var req updateSessionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	session, err := h.service.UpdateSessionStatus(sessionID, req.Status)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{"session": session})
}
