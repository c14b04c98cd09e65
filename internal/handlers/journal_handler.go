package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/toruktube/revive-app-sub001/internal/models"
	"github.com/toruktube/revive-app-sub001/internal/services"
)

type journalApplicationService interface {
	View() services.JournalView
	SetFilter(f services.JournalFilter) services.JournalView
	AddNote(input services.AddNoteInput) (models.Note, error)
}

type JournalHandler struct {
	service journalApplicationService
}

func NewJournalHandler(service journalApplicationService) *JournalHandler {
	return &JournalHandler{service: service}
}

type addNoteRequest struct {
	ClientID    string `json:"client_id"`
	Date        string `json:"date"`
	EnergyLevel int    `json:"energy_level"`
	Mood        int    `json:"mood"`
	Adherence   int    `json:"adherence"`
	Text        string `json:"text"`
}

func (h *JournalHandler) GetJournal(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"journal": h.service.View()})
}

func (h *JournalHandler) SetFilter(c *fiber.Ctx) error {
	var req services.JournalFilter
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	return c.JSON(fiber.Map{"journal": h.service.SetFilter(req)})
}

func (h *JournalHandler) AddNote(c *fiber.Ctx) error {
	var req addNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	date, err := parseOptionalDay(req.Date)
	if err != nil {
		return badRequest(c, "date must use YYYY-MM-DD")
	}

	note, err := h.service.AddNote(services.AddNoteInput{
		ClientID:    req.ClientID,
		Date:        date,
		EnergyLevel: req.EnergyLevel,
		Mood:        req.Mood,
		Adherence:   req.Adherence,
		Text:        req.Text,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"note": note})
}
