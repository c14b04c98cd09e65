package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/toruktube/revive-app-sub001/internal/models"
	"github.com/toruktube/revive-app-sub001/internal/services"
)

type routineApplicationService interface {
	View() services.RoutineView
	SetFilter(f services.RoutineFilter) services.RoutineView
	AddRoutine(input services.AddRoutineInput) (models.Routine, error)
}

type RoutineHandler struct {
	service routineApplicationService
}

func NewRoutineHandler(service routineApplicationService) *RoutineHandler {
	return &RoutineHandler{service: service}
}

type addRoutineRequest struct {
	ClientID    string            `json:"client_id"`
	Name        string            `json:"name"`
	Description *string           `json:"description"`
	Exercises   []models.Exercise `json:"exercises"`
}

func (h *RoutineHandler) GetRoutines(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"routines": h.service.View()})
}

func (h *RoutineHandler) SetFilter(c *fiber.Ctx) error {
	var req services.RoutineFilter
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	return c.JSON(fiber.Map{"routines": h.service.SetFilter(req)})
}

func (h *RoutineHandler) AddRoutine(c *fiber.Ctx) error {
	var req addRoutineRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	routine, err := h.service.AddRoutine(services.AddRoutineInput{
		ClientID:    req.ClientID,
		Name:        req.Name,
		Description: req.Description,
		Exercises:   req.Exercises,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"routine": routine})
}
