package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/toruktube/revive-app-sub001/internal/services"
)

type rosterApplicationService interface {
	View() services.RosterView
	SetFilter(f services.RosterFilter) services.RosterView
}

type ClientHandler struct {
	service rosterApplicationService
}

func NewClientHandler(service rosterApplicationService) *ClientHandler {
	return &ClientHandler{service: service}
}

func (h *ClientHandler) ListClients(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"clients": h.service.View()})
}

func (h *ClientHandler) SetFilter(c *fiber.Ctx) error {
	var req services.RosterFilter
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	return c.JSON(fiber.Map{"clients": h.service.SetFilter(req)})
}
