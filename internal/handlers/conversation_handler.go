package handlers

import (
	"strings"

	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/toruktube/revive-app-sub001/internal/models"
	"github.com/toruktube/revive-app-sub001/internal/services"
	chatws "github.com/toruktube/revive-app-sub001/internal/websocket"
)

type messagingApplicationService interface {
	View() services.MessagingView
	SetQuery(query string) services.MessagingView
	SelectConversation(id string) (services.MessagingView, error)
	CloseConversation() services.MessagingView
	MarkRead(id string) error
	SendMessage(conversationID string, content string) (models.Message, error)
}

type ConversationHandler struct {
	service messagingApplicationService
	hub     *chatws.Hub
}

type conversationQueryRequest struct {
	Query string `json:"query"`
}

type selectConversationRequest struct {
	ConversationID string `json:"conversation_id"`
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

func NewConversationHandler(service messagingApplicationService, hub *chatws.Hub) *ConversationHandler {
	return &ConversationHandler{
		service: service,
		hub:     hub,
	}
}

func (h *ConversationHandler) ListConversations(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"messaging": h.service.View()})
}

func (h *ConversationHandler) SetQuery(c *fiber.Ctx) error {
	var req conversationQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	return c.JSON(fiber.Map{"messaging": h.service.SetQuery(req.Query)})
}

func (h *ConversationHandler) SelectConversation(c *fiber.Ctx) error {
	var req selectConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	conversationID := strings.TrimSpace(req.ConversationID)
	if conversationID == "" {
		return badRequest(c, "conversation_id is required")
	}

	view, err := h.service.SelectConversation(conversationID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"messaging": view})
}

func (h *ConversationHandler) CloseConversation(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"messaging": h.service.CloseConversation()})
}

func (h *ConversationHandler) SendMessage(c *fiber.Ctx) error {
	conversationID := strings.TrimSpace(c.Params("id"))
	if conversationID == "" {
		return badRequest(c, "Invalid conversation id")
	}

	var req sendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	message, err := h.service.SendMessage(conversationID, req.Content)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": message})
}

func (h *ConversationHandler) MarkRead(c *fiber.Ctx) error {
	conversationID := strings.TrimSpace(c.Params("id"))
	if conversationID == "" {
		return badRequest(c, "Invalid conversation id")
	}

	if err := h.service.MarkRead(conversationID); err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"messaging": h.service.View()})
}

func (h *ConversationHandler) WebSocketUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{"error": "WebSocket upgrade required"})
	}
	return c.Next()
}

func (h *ConversationHandler) HandleWebSocket(conn *websocket.Conn) {
	client := chatws.NewClient(h.hub, conn)

	h.hub.Register(client)
	go client.WritePump()
	client.ReadPump(h.service)
}
