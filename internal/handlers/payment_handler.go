package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/toruktube/revive-app-sub001/internal/models"
	"github.com/toruktube/revive-app-sub001/internal/services"
)

type paymentApplicationService interface {
	View() services.PaymentView
	SetFilter(f services.PaymentFilter) services.PaymentView
	RegisterPayment(input services.RegisterPaymentInput) (models.Payment, error)
}

type PaymentHandler struct {
	service paymentApplicationService
}

func NewPaymentHandler(service paymentApplicationService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type paymentFilterRequest struct {
	ClientID  *string               `json:"client_id"`
	Status    *models.PaymentStatus `json:"status"`
	MinAmount *float64              `json:"min_amount"`
	MaxAmount *float64              `json:"max_amount"`
	From      string                `json:"from"`
	To        string                `json:"to"`
	Query     string                `json:"query"`
}

type registerPaymentRequest struct {
	ClientID  string  `json:"client_id"`
	Amount    float64 `json:"amount"`
	IssueDate string  `json:"issue_date"`
	Status    string  `json:"status"`
	Concept   string  `json:"concept"`
}

func (h *PaymentHandler) GetPayments(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"payments": h.service.View()})
}

func (h *PaymentHandler) SetFilter(c *fiber.Ctx) error {
	var req paymentFilterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	from, err := parseOptionalDayPtr(req.From)
	if err != nil {
		return badRequest(c, "from must use YYYY-MM-DD")
	}
	to, err := parseOptionalDayPtr(req.To)
	if err != nil {
		return badRequest(c, "to must use YYYY-MM-DD")
	}

	view := h.service.SetFilter(services.PaymentFilter{
		ClientID:  req.ClientID,
		Status:    req.Status,
		MinAmount: req.MinAmount,
		MaxAmount: req.MaxAmount,
		From:      from,
		To:        to,
		Query:     req.Query,
	})
	return c.JSON(fiber.Map{"payments": view})
}

func (h *PaymentHandler) RegisterPayment(c *fiber.Ctx) error {
	var req registerPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	issueDate, err := parseOptionalDay(req.IssueDate)
	if err != nil {
		return badRequest(c, "issue_date must use YYYY-MM-DD")
	}

	payment, err := h.service.RegisterPayment(services.RegisterPaymentInput{
		ClientID:  req.ClientID,
		Amount:    req.Amount,
		IssueDate: issueDate,
		Status:    models.PaymentStatus(strings.ToLower(strings.TrimSpace(req.Status))),
		Concept:   req.Concept,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"payment": payment})
}
