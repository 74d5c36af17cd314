package handler

import (
	"go-inventario/internal/service"

	"github.com/gofiber/fiber/v2"
)

type MovementHandler struct {
	service  service.MovementService
	pageSize int
}

func NewMovementHandler(s service.MovementService, pageSize int) *MovementHandler {
	return &MovementHandler{service: s, pageSize: pageSize}
}

// GetMovements returns one page of the movement ledger, newest first
// GET /api/v1/movements?q=&page=
func (h *MovementHandler) GetMovements(c *fiber.Ctx) error {
	rows, err := h.service.GetAllMovements(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return renderPage(c, rows, h.pageSize)
}

func (h *MovementHandler) CreateMovement(c *fiber.Ctx) error {
	var req service.RecordMovementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON: unit_price and quantity must be numbers"})
	}

	movement, err := h.service.RecordMovement(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Movement recorded", "data": movement})
}
