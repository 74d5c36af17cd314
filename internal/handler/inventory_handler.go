package handler

import (
	"bytes"
	"time"

	"go-inventario/internal/export"
	"go-inventario/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type InventoryHandler struct {
	service  service.InventoryService
	pageSize int
}

func NewInventoryHandler(s service.InventoryService, pageSize int) *InventoryHandler {
	return &InventoryHandler{service: s, pageSize: pageSize}
}

// GetInventory returns one page of the stock view
// GET /api/v1/inventory?q=&status=&page=
func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	rows, err := h.service.GetInventory(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return renderPage(c, rows, h.pageSize)
}

// ExportInventory downloads the whole stock view as xlsx
// GET /api/v1/inventory/export
func (h *InventoryHandler) ExportInventory(c *fiber.Ctx) error {
	rows, err := h.service.GetInventory(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	buf := &bytes.Buffer{}
	if err := export.WriteInventory(buf, rows); err != nil {
		log.Error().Err(err).Msg("inventory export failed")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build the spreadsheet"})
	}

	c.Attachment(export.FileName(time.Now()))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(buf.Bytes())
}
