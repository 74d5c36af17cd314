package handler

import (
	"go-inventario/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	service  service.CategoryService
	pageSize int
}

func NewCategoryHandler(s service.CategoryService, pageSize int) *CategoryHandler {
	return &CategoryHandler{service: s, pageSize: pageSize}
}

// GetCategories returns one page of categories
// GET /api/v1/categories?q=&page=
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return renderPage(c, categories, h.pageSize)
}

func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req service.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	category, err := h.service.CreateCategory(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Category created", "data": category})
}

func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req service.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	category, err := h.service.UpdateCategory(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Category updated", "data": category})
}

// DeleteCategory requires ?confirm=true. Products of the category are kept.
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if !confirmed(c) {
		return c.Status(400).JSON(fiber.Map{"error": "Deleting a category must be confirmed with confirm=true"})
	}

	if err := h.service.DeleteCategory(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Category deleted"})
}
