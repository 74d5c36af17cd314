package handler

import (
	"go-inventario/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service  service.ProductService
	pageSize int
}

func NewProductHandler(s service.ProductService, pageSize int) *ProductHandler {
	return &ProductHandler{service: s, pageSize: pageSize}
}

// GetProducts returns one page of products with their category name
// GET /api/v1/products?q=&page=
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return renderPage(c, products, h.pageSize)
}

// GetProductOptions returns id and name of every product, for pickers.
func (h *ProductHandler) GetProductOptions(c *fiber.Ctx) error {
	options, err := h.service.GetProductOptions(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(options)
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}

	product, err := h.service.GetProduct(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) GetProductMovements(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}

	movements, err := h.service.GetProductMovements(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movements)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.CreateProduct(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

// DeleteProduct removes the product and all of its movements. Requires
// ?confirm=true.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if !confirmed(c) {
		return c.Status(400).JSON(fiber.Map{"error": "Deleting a product and its movements must be confirmed with confirm=true"})
	}

	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Product deleted"})
}
