package handler

import "github.com/gofiber/fiber/v2"

type Handlers struct {
	Category  *CategoryHandler
	Product   *ProductHandler
	Movement  *MovementHandler
	Inventory *InventoryHandler
	Dashboard *DashboardHandler
}

// Register mounts every API route on r, normally the /api/v1 group.
func (h Handlers) Register(r fiber.Router) {
	r.Get("/dashboard/stats", h.Dashboard.GetDashboardStats)

	r.Get("/categories", h.Category.GetCategories)
	r.Post("/categories", h.Category.CreateCategory)
	r.Put("/categories/:id", h.Category.UpdateCategory)
	r.Delete("/categories/:id", h.Category.DeleteCategory)

	// options must be registered before :id
	r.Get("/products/options", h.Product.GetProductOptions)
	r.Get("/products", h.Product.GetProducts)
	r.Get("/products/:id", h.Product.GetProduct)
	r.Get("/products/:id/movements", h.Product.GetProductMovements)
	r.Post("/products", h.Product.CreateProduct)
	r.Delete("/products/:id", h.Product.DeleteProduct)

	r.Get("/movements", h.Movement.GetMovements)
	r.Post("/movements", h.Movement.CreateMovement)

	r.Get("/inventory", h.Inventory.GetInventory)
	r.Get("/inventory/export", h.Inventory.ExportInventory)
}
