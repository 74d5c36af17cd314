package handler

import (
	"strconv"

	"go-inventario/internal/apperror"
	"go-inventario/internal/listview"

	"github.com/gofiber/fiber/v2"
)

var kindStatus = map[apperror.Kind]int{
	apperror.KindValidation: fiber.StatusBadRequest,
	apperror.KindConflict:   fiber.StatusConflict,
	apperror.KindNotFound:   fiber.StatusNotFound,
	apperror.KindUnexpected: fiber.StatusInternalServerError,
}

// respondError writes err as {"error": message} with the status of its kind.
func respondError(c *fiber.Ctx, err error) error {
	return c.Status(kindStatus[apperror.KindOf(err)]).JSON(fiber.Map{"error": apperror.MessageOf(err)})
}

// Helper untuk parse numeric id dari path
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.Validation("invalid id")
	}
	return uint(id), nil
}

// confirmed reports whether a destructive request carries confirm=true.
func confirmed(c *fiber.Ctx) bool {
	return c.QueryBool("confirm", false)
}

// renderPage filters rows by ?q= and ?status=, moves to ?page= (clamped) and
// writes the resulting page.
func renderPage[T listview.Searchable](c *fiber.Ctx, rows []T, pageSize int) error {
	view := listview.New[T](pageSize)
	view.Load(rows)
	view.Filter(c.Query("q"), c.Query("status"))
	view.Goto(c.QueryInt("page", 1))
	return c.JSON(view.Render())
}
