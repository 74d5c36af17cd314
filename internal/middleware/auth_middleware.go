package middleware

import (
	"strings"

	"go-inventario/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireSession validates the launch token and sets the session id in
// context. The token comes from "Authorization: Bearer <token>" or, for the
// websocket upgrade, from the "token" query parameter. When required is false
// every request passes.
func RequireSession(manager *jwt.Manager, required bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !required {
			return c.Next()
		}

		tokenString := c.Query("token")
		if authHeader := c.Get("Authorization"); authHeader != "" {
			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
			}
			tokenString = parts[1]
		}
		if tokenString == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		claims, err := manager.ValidateToken(tokenString)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals("session_id", claims.SessionID.String())
		return c.Next()
	}
}
