package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware requires a logged-in session. Browser requests are sent to
// the login page, API requests get a 401. Unauthorized callers never reach
// the validators behind these routes.
func AuthMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if ok && userID != 0 {
		return c.Next()
	}
	if c.Accepts("text/html", "application/json") == "application/json" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "autenticación requerida"})
	}
	return c.Redirect("/auth/login", fiber.StatusTemporaryRedirect)
}

// RequireAdmin additionally requires the admin flag, used for destructive
// panel operations such as deleting patients.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isAdmin, ok := c.Locals("isAdmin").(bool); ok && isAdmin {
			return c.Next()
		}
		if c.Accepts("text/html", "application/json") == "application/json" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "permiso denegado"})
		}
		return c.Status(fiber.StatusForbidden).Render("errors/403", fiber.Map{
			"Title": "Permiso denegado",
		}, "layouts/error_layout")
	}
}
