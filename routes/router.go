package routes

import (
	"saludvital.cl/configs"
	"saludvital.cl/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes wires the global middleware and every route group.
func SetupRoutes(app *fiber.App) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(initializeSessionAndLocals())

	registerAuthRoutes(app)
	registerPanelRoutes(app)
	registerApiRoutes(app)

	app.Get("/", rootRedirector)

	app.Use(notFoundHandler)
}

// initializeSessionAndLocals opens the session store once and copies the
// logged-in user's identity into the request locals.
func initializeSessionAndLocals() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		if userID, err := utils.GetUserIDFromSession(sess); err == nil {
			c.Locals("userID", userID)
		}
		if isAdmin, err := utils.GetIsAdminFromSession(sess); err == nil {
			c.Locals("isAdmin", isAdmin)
		}
		if userName, ok := sess.Get("user_name").(string); ok {
			c.Locals("userName", userName)
		}
		return c.Next()
	}
}

func rootRedirector(c *fiber.Ctx) error {
	if userID, _ := c.Locals("userID").(uint); userID != 0 {
		return c.Redirect("/panel/dashboard", fiber.StatusFound)
	}
	return c.Redirect("/auth/login", fiber.StatusTemporaryRedirect)
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "recurso no encontrado"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Página no encontrada"}, "layouts/error_layout")
	}
}
