package routes

import (
	panel_handlers "saludvital.cl/handlers/panel"
	"saludvital.cl/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerAuthRoutes(app *fiber.App) {
	authHandler := panel_handlers.NewAuthHandler()
	authGroup := app.Group("/auth")

	authGroup.Get("/login", authHandler.ShowLogin)
	authGroup.Post("/login", authHandler.Login)

	userRoutes := authGroup.Group("")
	userRoutes.Use(middlewares.AuthMiddleware)
	userRoutes.Get("/logout", authHandler.Logout)
	userRoutes.Post("/logout", authHandler.Logout)
}
