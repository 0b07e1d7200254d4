package auth

import "github.com/gofiber/fiber/v2"

// SetupAuthRoutes sets up the auth routes
func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api/auth")

	api.Post("/login", LoginAPI)
	api.Post("/logout", LogoutAPI)
	api.Get("/me", AuthMiddleware, MeAPI)
}
