package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"platforme-educatif/app/config"
	"platforme-educatif/app/routes/auth"
)

// SetupDashboardRoutes sets up the dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/payments", func(c *fiber.Ctx) error {
		return GetPaymentDashboardAPI(c, config.GetDB())
	})
	api.Get("/payments/export", func(c *fiber.Ctx) error {
		return ExportPaymentsCSVAPI(c, config.GetDB())
	})

	// Printable web view
	web := app.Group("/dashboard")
	web.Use(auth.AuthMiddleware)
	web.Get("/payments/print", func(c *fiber.Ctx) error {
		return PrintPaymentSummary(c, config.GetDB())
	})
}
