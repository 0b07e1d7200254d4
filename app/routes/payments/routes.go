package payments

import (
	"github.com/gofiber/fiber/v2"

	"platforme-educatif/app/config"
	"platforme-educatif/app/routes/auth"
)

// SetupPaymentsRoutes sets up the payment routes
func SetupPaymentsRoutes(app *fiber.App) {
	api := app.Group("/api/payments")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return ListLedgersAPI(c, config.GetDB())
	})

	// Configuration (admin)
	api.Get("/config", func(c *fiber.Ctx) error {
		return GetConfigurationAPI(c, config.GetDB())
	})
	api.Get("/config/history", func(c *fiber.Ctx) error {
		return ListConfigurationsAPI(c, config.GetDB())
	})
	api.Post("/config", auth.AdminOnly, func(c *fiber.Ctx) error {
		return CreateConfigurationAPI(c, config.GetDB())
	})
	api.Put("/config/:id", auth.AdminOnly, func(c *fiber.Ctx) error {
		return UpdateConfigurationAPI(c, config.GetDB())
	})

	// Per-student ledger
	api.Get("/students/:studentId", func(c *fiber.Ctx) error {
		return GetStudentLedgerAPI(c, config.GetDB())
	})
	api.Post("/students/:studentId/generate", auth.AdminOnly, func(c *fiber.Ctx) error {
		return GeneratePaymentAPI(c, config.GetDB())
	})
	api.Post("/students/:studentId/record", auth.AdminOnly, func(c *fiber.Ctx) error {
		return RecordPaymentAPI(c, config.GetDB())
	})
	api.Delete("/students/:studentId", auth.AdminOnly, func(c *fiber.Ctx) error {
		return DeletePaymentAPI(c, config.GetDB())
	})
}
