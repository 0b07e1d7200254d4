package classes

import (
	"github.com/gofiber/fiber/v2"

	"platforme-educatif/app/config"
	"platforme-educatif/app/routes/auth"
)

// SetupClassesRoutes sets up the classes routes
func SetupClassesRoutes(app *fiber.App) {
	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetClassesAPI(c, config.GetDB())
	})
	api.Post("/", auth.AdminOnly, func(c *fiber.Ctx) error {
		return CreateClassAPI(c, config.GetDB())
	})

	years := app.Group("/api/academic-years")
	years.Use(auth.AuthMiddleware)
	years.Get("/", func(c *fiber.Ctx) error {
		return GetAcademicYearsAPI(c, config.GetDB())
	})
}
