package students

import (
	"github.com/gofiber/fiber/v2"

	"platforme-educatif/app/config"
	"platforme-educatif/app/routes/auth"
)

// SetupStudentsRoutes sets up the students routes
func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetStudentsAPI(c, config.GetDB())
	})
	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetStudentByIDAPI(c, config.GetDB())
	})
	api.Post("/", auth.AdminOnly, func(c *fiber.Ctx) error {
		return CreateStudentAPI(c, config.GetDB())
	})
	api.Put("/:id", auth.AdminOnly, func(c *fiber.Ctx) error {
		return UpdateStudentAPI(c, config.GetDB())
	})
	api.Delete("/:id", auth.AdminOnly, func(c *fiber.Ctx) error {
		return DeleteStudentAPI(c, config.GetDB())
	})
}
