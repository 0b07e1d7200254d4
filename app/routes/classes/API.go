package classes

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"platforme-educatif/app/database"
	"platforme-educatif/app/models"
)

var validate = validator.New()

// GetClassesAPI lists active classes with student counts.
func GetClassesAPI(c *fiber.Ctx, db *sql.DB) error {
	classes, err := database.ListClasses(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch classes")
	}
	return c.JSON(fiber.Map{"classes": classes, "count": len(classes)})
}

// CreateClassAPI registers a class with its fee bracket and grade category.
func CreateClassAPI(c *fiber.Ctx, db *sql.DB) error {
	type ClassRequest struct {
		Name     string `json:"name" validate:"required"`
		Level    string `json:"level" validate:"required"`
		Group    string `json:"group" validate:"required,oneof=ecole college lycee"`
		Category string `json:"category" validate:"required,oneof=maternelle primaire secondaire"`
	}

	var req ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	class := &models.Class{
		Name:     req.Name,
		Level:    req.Level,
		Group:    models.ClassGroup(req.Group),
		Category: models.GradeCategory(req.Category),
		IsActive: true,
	}
	if err := database.CreateClass(db, class); err != nil {
		return fiber.NewError(fiber.StatusConflict, "Failed to create class (duplicate name?)")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"class": class})
}

// GetAcademicYearsAPI lists the academic years.
func GetAcademicYearsAPI(c *fiber.Ctx, db *sql.DB) error {
	years, err := database.ListAcademicYears(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch academic years")
	}
	return c.JSON(fiber.Map{"academic_years": years})
}
