package students

import (
	"database/sql"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"platforme-educatif/app/database"
	"platforme-educatif/app/models"
)

var validate = validator.New()

// StudentRequest is the create/update payload.
type StudentRequest struct {
	StudentCode   string            `json:"student_code"`
	FirstName     string            `json:"first_name" validate:"required"`
	LastName      string            `json:"last_name" validate:"required"`
	Gender        string            `json:"gender" validate:"omitempty,oneof=male female other"`
	DateOfBirth   models.CustomTime `json:"date_of_birth"`
	ClassID       string            `json:"class_id" validate:"required,uuid"`
	ParentName    string            `json:"parent_name"`
	ParentPhone   string            `json:"parent_phone"`
	UsesUniform   bool              `json:"uses_uniform"`
	UsesTransport bool              `json:"uses_transport"`
	IsActive      *bool             `json:"is_active,omitempty"`
}

// newStudentCode mints a unique enrollment code for students registered
// without one.
func newStudentCode() string {
	return "STU-" + strings.ToUpper(uuid.NewString()[:8])
}

func (req *StudentRequest) toModel() *models.Student {
	code := req.StudentCode
	if code == "" {
		code = newStudentCode()
	}
	s := &models.Student{
		StudentCode:   code,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Gender:        models.Gender(req.Gender),
		ClassID:       models.RefID[models.Class](req.ClassID),
		ParentName:    req.ParentName,
		ParentPhone:   req.ParentPhone,
		UsesUniform:   req.UsesUniform,
		UsesTransport: req.UsesTransport,
		IsActive:      true,
	}
	if !req.DateOfBirth.IsZero() {
		dob := req.DateOfBirth
		s.DateOfBirth = &dob
	}
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}
	return s
}

// GetStudentsAPI lists active students, optionally for one class.
func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	students, err := database.ListStudents(db, c.Query("class_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}
	return c.JSON(fiber.Map{"students": students, "count": len(students)})
}

// GetStudentByIDAPI returns one student with the class resolved.
func GetStudentByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	if student.ClassID.ID != "" {
		if class, err := database.GetClassByID(db, student.ClassID.ID); err == nil {
			student.ClassID.Resolved = class
		}
	}
	return c.JSON(fiber.Map{"student": student})
}

// CreateStudentAPI registers a student.
func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if _, err := database.GetClassByID(db, req.ClassID); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown class")
	}

	student := req.toModel()
	if err := database.CreateStudent(db, student); err != nil {
		return fiber.NewError(fiber.StatusConflict, "Failed to create student (duplicate code?)")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"student": student})
}

// UpdateStudentAPI updates a student.
func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	student := req.toModel()
	student.ID = c.Params("id")
	if err := database.UpdateStudent(db, student); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}
	return c.JSON(fiber.Map{"student": student})
}

// DeleteStudentAPI soft-deletes a student. The payment ledger, if any, stays
// until an administrator deletes it explicitly.
func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteStudent(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete student")
	}
	return c.JSON(fiber.Map{"message": "Student deleted"})
}
