package payments

import (
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"platforme-educatif/app/database"
	"platforme-educatif/app/ledger"
	"platforme-educatif/app/models"
)

var validate = validator.New()

// coreError maps ledger-core errors onto HTTP statuses. Validation failures
// are the caller's fault, a missing configuration is a 404, the rest is a 500.
func coreError(err error) error {
	var verr *ledger.ValidationError
	if errors.As(err, &verr) {
		return fiber.NewError(fiber.StatusBadRequest, verr.Error())
	}
	var missing *ledger.ConfigurationMissingError
	if errors.As(err, &missing) {
		return fiber.NewError(fiber.StatusNotFound, missing.Error())
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fiber.NewError(fiber.StatusNotFound, "Record not found")
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Internal error")
}

// resolveYear picks the academic year from the query, defaulting to the
// current one.
func resolveYear(c *fiber.Ctx, db *sql.DB) (*models.AcademicYear, error) {
	if yearID := c.Query("academic_year_id"); yearID != "" {
		return database.GetAcademicYearByID(db, yearID)
	}
	return database.GetCurrentAcademicYear(db)
}

// GetStudentLedgerAPI returns one student's ledger for the selected year.
func GetStudentLedgerAPI(c *fiber.Ctx, db *sql.DB) error {
	year, err := resolveYear(c, db)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Academic year not found")
	}

	sp, err := database.GetStudentLedger(db, c.Params("studentId"), year.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "No payment record for this student")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payment record")
	}

	return c.JSON(fiber.Map{
		"payment":          sp,
		"remaining_amount": sp.RemainingAmount(),
	})
}

// ListLedgersAPI returns the year's ledgers, optionally filtered by overall
// status or class group.
func ListLedgersAPI(c *fiber.Ctx, db *sql.DB) error {
	year, err := resolveYear(c, db)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Academic year not found")
	}

	ledgers, err := database.ListLedgers(db, year.ID, c.Query("status"), c.Query("class_group"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payment records")
	}

	return c.JSON(fiber.Map{
		"academic_year": year.Name,
		"payments":      ledgers,
		"count":         len(ledgers),
	})
}

// GeneratePaymentAPI creates a ledger for a student from the active
// configuration for their class group.
func GeneratePaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	type GenerateRequest struct {
		AcademicYearID string `json:"academic_year_id" validate:"omitempty,uuid"`
		AnnualMode     bool   `json:"annual_mode"`
	}
	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil && err != fiber.ErrUnprocessableEntity {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	student, err := database.GetStudentByID(db, c.Params("studentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	var year *models.AcademicYear
	if req.AcademicYearID != "" {
		year, err = database.GetAcademicYearByID(db, req.AcademicYearID)
	} else {
		year, err = database.GetCurrentAcademicYear(db)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Academic year not found")
	}

	classLookup, err := database.ClassLookup(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load classes")
	}
	class, ok := student.ClassID.Resolve(classLookup)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Student is not assigned to a class")
	}

	cfg, err := database.GetActiveConfiguration(db, year.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return coreError(&ledger.ConfigurationMissingError{
				ClassGroup:     string(class.Group),
				AcademicYearID: year.ID,
			})
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load configuration")
	}

	sp, err := ledger.GenerateLedger(cfg, student, class, year, req.AnnualMode)
	if err != nil {
		return coreError(err)
	}

	if err := database.InsertLedger(db, sp); err != nil {
		return fiber.NewError(fiber.StatusConflict, "Payment record already exists for this student and year")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Payment record generated",
		"payment": sp,
	})
}

// DeletePaymentAPI removes a student's ledger. Hard reset; there is no
// partial rollback of individual transactions.
func DeletePaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	year, err := resolveYear(c, db)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Academic year not found")
	}

	if err := database.DeleteLedger(db, c.Params("studentId"), year.ID); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "No payment record for this student")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete payment record")
	}

	return c.JSON(fiber.Map{"message": "Payment record deleted"})
}
