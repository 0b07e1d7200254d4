package payments

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"platforme-educatif/app/database"
	"platforme-educatif/app/ledger"
	"platforme-educatif/app/models"
)

// RecordRequest is the wire shape of a payment recording.
type RecordRequest struct {
	Component      string            `json:"component" validate:"required,oneof=tuition uniform transportation"`
	MonthIndex     *int              `json:"month_index,omitempty" validate:"omitempty,gte=0"`
	Amount         float64           `json:"amount" validate:"required,gt=0"`
	PaymentMethod  string            `json:"payment_method" validate:"required,oneof=cash check bank_transfer online"`
	PaymentDate    models.CustomTime `json:"payment_date"`
	ReceiptNumber  string            `json:"receipt_number,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	AcademicYearID string            `json:"academic_year_id,omitempty" validate:"omitempty,uuid"`
}

// RecordPaymentAPI applies one payment to a student's ledger. The pure core
// validates and computes on a copy; nothing is persisted unless it succeeds.
func RecordPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req RecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var year *models.AcademicYear
	var err error
	if req.AcademicYearID != "" {
		year, err = database.GetAcademicYearByID(db, req.AcademicYearID)
	} else {
		year, err = database.GetCurrentAcademicYear(db)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Academic year not found")
	}

	studentID := c.Params("studentId")
	sp, err := database.GetStudentLedger(db, studentID, year.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "No payment record for this student")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payment record")
	}

	receipt := req.ReceiptNumber
	if receipt == "" {
		receipt, err = database.NextReceiptNumber(db, year.Name)
		if err != nil {
			log.Printf("Failed to allocate receipt number: %v", err)
			receipt = ""
		}
	}

	monthIndex := 0
	if req.MonthIndex != nil {
		monthIndex = *req.MonthIndex
	}

	updated, err := ledger.RecordPayment(sp, ledger.PaymentRequest{
		Component:     models.Component(req.Component),
		MonthIndex:    monthIndex,
		Amount:        req.Amount,
		Method:        models.PaymentMethod(req.PaymentMethod),
		Date:          req.PaymentDate.Time,
		ReceiptNumber: receipt,
		Notes:         req.Notes,
	}, time.Now().UTC())
	if err != nil {
		return coreError(err)
	}

	if err := database.UpdateLedger(db, updated); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to store payment")
	}

	return c.JSON(fiber.Map{
		"message":          "Payment recorded",
		"receipt_number":   receipt,
		"payment":          updated,
		"remaining_amount": updated.RemainingAmount(),
	})
}
