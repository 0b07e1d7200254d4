package payments

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"platforme-educatif/app/database"
	"platforme-educatif/app/ledger"
	"platforme-educatif/app/models"
)

// ConfigurationRequest is the admin payload for creating or replacing the
// tariff of an academic year.
type ConfigurationRequest struct {
	AcademicYearID  string                   `json:"academic_year_id" validate:"required,uuid"`
	Amounts         models.ClassGroupAmounts `json:"amounts"`
	StartMonth      int                      `json:"start_month" validate:"required,min=1,max=12"`
	EndMonth        int                      `json:"end_month" validate:"required,min=1,max=12"`
	GracePeriodDays int                      `json:"grace_period_days" validate:"gte=0"`
	Discount        models.AnnualDiscount    `json:"annual_payment_discount"`
	UniformPrice    float64                  `json:"uniform_price" validate:"gte=0"`
	TransportAnnual float64                  `json:"transport_annual" validate:"gte=0"`
}

func (req *ConfigurationRequest) toModel() *models.PaymentConfiguration {
	return &models.PaymentConfiguration{
		AcademicYearID:  req.AcademicYearID,
		Amounts:         req.Amounts,
		Schedule:        models.PaymentSchedule{StartMonth: req.StartMonth, EndMonth: req.EndMonth},
		GracePeriodDays: req.GracePeriodDays,
		Discount:        req.Discount,
		UniformPrice:    req.UniformPrice,
		TransportAnnual: req.TransportAnnual,
	}
}

func validateConfiguration(req *ConfigurationRequest) error {
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	// exercise the schedule arithmetic once so malformed spans are rejected
	// before anything is stored
	if _, err := ledger.ComputeSchedule(req.StartMonth, req.EndMonth, 0); err != nil {
		return coreError(err)
	}
	if err := ledger.ValidateDiscount(req.Discount); err != nil {
		return coreError(err)
	}
	return nil
}

// GetConfigurationAPI returns the active configuration for the selected year.
func GetConfigurationAPI(c *fiber.Ctx, db *sql.DB) error {
	year, err := resolveYear(c, db)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Academic year not found")
	}

	cfg, err := database.GetActiveConfiguration(db, year.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "No active payment configuration for this year")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch configuration")
	}

	return c.JSON(fiber.Map{"configuration": cfg})
}

// ListConfigurationsAPI returns every configuration recorded for a year.
func ListConfigurationsAPI(c *fiber.Ctx, db *sql.DB) error {
	year, err := resolveYear(c, db)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Academic year not found")
	}

	configs, err := database.ListConfigurations(db, year.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch configurations")
	}
	return c.JSON(fiber.Map{"configurations": configs})
}

// CreateConfigurationAPI stores a new active configuration, deactivating the
// previous one.
func CreateConfigurationAPI(c *fiber.Ctx, db *sql.DB) error {
	var req ConfigurationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateConfiguration(&req); err != nil {
		return err
	}

	if _, err := database.GetAcademicYearByID(db, req.AcademicYearID); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Academic year not found")
	}

	cfg := req.toModel()
	if err := database.CreateConfiguration(db, cfg); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to store configuration")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":       "Configuration created",
		"configuration": cfg,
	})
}

// UpdateConfigurationAPI rewrites an existing configuration. Ledgers already
// generated keep their schedules until explicitly regenerated.
func UpdateConfigurationAPI(c *fiber.Ctx, db *sql.DB) error {
	var req ConfigurationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateConfiguration(&req); err != nil {
		return err
	}

	cfg := req.toModel()
	cfg.ID = c.Params("id")
	if err := database.UpdateConfiguration(db, cfg); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Configuration not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update configuration")
	}

	return c.JSON(fiber.Map{"message": "Configuration updated"})
}
