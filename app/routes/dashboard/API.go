package dashboard

import (
	"database/sql"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"platforme-educatif/app/database"
	"platforme-educatif/app/ledger"
	"platforme-educatif/app/models"
)

func resolveYear(c *fiber.Ctx, db *sql.DB) (*models.AcademicYear, error) {
	if yearID := c.Query("academic_year_id"); yearID != "" {
		return database.GetAcademicYearByID(db, yearID)
	}
	return database.GetCurrentAcademicYear(db)
}

// GetPaymentDashboardAPI returns the aggregated payment dashboard for a year.
func GetPaymentDashboardAPI(c *fiber.Ctx, db *sql.DB) error {
	year, err := resolveYear(c, db)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Academic year not found")
	}

	d, err := database.BuildPaymentDashboard(db, year.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build dashboard")
	}

	return c.JSON(fiber.Map{
		"academic_year": year.Name,
		"dashboard":     d,
	})
}

// ExportPaymentsCSVAPI streams the dashboard and the per-student rows as CSV.
func ExportPaymentsCSVAPI(c *fiber.Ctx, db *sql.DB) error {
	year, err := resolveYear(c, db)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Academic year not found")
	}

	ledgers, err := database.ListLedgers(db, year.ID, "", "")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payment records")
	}
	withoutRecord, err := database.CountStudentsWithoutLedger(db, year.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count students")
	}
	students, err := database.StudentLookup(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load students")
	}

	d := ledger.BuildDashboard(ledgers, withoutRecord)
	body := ledger.DashboardCSV(d) + "\n" + ledger.StudentRowsCSV(ledgers, students)

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="payments-%s.csv"`, year.Name))
	return c.SendString(body)
}

// printRow is one line of the printable summary table.
type printRow struct {
	Student   string
	Group     string
	Total     string
	Paid      string
	Remaining string
	Status    string
}

// PrintPaymentSummary renders the printable HTML summary of the year's
// ledgers.
func PrintPaymentSummary(c *fiber.Ctx, db *sql.DB) error {
	year, err := resolveYear(c, db)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Academic year not found")
	}

	ledgers, err := database.ListLedgers(db, year.ID, "", "")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payment records")
	}
	withoutRecord, err := database.CountStudentsWithoutLedger(db, year.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count students")
	}
	students, err := database.StudentLookup(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load students")
	}

	d := ledger.BuildDashboard(ledgers, withoutRecord)

	rows := make([]printRow, 0, len(ledgers))
	for _, sp := range ledgers {
		name := sp.StudentID.ID
		if s, ok := sp.StudentID.Resolve(students); ok {
			name = s.FullName()
		}
		rows = append(rows, printRow{
			Student:   name,
			Group:     string(sp.ClassGroup),
			Total:     ledger.FormatAmount(sp.TotalAmounts.GrandTotal),
			Paid:      ledger.FormatAmount(sp.PaidAmounts.GrandTotal),
			Remaining: ledger.FormatAmount(sp.RemainingAmount()),
			Status:    string(sp.OverallStatus),
		})
	}

	return c.Render("payments/print", fiber.Map{
		"Title":          "Payment Summary - " + year.Name,
		"Year":           year.Name,
		"Expected":       ledger.FormatAmount(d.Overview.ExpectedRevenue.GrandTotal),
		"Collected":      ledger.FormatAmount(d.Overview.TotalRevenue.GrandTotal),
		"Outstanding":    ledger.FormatAmount(d.Overview.OutstandingRevenue.GrandTotal),
		"CollectionRate": ledger.FormatRate(d.Overview.CollectionRate.Overall),
		"StatusCounts":   d.StatusCounts,
		"Rows":           rows,
	})
}
