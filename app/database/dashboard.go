package database

import (
	"database/sql"

	"platforme-educatif/app/ledger"
	"platforme-educatif/app/models"
)

// BuildPaymentDashboard loads the year's ledgers plus the count of students
// without a record and runs the pure fold over them.
func BuildPaymentDashboard(db *sql.DB, academicYearID string) (*models.PaymentDashboard, error) {
	ledgers, err := ListLedgers(db, academicYearID, "", "")
	if err != nil {
		return nil, err
	}

	withoutRecord, err := CountStudentsWithoutLedger(db, academicYearID)
	if err != nil {
		return nil, err
	}

	return ledger.BuildDashboard(ledgers, withoutRecord), nil
}
