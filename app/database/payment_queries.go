package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"platforme-educatif/app/models"
)

// GetActiveConfiguration returns the active payment configuration for an
// academic year. sql.ErrNoRows when none exists.
func GetActiveConfiguration(db *sql.DB, academicYearID string) (*models.PaymentConfiguration, error) {
	query := `SELECT id, academic_year_id, amounts, start_month, end_month,
	                 grace_period_days, discount, uniform_price, transport_annual,
	                 is_active, created_at, updated_at
	          FROM payment_configurations
	          WHERE academic_year_id = $1 AND is_active = true
	          ORDER BY created_at DESC
	          LIMIT 1`
	return scanConfiguration(db.QueryRow(query, academicYearID))
}

// ListConfigurations returns every configuration for a year, newest first.
func ListConfigurations(db *sql.DB, academicYearID string) ([]*models.PaymentConfiguration, error) {
	query := `SELECT id, academic_year_id, amounts, start_month, end_month,
	                 grace_period_days, discount, uniform_price, transport_annual,
	                 is_active, created_at, updated_at
	          FROM payment_configurations
	          WHERE academic_year_id = $1
	          ORDER BY created_at DESC`

	rows, err := db.Query(query, academicYearID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []*models.PaymentConfiguration
	for rows.Next() {
		cfg, err := scanConfiguration(rows)
		if err != nil {
			continue
		}
		configs = append(configs, cfg)
	}
	return configs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanConfiguration(row rowScanner) (*models.PaymentConfiguration, error) {
	cfg := &models.PaymentConfiguration{}
	var amounts, discount []byte
	err := row.Scan(
		&cfg.ID, &cfg.AcademicYearID, &amounts,
		&cfg.Schedule.StartMonth, &cfg.Schedule.EndMonth,
		&cfg.GracePeriodDays, &discount,
		&cfg.UniformPrice, &cfg.TransportAnnual,
		&cfg.IsActive, &cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(amounts, &cfg.Amounts); err != nil {
		return nil, fmt.Errorf("failed to decode configuration amounts: %v", err)
	}
	if err := json.Unmarshal(discount, &cfg.Discount); err != nil {
		return nil, fmt.Errorf("failed to decode configuration discount: %v", err)
	}
	cfg.Schedule.TotalMonths = cfg.Schedule.EndMonth - cfg.Schedule.StartMonth + 1
	if cfg.Schedule.TotalMonths <= 0 {
		cfg.Schedule.TotalMonths += 12
	}
	return cfg, nil
}

// CreateConfiguration inserts a configuration and deactivates any previous
// active one for the same year in the same transaction.
func CreateConfiguration(db *sql.DB, cfg *models.PaymentConfiguration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE payment_configurations SET is_active = false, updated_at = now()
	                      WHERE academic_year_id = $1 AND is_active = true`, cfg.AcademicYearID); err != nil {
		return err
	}

	amounts, err := json.Marshal(cfg.Amounts)
	if err != nil {
		return err
	}
	discount, err := json.Marshal(cfg.Discount)
	if err != nil {
		return err
	}

	err = tx.QueryRow(`INSERT INTO payment_configurations
	        (academic_year_id, amounts, start_month, end_month, grace_period_days,
	         discount, uniform_price, transport_annual, is_active)
	        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, true)
	        RETURNING id, created_at, updated_at`,
		cfg.AcademicYearID, amounts, cfg.Schedule.StartMonth, cfg.Schedule.EndMonth,
		cfg.GracePeriodDays, discount, cfg.UniformPrice, cfg.TransportAnnual,
	).Scan(&cfg.ID, &cfg.CreatedAt, &cfg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert configuration: %v", err)
	}
	cfg.IsActive = true

	return tx.Commit()
}

// UpdateConfiguration rewrites a configuration row. Ledgers already generated
// from it are not touched; regeneration re-derives them.
func UpdateConfiguration(db *sql.DB, cfg *models.PaymentConfiguration) error {
	amounts, err := json.Marshal(cfg.Amounts)
	if err != nil {
		return err
	}
	discount, err := json.Marshal(cfg.Discount)
	if err != nil {
		return err
	}

	res, err := db.Exec(`UPDATE payment_configurations
	        SET amounts = $2, start_month = $3, end_month = $4, grace_period_days = $5,
	            discount = $6, uniform_price = $7, transport_annual = $8, updated_at = now()
	        WHERE id = $1`,
		cfg.ID, amounts, cfg.Schedule.StartMonth, cfg.Schedule.EndMonth,
		cfg.GracePeriodDays, discount, cfg.UniformPrice, cfg.TransportAnnual)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetStudentLedger loads the ledger for one (student, year) pair.
func GetStudentLedger(db *sql.DB, studentID, academicYearID string) (*models.StudentPayment, error) {
	query := `SELECT id, student_id, doc FROM student_payments
	          WHERE student_id = $1 AND academic_year_id = $2`

	var id, sid string
	var doc []byte
	if err := db.QueryRow(query, studentID, academicYearID).Scan(&id, &sid, &doc); err != nil {
		return nil, err
	}
	return decodeLedger(id, sid, doc)
}

func decodeLedger(id, studentID string, doc []byte) (*models.StudentPayment, error) {
	sp := &models.StudentPayment{}
	if err := json.Unmarshal(doc, sp); err != nil {
		return nil, fmt.Errorf("failed to decode ledger document: %v", err)
	}
	// the row is authoritative for identity
	sp.ID = id
	if sp.StudentID.IsZero() {
		sp.StudentID = models.RefID[models.Student](studentID)
	}
	return sp, nil
}

// InsertLedger stores a freshly generated ledger. The unique constraint on
// (student_id, academic_year_id) rejects double generation.
func InsertLedger(db *sql.DB, sp *models.StudentPayment) error {
	doc, err := json.Marshal(sp)
	if err != nil {
		return err
	}

	return db.QueryRow(`INSERT INTO student_payments
	        (student_id, academic_year_id, class_group, grade_category,
	         overall_status, total_grand_total, paid_grand_total, doc)
	        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	        RETURNING id`,
		sp.StudentID.ID, sp.AcademicYearID, string(sp.ClassGroup), string(sp.GradeCategory),
		string(sp.OverallStatus), sp.TotalAmounts.GrandTotal, sp.PaidAmounts.GrandTotal, doc,
	).Scan(&sp.ID)
}

// UpdateLedger rewrites the ledger document and its roll-up columns.
func UpdateLedger(db *sql.DB, sp *models.StudentPayment) error {
	doc, err := json.Marshal(sp)
	if err != nil {
		return err
	}

	res, err := db.Exec(`UPDATE student_payments
	        SET overall_status = $2, total_grand_total = $3, paid_grand_total = $4,
	            doc = $5, updated_at = now()
	        WHERE id = $1`,
		sp.ID, string(sp.OverallStatus), sp.TotalAmounts.GrandTotal, sp.PaidAmounts.GrandTotal, doc)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteLedger removes a student's ledger entirely. Financial correction is
// delete-and-regenerate, never a partial rollback.
func DeleteLedger(db *sql.DB, studentID, academicYearID string) error {
	res, err := db.Exec(`DELETE FROM student_payments WHERE student_id = $1 AND academic_year_id = $2`,
		studentID, academicYearID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListLedgers loads all ledgers for a year, optionally filtered by overall
// status and class group.
func ListLedgers(db *sql.DB, academicYearID string, status string, classGroup string) ([]*models.StudentPayment, error) {
	query := `SELECT id, student_id, doc FROM student_payments WHERE academic_year_id = $1`
	args := []interface{}{academicYearID}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(` AND overall_status = $%d`, len(args))
	}
	if classGroup != "" {
		args = append(args, classGroup)
		query += fmt.Sprintf(` AND class_group = $%d`, len(args))
	}
	query += ` ORDER BY created_at`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ledgers []*models.StudentPayment
	for rows.Next() {
		var id, sid string
		var doc []byte
		if err := rows.Scan(&id, &sid, &doc); err != nil {
			continue
		}
		sp, err := decodeLedger(id, sid, doc)
		if err != nil {
			continue
		}
		ledgers = append(ledgers, sp)
	}
	return ledgers, rows.Err()
}

// CountStudentsWithoutLedger counts active students with no ledger for the
// year; they fill the dashboard's no_record bucket.
func CountStudentsWithoutLedger(db *sql.DB, academicYearID string) (int, error) {
	var count int
	query := `SELECT COUNT(*)
	          FROM students s
	          WHERE s.deleted_at IS NULL AND s.is_active = true
	          AND NOT EXISTS (
	              SELECT 1 FROM student_payments sp
	              WHERE sp.student_id = s.id AND sp.academic_year_id = $1
	          )`
	err := db.QueryRow(query, academicYearID).Scan(&count)
	return count, err
}

// NextReceiptNumber hands out REC-<year>-<seq> receipt numbers backed by a
// per-year sequence table.
func NextReceiptNumber(db *sql.DB, yearName string) (string, error) {
	var seq int64
	err := db.QueryRow(`INSERT INTO receipt_sequences (year_name, last_value)
	        VALUES ($1, 1)
	        ON CONFLICT (year_name) DO UPDATE SET last_value = receipt_sequences.last_value + 1
	        RETURNING last_value`, yearName).Scan(&seq)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("REC-%s-%05d", yearName, seq), nil
}
