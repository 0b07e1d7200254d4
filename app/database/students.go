package database

import (
	"database/sql"

	"platforme-educatif/app/models"
)

func scanStudent(scan func(dest ...interface{}) error) (*models.Student, error) {
	s := &models.Student{}
	var classID sql.NullString
	var dob sql.NullTime
	err := scan(
		&s.ID, &s.StudentCode, &s.FirstName, &s.LastName,
		&s.Gender, &dob, &classID,
		&s.ParentName, &s.ParentPhone,
		&s.UsesUniform, &s.UsesTransport,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if classID.Valid {
		s.ClassID = models.RefID[models.Class](classID.String)
	}
	if dob.Valid {
		s.DateOfBirth = &models.CustomTime{Time: dob.Time}
	}
	return s, nil
}

const studentColumns = `id, student_code, first_name, last_name,
	COALESCE(gender, ''), date_of_birth, class_id,
	COALESCE(parent_name, ''), COALESCE(parent_phone, ''),
	uses_uniform, uses_transport, is_active, created_at, updated_at`

// GetStudentByID fetches one active student.
func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1 AND deleted_at IS NULL`
	return scanStudent(db.QueryRow(query, id).Scan)
}

// ListStudents returns active students, optionally restricted to one class.
func ListStudents(db *sql.DB, classID string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE deleted_at IS NULL AND is_active = true`
	args := []interface{}{}
	if classID != "" {
		query += ` AND class_id = $1`
		args = append(args, classID)
	}
	query += ` ORDER BY last_name, first_name`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows.Scan)
		if err != nil {
			continue
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// CreateStudent inserts a new student record.
func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students (student_code, first_name, last_name, gender, date_of_birth,
	                                class_id, parent_name, parent_phone, uses_uniform, uses_transport)
	          VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, '')::uuid, $7, $8, $9, $10)
	          RETURNING id, created_at, updated_at`

	var dob interface{}
	if s.DateOfBirth != nil {
		dob = s.DateOfBirth.Time
	}
	return db.QueryRow(query,
		s.StudentCode, s.FirstName, s.LastName, string(s.Gender), dob,
		s.ClassID.ID, s.ParentName, s.ParentPhone, s.UsesUniform, s.UsesTransport,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// UpdateStudent updates the mutable fields of a student.
func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `UPDATE students
	          SET first_name = $2, last_name = $3, gender = NULLIF($4, ''),
	              class_id = NULLIF($5, '')::uuid, parent_name = $6, parent_phone = $7,
	              uses_uniform = $8, uses_transport = $9, is_active = $10, updated_at = now()
	          WHERE id = $1 AND deleted_at IS NULL`

	res, err := db.Exec(query, s.ID, s.FirstName, s.LastName, string(s.Gender),
		s.ClassID.ID, s.ParentName, s.ParentPhone, s.UsesUniform, s.UsesTransport, s.IsActive)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteStudent soft-deletes a student.
func DeleteStudent(db *sql.DB, id string) error {
	res, err := db.Exec(`UPDATE students SET deleted_at = now(), is_active = false WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// StudentLookup loads active students keyed by ID, for resolving ledger
// references in exports and the printable summary.
func StudentLookup(db *sql.DB) (map[string]*models.Student, error) {
	students, err := ListStudents(db, "")
	if err != nil {
		return nil, err
	}
	lookup := make(map[string]*models.Student, len(students))
	for _, s := range students {
		lookup[s.ID] = s
	}
	return lookup, nil
}
