package database

import (
	"database/sql"

	"platforme-educatif/app/models"
)

// GetUserByEmail fetches an active user by email for authentication.
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, COALESCE(phone, ''), is_active, created_at, updated_at
	          FROM users
	          WHERE email = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password,
		&user.FirstName, &user.LastName, &user.Phone,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID fetches an active user by primary key.
func GetUserByID(db *sql.DB, id string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, COALESCE(phone, ''), is_active, created_at, updated_at
	          FROM users
	          WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, id).Scan(
		&user.ID, &user.Email, &user.Password,
		&user.FirstName, &user.LastName, &user.Phone,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserRoles returns the roles attached to a user.
func GetUserRoles(db *sql.DB, userID string) ([]*models.Role, error) {
	query := `SELECT r.id, r.name, COALESCE(r.description, '')
	          FROM roles r
	          JOIN user_roles ur ON ur.role_id = r.id
	          WHERE ur.user_id = $1
	          ORDER BY r.name`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		r := &models.Role{}
		if err := rows.Scan(&r.ID, &r.Name, &r.Description); err != nil {
			continue
		}
		roles = append(roles, r)
	}
	return roles, rows.Err()
}

// CreateUserWithRole inserts a user and attaches the named role in one
// transaction, creating the role row on first use.
func CreateUserWithRole(db *sql.DB, user *models.User, roleName string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`INSERT INTO users (email, password, first_name, last_name, phone)
	                   VALUES ($1, $2, $3, $4, $5)
	                   RETURNING id, created_at`,
		user.Email, user.Password, user.FirstName, user.LastName, user.Phone,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return err
	}

	var roleID string
	err = tx.QueryRow(`SELECT id FROM roles WHERE name = $1`, roleName).Scan(&roleID)
	if err == sql.ErrNoRows {
		err = tx.QueryRow(`INSERT INTO roles (name) VALUES ($1) RETURNING id`, roleName).Scan(&roleID)
	}
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		user.ID, roleID); err != nil {
		return err
	}

	return tx.Commit()
}

// GetCurrentAcademicYear returns the year flagged current, or the most recent
// active one when no flag is set.
func GetCurrentAcademicYear(db *sql.DB) (*models.AcademicYear, error) {
	year := &models.AcademicYear{}
	query := `SELECT id, name, start_date, end_date, is_current, is_active, created_at, updated_at
	          FROM academic_years
	          WHERE deleted_at IS NULL AND is_active = true
	          ORDER BY is_current DESC, start_date DESC
	          LIMIT 1`

	err := db.QueryRow(query).Scan(
		&year.ID, &year.Name, &year.StartDate, &year.EndDate,
		&year.IsCurrent, &year.IsActive, &year.CreatedAt, &year.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return year, nil
}

// GetAcademicYearByID fetches one academic year.
func GetAcademicYearByID(db *sql.DB, id string) (*models.AcademicYear, error) {
	year := &models.AcademicYear{}
	query := `SELECT id, name, start_date, end_date, is_current, is_active, created_at, updated_at
	          FROM academic_years
	          WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, id).Scan(
		&year.ID, &year.Name, &year.StartDate, &year.EndDate,
		&year.IsCurrent, &year.IsActive, &year.CreatedAt, &year.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return year, nil
}

// ListAcademicYears returns all non-deleted years, newest first.
func ListAcademicYears(db *sql.DB) ([]*models.AcademicYear, error) {
	query := `SELECT id, name, start_date, end_date, is_current, is_active, created_at, updated_at
	          FROM academic_years
	          WHERE deleted_at IS NULL
	          ORDER BY start_date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []*models.AcademicYear
	for rows.Next() {
		y := &models.AcademicYear{}
		if err := rows.Scan(&y.ID, &y.Name, &y.StartDate, &y.EndDate,
			&y.IsCurrent, &y.IsActive, &y.CreatedAt, &y.UpdatedAt); err != nil {
			continue
		}
		years = append(years, y)
	}
	return years, rows.Err()
}
