package database

import (
	"database/sql"

	"platforme-educatif/app/models"
)

// GetClassByID fetches one active class.
func GetClassByID(db *sql.DB, id string) (*models.Class, error) {
	c := &models.Class{}
	var teacherID sql.NullString
	query := `SELECT id, name, level, class_group, category, teacher_id, is_active, created_at, updated_at
	          FROM classes
	          WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, id).Scan(
		&c.ID, &c.Name, &c.Level, &c.Group, &c.Category,
		&teacherID, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if teacherID.Valid {
		c.TeacherID = &teacherID.String
	}
	return c, nil
}

// ListClasses returns active classes with their student counts.
func ListClasses(db *sql.DB) ([]*models.Class, error) {
	query := `SELECT c.id, c.name, c.level, c.class_group, c.category, c.teacher_id,
	                 c.is_active, c.created_at, c.updated_at,
	                 COUNT(s.id) AS student_count
	          FROM classes c
	          LEFT JOIN students s ON s.class_id = c.id AND s.deleted_at IS NULL AND s.is_active = true
	          WHERE c.deleted_at IS NULL AND c.is_active = true
	          GROUP BY c.id
	          ORDER BY c.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		c := &models.Class{}
		var teacherID sql.NullString
		err := rows.Scan(&c.ID, &c.Name, &c.Level, &c.Group, &c.Category,
			&teacherID, &c.IsActive, &c.CreatedAt, &c.UpdatedAt, &c.StudentCount)
		if err != nil {
			continue
		}
		if teacherID.Valid {
			c.TeacherID = &teacherID.String
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

// CreateClass inserts a class.
func CreateClass(db *sql.DB, c *models.Class) error {
	query := `INSERT INTO classes (name, level, class_group, category, teacher_id)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at, updated_at`
	return db.QueryRow(query, c.Name, c.Level, string(c.Group), string(c.Category), c.TeacherID).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// ClassLookup loads active classes keyed by ID for resolving student
// references without per-row queries.
func ClassLookup(db *sql.DB) (map[string]*models.Class, error) {
	classes, err := ListClasses(db)
	if err != nil {
		return nil, err
	}
	lookup := make(map[string]*models.Class, len(classes))
	for _, c := range classes {
		lookup[c.ID] = c
	}
	return lookup, nil
}
