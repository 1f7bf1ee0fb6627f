package database

import (
	"database/sql"
	"strings"

	"github.com/Cesar-OOS/sistemaCursosTecnm/app/models"
)

// CourseFilters represents filtering options for course listings
type CourseFilters struct {
	Kind string
	Year int
	Term string
}

func ListCourses(db *sql.DB, driver string, filters CourseFilters) ([]*models.Course, error) {
	query := `SELECT code, name, kind, hours, competencies, facilitator, term, year FROM courses`

	var conditions []string
	var params []interface{}

	if filters.Kind != "" {
		conditions = append(conditions, "kind = ?")
		params = append(params, filters.Kind)
	}
	if filters.Year > 0 {
		conditions = append(conditions, "year = ?")
		params = append(params, filters.Year)
	}
	if filters.Term != "" {
		conditions = append(conditions, "term = ?")
		params = append(params, filters.Term)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY code"

	rows, err := db.Query(Rebind(driver, query), params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		c := &models.Course{}
		if err := rows.Scan(&c.Code, &c.Name, &c.Kind, &c.Hours, &c.Competencies,
			&c.Facilitator, &c.Term, &c.Year); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// UpdateCourse is the maintenance edit path for hours, facilitator and
// competencies. Course codes and the (name, year) key are never touched here.
func UpdateCourse(db *sql.DB, driver string, c *models.Course) error {
	query := Rebind(driver, `UPDATE courses
		SET hours = ?, competencies = ?, facilitator = ?, term = ?
		WHERE code = ?`)
	_, err := db.Exec(query, c.Hours, c.Competencies, c.Facilitator, c.Term, c.Code)
	return err
}
