package database

import (
	"database/sql"

	"github.com/Cesar-OOS/sistemaCursosTecnm/app/models"
)

// GetSettings reads the singleton system configuration row.
func GetSettings(db *sql.DB) (*models.SystemSettings, error) {
	s := &models.SystemSettings{}
	err := db.QueryRow(`SELECT year, term, director_name, academic_head, coordinator_name, total_teachers
		FROM system_settings WHERE id = 1`).Scan(
		&s.Year, &s.Term, &s.DirectorName, &s.AcademicHead, &s.CoordinatorName, &s.TotalTeachers,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func SaveSettings(db *sql.DB, driver string, s *models.SystemSettings) error {
	query := Rebind(driver, `UPDATE system_settings
		SET year = ?, term = ?, director_name = ?, academic_head = ?, coordinator_name = ?, total_teachers = ?
		WHERE id = 1`)
	_, err := db.Exec(query, s.Year, s.Term, s.DirectorName, s.AcademicHead, s.CoordinatorName, s.TotalTeachers)
	return err
}

// ListDepartments returns all departments ordered by code.
func ListDepartments(db *sql.DB) ([]*models.Department, error) {
	rows, err := db.Query(`SELECT code, name FROM departments ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		d := &models.Department{}
		if err := rows.Scan(&d.Code, &d.Name); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}
