package database

import (
	"database/sql"
	"strings"

	"github.com/Cesar-OOS/sistemaCursosTecnm/app/models"
)

// TeacherFilters represents filtering options for teacher listings
type TeacherFilters struct {
	Search     string
	Department string
	Sex        string
	Limit      int
	Offset     int
}

func ListTeachers(db *sql.DB, driver string, filters TeacherFilters) ([]*models.Teacher, error) {
	query := `SELECT t.id, t.full_name, t.paternal_surname, t.maternal_surname, t.given_names,
		t.rfc, t.sex, t.department_code, t.job_title, d.name
		FROM teachers t
		LEFT JOIN departments d ON t.department_code = d.code`

	var conditions []string
	var params []interface{}

	if filters.Search != "" {
		conditions = append(conditions, "(t.full_name LIKE ? OR t.rfc LIKE ? OR t.id LIKE ?)")
		like := "%" + strings.ToUpper(filters.Search) + "%"
		params = append(params, like, like, like)
	}
	if filters.Department != "" {
		conditions = append(conditions, "t.department_code = ?")
		params = append(params, filters.Department)
	}
	if filters.Sex != "" {
		conditions = append(conditions, "t.sex = ?")
		params = append(params, filters.Sex)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY t.id"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		params = append(params, filters.Limit)
		if filters.Offset > 0 {
			query += " OFFSET ?"
			params = append(params, filters.Offset)
		}
	}

	rows, err := db.Query(Rebind(driver, query), params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		t := &models.Teacher{}
		if err := rows.Scan(&t.ID, &t.FullName, &t.PaternalSurname, &t.MaternalSurname,
			&t.GivenNames, &t.RFC, &t.Sex, &t.DepartmentCode, &t.JobTitle, &t.DepartmentName); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

func GetTeacherByID(db *sql.DB, driver, id string) (*models.Teacher, error) {
	t := &models.Teacher{}
	query := Rebind(driver, `SELECT id, full_name, paternal_surname, maternal_surname, given_names,
		rfc, sex, department_code, job_title FROM teachers WHERE id = ?`)
	err := db.QueryRow(query, id).Scan(&t.ID, &t.FullName, &t.PaternalSurname,
		&t.MaternalSurname, &t.GivenNames, &t.RFC, &t.Sex, &t.DepartmentCode, &t.JobTitle)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateTeacher edits the mutable fields of a teacher record. The identifier
// is never re-keyed.
func UpdateTeacher(db *sql.DB, driver string, t *models.Teacher) error {
	query := Rebind(driver, `UPDATE teachers
		SET rfc = ?, sex = ?, department_code = ?, job_title = ?
		WHERE id = ?`)
	_, err := db.Exec(query, t.RFC, t.Sex, t.DepartmentCode, t.JobTitle, t.ID)
	return err
}

func CountTeachersByDepartment(db *sql.DB) (map[string]int, error) {
	rows, err := db.Query(`SELECT department_code, COUNT(*) FROM teachers GROUP BY department_code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var code string
		var n int
		if err := rows.Scan(&code, &n); err != nil {
			return nil, err
		}
		counts[code] = n
	}
	return counts, rows.Err()
}
