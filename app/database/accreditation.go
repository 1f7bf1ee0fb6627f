package database

import (
	"database/sql"
	"strings"
)

// AccreditationRow is one enrollment joined with its teacher and course for
// the review screen.
type AccreditationRow struct {
	ID           int64  `json:"id"`
	TeacherID    string `json:"teacher_id"`
	TeacherName  string `json:"teacher_name"`
	Department   string `json:"department"`
	CourseCode   string `json:"course_code"`
	CourseName   string `json:"course_name"`
	Kind         string `json:"kind"`
	Term         string `json:"term"`
	Year         int    `json:"year"`
	SessionDates string `json:"session_dates"`
	Accredited   string `json:"accredited"`
}

// AccreditationFilters narrows the review listing.
type AccreditationFilters struct {
	Kind       string
	Department string
	Year       int
	Term       string
	Accredited string // "True" / "False" / ""
}

func ListAccreditations(db *sql.DB, driver string, filters AccreditationFilters) ([]*AccreditationRow, error) {
	query := `SELECT e.id, t.id, t.full_name, d.name, c.code, c.name, c.kind, c.term, c.year,
		e.session_dates, e.accredited
		FROM enrollments e
		JOIN teachers t ON e.teacher_id = t.id
		JOIN courses c ON e.course_code = c.code
		LEFT JOIN departments d ON t.department_code = d.code`

	var conditions []string
	var params []interface{}

	if filters.Kind != "" {
		conditions = append(conditions, "c.kind = ?")
		params = append(params, filters.Kind)
	}
	if filters.Department != "" {
		conditions = append(conditions, "t.department_code = ?")
		params = append(params, filters.Department)
	}
	if filters.Year > 0 {
		conditions = append(conditions, "c.year = ?")
		params = append(params, filters.Year)
	}
	if filters.Term != "" {
		conditions = append(conditions, "c.term = ?")
		params = append(params, filters.Term)
	}
	if filters.Accredited != "" {
		conditions = append(conditions, "e.accredited = ?")
		params = append(params, filters.Accredited)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY t.full_name, c.code"

	rows, err := db.Query(Rebind(driver, query), params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*AccreditationRow
	for rows.Next() {
		r := &AccreditationRow{}
		var dept sql.NullString
		if err := rows.Scan(&r.ID, &r.TeacherID, &r.TeacherName, &dept, &r.CourseCode,
			&r.CourseName, &r.Kind, &r.Term, &r.Year, &r.SessionDates, &r.Accredited); err != nil {
			return nil, err
		}
		r.Department = dept.String
		result = append(result, r)
	}
	return result, rows.Err()
}

// AccreditationUpdate flips one enrollment's accredited flag.
type AccreditationUpdate struct {
	ID         int64  `json:"id"`
	Accredited string `json:"accredited"`
}

// UpdateAccreditations applies the review edits in one transaction.
func UpdateAccreditations(db *sql.DB, driver string, items []AccreditationUpdate) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := Rebind(driver, `UPDATE enrollments SET accredited = ? WHERE id = ?`)
	for _, item := range items {
		flag := "False"
		if item.Accredited == "True" {
			flag = "True"
		}
		if _, err := tx.Exec(query, flag, item.ID); err != nil {
			return err
		}
	}
	return tx.Commit()
}
