package database

import (
	"database/sql"
	"strings"
)

// MetricsFilters narrows the dashboard summary.
type MetricsFilters struct {
	Kind       string
	Year       int
	Term       string
	Department string
}

// MetricsSummary aggregates training coverage for the dashboard.
type MetricsSummary struct {
	TotalTeachers    int            `json:"total_teachers"`
	TotalCourses     int            `json:"total_courses"`
	TotalEnrollments int            `json:"total_enrollments"`
	Accredited       int            `json:"accredited"`
	Pending          int            `json:"pending"`
	ByDepartment     map[string]int `json:"by_department"`
}

func GetMetricsSummary(db *sql.DB, driver string, filters MetricsFilters) (*MetricsSummary, error) {
	s := &MetricsSummary{}

	teacherQ := `SELECT COUNT(*) FROM teachers`
	var teacherArgs []interface{}
	if filters.Department != "" {
		teacherQ += ` WHERE department_code = ?`
		teacherArgs = append(teacherArgs, filters.Department)
	}
	if err := db.QueryRow(Rebind(driver, teacherQ), teacherArgs...).Scan(&s.TotalTeachers); err != nil {
		return nil, err
	}

	var courseConds []string
	var courseArgs []interface{}
	if filters.Kind != "" {
		courseConds = append(courseConds, "kind = ?")
		courseArgs = append(courseArgs, filters.Kind)
	}
	if filters.Year > 0 {
		courseConds = append(courseConds, "year = ?")
		courseArgs = append(courseArgs, filters.Year)
	}
	if filters.Term != "" {
		courseConds = append(courseConds, "term = ?")
		courseArgs = append(courseArgs, filters.Term)
	}
	courseQ := `SELECT COUNT(*) FROM courses`
	if len(courseConds) > 0 {
		courseQ += " WHERE " + strings.Join(courseConds, " AND ")
	}
	if err := db.QueryRow(Rebind(driver, courseQ), courseArgs...).Scan(&s.TotalCourses); err != nil {
		return nil, err
	}

	var enrollConds []string
	var enrollArgs []interface{}
	if filters.Kind != "" {
		enrollConds = append(enrollConds, "c.kind = ?")
		enrollArgs = append(enrollArgs, filters.Kind)
	}
	if filters.Year > 0 {
		enrollConds = append(enrollConds, "c.year = ?")
		enrollArgs = append(enrollArgs, filters.Year)
	}
	if filters.Term != "" {
		enrollConds = append(enrollConds, "c.term = ?")
		enrollArgs = append(enrollArgs, filters.Term)
	}
	if filters.Department != "" {
		enrollConds = append(enrollConds, "t.department_code = ?")
		enrollArgs = append(enrollArgs, filters.Department)
	}
	enrollQ := `SELECT COUNT(*), COALESCE(SUM(CASE WHEN e.accredited = 'True' THEN 1 ELSE 0 END), 0)
		FROM enrollments e
		JOIN courses c ON e.course_code = c.code
		JOIN teachers t ON e.teacher_id = t.id`
	if len(enrollConds) > 0 {
		enrollQ += " WHERE " + strings.Join(enrollConds, " AND ")
	}
	if err := db.QueryRow(Rebind(driver, enrollQ), enrollArgs...).Scan(&s.TotalEnrollments, &s.Accredited); err != nil {
		return nil, err
	}
	s.Pending = s.TotalEnrollments - s.Accredited

	byDept, err := CountTeachersByDepartment(db)
	if err != nil {
		return nil, err
	}
	s.ByDepartment = byDept

	return s, nil
}
