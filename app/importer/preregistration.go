package importer

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Cesar-OOS/sistemaCursosTecnm/app/models"
)

// preregHeaderRe recognizes the header row of a pre-registration sheet by
// surname, name or fiscal-id column text.
var preregHeaderRe = regexp.MustCompile(`(?i)apellido|nombre|rfc`)

// PreregistrationStats summarizes a pre-registration import pass.
type PreregistrationStats struct {
	NewTeachers     int `json:"new_teachers"`
	UpdatedTeachers int `json:"updated_teachers"`
	NewCourses      int `json:"new_courses"`
	NewEnrollments  int `json:"new_enrollments"`
}

// ImportPreregistration loads the enrollment roster: per row it merges the
// teacher (by RFC first, full name second), upserts the course for the active
// year, and records the enrollment, ignoring (teacher, course) pairs already
// enrolled. Re-importing the same roster is a no-op.
func (e *Engine) ImportPreregistration(path string) (*PreregistrationStats, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	matrix, err := sheetMatrix(f, sheetName)
	if err != nil {
		return nil, err
	}

	headerIdx := findHeaderRow(matrix, func(cell string) bool {
		return preregHeaderRe.MatchString(cell)
	})
	if headerIdx == -1 {
		return nil, errors.New("no se encontraron los encabezados en el archivo")
	}

	stats := &PreregistrationStats{}
	err = e.run(func(ctx *passContext) error {
		for _, row := range dataRows(matrix, headerIdx) {
			name := extractName(row)
			if name.full == "" {
				continue
			}

			teacherID, err := reconcileTeacher(ctx, row, name, stats)
			if err != nil {
				return err
			}
			if err := reconcileCourseAndEnrollment(ctx, row, teacherID, stats); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// reconcileTeacher merges one roster row into the teachers table and returns
// the teacher id the enrollment should point at.
func reconcileTeacher(ctx *passContext, row Row, name teacherName, stats *PreregistrationStats) (string, error) {
	rfc := strings.TrimSpace(row.FieldOr("", "rfc"))
	if rfc == "" {
		// Data-quality escape valve: keeps the uniqueness constraint
		// satisfied without blocking the import.
		rfc = fmt.Sprintf("RFC_PEND_%d", time.Now().UnixNano())
	}

	sex := parseSex(row.FieldOr("", "sexo"))
	deptLabel := row.FieldOr("", "departamento", "adscripci")
	deptCode := ResolveDepartment(deptLabel, ctx.departments)
	jobTitle := Clean(row.FieldOr(models.DefaultJobTitle, "puesto"), true)

	// RFC is the real unique key; the full-name fallback is what merges a
	// teacher first seen on the affiliated roster with only a temporary RFC.
	var teacherID, currentDept string
	err := ctx.tx.QueryRow(
		ctx.rebind(`SELECT id, department_code FROM teachers WHERE rfc = ?`), rfc,
	).Scan(&teacherID, &currentDept)
	if errors.Is(err, sql.ErrNoRows) {
		err = ctx.tx.QueryRow(
			ctx.rebind(`SELECT id, department_code FROM teachers WHERE full_name = ?`), name.full,
		).Scan(&teacherID, &currentDept)
	}

	switch {
	case err == nil:
		// A previously assigned specific department is never overwritten
		// by a newly derived one.
		finalDept := currentDept
		if currentDept == models.GenericDepartment {
			finalDept = deptCode
		}
		_, err = ctx.tx.Exec(ctx.rebind(`UPDATE teachers
			SET rfc = ?, sex = ?, department_code = ?, job_title = ?
			WHERE id = ?`),
			rfc, string(sex), finalDept, jobTitle, teacherID)
		if err != nil {
			return "", err
		}
		stats.UpdatedTeachers++
		return teacherID, nil

	case errors.Is(err, sql.ErrNoRows):
		teacherID = ctx.nextTeacherID()
		_, err = ctx.tx.Exec(ctx.rebind(`INSERT INTO teachers
			(id, full_name, paternal_surname, maternal_surname, given_names, rfc, sex, department_code, job_title)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
			teacherID, name.full, name.paternal, name.maternal, name.given,
			rfc, string(sex), deptCode, jobTitle)
		if err != nil {
			return "", err
		}
		stats.NewTeachers++
		return teacherID, nil

	default:
		return "", err
	}
}

// reconcileCourseAndEnrollment upserts the row's course for the active year
// and links the teacher to it.
func reconcileCourseAndEnrollment(ctx *passContext, row Row, teacherID string, stats *PreregistrationStats) error {
	rawName := row.FieldOr("", "nombre del evento", "nombre del curso")
	if rawName == "" {
		return nil
	}
	rawFacilitator := row.FieldOr("", "facilitador")
	if strings.Contains(Normalize(rawName), reprogrammedMarker) ||
		strings.Contains(Normalize(rawFacilitator), reprogrammedMarker) {
		return nil
	}

	name := Clean(rawName, true)
	facilitator := rawFacilitator
	if facilitator == "" {
		facilitator = "Por definir"
	}
	// Session dates and schedules legitimately start with numerals, so
	// leading-numbering stripping stays off for them.
	sessionDates := Clean(row.FieldOr("", "periodo"), false)
	schedule := Clean(row.FieldOr("", "horario"), false)

	var code string
	err := ctx.tx.QueryRow(
		ctx.rebind(`SELECT code FROM courses WHERE name = ? AND year = ?`), name, ctx.year,
	).Scan(&code)
	switch {
	case err == nil:
		// Back-fill the term only when it was never set.
		_, err = ctx.tx.Exec(ctx.rebind(
			`UPDATE courses SET term = ? WHERE code = ? AND (term IS NULL OR term = '')`),
			ctx.term, code)
		if err != nil {
			return err
		}

	case errors.Is(err, sql.ErrNoRows):
		code = ctx.nextCourseCode(models.KindProfessionalUpdate)
		_, err = ctx.tx.Exec(ctx.rebind(`INSERT INTO courses
			(code, name, kind, facilitator, term, year)
			VALUES (?, ?, 'AP', ?, ?, ?)`),
			code, name, facilitator, ctx.term, ctx.year)
		if err != nil {
			return err
		}
		stats.NewCourses++

	default:
		return err
	}

	res, err := ctx.tx.Exec(ctx.insertIgnore(`INSERT INTO enrollments
		(teacher_id, course_code, session_dates, schedule)
		VALUES (?, ?, ?, ?)`),
		teacherID, code, sessionDates, schedule)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		stats.NewEnrollments++
	}
	return nil
}

// parseSex maps the handful of spellings seen in source data to the stored
// single-letter code.
func parseSex(raw string) models.Sex {
	switch Normalize(raw) {
	case "HOMBRE", "MASCULINO", "M":
		return models.SexMale
	case "MUJER", "FEMENINO", "F":
		return models.SexFemale
	default:
		return models.SexUnknown
	}
}
