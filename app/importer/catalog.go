package importer

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/Cesar-OOS/sistemaCursosTecnm/app/models"
)

// catalogHeaderToken identifies the header row of the institutional program
// spreadsheet.
const catalogHeaderToken = "Nombre de los evento"

// reprogrammedMarker flags placeholder rows for rescheduled events; they are
// not real course instances and must never be imported.
const reprogrammedMarker = "REPROGRAMADO"

// CatalogStats summarizes a catalog import pass.
type CatalogStats struct {
	NewCourses int `json:"new_courses"`
}

// ImportCatalog loads the institutional course program list from the first
// sheet of the uploaded workbook. Existing (name, year) courses are left
// untouched; only unseen courses are inserted.
func (e *Engine) ImportCatalog(path string) (*CatalogStats, error) {
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
		return strings.Contains(cell, catalogHeaderToken)
	})
	if headerIdx == -1 {
		return nil, errors.New("no se encontró la fila de encabezados en el archivo")
	}

	stats := &CatalogStats{}
	err = e.run(func(ctx *passContext) error {
		for _, row := range dataRows(matrix, headerIdx) {
			rawName, _ := row.Field("nombre de los evento")
			name := Clean(rawName, true)
			if name == "" || strings.Contains(Normalize(rawName), reprogrammedMarker) {
				continue
			}

			kind := models.KindProfessionalUpdate
			if rawKind, ok := row.Field("tipo"); ok &&
				strings.Contains(strings.ToUpper(rawKind), string(models.KindTeacherTraining)) {
				kind = models.KindTeacherTraining
			}

			var existing string
			err := ctx.tx.QueryRow(
				ctx.rebind(`SELECT code FROM courses WHERE name = ? AND year = ?`),
				name, ctx.year,
			).Scan(&existing)
			if err == nil {
				// Catalog import never updates an existing course row.
				continue
			}
			if !errors.Is(err, sql.ErrNoRows) {
				return err
			}

			hours := models.DefaultCourseHours
			if rawHours, ok := row.Field("horas"); ok {
				if n, err := strconv.Atoi(strings.TrimSpace(rawHours)); err == nil && n > 0 {
					hours = n
				}
			}
			competencies := row.FieldOr("Sin registro", "competencias")
			facilitator := row.FieldOr("Por asignar", "facilitador")

			code := ctx.nextCourseCode(kind)
			_, err = ctx.tx.Exec(ctx.insertIgnore(`INSERT INTO courses
				(code, name, kind, hours, competencies, facilitator, term, year)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
				code, name, string(kind), hours, competencies, facilitator, ctx.term, ctx.year)
			if err != nil {
				return err
			}
			stats.NewCourses++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
