package importer

import (
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// SheetCount reports how many teachers one department sheet contributed.
type SheetCount struct {
	Sheet string `json:"sheet"`
	Added int    `json:"added"`
}

// AffiliatedStats summarizes an affiliated-teacher import pass.
type AffiliatedStats struct {
	Total    int          `json:"total"`
	PerSheet []SheetCount `json:"per_sheet"`
}

// ImportAffiliated loads the department-grouped teacher roster, one worksheet
// per department. Teachers already known by full name are skipped; new ones
// are inserted with a temporary fiscal identifier until a real one arrives
// from a pre-registration import.
func (e *Engine) ImportAffiliated(path string) (*AffiliatedStats, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stats := &AffiliatedStats{}
	err = e.run(func(ctx *passContext) error {
		for _, sheetName := range f.GetSheetList() {
			matrix, err := sheetMatrix(f, sheetName)
			if err != nil {
				return err
			}

			headerIdx := findHeaderRow(matrix, func(cell string) bool {
				lower := strings.ToLower(cell)
				return strings.Contains(lower, "apellido") || strings.Contains(lower, "nombre")
			})
			if headerIdx == -1 {
				continue
			}

			deptCode := ResolveDepartment(sheetName, ctx.departments)
			added := 0

			for _, row := range dataRows(matrix, headerIdx) {
				name := extractName(row)
				if name.full == "" {
					continue
				}

				var existing string
				err := ctx.tx.QueryRow(
					ctx.rebind(`SELECT id FROM teachers WHERE full_name = ?`),
					name.full,
				).Scan(&existing)
				if err == nil {
					continue
				}
				if !errors.Is(err, sql.ErrNoRows) {
					return err
				}

				id := ctx.nextTeacherID()
				_, err = ctx.tx.Exec(ctx.rebind(`INSERT INTO teachers
					(id, full_name, paternal_surname, maternal_surname, given_names, rfc, sex, department_code)
					VALUES (?, ?, ?, ?, ?, ?, 'X', ?)`),
					id, name.full, name.paternal, name.maternal, name.given,
					temporaryRFC(name.full), deptCode)
				if err != nil {
					return err
				}
				added++
			}

			if added > 0 {
				stats.PerSheet = append(stats.PerSheet, SheetCount{Sheet: sheetName, Added: added})
				stats.Total += added
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// teacherName holds the canonical full name plus the structured breakdown
// captured at ingestion. The breakdown is display-only and never re-derived
// from the merged string.
type teacherName struct {
	full     string
	paternal string
	maternal string
	given    string
}

// extractName builds a teacher name from separate surname/given-name columns,
// falling back to a single "Nombre"/"Docente" column when those are absent.
func extractName(row Row) teacherName {
	ap, _ := row.Field("paterno")
	am, _ := row.Field("materno")
	given, _ := row.Field("nombres")

	name := teacherName{
		paternal: Clean(ap, true),
		maternal: Clean(am, true),
		given:    Clean(given, true),
	}

	if name.paternal == "" && name.given == "" {
		single := row.FieldOr("", "docente", "nombre")
		name.full = Clean(single, true)
		return name
	}

	parts := make([]string, 0, 3)
	for _, p := range []string{name.paternal, name.maternal, name.given} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	name.full = strings.Join(parts, " ")
	return name
}

// temporaryRFC synthesizes a unique placeholder fiscal identifier for a
// teacher first seen without one. A later pre-registration import replaces it
// with the real RFC via the full-name fallback lookup.
func temporaryRFC(fullName string) string {
	fragment := strings.ReplaceAll(Normalize(fullName), " ", "")
	if len(fragment) > 6 {
		fragment = fragment[:6]
	}
	return fmt.Sprintf("TEMP_%s_%06d", fragment, rand.Intn(1000000))
}
