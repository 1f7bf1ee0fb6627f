package importer

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/xuri/excelize/v2"

	"github.com/Cesar-OOS/sistemaCursosTecnm/app/database"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "capacita.db") + "?_foreign_keys=on"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := database.RunMigrations(db, "sqlite3"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	// Pin the registration period so fixtures do not depend on the clock.
	if _, err := db.Exec(`UPDATE system_settings SET year = 2025, term = 'Enero - Junio' WHERE id = 1`); err != nil {
		t.Fatalf("pin system settings: %v", err)
	}
	return db
}

type sheetFixture struct {
	name string
	rows [][]interface{}
}

func writeWorkbook(t *testing.T, sheets []sheetFixture) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			f.SetSheetName("Sheet1", s.name)
		} else {
			if _, err := f.NewSheet(s.name); err != nil {
				t.Fatalf("new sheet %s: %v", s.name, err)
			}
		}
		for r, cells := range s.rows {
			axis, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetSheetRow(s.name, axis, &cells); err != nil {
				t.Fatalf("write row %d on %s: %v", r+1, s.name, err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func TestImportCatalog(t *testing.T) {
	db := newTestDB(t)
	engine := NewEngine(db, "sqlite3")

	// Same course name already registered for the previous year; the lookup
	// keys on (name, year), so the current-year import must still insert it.
	if _, err := db.Exec(`INSERT INTO courses (code, name, year, term)
		VALUES ('TNM_125_01_2024_AP', 'CURSO DE DOCKER', 2024, 'Agosto - Diciembre')`); err != nil {
		t.Fatalf("seed prior-year course: %v", err)
	}

	path := writeWorkbook(t, []sheetFixture{{
		name: "Programa",
		rows: [][]interface{}{
			{"Programa Institucional de Capacitación 2025"},
			{},
			{"No.", "Nombre de los eventos", "Tipo", "Horas", "Competencias", "Facilitador"},
			{"1", "1.- Curso de   Docker", "AP", "40", "Contenedores", "Dr. Ruiz"},
			{"2", "2.- Curso reprogramado", "AP", "30", "", ""},
			{"3", "3.- Taller de Liderazgo", "FD", "", "", ""},
			{"4", "4.- Taller reprogramádo de Excel", "AP", "20", "", ""},
			{},
		},
	}})

	stats, err := engine.ImportCatalog(path)
	if err != nil {
		t.Fatalf("ImportCatalog: %v", err)
	}
	if stats.NewCourses != 2 {
		t.Fatalf("NewCourses = %d, want 2", stats.NewCourses)
	}

	var code, kind, competencies, facilitator, term string
	var hours int
	err = db.QueryRow(`SELECT code, kind, hours, competencies, facilitator, term
		FROM courses WHERE name = 'CURSO DE DOCKER' AND year = 2025`).
		Scan(&code, &kind, &hours, &competencies, &facilitator, &term)
	if err != nil {
		t.Fatalf("read imported course: %v", err)
	}
	if code != "TNM_125_01_2025_AP" {
		t.Errorf("code = %q, want TNM_125_01_2025_AP", code)
	}
	if kind != "AP" || hours != 40 || competencies != "Contenedores" || facilitator != "Dr. Ruiz" {
		t.Errorf("course = (%s, %d, %q, %q)", kind, hours, competencies, facilitator)
	}
	if term != "Enero - Junio" {
		t.Errorf("term = %q, want active term", term)
	}

	err = db.QueryRow(`SELECT code, kind, hours FROM courses WHERE name = 'TALLER DE LIDERAZGO' AND year = 2025`).
		Scan(&code, &kind, &hours)
	if err != nil {
		t.Fatalf("read teacher-training course: %v", err)
	}
	if code != "TNM_125_02_2025_FD" || kind != "FD" || hours != 30 {
		t.Errorf("course = (%s, %s, %d), want (TNM_125_02_2025_FD, FD, 30)", code, kind, hours)
	}

	if got := countRows(t, db, "courses"); got != 3 {
		t.Fatalf("course rows = %d, want 3 (one prior-year, two imported)", got)
	}

	// Re-importing the same file must not change anything.
	stats, err = engine.ImportCatalog(path)
	if err != nil {
		t.Fatalf("ImportCatalog rerun: %v", err)
	}
	if stats.NewCourses != 0 {
		t.Errorf("rerun NewCourses = %d, want 0", stats.NewCourses)
	}
	if got := countRows(t, db, "courses"); got != 3 {
		t.Errorf("course rows after rerun = %d, want 3", got)
	}
}

func TestImportCatalogHeaderMissing(t *testing.T) {
	db := newTestDB(t)
	engine := NewEngine(db, "sqlite3")

	path := writeWorkbook(t, []sheetFixture{{
		name: "Hoja1",
		rows: [][]interface{}{
			{"ID", "Evento", "Fecha"},
			{"1", "Curso de Docker", "2025-03-01"},
		},
	}})

	if _, err := engine.ImportCatalog(path); err == nil {
		t.Fatal("ImportCatalog succeeded on a file without the expected header row")
	}
	if got := countRows(t, db, "courses"); got != 0 {
		t.Errorf("course rows = %d, want 0 after failed import", got)
	}
}

func TestImportAffiliated(t *testing.T) {
	db := newTestDB(t)
	engine := NewEngine(db, "sqlite3")

	path := writeWorkbook(t, []sheetFixture{
		{
			name: "Portada",
			rows: [][]interface{}{
				{"Instituto Tecnológico"},
				{"Periodo Enero - Junio 2025"},
			},
		},
		{
			name: "SISTEMAS",
			rows: [][]interface{}{
				{"Docentes adscritos al departamento"},
				{"Apellido_Paterno", "Apellido_Materno", "Nombres"},
				{"pérez", "gómez", "hugo"},
				{"LOPEZ", "", "MARIA"},
				{},
			},
		},
		{
			name: "Idiomas",
			rows: [][]interface{}{
				{"Nombre del docente"},
				{"GARCÍA NUÑO ANA"},
			},
		},
	})

	stats, err := engine.ImportAffiliated(path)
	if err != nil {
		t.Fatalf("ImportAffiliated: %v", err)
	}
	if stats.Total != 3 {
		t.Fatalf("Total = %d, want 3", stats.Total)
	}
	want := map[string]int{"SISTEMAS": 2, "Idiomas": 1}
	for _, sc := range stats.PerSheet {
		if want[sc.Sheet] != sc.Added {
			t.Errorf("sheet %s added = %d, want %d", sc.Sheet, sc.Added, want[sc.Sheet])
		}
		delete(want, sc.Sheet)
	}
	if len(want) != 0 {
		t.Errorf("missing per-sheet counts for %v", want)
	}

	var fullName, rfc, sex, dept string
	err = db.QueryRow(`SELECT full_name, rfc, sex, department_code FROM teachers WHERE id = 'TNM001'`).
		Scan(&fullName, &rfc, &sex, &dept)
	if err != nil {
		t.Fatalf("read first teacher: %v", err)
	}
	if fullName != "PEREZ GOMEZ HUGO" {
		t.Errorf("full_name = %q, want PEREZ GOMEZ HUGO", fullName)
	}
	if !strings.HasPrefix(rfc, "TEMP_") {
		t.Errorf("rfc = %q, want temporary placeholder", rfc)
	}
	if sex != "X" || dept != "DP07" {
		t.Errorf("(sex, dept) = (%s, %s), want (X, DP07)", sex, dept)
	}

	err = db.QueryRow(`SELECT full_name, department_code FROM teachers WHERE id = 'TNM003'`).
		Scan(&fullName, &dept)
	if err != nil {
		t.Fatalf("read single-column teacher: %v", err)
	}
	if fullName != "GARCIA NUÑO ANA" {
		t.Errorf("full_name = %q, want GARCIA NUÑO ANA", fullName)
	}
	if dept != "DP_GEN" {
		t.Errorf("department = %q, want DP_GEN for an unrecognized sheet name", dept)
	}

	// Re-importing the same roster adds nobody.
	stats, err = engine.ImportAffiliated(path)
	if err != nil {
		t.Fatalf("ImportAffiliated rerun: %v", err)
	}
	if stats.Total != 0 {
		t.Errorf("rerun Total = %d, want 0", stats.Total)
	}
	if got := countRows(t, db, "teachers"); got != 3 {
		t.Errorf("teacher rows after rerun = %d, want 3", got)
	}
}

func preregistrationFixture(t *testing.T) string {
	t.Helper()
	return writeWorkbook(t, []sheetFixture{{
		name: "Preinscripción",
		rows: [][]interface{}{
			{"Listado de preinscripción Enero - Junio 2025"},
			{"Apellido_Paterno", "Apellido_Materno", "Nombres", "RFC", "Sexo", "Departamento de adscripción", "Puesto", "Nombre del evento", "Facilitador", "Periodo", "Horario"},
			{"PEREZ", "GOMEZ", "HUGO", "PEGH800101ABC", "HOMBRE", "", "Docente", "1.- Curso de Docker", "Dr. Ruiz", "12 al 16 de junio", "14:00 - 16:00"},
			{"LOPEZ", "RAMIREZ", "MARIA", "LORM850505XYZ", "MUJER", "Química", "Docente", "1.- Curso de Docker", "Dr. Ruiz", "12 al 16 de junio", "14:00 - 16:00"},
			{"GARCIA", "NUÑO", "ANA", "GANA900101QQQ", "MUJER", "Depto. de Sistemas", "Jefa de proyecto", "Taller de Liderazgo", "REPROGRAMADO", "", ""},
		},
	}})
}

func TestImportPreregistration(t *testing.T) {
	db := newTestDB(t)
	engine := NewEngine(db, "sqlite3")

	// The affiliated roster runs first: it registers HUGO under Sistemas and
	// ANA under the generic department, both with temporary fiscal ids.
	affiliated := writeWorkbook(t, []sheetFixture{
		{
			name: "SISTEMAS",
			rows: [][]interface{}{
				{"Apellido_Paterno", "Apellido_Materno", "Nombres"},
				{"PEREZ", "GOMEZ", "HUGO"},
			},
		},
		{
			name: "Otros",
			rows: [][]interface{}{
				{"Apellido_Paterno", "Apellido_Materno", "Nombres"},
				{"GARCIA", "NUÑO", "ANA"},
			},
		},
	})
	if _, err := engine.ImportAffiliated(affiliated); err != nil {
		t.Fatalf("ImportAffiliated: %v", err)
	}

	path := preregistrationFixture(t)
	stats, err := engine.ImportPreregistration(path)
	if err != nil {
		t.Fatalf("ImportPreregistration: %v", err)
	}
	if stats.NewTeachers != 1 || stats.UpdatedTeachers != 2 {
		t.Fatalf("teachers (new, updated) = (%d, %d), want (1, 2)",
			stats.NewTeachers, stats.UpdatedTeachers)
	}
	if stats.NewCourses != 1 {
		t.Errorf("NewCourses = %d, want 1", stats.NewCourses)
	}
	// ANA's row carries a rescheduled placeholder, so only the two Docker
	// enrollments land.
	if stats.NewEnrollments != 2 {
		t.Errorf("NewEnrollments = %d, want 2", stats.NewEnrollments)
	}

	if got := countRows(t, db, "teachers"); got != 3 {
		t.Fatalf("teacher rows = %d, want 3 (name merge, no duplicates)", got)
	}

	// HUGO: real RFC replaces the placeholder, sex recorded, and the specific
	// department from the affiliated roster survives the blank label here.
	var rfc, sex, dept string
	err = db.QueryRow(`SELECT rfc, sex, department_code FROM teachers WHERE full_name = 'PEREZ GOMEZ HUGO'`).
		Scan(&rfc, &sex, &dept)
	if err != nil {
		t.Fatalf("read merged teacher: %v", err)
	}
	if rfc != "PEGH800101ABC" || sex != "M" || dept != "DP07" {
		t.Errorf("(rfc, sex, dept) = (%s, %s, %s), want (PEGH800101ABC, M, DP07)", rfc, sex, dept)
	}

	// ANA: the generic department is upgraded to the one her row names.
	var jobTitle string
	err = db.QueryRow(`SELECT department_code, job_title FROM teachers WHERE full_name = 'GARCIA NUÑO ANA'`).
		Scan(&dept, &jobTitle)
	if err != nil {
		t.Fatalf("read upgraded teacher: %v", err)
	}
	if dept != "DP07" {
		t.Errorf("department = %q, want DP07 after upgrade from DP_GEN", dept)
	}
	if jobTitle != "JEFA DE PROYECTO" {
		t.Errorf("job_title = %q, want JEFA DE PROYECTO", jobTitle)
	}

	// MARIA: brand new, next sequential id, department from her row.
	var id string
	err = db.QueryRow(`SELECT id, department_code FROM teachers WHERE full_name = 'LOPEZ RAMIREZ MARIA'`).
		Scan(&id, &dept)
	if err != nil {
		t.Fatalf("read new teacher: %v", err)
	}
	if id != "TNM003" || dept != "DP06" {
		t.Errorf("(id, dept) = (%s, %s), want (TNM003, DP06)", id, dept)
	}

	var code, term string
	err = db.QueryRow(`SELECT code, term FROM courses WHERE name = 'CURSO DE DOCKER' AND year = 2025`).
		Scan(&code, &term)
	if err != nil {
		t.Fatalf("read course: %v", err)
	}
	if code != "TNM_125_01_2025_AP" || term != "Enero - Junio" {
		t.Errorf("(code, term) = (%s, %q)", code, term)
	}

	var sessionDates, schedule string
	err = db.QueryRow(`SELECT session_dates, schedule FROM enrollments
		WHERE teacher_id = 'TNM001' AND course_code = ?`, code).
		Scan(&sessionDates, &schedule)
	if err != nil {
		t.Fatalf("read enrollment: %v", err)
	}
	if sessionDates != "12 AL 16 DE JUNIO" {
		t.Errorf("session_dates = %q, want 12 AL 16 DE JUNIO", sessionDates)
	}
	if schedule != "14:00 - 16:00" {
		t.Errorf("schedule = %q, want 14:00 - 16:00", schedule)
	}

	// Second run of the same roster: everything resolves to existing rows.
	stats, err = engine.ImportPreregistration(path)
	if err != nil {
		t.Fatalf("ImportPreregistration rerun: %v", err)
	}
	if stats.NewTeachers != 0 || stats.NewCourses != 0 || stats.NewEnrollments != 0 {
		t.Errorf("rerun (new teachers, courses, enrollments) = (%d, %d, %d), want all 0",
			stats.NewTeachers, stats.NewCourses, stats.NewEnrollments)
	}
	if got := countRows(t, db, "enrollments"); got != 2 {
		t.Errorf("enrollment rows after rerun = %d, want 2", got)
	}
}

func TestImportPreregistrationTermBackfill(t *testing.T) {
	db := newTestDB(t)
	engine := NewEngine(db, "sqlite3")

	// Course already registered for the year but without a term yet.
	if _, err := db.Exec(`INSERT INTO courses (code, name, year, term)
		VALUES ('TNM_125_01_2025_AP', 'CURSO DE DOCKER', 2025, '')`); err != nil {
		t.Fatalf("seed course: %v", err)
	}

	stats, err := engine.ImportPreregistration(preregistrationFixture(t))
	if err != nil {
		t.Fatalf("ImportPreregistration: %v", err)
	}
	if stats.NewCourses != 0 {
		t.Errorf("NewCourses = %d, want 0 for an already registered course", stats.NewCourses)
	}

	var term string
	if err := db.QueryRow(`SELECT term FROM courses WHERE code = 'TNM_125_01_2025_AP'`).Scan(&term); err != nil {
		t.Fatalf("read course term: %v", err)
	}
	if term != "Enero - Junio" {
		t.Errorf("term = %q, want back-filled active term", term)
	}
}

func TestImportPreregistrationHeaderMissing(t *testing.T) {
	db := newTestDB(t)
	engine := NewEngine(db, "sqlite3")

	path := writeWorkbook(t, []sheetFixture{{
		name: "Hoja1",
		rows: [][]interface{}{
			{"ID", "Evento"},
			{"1", "Curso de Docker"},
		},
	}})

	if _, err := engine.ImportPreregistration(path); err == nil {
		t.Fatal("ImportPreregistration succeeded on a file without the expected header row")
	}
	if got := countRows(t, db, "teachers"); got != 0 {
		t.Errorf("teacher rows = %d, want 0 after failed import", got)
	}
}
