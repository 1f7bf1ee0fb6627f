package database

import (
	"database/sql"
	"log"
	"time"
)

// RunMigrations creates all tables if they do not exist and seeds the
// reference data the import engine depends on (departments, the singleton
// system row). Safe to run on every startup.
func RunMigrations(db *sql.DB, driver string) error {
	log.Println("Running database migrations...")

	for _, stmt := range schemaStatements(driver) {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	if err := seedDepartments(db, driver); err != nil {
		return err
	}
	if err := seedSystemRow(db, driver); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func schemaStatements(driver string) []string {
	enrollmentID := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if driver == "postgres" {
		enrollmentID = "BIGSERIAL PRIMARY KEY"
	}

	return []string{
		`CREATE TABLE IF NOT EXISTS departments (
			code TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS teachers (
			id TEXT PRIMARY KEY,
			full_name TEXT NOT NULL,
			paternal_surname TEXT NOT NULL DEFAULT '',
			maternal_surname TEXT NOT NULL DEFAULT '',
			given_names TEXT NOT NULL DEFAULT '',
			rfc TEXT NOT NULL UNIQUE,
			sex TEXT NOT NULL DEFAULT 'X' CHECK (sex IN ('F', 'M', 'X')),
			department_code TEXT NOT NULL DEFAULT 'DP_GEN' REFERENCES departments(code),
			job_title TEXT NOT NULL DEFAULT 'Docente'
		)`,
		`CREATE TABLE IF NOT EXISTS courses (
			code TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			kind TEXT NOT NULL DEFAULT 'AP' CHECK (kind IN ('AP', 'FD')),
			hours INTEGER NOT NULL DEFAULT 30,
			competencies TEXT NOT NULL DEFAULT 'Sin registro',
			facilitator TEXT NOT NULL DEFAULT 'Por asignar',
			term TEXT NOT NULL DEFAULT '',
			year INTEGER NOT NULL,
			UNIQUE (name, year)
		)`,
		`CREATE TABLE IF NOT EXISTS enrollments (
			id ` + enrollmentID + `,
			teacher_id TEXT NOT NULL REFERENCES teachers(id) ON DELETE CASCADE,
			course_code TEXT NOT NULL REFERENCES courses(code) ON DELETE CASCADE,
			accredited TEXT NOT NULL DEFAULT 'False' CHECK (accredited IN ('True', 'False')),
			session_dates TEXT NOT NULL DEFAULT '',
			schedule TEXT NOT NULL DEFAULT '',
			UNIQUE (teacher_id, course_code)
		)`,
		`CREATE TABLE IF NOT EXISTS system_settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			year INTEGER NOT NULL,
			term TEXT NOT NULL,
			director_name TEXT NOT NULL DEFAULT '',
			academic_head TEXT NOT NULL DEFAULT '',
			coordinator_name TEXT NOT NULL DEFAULT '',
			total_teachers INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			expires_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
}

// The eight institutional departments plus the generic bucket. The import
// engine never creates departments; unmatched labels land in DP_GEN.
var seedDepartmentRows = []struct {
	Code string
	Name string
}{
	{"DP01", "Ciencias Básicas"},
	{"DP02", "Ciencias Económico Administrativas"},
	{"DP03", "Ciencias de la Tierra"},
	{"DP04", "Ingeniería Industrial"},
	{"DP05", "Metal Mecánica"},
	{"DP06", "Química y Bioquímica"},
	{"DP07", "Sistemas Computacionales"},
	{"DP08", "Posgrado"},
	{"DP_GEN", "Sin Departamento Asignado"},
}

func seedDepartments(db *sql.DB, driver string) error {
	query := InsertIgnore(driver, Rebind(driver,
		"INSERT INTO departments (code, name) VALUES (?, ?)"))
	for _, d := range seedDepartmentRows {
		if _, err := db.Exec(query, d.Code, d.Name); err != nil {
			return err
		}
	}
	return nil
}

func seedSystemRow(db *sql.DB, driver string) error {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM system_settings WHERE id = 1").Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	query := Rebind(driver,
		"INSERT INTO system_settings (id, year, term) VALUES (1, ?, ?)")
	_, err := db.Exec(query, time.Now().Year(), "Enero - Junio")
	return err
}
