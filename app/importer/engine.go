package importer

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Cesar-OOS/sistemaCursosTecnm/app/database"
	"github.com/Cesar-OOS/sistemaCursosTecnm/app/models"
)

// Engine performs the three import reconciliation passes. It holds no state
// across passes; everything a pass needs is read fresh inside its
// transaction.
type Engine struct {
	db     *sql.DB
	driver string
}

func NewEngine(db *sql.DB, driver string) *Engine {
	return &Engine{db: db, driver: driver}
}

// passContext carries the per-pass state: the transaction, the active
// registration period, and the identifier counters. Counters are seeded once
// at the start of the pass; passes must not run concurrently against the
// same store.
type passContext struct {
	tx     *sql.Tx
	driver string

	year        int
	term        string
	departments []models.Department

	teacherSeq  int // last consumed TNM sequence number
	courseCount int // courses already registered for the active year
}

func (p *passContext) rebind(query string) string {
	return database.Rebind(p.driver, query)
}

func (p *passContext) insertIgnore(query string) string {
	return database.InsertIgnore(p.driver, database.Rebind(p.driver, query))
}

// nextTeacherID allocates the next TNM teacher identifier within this pass.
func (p *passContext) nextTeacherID() string {
	p.teacherSeq++
	return formatTeacherID(p.teacherSeq)
}

// nextCourseCode allocates the next course identifier for the active year.
func (p *passContext) nextCourseCode(kind models.CourseKind) string {
	code := courseCode(kind, p.year, p.courseCount)
	p.courseCount++
	return code
}

func (p *passContext) load() error {
	// Active registration period; fall back to the calendar year when the
	// system row is missing.
	p.year = time.Now().Year()
	p.term = ""
	err := p.tx.QueryRow(`SELECT year, term FROM system_settings WHERE id = 1`).
		Scan(&p.year, &p.term)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("read system settings: %w", err)
	}

	if err := p.tx.QueryRow(p.rebind(`SELECT COUNT(*) FROM courses WHERE year = ?`), p.year).
		Scan(&p.courseCount); err != nil {
		return fmt.Errorf("count courses: %w", err)
	}

	rows, err := p.tx.Query(`SELECT id FROM teachers WHERE id LIKE 'TNM%'`)
	if err != nil {
		return fmt.Errorf("scan teacher ids: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	p.teacherSeq = maxTeacherSeq(ids)

	deptRows, err := p.tx.Query(`SELECT code, name FROM departments`)
	if err != nil {
		return fmt.Errorf("list departments: %w", err)
	}
	defer deptRows.Close()
	for deptRows.Next() {
		var d models.Department
		if err := deptRows.Scan(&d.Code, &d.Name); err != nil {
			return err
		}
		p.departments = append(p.departments, d)
	}
	return deptRows.Err()
}

// run executes one import pass atomically: all row-level writes commit
// together or not at all.
func (e *Engine) run(fn func(ctx *passContext) error) error {
	tx, err := e.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	ctx := &passContext{tx: tx, driver: e.driver}
	if err := ctx.load(); err != nil {
		tx.Rollback()
		return err
	}
	if err := fn(ctx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
