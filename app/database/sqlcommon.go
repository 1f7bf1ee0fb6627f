package database

import (
	"fmt"
	"strings"
)

// Rebind converts '?' placeholders to the $N style when the active driver is
// postgres. All queries in this package are written with '?' so the same SQL
// runs on both engines.
func Rebind(driver, query string) string {
	if driver != "postgres" {
		return query
	}
	var b strings.Builder
	idx := 1
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			b.WriteString(fmt.Sprintf("$%d", idx))
			idx++
		} else {
			b.WriteByte(query[i])
		}
	}
	return b.String()
}

// InsertIgnore rewrites a plain INSERT into the engine's conflict-ignoring
// form: INSERT OR IGNORE on SQLite, ON CONFLICT DO NOTHING on postgres.
func InsertIgnore(driver, query string) string {
	if driver == "postgres" {
		return strings.TrimRight(query, "; \n\t") + " ON CONFLICT DO NOTHING"
	}
	return strings.Replace(query, "INSERT INTO", "INSERT OR IGNORE INTO", 1)
}
