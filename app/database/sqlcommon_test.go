package database

import "testing"

func TestRebind(t *testing.T) {
	tests := []struct {
		name   string
		driver string
		query  string
		want   string
	}{
		{"sqlite passes through", "sqlite3", "SELECT id FROM teachers WHERE rfc = ?", "SELECT id FROM teachers WHERE rfc = ?"},
		{"postgres numbers placeholders", "postgres", "INSERT INTO departments (code, name) VALUES (?, ?)", "INSERT INTO departments (code, name) VALUES ($1, $2)"},
		{"postgres no placeholders", "postgres", "SELECT COUNT(*) FROM courses", "SELECT COUNT(*) FROM courses"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rebind(tt.driver, tt.query); got != tt.want {
				t.Errorf("Rebind = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInsertIgnore(t *testing.T) {
	query := "INSERT INTO departments (code, name) VALUES (?, ?)"

	if got := InsertIgnore("sqlite3", query); got != "INSERT OR IGNORE INTO departments (code, name) VALUES (?, ?)" {
		t.Errorf("sqlite form = %q", got)
	}
	if got := InsertIgnore("postgres", query); got != query+" ON CONFLICT DO NOTHING" {
		t.Errorf("postgres form = %q", got)
	}
}
