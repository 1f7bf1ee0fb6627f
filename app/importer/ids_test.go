package importer

import (
	"testing"

	"github.com/Cesar-OOS/sistemaCursosTecnm/app/models"
)

func TestMaxTeacherSeq(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want int
	}{
		{"empty", nil, 0},
		{"sequence", []string{"TNM001", "TNM002", "TNM045"}, 45},
		{"malformed suffix skipped", []string{"TNM001", "TNM0AB", "TNM045"}, 45},
		{"only malformed", []string{"TNMXYZ", "TNM_"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := maxTeacherSeq(tt.ids); got != tt.want {
				t.Errorf("maxTeacherSeq(%v) = %d, want %d", tt.ids, got, tt.want)
			}
		})
	}
}

func TestFormatTeacherID(t *testing.T) {
	if got := formatTeacherID(46); got != "TNM046" {
		t.Errorf("formatTeacherID(46) = %q, want TNM046", got)
	}
	if got := formatTeacherID(1000); got != "TNM1000" {
		t.Errorf("formatTeacherID(1000) = %q, want TNM1000", got)
	}
}

func TestCourseCode(t *testing.T) {
	tests := []struct {
		name         string
		kind         models.CourseKind
		year         int
		coursesSoFar int
		want         string
	}{
		{"first of year", models.KindProfessionalUpdate, 2025, 0, "TNM_125_01_2025_AP"},
		{"teacher training", models.KindTeacherTraining, 2025, 6, "TNM_125_07_2025_FD"},
		{"last slot in block", models.KindProfessionalUpdate, 2025, 98, "TNM_125_99_2025_AP"},
		{"rolls to next block", models.KindProfessionalUpdate, 2025, 99, "TNM_126_01_2025_AP"},
		{"deep in second block", models.KindProfessionalUpdate, 2026, 150, "TNM_126_52_2026_AP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := courseCode(tt.kind, tt.year, tt.coursesSoFar); got != tt.want {
				t.Errorf("courseCode(%s, %d, %d) = %q, want %q",
					tt.kind, tt.year, tt.coursesSoFar, got, tt.want)
			}
		})
	}
}
