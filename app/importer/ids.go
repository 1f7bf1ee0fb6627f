package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Cesar-OOS/sistemaCursosTecnm/app/models"
)

const teacherIDPrefix = "TNM"

// maxTeacherSeq returns the highest numeric suffix among the given teacher
// identifiers. Malformed suffixes are skipped, never fatal.
func maxTeacherSeq(ids []string) int {
	max := 0
	for _, id := range ids {
		n, err := strconv.Atoi(strings.TrimPrefix(id, teacherIDPrefix))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max
}

// formatTeacherID renders a sequence number as a TNM identifier (TNM046).
func formatTeacherID(seq int) string {
	return fmt.Sprintf("%s%03d", teacherIDPrefix, seq)
}

// courseCode composes a course identifier from the running per-year counter.
// Each block holds 99 courses; block numbering starts at 125.
func courseCode(kind models.CourseKind, year, coursesSoFarThisYear int) string {
	block := 125 + coursesSoFarThisYear/99
	seq := coursesSoFarThisYear%99 + 1
	return fmt.Sprintf("TNM_%d_%02d_%d_%s", block, seq, year, kind)
}
