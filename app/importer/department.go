package importer

import (
	"strings"

	"github.com/Cesar-OOS/sistemaCursosTecnm/app/models"
)

// departmentRule maps label keyword stems to the representative keyword of
// the department they belong to. Rules are tried in order; the table is data
// so new abbreviations can be added without touching the resolver.
type departmentRule struct {
	stems  []string
	target string
}

var departmentRules = []departmentRule{
	{stems: []string{"SISTEMAS"}, target: "SISTEMAS"},
	{stems: []string{"TIERRA", "CIVIL"}, target: "TIERRA"},
	{stems: []string{"BASICAS"}, target: "BASICAS"},
	{stems: []string{"INDUSTRIAL"}, target: "INDUSTRIAL"},
	{stems: []string{"POSGRADO"}, target: "POSGRADO"},
	{stems: []string{"METAL", "MECANICA"}, target: "METAL"},
	{stems: []string{"QUIMICA", "BIOQUIMICA"}, target: "QUIMICA"},
	{stems: []string{"ADMINISTRATIVO", "ECONOMICO", "ADMINISTRACION"}, target: "ECONOMICO"},
}

// ResolveDepartment maps a free-text department label (sheet name or cell
// value) to a canonical department code. Exact normalized-name match wins;
// otherwise the first keyword rule whose stem appears in the label picks the
// first department whose name contains the rule's representative keyword.
// Unmatched labels land in the generic bucket; a department is never
// invented.
func ResolveDepartment(label string, departments []models.Department) string {
	if strings.TrimSpace(label) == "" {
		return models.GenericDepartment
	}
	normalized := Normalize(label)

	for _, d := range departments {
		if Normalize(d.Name) == normalized {
			return d.Code
		}
	}

	for _, rule := range departmentRules {
		for _, stem := range rule.stems {
			if !strings.Contains(normalized, stem) {
				continue
			}
			for _, d := range departments {
				if strings.Contains(Normalize(d.Name), rule.target) {
					return d.Code
				}
			}
			return models.GenericDepartment
		}
	}

	return models.GenericDepartment
}
