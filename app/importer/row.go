package importer

import "strings"

// Row is one spreadsheet data row keyed by its header text, in sheet column
// order. Headers drift across spreadsheet versions ("Apellido Paterno",
// "APELLIDO PATERNO ", "Apellido_Paterno"), so Field is the only sanctioned
// accessor; nothing else in the pipeline assumes fixed header names.
type Row struct {
	headers []string
	values  []string
}

// NewRow pairs a header row with one data row. Cells beyond the header width
// are dropped; missing trailing cells read as empty.
func NewRow(headers, cells []string) Row {
	values := make([]string, len(headers))
	for i := range headers {
		if i < len(cells) {
			values[i] = cells[i]
		}
	}
	return Row{headers: headers, values: values}
}

// Field returns the value under the first header whose lower-cased text
// contains the lower-cased keyword as a substring. The bool reports whether
// any header matched.
func (r Row) Field(keyword string) (string, bool) {
	kw := strings.ToLower(keyword)
	for i, h := range r.headers {
		if h == "" {
			continue
		}
		if strings.Contains(strings.ToLower(h), kw) {
			return r.values[i], true
		}
	}
	return "", false
}

// FieldOr returns the trimmed value for the first keyword that resolves, or
// fallback when none does.
func (r Row) FieldOr(fallback string, keywords ...string) string {
	for _, kw := range keywords {
		if v, ok := r.Field(kw); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return fallback
}

// Empty reports whether every cell in the row is blank.
func (r Row) Empty() bool {
	for _, v := range r.values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
