package models

// Teacher is the identity record for an instructor. FullName is the canonical
// normalized string used for matching; the structured surname breakdown is
// captured once at ingestion and kept for display only.
type Teacher struct {
	ID              string  `json:"id"`
	FullName        string  `json:"full_name"`
	PaternalSurname string  `json:"paternal_surname"`
	MaternalSurname string  `json:"maternal_surname"`
	GivenNames      string  `json:"given_names"`
	RFC             string  `json:"rfc"`
	Sex             Sex     `json:"sex"`
	DepartmentCode  string  `json:"department_code"`
	JobTitle        string  `json:"job_title"`
	DepartmentName  *string `json:"department_name,omitempty"`
}

// Department is a canonical code/name pair. Departments are pre-seeded and
// never created by the import engine.
type Department struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
