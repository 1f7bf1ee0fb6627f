package models

// SystemSettings is the singleton configuration row holding the active
// registration period and the names printed on generated documents.
type SystemSettings struct {
	Year            int    `json:"year"`
	Term            string `json:"term"`
	DirectorName    string `json:"director_name"`
	AcademicHead    string `json:"academic_head"`
	CoordinatorName string `json:"coordinator_name"`
	TotalTeachers   int    `json:"total_teachers"`
}
