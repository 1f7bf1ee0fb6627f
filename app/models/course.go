package models

// Course is a trainable offering. Code encodes block, sequence, registration
// year and kind (e.g. TNM_125_07_2025_AP). (Name, Year) is unique.
type Course struct {
	Code         string     `json:"code"`
	Name         string     `json:"name"`
	Kind         CourseKind `json:"kind"`
	Hours        int        `json:"hours"`
	Competencies string     `json:"competencies"`
	Facilitator  string     `json:"facilitator"`
	Term         string     `json:"term"`
	Year         int        `json:"year"`
}

// Enrollment links one teacher to one course for one training cycle. The
// accredited flag keeps the legacy 'True'/'False' string representation.
type Enrollment struct {
	ID           int64  `json:"id"`
	TeacherID    string `json:"teacher_id"`
	CourseCode   string `json:"course_code"`
	Accredited   string `json:"accredited"`
	SessionDates string `json:"session_dates"`
	Schedule     string `json:"schedule"`
}
