package models

// Sex defines the single-letter sex codes stored for a teacher.
type Sex string

const (
	SexFemale  Sex = "F"
	SexMale    Sex = "M"
	SexUnknown Sex = "X"
)

// CourseKind distinguishes the two institutional course programs.
type CourseKind string

const (
	// KindProfessionalUpdate is "Actualización Profesional".
	KindProfessionalUpdate CourseKind = "AP"
	// KindTeacherTraining is "Formación Docente".
	KindTeacherTraining CourseKind = "FD"
)

// GenericDepartment is the catch-all department code for teachers whose
// department could not be resolved from the source data.
const GenericDepartment = "DP_GEN"

// DefaultJobTitle is assigned when a roster row carries no job title.
const DefaultJobTitle = "Docente"

// DefaultCourseHours is used when the catalog hours cell is missing or unparsable.
const DefaultCourseHours = 30
