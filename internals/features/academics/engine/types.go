// file: internals/features/academics/engine/types.go
package engine

/* ===================== GRADE & MODE ===================== */

// Grade is a letter grade on the 10-point scale.
type Grade string

const (
	GradeO     Grade = "O"
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeF     Grade = "F"
	GradeAb    Grade = "Ab"
)

// Mode tells how a semester's SGPA is obtained.
type Mode string

const (
	ModeDetailed Mode = "detailed"
	ModeManual   Mode = "manual"
)

// Regulation identifies a curriculum (R13, R18, R22 ...).
type Regulation string

/* ===================== RECORD ===================== */

// Subject is one graded course inside a semester.
// Credits == 0 marks a non-credit mandatory course.
type Subject struct {
	ID       string  `json:"id"`
	Code     string  `json:"code,omitempty"`
	Name     string  `json:"name"`
	Grade    Grade   `json:"grade"`
	Credits  float64 `json:"credits"`
	Internal *int    `json:"internal,omitempty"`
	External *int    `json:"external,omitempty"`
	Total    *int    `json:"total,omitempty"`

	// Authoritative semester SGPA attached by the importer (same value on every subject of the semester).
	OfficialSGPA *float64 `json:"official_sgpa,omitempty"`
}

type Semester struct {
	ID         string    `json:"id"`
	Year       int       `json:"year"`
	Term       int       `json:"term"`
	Mode       Mode      `json:"mode"`
	Subjects   []Subject `json:"subjects"`
	ManualSGPA *float64  `json:"manual_sgpa"`
}

// AcademicRecord holds the eight canonical semester slots of a student.
type AcademicRecord struct {
	Regulation   Regulation `json:"regulation"`
	Semesters    []Semester `json:"semesters"`
	OfficialCGPA *float64   `json:"official_cgpa,omitempty"`
	StudentName  string     `json:"student_name,omitempty"`
	HallTicket   string     `json:"hall_ticket,omitempty"`
}

/* ===================== RESULTS ===================== */

type SGPAResult struct {
	SGPA          float64 `json:"sgpa"`
	TotalCredits  float64 `json:"total_credits"`
	EarnedCredits float64 `json:"earned_credits"`
	LostCredits   float64 `json:"lost_credits"`
}

type CGPAResult struct {
	CGPA         float64 `json:"cgpa"`
	TotalCredits float64 `json:"total_credits"`
	Percentage   float64 `json:"percentage"`
}

// DisplayResult is CGPAResult after the official override.
// TotalCredits is always the recomputed value.
type DisplayResult struct {
	CGPAResult
	Official bool `json:"official"`
}

type CreditStats struct {
	Earned float64 `json:"earned"`
	Lost   float64 `json:"lost"`
}

type CreditProgress struct {
	Regulation Regulation `json:"regulation"`
	Earned     float64    `json:"earned"`
	Lost       float64    `json:"lost"`
	Attempted  float64    `json:"attempted"`
	Required   int        `json:"required"`
	Remaining  float64    `json:"remaining"`
	Percent    float64    `json:"percent"`

	// false when the regulation is unknown and DefaultRequiredCredits was assumed
	Known bool `json:"known"`
}

type YearlyAverage struct {
	Year          int     `json:"year"`
	Average       float64 `json:"average"`
	SemesterCount int     `json:"semester_count"`
}

type BacklogStatus string

const (
	BacklogFailed BacklogStatus = "failed"
	BacklogAbsent BacklogStatus = "absent"
)

type Backlog struct {
	SubjectName string        `json:"subject_name"`
	SubjectCode string        `json:"subject_code"`
	Year        int           `json:"year"`
	Term        int           `json:"term"`
	Grade       Grade         `json:"grade"`
	Credits     float64       `json:"credits"`
	Status      BacklogStatus `json:"status"`
}
