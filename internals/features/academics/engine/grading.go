// Package engine is the academic calculation core: SGPA, CGPA, credit accounting,
// statistics, goal seeking, what-if simulation and trend heuristics.
//
// Every function is pure. Nothing here keeps state between calls, so callers can
// evaluate any record from any number of goroutines.
package engine

import (
	"fmt"
	"math"
	"strings"
)

/* ===================== GRADING POLICY ===================== */

// StandardCredits is the credit weight of a manual-mode semester and the
// default per-semester load used by the goal solver.
const StandardCredits = 20

var gradePoints = map[Grade]int{
	GradeO:     10,
	GradeAPlus: 9,
	GradeA:     8,
	GradeBPlus: 7,
	GradeB:     6,
	GradeC:     5,
	GradeF:     0,
	GradeAb:    0,
}

var gradeOrder = []Grade{GradeO, GradeAPlus, GradeA, GradeBPlus, GradeB, GradeC, GradeF, GradeAb}

// Grades returns all grades, best first.
func Grades() []Grade {
	return append([]Grade(nil), gradeOrder...)
}

// GradePoint maps a grade to its integer grade point.
func GradePoint(g Grade) (int, error) {
	p, ok := gradePoints[g]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGrade, string(g))
	}
	return p, nil
}

// Valid reports whether g belongs to the closed grade set.
func (g Grade) Valid() bool {
	_, ok := gradePoints[g]
	return ok
}

// IsBacklog reports whether g is a failing (F) or absent (Ab) grade.
func (g Grade) IsBacklog() bool {
	return g == GradeF || g == GradeAb
}

// ParseGrade accepts the canonical tokens ("O", "A+", ..., "Ab"), ignoring surrounding space.
func ParseGrade(s string) (Grade, error) {
	g := Grade(strings.TrimSpace(s))
	if !g.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidGrade, s)
	}
	return g, nil
}

// Round2 rounds half away from zero to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PercentageFromGPA applies the university conversion (gpa - 0.5) * 10.
// A gpa outside [0,10] has no meaningful percentage and yields 0.
func PercentageFromGPA(gpa float64) float64 {
	if math.IsNaN(gpa) || gpa < 0 || gpa > 10 {
		return 0
	}
	return math.Max(0, Round2((gpa-0.5)*10))
}

// ValidGPA reports whether v is a usable SGPA/CGPA value.
func ValidGPA(v float64) bool {
	return v >= 0 && v <= 10
}

/* ===================== REGULATIONS ===================== */

const (
	R13 Regulation = "R13"
	R15 Regulation = "R15"
	R16 Regulation = "R16"
	R18 Regulation = "R18"
	R22 Regulation = "R22"
	R24 Regulation = "R24"
)

// credits required for the degree, per regulation
var regulationCredits = map[Regulation]int{
	R13: 216,
	R15: 200,
	R16: 180,
	R18: 160,
	R22: 160,
	R24: 160,
}

var regulationOrder = []Regulation{R13, R15, R16, R18, R22, R24}

func Regulations() []Regulation {
	return append([]Regulation(nil), regulationOrder...)
}

// RequiredCredits returns the degree credit requirement of a regulation.
func RequiredCredits(r Regulation) (int, bool) {
	c, ok := regulationCredits[r]
	return c, ok
}

/* ===================== SEMESTER SLOTS ===================== */

var romanYears = []string{"", "I", "II", "III", "IV"}

// SemesterKey returns the short "year-term" form, e.g. "2-1".
func SemesterKey(year, term int) string {
	return fmt.Sprintf("%d-%d", year, term)
}

// SemesterLabel returns the long form, e.g. "II Year I Semester".
func SemesterLabel(year, term int) string {
	if year < 1 || year > 4 || term < 1 || term > 2 {
		return fmt.Sprintf("Year %d Sem %d", year, term)
	}
	return fmt.Sprintf("%s Year %s Semester", romanYears[year], romanYears[term])
}

// NewRecord returns a record with the eight canonical empty detailed semesters.
func NewRecord(reg Regulation) AcademicRecord {
	sems := make([]Semester, 0, 8)
	for year := 1; year <= 4; year++ {
		for term := 1; term <= 2; term++ {
			sems = append(sems, Semester{
				ID:       SemesterKey(year, term),
				Year:     year,
				Term:     term,
				Mode:     ModeDetailed,
				Subjects: []Subject{},
			})
		}
	}
	return AcademicRecord{Regulation: reg, Semesters: sems}
}
