// file: internals/features/academics/export/csv_export.go
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"jntuh_insights_backend/internals/features/academics/engine"
)

// Section markers. A marker row holds a single bracketed field.
const (
	SectionSubjects  = "[subjects]"
	SectionSemesters = "[semesters]"
	SectionSummary   = "[summary]"
)

var (
	subjectHeader  = []string{"semester", "label", "code", "name", "grade", "credits"}
	semesterHeader = []string{"semester", "label", "mode", "sgpa", "credits"}
	summaryHeader  = []string{"field", "value"}
)

// WriteCSV writes the record as three sections: subjects, semesters, summary.
// Only detailed semesters list subjects; only semesters with a positive SGPA
// are listed in the semesters section.
func WriteCSV(w io.Writer, rec engine.AcademicRecord) error {
	cw := csv.NewWriter(w)

	/* ---------- subjects ---------- */
	rows := [][]string{{SectionSubjects}, subjectHeader}
	for _, sem := range rec.Semesters {
		if sem.Mode != engine.ModeDetailed {
			continue
		}
		key := engine.SemesterKey(sem.Year, sem.Term)
		label := engine.SemesterLabel(sem.Year, sem.Term)
		for _, s := range sem.Subjects {
			rows = append(rows, []string{
				key, label, s.Code, s.Name, string(s.Grade), formatCredits(s.Credits),
			})
		}
	}

	/* ---------- semesters ---------- */
	rows = append(rows, []string{SectionSemesters}, semesterHeader)
	for _, sem := range rec.Semesters {
		sgpa := engine.ResolveSemesterSGPA(sem)
		if sgpa <= 0 {
			continue
		}
		rows = append(rows, []string{
			engine.SemesterKey(sem.Year, sem.Term),
			engine.SemesterLabel(sem.Year, sem.Term),
			string(sem.Mode),
			formatGPA(sgpa),
			formatCredits(engine.SemesterCredits(sem)),
		})
	}

	/* ---------- summary ---------- */
	display := engine.DisplayCGPA(rec)
	computed := engine.ComputeCGPA(rec.Semesters)
	stats := engine.CreditStatsOf(rec.Semesters)
	backlogs := engine.Backlogs(rec.Semesters)

	rows = append(rows, []string{SectionSummary}, summaryHeader)
	rows = append(rows,
		[]string{"student_name", orDash(rec.StudentName)},
		[]string{"hall_ticket", orDash(rec.HallTicket)},
		[]string{"regulation", orDash(string(rec.Regulation))},
		[]string{"total_credits", formatCredits(computed.TotalCredits)},
		[]string{"cgpa", formatGPA(display.CGPA)},
		[]string{"percentage", formatGPA(display.Percentage)},
		[]string{"official", strconv.FormatBool(display.Official)},
		[]string{"computed_cgpa", formatGPA(computed.CGPA)},
		[]string{"earned_credits", formatCredits(stats.Earned)},
		[]string{"lost_credits", formatCredits(stats.Lost)},
		[]string{"backlogs", strconv.Itoa(len(backlogs))},
	)

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// FileName follows the download name used for exported results.
func FileName(rec engine.AcademicRecord) string {
	if rec.HallTicket != "" {
		return "JNTUH_Results_" + rec.HallTicket + ".csv"
	}
	return "JNTUH_Results.csv"
}

func formatGPA(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatCredits(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
