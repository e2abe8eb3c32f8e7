// file: internals/features/academics/export/csv_import.go
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"jntuh_insights_backend/internals/features/academics/engine"
)

var ErrMissingColumn = errors.New("missing csv column")

// ReadCSV rebuilds a record from a CSV produced by WriteCSV, or from a plain
// subject sheet (semester,code,name,grade,credits) without section markers.
// Manual semesters are restored from the semesters section; the summary
// section only restores identity fields.
func ReadCSV(r io.Reader) (engine.AcademicRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rec := engine.NewRecord("")
	section := SectionSubjects
	var cols map[string]int

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return engine.AcademicRecord{}, fmt.Errorf("read csv: %w", err)
		}
		if isBlank(row) {
			continue
		}
		line, _ := cr.FieldPos(0)

		if marker := strings.ToLower(strings.TrimSpace(row[0])); strings.HasPrefix(marker, "[") {
			section = marker
			cols = nil
			continue
		}
		if cols == nil {
			cols = headerIndex(row)
			if err := requireColumns(section, cols); err != nil {
				return engine.AcademicRecord{}, fmt.Errorf("baris %d: %w", line, err)
			}
			continue
		}

		switch section {
		case SectionSubjects:
			err = addSubjectRow(&rec, cols, row)
		case SectionSemesters:
			err = applySemesterRow(&rec, cols, row)
		case SectionSummary:
			applySummaryRow(&rec, cols, row)
		}
		if err != nil {
			return engine.AcademicRecord{}, fmt.Errorf("baris %d: %w", line, err)
		}
	}
	return rec, nil
}

/* ===================== ROWS ===================== */

func addSubjectRow(rec *engine.AcademicRecord, cols map[string]int, row []string) error {
	idx, err := slotOf(field(row, cols, "semester"))
	if err != nil {
		return err
	}
	grade, err := engine.ParseGrade(NormalizeGradeToken(field(row, cols, "grade")))
	if err != nil {
		return err
	}
	credits, err := strconv.ParseFloat(field(row, cols, "credits"), 64)
	if err != nil || !validCredits(credits) {
		return fmt.Errorf("credits tidak valid: %q", field(row, cols, "credits"))
	}

	sem := &rec.Semesters[idx]
	code := field(row, cols, "code")
	if code == "-" {
		code = ""
	}
	sem.Subjects = append(sem.Subjects, engine.Subject{
		ID:      fmt.Sprintf("%s-%d", sem.ID, len(sem.Subjects)+1),
		Code:    code,
		Name:    field(row, cols, "name"),
		Grade:   grade,
		Credits: credits,
	})
	return nil
}

func applySemesterRow(rec *engine.AcademicRecord, cols map[string]int, row []string) error {
	if !strings.EqualFold(field(row, cols, "mode"), string(engine.ModeManual)) {
		return nil
	}
	idx, err := slotOf(field(row, cols, "semester"))
	if err != nil {
		return err
	}
	sgpa, err := strconv.ParseFloat(field(row, cols, "sgpa"), 64)
	if err != nil || !engine.ValidGPA(sgpa) {
		return fmt.Errorf("sgpa tidak valid: %q", field(row, cols, "sgpa"))
	}
	sem := &rec.Semesters[idx]
	sem.Mode = engine.ModeManual
	sem.ManualSGPA = &sgpa
	return nil
}

func applySummaryRow(rec *engine.AcademicRecord, cols map[string]int, row []string) {
	val := field(row, cols, "value")
	if val == "-" {
		val = ""
	}
	switch strings.ToLower(field(row, cols, "field")) {
	case "student_name":
		rec.StudentName = val
	case "hall_ticket":
		rec.HallTicket = val
	case "regulation":
		rec.Regulation = engine.Regulation(strings.ToUpper(val))
	}
}

/* ===================== HELPERS ===================== */

// NormalizeGradeToken folds width variants and spacing, so "ａ＋" and "a +"
// both become "A+". "AB" and "ABSENT" map to "Ab".
func NormalizeGradeToken(s string) string {
	s = norm.NFKC.String(s)
	s = strings.Join(strings.Fields(s), "")
	up := strings.ToUpper(s)
	switch up {
	case "AB", "ABSENT":
		return string(engine.GradeAb)
	}
	return up
}

// slotOf maps "2-1" or "II Year I Semester" to the canonical slot index.
func slotOf(ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	for year := 1; year <= 4; year++ {
		for term := 1; term <= 2; term++ {
			if ref == engine.SemesterKey(year, term) || strings.EqualFold(ref, engine.SemesterLabel(year, term)) {
				return (year-1)*2 + term - 1, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", engine.ErrSemesterNotFound, ref)
}

func headerIndex(row []string) map[string]int {
	out := make(map[string]int, len(row))
	for i, h := range row {
		key := strings.ToLower(strings.TrimSpace(norm.NFKC.String(h)))
		key = strings.ReplaceAll(key, " ", "_")
		switch key {
		case "subject_code":
			key = "code"
		case "subject_name":
			key = "name"
		}
		if _, dup := out[key]; !dup {
			out[key] = i
		}
	}
	return out
}

func requireColumns(section string, cols map[string]int) error {
	var need []string
	switch section {
	case SectionSubjects:
		need = []string{"semester", "name", "grade", "credits"}
	case SectionSemesters:
		need = []string{"semester", "mode", "sgpa"}
	case SectionSummary:
		need = []string{"field", "value"}
	}
	for _, k := range need {
		if _, ok := cols[k]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingColumn, k)
		}
	}
	return nil
}

func field(row []string, cols map[string]int, key string) string {
	i, ok := cols[key]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// MaxSubjectCredits matches the credits bound on the record input DTO.
const MaxSubjectCredits = 30

func validCredits(c float64) bool {
	return !math.IsNaN(c) && !math.IsInf(c, 0) && c >= 0 && c <= MaxSubjectCredits
}
