// file: internals/features/academics/dto/record_dto.go
package dto

import (
	"fmt"
	"strings"

	"jntuh_insights_backend/internals/features/academics/engine"
)

/* ===================== REQUESTS ===================== */

type SubjectInput struct {
	ID       string  `json:"id" validate:"omitempty,max=64"`
	Code     string  `json:"code" validate:"omitempty,max=32"`
	Name     string  `json:"name" validate:"required,max=200"`
	Grade    string  `json:"grade" validate:"required,oneof=O A+ A B+ B C F Ab"`
	Credits  float64 `json:"credits" validate:"gte=0,lte=30"`
	Internal *int    `json:"internal" validate:"omitempty,gte=0,lte=100"`
	External *int    `json:"external" validate:"omitempty,gte=0,lte=100"`
	Total    *int    `json:"total" validate:"omitempty,gte=0,lte=200"`

	OfficialSGPA *float64 `json:"official_sgpa" validate:"omitempty,gte=0,lte=10"`
}

type SemesterInput struct {
	ID         string         `json:"id" validate:"omitempty,max=16"`
	Year       int            `json:"year" validate:"required,min=1,max=4"`
	Term       int            `json:"term" validate:"required,min=1,max=2"`
	Mode       string         `json:"mode" validate:"omitempty,oneof=detailed manual"`
	Subjects   []SubjectInput `json:"subjects" validate:"omitempty,max=40,dive"`
	ManualSGPA *float64       `json:"manual_sgpa" validate:"omitempty,gte=0,lte=10"`
}

// RecordInput boleh berisi sebagian semester saja; sisanya diisi slot kosong.
type RecordInput struct {
	Regulation   string          `json:"regulation" validate:"omitempty,max=8"`
	Semesters    []SemesterInput `json:"semesters" validate:"max=8,dive"`
	OfficialCGPA *float64        `json:"official_cgpa" validate:"omitempty,gte=0,lte=10"`
	StudentName  string          `json:"student_name" validate:"omitempty,max=120"`
	HallTicket   string          `json:"hall_ticket" validate:"omitempty,max=20"`
}

// Normalize trims text fields and canonicalises the regulation / hall ticket.
func (r *RecordInput) Normalize() {
	r.Regulation = strings.ToUpper(strings.TrimSpace(r.Regulation))
	r.StudentName = strings.TrimSpace(r.StudentName)
	r.HallTicket = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(r.HallTicket), " ", ""))
	for i := range r.Semesters {
		s := &r.Semesters[i]
		s.Mode = strings.ToLower(strings.TrimSpace(s.Mode))
		normalizeSubjects(s.Subjects)
	}
}

func normalizeSubjects(subjects []SubjectInput) {
	for i := range subjects {
		subjects[i].Name = strings.TrimSpace(subjects[i].Name)
		subjects[i].Code = strings.TrimSpace(subjects[i].Code)
		subjects[i].Grade = strings.TrimSpace(subjects[i].Grade)
	}
}

/* ===================== MAPPERS ===================== */

// ToRecord places every input semester into its canonical (year, term) slot.
// Duplicate slots are rejected.
func (r RecordInput) ToRecord() (engine.AcademicRecord, error) {
	rec := engine.NewRecord(engine.Regulation(r.Regulation))
	rec.StudentName = r.StudentName
	rec.HallTicket = r.HallTicket
	if r.OfficialCGPA != nil {
		v := *r.OfficialCGPA
		rec.OfficialCGPA = &v
	}

	seen := map[string]bool{}
	for _, in := range r.Semesters {
		key := engine.SemesterKey(in.Year, in.Term)
		if seen[key] {
			return engine.AcademicRecord{}, fmt.Errorf("semester %s muncul lebih dari sekali", key)
		}
		seen[key] = true

		idx := (in.Year-1)*2 + (in.Term - 1)
		if idx < 0 || idx >= len(rec.Semesters) {
			return engine.AcademicRecord{}, fmt.Errorf("semester %s di luar rentang", key)
		}
		sem, err := in.ToSemester()
		if err != nil {
			return engine.AcademicRecord{}, err
		}
		rec.Semesters[idx] = sem
	}
	return rec, nil
}

func (in SemesterInput) ToSemester() (engine.Semester, error) {
	key := engine.SemesterKey(in.Year, in.Term)
	sem := engine.Semester{
		ID:       key,
		Year:     in.Year,
		Term:     in.Term,
		Mode:     engine.ModeDetailed,
		Subjects: []engine.Subject{},
	}
	if in.ID != "" {
		sem.ID = in.ID
	}
	if in.Mode == string(engine.ModeManual) {
		sem.Mode = engine.ModeManual
	}
	if in.ManualSGPA != nil {
		v := *in.ManualSGPA
		sem.ManualSGPA = &v
	}

	subjects, err := ToSubjects(in.Subjects, key)
	if err != nil {
		return engine.Semester{}, err
	}
	sem.Subjects = subjects
	return sem, nil
}

// ToSubjects converts inputs; a missing id becomes "<prefix>-<n>".
func ToSubjects(in []SubjectInput, idPrefix string) ([]engine.Subject, error) {
	out := make([]engine.Subject, 0, len(in))
	for i, s := range in {
		g, err := engine.ParseGrade(s.Grade)
		if err != nil {
			return nil, err
		}
		id := s.ID
		if id == "" {
			id = fmt.Sprintf("%s-%d", idPrefix, i+1)
		}
		out = append(out, engine.Subject{
			ID:           id,
			Code:         s.Code,
			Name:         s.Name,
			Grade:        g,
			Credits:      s.Credits,
			Internal:     copyInt(s.Internal),
			External:     copyInt(s.External),
			Total:        copyInt(s.Total),
			OfficialSGPA: copyFloat(s.OfficialSGPA),
		})
	}
	return out, nil
}

// FromRecord is the inverse of ToRecord, used when echoing records back.
func FromRecord(rec engine.AcademicRecord) RecordInput {
	out := RecordInput{
		Regulation:   string(rec.Regulation),
		StudentName:  rec.StudentName,
		HallTicket:   rec.HallTicket,
		OfficialCGPA: copyFloat(rec.OfficialCGPA),
		Semesters:    make([]SemesterInput, 0, len(rec.Semesters)),
	}
	for _, sem := range rec.Semesters {
		si := SemesterInput{
			ID:         sem.ID,
			Year:       sem.Year,
			Term:       sem.Term,
			Mode:       string(sem.Mode),
			ManualSGPA: copyFloat(sem.ManualSGPA),
			Subjects:   make([]SubjectInput, 0, len(sem.Subjects)),
		}
		for _, s := range sem.Subjects {
			si.Subjects = append(si.Subjects, SubjectInput{
				ID:           s.ID,
				Code:         s.Code,
				Name:         s.Name,
				Grade:        string(s.Grade),
				Credits:      s.Credits,
				Internal:     copyInt(s.Internal),
				External:     copyInt(s.External),
				Total:        copyInt(s.Total),
				OfficialSGPA: copyFloat(s.OfficialSGPA),
			})
		}
		out.Semesters = append(out.Semesters, si)
	}
	return out
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
