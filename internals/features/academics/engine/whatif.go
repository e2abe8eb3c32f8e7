package engine

import "fmt"

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionSame Direction = "same"
)

// changes smaller than this are reported as DirectionSame
const whatIfTolerance = 0.01

type WhatIfResult struct {
	SemesterID    string    `json:"semester_id"`
	SubjectID     string    `json:"subject_id"`
	PreviousGrade Grade     `json:"previous_grade"`
	NewGrade      Grade     `json:"new_grade"`
	PreviousCGPA  float64   `json:"previous_cgpa"`
	NewCGPA       float64   `json:"new_cgpa"`
	Delta         float64   `json:"delta"`
	Direction     Direction `json:"direction"`
}

// Simulate recomputes the CGPA with one subject's grade replaced.
// rec is never modified; the change is applied to a deep copy.
func Simulate(rec AcademicRecord, semesterID, subjectID string, newGrade Grade) (WhatIfResult, error) {
	if !newGrade.Valid() {
		return WhatIfResult{}, fmt.Errorf("%w: %q", ErrInvalidGrade, string(newGrade))
	}

	sim := CloneRecord(rec)

	semIdx := -1
	for i := range sim.Semesters {
		if sim.Semesters[i].ID == semesterID {
			semIdx = i
			break
		}
	}
	if semIdx < 0 {
		return WhatIfResult{}, fmt.Errorf("%w: %q", ErrSemesterNotFound, semesterID)
	}

	subjects := sim.Semesters[semIdx].Subjects
	subIdx := -1
	for i := range subjects {
		if subjects[i].ID == subjectID {
			subIdx = i
			break
		}
	}
	if subIdx < 0 {
		return WhatIfResult{}, fmt.Errorf("%w: %q in semester %q", ErrSubjectNotFound, subjectID, semesterID)
	}

	out := WhatIfResult{
		SemesterID:    semesterID,
		SubjectID:     subjectID,
		PreviousGrade: subjects[subIdx].Grade,
		NewGrade:      newGrade,
		PreviousCGPA:  ComputeCGPA(rec.Semesters).CGPA,
	}
	subjects[subIdx].Grade = newGrade

	out.NewCGPA = ComputeCGPA(sim.Semesters).CGPA
	out.Delta = Round2(out.NewCGPA - out.PreviousCGPA)
	switch {
	case out.Delta > whatIfTolerance:
		out.Direction = DirectionUp
	case out.Delta < -whatIfTolerance:
		out.Direction = DirectionDown
	default:
		out.Direction = DirectionSame
	}
	return out, nil
}

// CloneRecord deep-copies a record, including every pointer field.
func CloneRecord(rec AcademicRecord) AcademicRecord {
	out := rec
	out.OfficialCGPA = cloneFloat(rec.OfficialCGPA)
	if rec.Semesters == nil {
		return out
	}

	out.Semesters = make([]Semester, len(rec.Semesters))
	for i, sem := range rec.Semesters {
		cp := sem
		cp.ManualSGPA = cloneFloat(sem.ManualSGPA)
		if sem.Subjects != nil {
			cp.Subjects = make([]Subject, len(sem.Subjects))
			for j, s := range sem.Subjects {
				sc := s
				sc.Internal = cloneInt(s.Internal)
				sc.External = cloneInt(s.External)
				sc.Total = cloneInt(s.Total)
				sc.OfficialSGPA = cloneFloat(s.OfficialSGPA)
				cp.Subjects[j] = sc
			}
		}
		out.Semesters[i] = cp
	}
	return out
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
