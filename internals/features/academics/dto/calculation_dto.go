// file: internals/features/academics/dto/calculation_dto.go
package dto

import "strings"

/* ===================== REQUESTS ===================== */

type SGPARequest struct {
	Subjects []SubjectInput `json:"subjects" validate:"max=40,dive"`
}

type GoalRequest struct {
	Record             RecordInput `json:"record"`
	TargetCGPA         float64     `json:"target_cgpa" validate:"gte=0,lte=10"`
	RemainingSemesters int         `json:"remaining_semesters" validate:"gte=1,lte=8"`
	CreditsPerSemester float64     `json:"credits_per_semester" validate:"omitempty,gt=0,lte=40"`
}

type WhatIfRequest struct {
	Record     RecordInput `json:"record"`
	SemesterID string      `json:"semester_id" validate:"required"`
	SubjectID  string      `json:"subject_id" validate:"required"`
	Grade      string      `json:"grade" validate:"required,oneof=O A+ A B+ B C F Ab"`
}

// Salah satu dari Company atau Cutoff wajib diisi.
type EligibilityRequest struct {
	Record  RecordInput `json:"record"`
	Company string      `json:"company" validate:"omitempty,max=64"`
	Cutoff  *float64    `json:"cutoff" validate:"omitempty,gte=0,lte=10"`
}

func (r *SGPARequest) Normalize() { normalizeSubjects(r.Subjects) }
func (r *GoalRequest) Normalize() { r.Record.Normalize() }

func (r *WhatIfRequest) Normalize() {
	r.Record.Normalize()
	r.Grade = strings.TrimSpace(r.Grade)
}

func (r *EligibilityRequest) Normalize() {
	r.Record.Normalize()
	r.Company = strings.TrimSpace(r.Company)
}

/* ===================== RESPONSES ===================== */

type PercentageResponse struct {
	GPA        float64 `json:"gpa"`
	Percentage float64 `json:"percentage"`
}

type RegulationResponse struct {
	Regulation      string `json:"regulation"`
	RequiredCredits int    `json:"required_credits"`
}

type ShareResponse struct {
	Token string `json:"token"`
}
