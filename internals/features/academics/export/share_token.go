// file: internals/features/academics/export/share_token.go
package export

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"

	"jntuh_insights_backend/internals/features/academics/engine"
)

var ErrInvalidShareToken = errors.New("invalid share token")

/* ===================== WIRE SHAPE ===================== */

// Key names are kept short so the token fits in a URL query.
type shareRecord struct {
	Semesters  []shareSemester `json:"s"`
	Name       string          `json:"n,omitempty"`
	HallTicket string          `json:"h,omitempty"`
	Regulation string          `json:"r,omitempty"`
}

type shareSemester struct {
	Year     int            `json:"y"`
	Term     int            `json:"m"`
	Mode     string         `json:"mode"`
	SGPA     *float64       `json:"sgpa,omitempty"`
	Subjects []shareSubject `json:"subs"`
}

type shareSubject struct {
	Name    string  `json:"n"`
	Code    string  `json:"c,omitempty"`
	Grade   string  `json:"g"`
	Credits float64 `json:"cr"`
}

/* ===================== CODEC ===================== */

// EncodeShareToken packs the record into URL-safe base64 of compact JSON.
// Subject marks, official values and ids are not carried.
func EncodeShareToken(rec engine.AcademicRecord) (string, error) {
	out := shareRecord{
		Semesters:  make([]shareSemester, 0, len(rec.Semesters)),
		Name:       rec.StudentName,
		HallTicket: rec.HallTicket,
		Regulation: string(rec.Regulation),
	}
	for _, sem := range rec.Semesters {
		ss := shareSemester{
			Year:     sem.Year,
			Term:     sem.Term,
			Mode:     string(sem.Mode),
			Subjects: []shareSubject{},
		}
		if sem.Mode == engine.ModeManual {
			if sem.ManualSGPA != nil {
				v := *sem.ManualSGPA
				ss.SGPA = &v
			}
		} else {
			for _, s := range sem.Subjects {
				ss.Subjects = append(ss.Subjects, shareSubject{
					Name:    s.Name,
					Code:    s.Code,
					Grade:   string(s.Grade),
					Credits: s.Credits,
				})
			}
		}
		out.Semesters = append(out.Semesters, ss)
	}

	raw, err := sonic.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encode share token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// DecodeShareToken restores a record from EncodeShareToken output.
// Semesters land in their canonical slots; subject ids become "<y-t>-<n>".
func DecodeShareToken(token string) (engine.AcademicRecord, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return engine.AcademicRecord{}, fmt.Errorf("%w: %v", ErrInvalidShareToken, err)
	}
	var in shareRecord
	if err := sonic.Unmarshal(raw, &in); err != nil {
		return engine.AcademicRecord{}, fmt.Errorf("%w: %v", ErrInvalidShareToken, err)
	}

	rec := engine.NewRecord(engine.Regulation(in.Regulation))
	rec.StudentName = in.Name
	rec.HallTicket = in.HallTicket

	seen := make(map[int]bool, len(in.Semesters))
	for _, ss := range in.Semesters {
		if ss.Year < 1 || ss.Year > 4 || ss.Term < 1 || ss.Term > 2 {
			return engine.AcademicRecord{}, fmt.Errorf("%w: semester %d-%d", ErrInvalidShareToken, ss.Year, ss.Term)
		}
		slot := (ss.Year-1)*2 + ss.Term - 1
		if seen[slot] {
			return engine.AcademicRecord{}, fmt.Errorf("%w: semester %d-%d muncul lebih dari sekali", ErrInvalidShareToken, ss.Year, ss.Term)
		}
		seen[slot] = true

		sem := &rec.Semesters[slot]
		if ss.Mode == string(engine.ModeManual) {
			sem.Mode = engine.ModeManual
			if ss.SGPA != nil {
				if !engine.ValidGPA(*ss.SGPA) {
					return engine.AcademicRecord{}, fmt.Errorf("%w: sgpa %v di luar 0..10", ErrInvalidShareToken, *ss.SGPA)
				}
				v := *ss.SGPA
				sem.ManualSGPA = &v
			}
			continue
		}
		for i, sub := range ss.Subjects {
			g, err := engine.ParseGrade(sub.Grade)
			if err != nil {
				return engine.AcademicRecord{}, fmt.Errorf("%w: %v", ErrInvalidShareToken, err)
			}
			if !validCredits(sub.Credits) {
				return engine.AcademicRecord{}, fmt.Errorf("%w: credits %v tidak valid", ErrInvalidShareToken, sub.Credits)
			}
			sem.Subjects = append(sem.Subjects, engine.Subject{
				ID:      fmt.Sprintf("%s-%d", sem.ID, i+1),
				Code:    sub.Code,
				Name:    sub.Name,
				Grade:   g,
				Credits: sub.Credits,
			})
		}
	}
	return rec, nil
}
