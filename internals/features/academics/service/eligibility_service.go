// file: internals/features/academics/service/eligibility_service.go
package service

import (
	"errors"
	"strings"

	"jntuh_insights_backend/internals/features/academics/engine"
)

var ErrCompanyNotFound = errors.New("company not found")

type CompanyEligibility struct {
	Company engine.Company `json:"company"`
	engine.Eligibility
}

// lookupCompany tries an exact match first, then a case-insensitive one.
func lookupCompany(name string) (engine.Company, bool) {
	if c, ok := engine.FindCompany(name); ok {
		return c, true
	}
	for _, c := range engine.Companies() {
		if strings.EqualFold(c.Name, strings.TrimSpace(name)) {
			return c, true
		}
	}
	return engine.Company{}, false
}

// CheckRecordEligibility compares the record's headline CGPA (official when
// present) with a company's cutoff or an explicit cutoff. With neither given
// it reports against every known company.
func CheckRecordEligibility(rec engine.AcademicRecord, company string, cutoff *float64) ([]CompanyEligibility, error) {
	cgpa := engine.DisplayCGPA(rec).CGPA

	switch {
	case strings.TrimSpace(company) != "":
		c, ok := lookupCompany(company)
		if !ok {
			return nil, ErrCompanyNotFound
		}
		return []CompanyEligibility{{Company: c, Eligibility: engine.CheckEligibility(cgpa, c.Cutoff)}}, nil

	case cutoff != nil:
		return []CompanyEligibility{{
			Company:     engine.Company{Name: "custom", Cutoff: *cutoff},
			Eligibility: engine.CheckEligibility(cgpa, *cutoff),
		}}, nil
	}

	all := engine.Companies()
	out := make([]CompanyEligibility, 0, len(all))
	for _, c := range all {
		out = append(out, CompanyEligibility{Company: c, Eligibility: engine.CheckEligibility(cgpa, c.Cutoff)})
	}
	return out, nil
}
