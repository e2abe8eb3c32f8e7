package engine

import "math"

type Company struct {
	Name   string  `json:"name"`
	Cutoff float64 `json:"cutoff"`
	Tier   string  `json:"tier"`
}

// Common campus-placement CGPA cutoffs. A zero cutoff means no CGPA requirement.
var companies = []Company{
	{Name: "TCS", Cutoff: 6.0, Tier: "Mass Recruiter"},
	{Name: "Infosys", Cutoff: 6.0, Tier: "Mass Recruiter"},
	{Name: "Wipro", Cutoff: 6.0, Tier: "Mass Recruiter"},
	{Name: "Accenture", Cutoff: 6.5, Tier: "Mass Recruiter"},
	{Name: "Cognizant (CTS)", Cutoff: 6.5, Tier: "Mass Recruiter"},
	{Name: "Tech Mahindra", Cutoff: 6.0, Tier: "Mass Recruiter"},
	{Name: "Capgemini", Cutoff: 6.0, Tier: "Mass Recruiter"},
	{Name: "HCL Technologies", Cutoff: 6.0, Tier: "Mass Recruiter"},
	{Name: "Amazon", Cutoff: 7.0, Tier: "Product Company"},
	{Name: "Microsoft", Cutoff: 7.5, Tier: "Product Company"},
	{Name: "Google", Cutoff: 8.0, Tier: "Product Company"},
	{Name: "Deloitte", Cutoff: 7.0, Tier: "Consulting"},
	{Name: "KPMG", Cutoff: 7.0, Tier: "Consulting"},
	{Name: "EY (Ernst & Young)", Cutoff: 7.0, Tier: "Consulting"},
	{Name: "Zoho", Cutoff: 0, Tier: "Product Company"},
}

func Companies() []Company {
	return append([]Company(nil), companies...)
}

// FindCompany looks a company up by exact name.
func FindCompany(name string) (Company, bool) {
	for _, c := range companies {
		if c.Name == name {
			return c, true
		}
	}
	return Company{}, false
}

type Eligibility struct {
	CGPA     float64 `json:"cgpa"`
	Cutoff   float64 `json:"cutoff"`
	Eligible bool    `json:"eligible"`
	Gap      float64 `json:"gap"` // absolute distance to the cutoff
	NoCutoff bool    `json:"no_cutoff"`
}

func CheckEligibility(cgpa, cutoff float64) Eligibility {
	return Eligibility{
		CGPA:     cgpa,
		Cutoff:   cutoff,
		Eligible: cgpa >= cutoff,
		Gap:      Round2(math.Abs(cutoff - cgpa)),
		NoCutoff: cutoff == 0,
	}
}
