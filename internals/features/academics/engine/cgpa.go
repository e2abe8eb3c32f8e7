package engine

// ledger accumulates Σ sgpa·credits and Σ credits over the semesters that count.
func ledger(semesters []Semester) (weightedSum, totalCredits float64, counted int) {
	for _, sem := range semesters {
		if !countsTowardCGPA(sem) {
			continue
		}
		credits := SemesterCredits(sem)
		weightedSum += ResolveSemesterSGPA(sem) * credits
		totalCredits += credits
		counted++
	}
	return weightedSum, totalCredits, counted
}

// ComputeCGPA returns the credit-weighted cumulative GPA of the given semesters.
// It never looks at an official CGPA; see DisplayCGPA.
func ComputeCGPA(semesters []Semester) CGPAResult {
	sum, credits, counted := ledger(semesters)
	if counted == 0 || credits == 0 {
		return CGPAResult{}
	}

	cgpa := Round2(sum / credits)
	return CGPAResult{
		CGPA:         cgpa,
		TotalCredits: credits,
		Percentage:   PercentageFromGPA(cgpa),
	}
}

// DisplayCGPA applies the record's official CGPA, when positive, over the
// computed value. TotalCredits stays the recomputed total.
func DisplayCGPA(rec AcademicRecord) DisplayResult {
	out := DisplayResult{CGPAResult: ComputeCGPA(rec.Semesters)}
	if rec.OfficialCGPA != nil && *rec.OfficialCGPA > 0 {
		out.CGPA = *rec.OfficialCGPA
		out.Percentage = PercentageFromGPA(*rec.OfficialCGPA)
		out.Official = true
	}
	return out
}

// PerformanceCategory buckets a CGPA into the university's descriptive bands.
func PerformanceCategory(cgpa float64) string {
	switch {
	case cgpa >= 9.5:
		return "Outstanding"
	case cgpa >= 9.0:
		return "Excellent"
	case cgpa >= 8.0:
		return "Very Good"
	case cgpa >= 7.0:
		return "Good"
	case cgpa >= 6.0:
		return "Above Average"
	case cgpa >= 5.0:
		return "Average"
	default:
		return "Below Average"
	}
}
