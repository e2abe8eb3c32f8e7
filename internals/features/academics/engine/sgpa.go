package engine

// ComputeSGPA returns the credit-weighted grade point average of a subject list.
// Zero-credit subjects are ignored; an empty list yields the zero result.
// Rounding happens once, after the division.
func ComputeSGPA(subjects []Subject) SGPAResult {
	var res SGPAResult
	var weighted float64

	for _, s := range subjects {
		if s.Credits <= 0 {
			continue
		}
		// unknown grades weigh as 0 points; callers validate grades before this point
		weighted += s.Credits * float64(gradePoints[s.Grade])
		res.TotalCredits += s.Credits

		if s.Grade.IsBacklog() {
			res.LostCredits += s.Credits
		} else {
			res.EarnedCredits += s.Credits
		}
	}

	if res.TotalCredits == 0 {
		return SGPAResult{}
	}
	res.SGPA = Round2(weighted / res.TotalCredits)
	return res
}

// ResolveSemesterSGPA picks the SGPA of a semester.
// Precedence: manual entry, then the first positive official SGPA, then recomputation.
func ResolveSemesterSGPA(sem Semester) float64 {
	if sem.Mode == ModeManual {
		if sem.ManualSGPA == nil {
			return 0
		}
		return *sem.ManualSGPA
	}

	for _, s := range sem.Subjects {
		if s.OfficialSGPA != nil && *s.OfficialSGPA > 0 {
			return *s.OfficialSGPA
		}
	}

	return ComputeSGPA(sem.Subjects).SGPA
}

// SemesterCredits is the credit weight of a semester in cumulative averages:
// StandardCredits for manual entries, the positive-credit total otherwise.
func SemesterCredits(sem Semester) float64 {
	if sem.Mode == ModeManual {
		return StandardCredits
	}
	return ComputeSGPA(sem.Subjects).TotalCredits
}

// IsEmptySemester reports whether a semester has no usable data.
func IsEmptySemester(sem Semester) bool {
	return !countsTowardCGPA(sem)
}

func countsTowardCGPA(sem Semester) bool {
	if sem.Mode == ModeManual {
		return sem.ManualSGPA != nil && *sem.ManualSGPA > 0
	}
	return len(sem.Subjects) > 0 && ResolveSemesterSGPA(sem) > 0
}
