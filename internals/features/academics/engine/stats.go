package engine

import "sort"

/* ===================== STATISTICS ===================== */

// GradeDistribution counts positive-credit subjects of detailed semesters per grade.
// Every grade is present in the result, zero when unseen.
func GradeDistribution(semesters []Semester) map[Grade]int {
	dist := make(map[Grade]int, len(gradeOrder))
	for _, g := range gradeOrder {
		dist[g] = 0
	}

	for _, sem := range semesters {
		if sem.Mode != ModeDetailed {
			continue
		}
		for _, s := range sem.Subjects {
			if s.Credits <= 0 || !s.Grade.Valid() {
				continue
			}
			dist[s.Grade]++
		}
	}
	return dist
}

// CreditStatsOf sums earned and lost credits across semesters.
// A manual semester with a positive SGPA adds StandardCredits to Earned.
func CreditStatsOf(semesters []Semester) CreditStats {
	var out CreditStats
	for _, sem := range semesters {
		switch sem.Mode {
		case ModeDetailed:
			r := ComputeSGPA(sem.Subjects)
			out.Earned += r.EarnedCredits
			out.Lost += r.LostCredits
		case ModeManual:
			if sem.ManualSGPA != nil && *sem.ManualSGPA > 0 {
				out.Earned += StandardCredits
			}
		}
	}
	return out
}

// YearlyAverages returns one credit-weighted average per academic year that has
// at least one semester with a positive SGPA, ordered by year.
func YearlyAverages(semesters []Semester) []YearlyAverage {
	type acc struct {
		sum, credits float64
		count        int
	}
	byYear := map[int]*acc{}

	for _, sem := range semesters {
		sgpa := ResolveSemesterSGPA(sem)
		if sgpa <= 0 {
			continue
		}
		credits := SemesterCredits(sem)

		a, ok := byYear[sem.Year]
		if !ok {
			a = &acc{}
			byYear[sem.Year] = a
		}
		a.sum += sgpa * credits
		a.credits += credits
		a.count++
	}

	out := make([]YearlyAverage, 0, len(byYear))
	for year, a := range byYear {
		avg := 0.0
		if a.credits > 0 {
			avg = Round2(a.sum / a.credits)
		}
		out = append(out, YearlyAverage{Year: year, Average: avg, SemesterCount: a.count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// Backlogs lists positive-credit F/Ab subjects of detailed semesters in encounter order.
func Backlogs(semesters []Semester) []Backlog {
	out := []Backlog{}
	for _, sem := range semesters {
		if sem.Mode != ModeDetailed {
			continue
		}
		for _, s := range sem.Subjects {
			if s.Credits <= 0 || !s.Grade.IsBacklog() {
				continue
			}
			status := BacklogFailed
			if s.Grade == GradeAb {
				status = BacklogAbsent
			}
			out = append(out, Backlog{
				SubjectName: s.Name,
				SubjectCode: s.Code,
				Year:        sem.Year,
				Term:        sem.Term,
				Grade:       s.Grade,
				Credits:     s.Credits,
				Status:      status,
			})
		}
	}
	return out
}

/* ===================== DEGREE PROGRESS ===================== */

// DefaultRequiredCredits is assumed when the record's regulation is unknown.
const DefaultRequiredCredits = 160

// ProgressTowardDegree compares earned credits with the regulation's requirement.
// It works on recomputed credits only, never on an official CGPA.
func ProgressTowardDegree(rec AcademicRecord) CreditProgress {
	stats := CreditStatsOf(rec.Semesters)

	required, known := RequiredCredits(rec.Regulation)
	if !known {
		required = DefaultRequiredCredits
	}

	out := CreditProgress{
		Regulation: rec.Regulation,
		Earned:     stats.Earned,
		Lost:       stats.Lost,
		Attempted:  stats.Earned + stats.Lost,
		Required:   required,
		Known:      known,
	}
	if rem := float64(required) - stats.Earned; rem > 0 {
		out.Remaining = rem
	}
	pct := Round2(stats.Earned / float64(required) * 100)
	if pct > 100 {
		pct = 100
	}
	out.Percent = pct
	return out
}
