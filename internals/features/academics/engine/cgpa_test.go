package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCGPA(t *testing.T) {
	t.Run("credit weighted across detailed semesters", func(t *testing.T) {
		sems := []Semester{
			detailed(1, 1, subj("a", GradeO, 3), subj("b", GradeB, 1)), // 9.0 over 4
			detailed(1, 2, subj("c", GradeA, 4)),                       // 8.0 over 4
			detailed(2, 1),
		}
		assert.Equal(t, CGPAResult{CGPA: 8.5, TotalCredits: 8, Percentage: 80}, ComputeCGPA(sems))
	})

	t.Run("manual semester weighs standard credits", func(t *testing.T) {
		sems := []Semester{
			manual(1, 1, 8.0),
			detailed(1, 2, subj("a", GradeO, 10)),
		}
		got := ComputeCGPA(sems)
		assert.Equal(t, 8.67, got.CGPA)
		assert.Equal(t, 30.0, got.TotalCredits)
		assert.Equal(t, 81.7, got.Percentage)
	})

	t.Run("official semester SGPA takes precedence", func(t *testing.T) {
		sems := []Semester{
			withOfficial(detailed(1, 1, subj("a", GradeO, 2), subj("b", GradeO, 2)), 8.69),
		}
		got := ComputeCGPA(sems)
		assert.Equal(t, 8.69, got.CGPA)
		assert.Equal(t, 4.0, got.TotalCredits)
	})

	t.Run("empty and zero semesters excluded", func(t *testing.T) {
		sems := []Semester{
			manual(1, 1, 0),
			detailed(1, 2),
			detailed(2, 1, subj("a", GradeF, 3)),
			manual(2, 2, 7.0),
		}
		assert.Equal(t, CGPAResult{CGPA: 7.0, TotalCredits: 20, Percentage: 65}, ComputeCGPA(sems))
	})

	t.Run("no data", func(t *testing.T) {
		assert.Equal(t, CGPAResult{}, ComputeCGPA(nil))
		assert.Equal(t, CGPAResult{}, ComputeCGPA(NewRecord(R22).Semesters))
	})

	t.Run("official value on zero credit subjects only", func(t *testing.T) {
		sems := []Semester{withOfficial(detailed(1, 1, subj("mc", GradeO, 0)), 8.0)}
		assert.Equal(t, CGPAResult{}, ComputeCGPA(sems))
	})
}

func TestComputeCGPAIdempotent(t *testing.T) {
	sems := []Semester{
		detailed(1, 1, subj("a", GradeAPlus, 3), subj("b", GradeBPlus, 4), subj("c", GradeC, 1.5)),
		manual(1, 2, 7.84),
		withOfficial(detailed(2, 1, subj("d", GradeA, 3)), 8.12),
	}
	first := ComputeCGPA(sems)
	second := ComputeCGPA(sems)
	assert.Equal(t, first, second)
}

func TestDisplayCGPA(t *testing.T) {
	rec := NewRecord(R18)
	rec.Semesters[0] = detailed(1, 1, subj("a", GradeO, 3), subj("b", GradeB, 1))
	rec.Semesters[1] = detailed(1, 2, subj("c", GradeA, 4))

	t.Run("without override", func(t *testing.T) {
		got := DisplayCGPA(rec)
		assert.False(t, got.Official)
		assert.Equal(t, 8.5, got.CGPA)
		assert.Equal(t, 80.0, got.Percentage)
	})

	t.Run("override replaces cgpa but not credits", func(t *testing.T) {
		r := rec
		r.OfficialCGPA = fp(7.69)
		got := DisplayCGPA(r)
		assert.True(t, got.Official)
		assert.Equal(t, 7.69, got.CGPA)
		assert.Equal(t, 71.9, got.Percentage)
		assert.Equal(t, 8.0, got.TotalCredits)
	})

	t.Run("non-positive override ignored", func(t *testing.T) {
		r := rec
		r.OfficialCGPA = fp(0)
		got := DisplayCGPA(r)
		assert.False(t, got.Official)
		assert.Equal(t, 8.5, got.CGPA)
	})
}

func TestPerformanceCategory(t *testing.T) {
	cases := map[float64]string{
		9.7:  "Outstanding",
		9.5:  "Outstanding",
		9.2:  "Excellent",
		8.0:  "Very Good",
		7.99: "Good",
		6.5:  "Above Average",
		5.0:  "Average",
		4.9:  "Below Average",
		0:    "Below Average",
	}
	for cgpa, want := range cases {
		assert.Equal(t, want, PerformanceCategory(cgpa), "cgpa=%v", cgpa)
	}
}
