package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSGPA(t *testing.T) {
	cases := []struct {
		name     string
		subjects []Subject
		want     SGPAResult
	}{
		{
			name:     "single rounding after division",
			subjects: []Subject{subj("a", GradeO, 3), subj("b", GradeB, 1)},
			want:     SGPAResult{SGPA: 9.0, TotalCredits: 4, EarnedCredits: 4},
		},
		{
			name:     "repeating fraction",
			subjects: []Subject{subj("a", GradeO, 3), subj("b", GradeA, 3), subj("c", GradeB, 1)},
			want:     SGPAResult{SGPA: 8.57, TotalCredits: 7, EarnedCredits: 7},
		},
		{
			name:     "failed and absent count as lost",
			subjects: []Subject{subj("a", GradeO, 3), subj("b", GradeF, 2), subj("c", GradeAb, 1)},
			want:     SGPAResult{SGPA: 5.0, TotalCredits: 6, EarnedCredits: 3, LostCredits: 3},
		},
		{
			name:     "zero credit subject ignored",
			subjects: []Subject{subj("a", GradeA, 4), subj("mc", GradeF, 0)},
			want:     SGPAResult{SGPA: 8.0, TotalCredits: 4, EarnedCredits: 4},
		},
		{
			name:     "half credits",
			subjects: []Subject{subj("lab", GradeO, 1.5), subj("th", GradeC, 3)},
			want:     SGPAResult{SGPA: 6.67, TotalCredits: 4.5, EarnedCredits: 4.5},
		},
		{name: "empty", subjects: nil, want: SGPAResult{}},
		{name: "only zero credits", subjects: []Subject{subj("mc", GradeO, 0)}, want: SGPAResult{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeSGPA(tc.subjects))
		})
	}
}

func TestComputeSGPABoundsAndCreditBalance(t *testing.T) {
	grades := Grades()
	for i := range grades {
		for j := range grades {
			for _, cr := range []float64{1, 1.5, 3, 4} {
				subjects := []Subject{
					subj("x", grades[i], cr),
					subj("y", grades[j], 5-cr),
					subj("z", grades[(i+j)%len(grades)], 2),
				}
				r := ComputeSGPA(subjects)
				assert.GreaterOrEqual(t, r.SGPA, 0.0)
				assert.LessOrEqual(t, r.SGPA, 10.0)
				assert.InDelta(t, r.TotalCredits, r.EarnedCredits+r.LostCredits, 1e-9)
			}
		}
	}
}

func TestResolveSemesterSGPA(t *testing.T) {
	t.Run("manual wins over subjects", func(t *testing.T) {
		sem := manual(1, 1, 7.25)
		sem.Subjects = []Subject{subj("a", GradeO, 4)}
		assert.Equal(t, 7.25, ResolveSemesterSGPA(sem))
	})

	t.Run("manual without value", func(t *testing.T) {
		sem := manual(1, 1, 0)
		sem.ManualSGPA = nil
		assert.Equal(t, 0.0, ResolveSemesterSGPA(sem))
	})

	t.Run("first positive official value", func(t *testing.T) {
		sem := detailed(1, 1, subj("a", GradeO, 4), subj("b", GradeO, 4), subj("c", GradeO, 4))
		sem.Subjects[0].OfficialSGPA = fp(0)
		sem.Subjects[1].OfficialSGPA = fp(8.69)
		sem.Subjects[2].OfficialSGPA = fp(7.0)
		assert.Equal(t, 8.69, ResolveSemesterSGPA(sem))
	})

	t.Run("detailed ignores manual value", func(t *testing.T) {
		sem := detailed(1, 1, subj("a", GradeA, 4))
		sem.ManualSGPA = fp(9.9)
		assert.Equal(t, 8.0, ResolveSemesterSGPA(sem))
	})

	t.Run("computed fallback", func(t *testing.T) {
		sem := detailed(1, 1, subj("a", GradeO, 3), subj("b", GradeB, 1))
		assert.Equal(t, 9.0, ResolveSemesterSGPA(sem))
	})
}

func TestSemesterCredits(t *testing.T) {
	assert.Equal(t, float64(StandardCredits), SemesterCredits(manual(2, 1, 8)))
	assert.Equal(t, 7.5, SemesterCredits(detailed(2, 1, subj("a", GradeA, 4), subj("b", GradeF, 3.5), subj("mc", GradeO, 0))))
	assert.Equal(t, 0.0, SemesterCredits(detailed(2, 1)))
}

func TestIsEmptySemester(t *testing.T) {
	assert.True(t, IsEmptySemester(detailed(1, 1)))
	assert.True(t, IsEmptySemester(manual(1, 1, 0)))
	assert.True(t, IsEmptySemester(detailed(1, 1, subj("a", GradeF, 4))))
	assert.False(t, IsEmptySemester(manual(1, 1, 6.5)))
	assert.False(t, IsEmptySemester(detailed(1, 1, subj("a", GradeC, 4))))
}
