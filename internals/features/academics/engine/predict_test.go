package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictNextSGPA(t *testing.T) {
	cases := []struct {
		name  string
		seq   []float64
		want  float64
		slope float64
		trend PredictionTrend
	}{
		{"linear climb", []float64{6.0, 6.5, 7.0, 7.5}, 8.0, 0.5, PredictionIncreasing},
		{"clamped at 10", []float64{9.5, 9.8, 10}, 10, 0.25, PredictionIncreasing},
		{"flat", []float64{8, 8}, 8, 0, PredictionStable},
		{"falling", []float64{8, 7}, 6, -1, PredictionDecreasing},
		{"clamped at 0", []float64{4, 1}, 0, -3, PredictionDecreasing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := PredictNextSGPA(tc.seq)
			require.True(t, ok)
			assert.Equal(t, tc.want, p.PredictedSGPA)
			assert.InDelta(t, tc.slope, p.Slope, 1e-9)
			assert.Equal(t, tc.trend, p.Trend)
		})
	}

	_, ok := PredictNextSGPA([]float64{7})
	assert.False(t, ok)
}

func TestAnalyzeConsistency(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		c := AnalyzeConsistency(nil)
		assert.Equal(t, Consistency{Stability: StabilityUnknown}, c)
	})

	t.Run("uniform grades", func(t *testing.T) {
		c := AnalyzeConsistency([]Semester{detailed(1, 1, subj("a", GradeO, 3), subj("b", GradeO, 3), subj("c", GradeO, 1))})
		assert.Equal(t, 3, c.Subjects)
		assert.Equal(t, 10.0, c.Mean)
		assert.Equal(t, 0.0, c.StdDev)
		assert.Equal(t, 100, c.Score)
		assert.Equal(t, StabilityVeryHigh, c.Stability)
		assert.Equal(t, GradeO, c.DominantGrade)
	})

	t.Run("mixed grades", func(t *testing.T) {
		sems := []Semester{
			detailed(1, 1, subj("a", GradeO, 3), subj("mc", GradeF, 0)),
			detailed(1, 2, subj("b", GradeB, 3)),
			manual(2, 1, 9),
		}
		c := AnalyzeConsistency(sems)
		assert.Equal(t, 2, c.Subjects)
		assert.Equal(t, 8.0, c.Mean)
		assert.Equal(t, 2.83, c.StdDev)
		assert.Equal(t, 29, c.Score)
		assert.Equal(t, StabilityVolatile, c.Stability)
		assert.Equal(t, GradeO, c.DominantGrade, "ties go to the better grade")
	})

	t.Run("all failed", func(t *testing.T) {
		c := AnalyzeConsistency([]Semester{detailed(1, 1, subj("a", GradeF, 3), subj("b", GradeAb, 3))})
		assert.Equal(t, 0, c.Score)
		assert.Equal(t, StabilityVeryHigh, c.Stability)
		assert.Equal(t, GradeF, c.DominantGrade)
	})
}

func TestCheckEligibility(t *testing.T) {
	e := CheckEligibility(7.2, 7.5)
	assert.False(t, e.Eligible)
	assert.Equal(t, 0.3, e.Gap)
	assert.False(t, e.NoCutoff)

	e = CheckEligibility(8.0, 6.0)
	assert.True(t, e.Eligible)
	assert.Equal(t, 2.0, e.Gap)

	zoho, ok := FindCompany("Zoho")
	require.True(t, ok)
	e = CheckEligibility(5.1, zoho.Cutoff)
	assert.True(t, e.Eligible)
	assert.True(t, e.NoCutoff)

	_, ok = FindCompany("Initech")
	assert.False(t, ok)
	assert.NotEmpty(t, Companies())
}
