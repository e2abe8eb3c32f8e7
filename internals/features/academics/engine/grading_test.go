package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradePoint(t *testing.T) {
	want := map[Grade]int{
		GradeO: 10, GradeAPlus: 9, GradeA: 8, GradeBPlus: 7,
		GradeB: 6, GradeC: 5, GradeF: 0, GradeAb: 0,
	}
	for g, p := range want {
		got, err := GradePoint(g)
		require.NoError(t, err, g)
		assert.Equal(t, p, got, g)
	}

	_, err := GradePoint("D")
	assert.ErrorIs(t, err, ErrInvalidGrade)
}

func TestParseGrade(t *testing.T) {
	g, err := ParseGrade(" A+ ")
	require.NoError(t, err)
	assert.Equal(t, GradeAPlus, g)

	g, err = ParseGrade("Ab")
	require.NoError(t, err)
	assert.Equal(t, GradeAb, g)

	_, err = ParseGrade("a+")
	assert.ErrorIs(t, err, ErrInvalidGrade)
}

func TestGradesOrder(t *testing.T) {
	gs := Grades()
	assert.Equal(t, []Grade{GradeO, GradeAPlus, GradeA, GradeBPlus, GradeB, GradeC, GradeF, GradeAb}, gs)

	gs[0] = "X"
	assert.Equal(t, GradeO, Grades()[0], "Grades must return a copy")
}

func TestPercentageFromGPA(t *testing.T) {
	cases := []struct {
		gpa  float64
		want float64
	}{
		{8.5, 80},
		{0, 0},
		{10, 95},
		{0.3, 0},
		{7.69, 71.9},
		{-1, 0},
		{10.01, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, PercentageFromGPA(tc.gpa), "gpa=%v", tc.gpa)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 8.57, Round2(60.0/7.0))
	assert.Equal(t, 9.0, Round2(36.0/4.0))
	assert.Equal(t, -3.0, Round2(-3.0))
	assert.Equal(t, 0.13, Round2(0.125))
}

func TestValidGPA(t *testing.T) {
	assert.True(t, ValidGPA(0))
	assert.True(t, ValidGPA(10))
	assert.False(t, ValidGPA(-0.01))
	assert.False(t, ValidGPA(10.5))
}

func TestRegulations(t *testing.T) {
	c, ok := RequiredCredits(R13)
	assert.True(t, ok)
	assert.Equal(t, 216, c)

	c, ok = RequiredCredits(R22)
	assert.True(t, ok)
	assert.Equal(t, 160, c)

	_, ok = RequiredCredits("R99")
	assert.False(t, ok)

	assert.Len(t, Regulations(), 6)
}

func TestSemesterLabels(t *testing.T) {
	assert.Equal(t, "I Year I Semester", SemesterLabel(1, 1))
	assert.Equal(t, "II Year II Semester", SemesterLabel(2, 2))
	assert.Equal(t, "IV Year I Semester", SemesterLabel(4, 1))
	assert.Equal(t, "Year 5 Sem 1", SemesterLabel(5, 1))
	assert.Equal(t, "3-2", SemesterKey(3, 2))
}

func TestNewRecord(t *testing.T) {
	rec := NewRecord(R18)
	require.Len(t, rec.Semesters, 8)
	assert.Equal(t, R18, rec.Regulation)

	wantIDs := []string{"1-1", "1-2", "2-1", "2-2", "3-1", "3-2", "4-1", "4-2"}
	for i, sem := range rec.Semesters {
		assert.Equal(t, wantIDs[i], sem.ID)
		assert.Equal(t, ModeDetailed, sem.Mode)
		assert.Empty(t, sem.Subjects)
		assert.Nil(t, sem.ManualSGPA)
		assert.True(t, IsEmptySemester(sem))
	}
}
