package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_TypicalTranscriptLines(t *testing.T) {
	text := "ENGL 101 First-Year Composition 3.00 A\n" +
		"MATH 112 College Algebra 3.00 B+"

	got := Parse(text)
	require.Len(t, got, 2)

	assert.Equal(t, "ENGL 101", got[0].Code)
	assert.Equal(t, 3.0, got[0].Units)
	assert.Equal(t, "A", got[0].Grade)

	assert.Equal(t, "MATH 112", got[1].Code)
	assert.Equal(t, "B+", got[1].Grade)
}

func TestParse_UnitMarkerVariants(t *testing.T) {
	cases := []struct {
		line  string
		units float64
	}{
		{"ISTA 130 Computational Thinking 4 units A-", 4},
		{"SPAN 101 First Semester Spanish 4 credits B", 4},
		{"PSY 101 Intro to Psychology 3 cr B", 3},
		{"GEOG 101 Physical Geography 3.00", 3},
	}

	for _, tc := range cases {
		got := Parse(tc.line)
		require.Len(t, got, 1, tc.line)
		assert.Equal(t, tc.units, got[0].Units, tc.line)
	}
}

func TestParse_DefaultsToThreeUnits(t *testing.T) {
	got := Parse("MUS 109 Intro to Music in Western Culture")
	require.Len(t, got, 1)
	assert.Equal(t, 3.0, got[0].Units)
	assert.Empty(t, got[0].Grade)
}

func TestParse_FirstOccurrenceWins(t *testing.T) {
	text := "ENGL 101 Composition 3.00 A\nENGL 101 Composition retake 3.00 C"

	got := Parse(text)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Grade)
}

func TestParse_SuffixedCourseNumbers(t *testing.T) {
	got := Parse("MUS 160D1 American Popular Music 3.00 A\nASTR 170B1 The Physical Universe 3.00 B")
	require.Len(t, got, 2)
	assert.Equal(t, "MUS 160D1", got[0].Code)
	assert.Equal(t, "ASTR 170B1", got[1].Code)
}

func TestParse_MultipleCoursesOnOneLine(t *testing.T) {
	got := Parse("ENGL 101 and MATH 112 were both great")
	require.Len(t, got, 2)
	assert.Equal(t, "ENGL 101", got[0].Code)
	assert.Equal(t, "MATH 112", got[1].Code)
}

func TestParse_GradeSearchedAfterCodeOnly(t *testing.T) {
	// The department letters before the code must not read as a grade.
	got := Parse("Course: FREN 101, grade B")
	require.Len(t, got, 1)
	assert.Equal(t, "FREN 101", got[0].Code)
	assert.Equal(t, "B", got[0].Grade)
}

func TestParse_NoCoursesOrEmptyInput(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("   \n\t"))
	assert.Empty(t, Parse("no course codes in this sentence"))
}
