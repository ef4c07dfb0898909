package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursecompass/compass/internal/domain/profile"
)

// sophomoreProfile mirrors a BSIS student three semesters in: gen ed
// foundations done, Artist and Social Scientist satisfied, Music minor.
func sophomoreProfile() *profile.StudentProfile {
	p := &profile.StudentProfile{
		Majors:         []string{"BS Information Science"},
		Interests:      "I want to work in AI and music technology. Interested in how data science can be applied to creative industries.",
		SelectedMinors: []string{"Music"},
		GenEdChecks: profile.GenEdChecks{
			Engl101: true, Engl102: true, Math: true,
			Lang1: true, Lang2: true, Univ101: true,
		},
	}
	for _, code := range []string{
		"ENGL 101", "UNIV 101", "ISTA 100", "MATH 112", "SPAN 101",
		"ENGL 102", "ISTA 116", "ISTA 130", "SPAN 102",
		"ISTA 131", "ISTA 161", "PSY 101", "MUS 109", "MUS 119",
	} {
		p.AddCompletedCourse(profile.CompletedCourse{Code: code, Units: 3})
	}
	for _, code := range []string{"ISTA 230", "PHIL 101", "GEOG 101", "ESOC 302"} {
		p.AddCurrentCourse(profile.CompletedCourse{Code: code, Units: 3})
	}
	return p
}

func TestRecommendNextCourses_PriorityOrder(t *testing.T) {
	got := RecommendNextCourses(sophomoreProfile(), 5)
	require.Len(t, got, 5)

	// The exit seminar always leads while unchecked.
	assert.Equal(t, "UNIV 301", got[0].Code)
	assert.Equal(t, 10, got[0].Priority)

	// Building Connections next; interest words in the course descriptions
	// pull the music and AI courses to the front of the table.
	assert.Equal(t, "MUS 327", got[1].Code)
	assert.Equal(t, "MUS 334", got[2].Code)
	assert.Equal(t, 8, got[1].Priority)

	// One course per unsatisfied EP domain. PHIL 101 and GEOG 101 are in
	// progress, so the next untaken course in each domain is offered.
	assert.Equal(t, "ENGL 160D1", got[3].Code)
	assert.Equal(t, "ASTR 170B1", got[4].Code)
	assert.Equal(t, 7, got[3].Priority)
}

func TestRecommendNextCourses_NoDuplicates(t *testing.T) {
	got := RecommendNextCourses(sophomoreProfile(), 20)

	seen := make(map[string]bool)
	for _, r := range got {
		assert.False(t, seen[r.Code], "duplicate recommendation %s", r.Code)
		seen[r.Code] = true
	}
}

func TestRecommendNextCourses_RespectsMax(t *testing.T) {
	assert.Len(t, RecommendNextCourses(sophomoreProfile(), 3), 3)

	// max <= 0 falls back to the default length.
	assert.Len(t, RecommendNextCourses(sophomoreProfile(), 0), DefaultRecommendationMax)
}

func TestRecommendNextCourses_SortedByPriorityDescending(t *testing.T) {
	got := RecommendNextCourses(sophomoreProfile(), 20)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Priority, got[i].Priority)
	}
}

func TestRecommendNextCourses_ExitSeminarSkippedWhenChecked(t *testing.T) {
	p := sophomoreProfile()
	p.GenEdChecks.Univ301 = true

	for _, r := range RecommendNextCourses(p, 20) {
		assert.NotEqual(t, "UNIV 301", r.Code)
	}
}

func TestRecommendNextCourses_MinorCourseIncluded(t *testing.T) {
	got := RecommendNextCourses(sophomoreProfile(), 20)

	// MUS 119 and MUS 109 are complete; the next counted Music course is
	// MUS 160D1 at minor priority.
	var found bool
	for _, r := range got {
		if r.Code == "MUS 160D1" {
			found = true
			assert.Equal(t, 4, r.Priority)
			assert.Contains(t, r.Reason, "Music minor")
		}
	}
	assert.True(t, found)
}

func TestRecommendNextCourses_InterestReorderNeverFilters(t *testing.T) {
	// No interests at all: BC candidates come straight from table order.
	p := sophomoreProfile()
	p.Interests = ""

	got := RecommendNextCourses(p, 20)
	require.GreaterOrEqual(t, len(got), 3)
	assert.Equal(t, "MUS 327", got[1].Code)
	assert.Equal(t, "MUS 334", got[2].Code)
}
