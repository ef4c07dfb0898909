package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coursecompass/compass/internal/domain/profile"
	"github.com/coursecompass/compass/pkg/clock"
)

func profileWithUnits(completed, current float64) *profile.StudentProfile {
	p := &profile.StudentProfile{}
	if completed > 0 {
		p.CompletedCourses = []profile.CompletedCourse{{Code: "AGG 100", Units: completed}}
	}
	if current > 0 {
		p.CurrentCourses = []profile.CompletedCourse{{Code: "AGG 200", Units: current}}
	}
	return p
}

func TestEstimateGraduation_OneSemesterLeft(t *testing.T) {
	p := profileWithUnits(90, 15)

	// March: the current Spring is still completable.
	got := EstimateGraduation(p, clock.At(2026, 3, 10))
	assert.Equal(t, 15.0, got.RemainingUnits)
	assert.Equal(t, 1, got.SemestersNeeded)
	assert.Equal(t, "May 2026", got.Label)
	assert.Equal(t, 88, got.Percent)
	assert.False(t, got.Ready)
}

func TestEstimateGraduation_TermBoundaries(t *testing.T) {
	p := profileWithUnits(105, 0)

	cases := []struct {
		name  string
		clk   clock.Clock
		label string
	}{
		{"before May targets current Spring", clock.At(2026, 4, 30), "May 2026"},
		{"summer targets the coming Fall", clock.At(2026, 6, 15), "Dec 2026"},
		{"fall targets next Spring", clock.At(2026, 9, 1), "May 2027"},
		{"late December still targets next Spring", clock.At(2026, 12, 31), "May 2027"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EstimateGraduation(p, tc.clk)
			assert.Equal(t, tc.label, got.Label)
		})
	}
}

func TestEstimateGraduation_MultipleSemestersWalkTheCadence(t *testing.T) {
	// 30 units at 15 per semester: two terms out from March is the Fall.
	got := EstimateGraduation(profileWithUnits(90, 0), clock.At(2026, 3, 1))
	assert.Equal(t, 2, got.SemestersNeeded)
	assert.Equal(t, "Dec 2026", got.Label)

	// 64 units: five terms out from March 2026 lands on Spring 2028.
	got = EstimateGraduation(profileWithUnits(44, 12), clock.At(2026, 3, 1))
	assert.Equal(t, 5, got.SemestersNeeded)
	assert.Equal(t, "May 2028", got.Label)
}

func TestEstimateGraduation_Ready(t *testing.T) {
	got := EstimateGraduation(profileWithUnits(120, 0), clock.At(2026, 3, 1))
	assert.True(t, got.Ready)
	assert.Equal(t, "Ready", got.Label)
	assert.Equal(t, 100, got.Percent)
	assert.Equal(t, 0.0, got.RemainingUnits)

	// Units beyond the requirement clamp to zero remaining.
	got = EstimateGraduation(profileWithUnits(130, 6), clock.At(2026, 3, 1))
	assert.True(t, got.Ready)
}

func TestEstimateGraduation_PartialSemesterRoundsUp(t *testing.T) {
	// 16 remaining units still need two full-time semesters.
	got := EstimateGraduation(profileWithUnits(104, 0), clock.At(2026, 3, 1))
	assert.Equal(t, 2, got.SemestersNeeded)
}
