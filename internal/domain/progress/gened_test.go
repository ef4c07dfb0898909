package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coursecompass/compass/internal/domain/catalog"
	"github.com/coursecompass/compass/internal/domain/profile"
)

func TestCalculateGenEd_EmptyProfile(t *testing.T) {
	got := CalculateGenEd(&profile.StudentProfile{})

	assert.Equal(t, 0, got.FoundationsComplete)
	assert.Equal(t, 3, got.FoundationsTotal)
	assert.Equal(t, 0, got.LanguageComplete)
	assert.Equal(t, 2, got.LanguageTotal)
	assert.Equal(t, 0, got.UnivComplete)
	assert.Equal(t, 0, got.EPDomainsComplete)
	assert.Equal(t, 4, got.EPDomainsTotal)
	assert.Equal(t, 0.0, got.BCUnitsComplete)
	assert.Equal(t, 9.0, got.BCUnitsTotal)
	assert.Equal(t, 0, got.OverallPercent)
}

func TestCalculateGenEd_FoundationsFromChecklist(t *testing.T) {
	p := &profile.StudentProfile{
		GenEdChecks: profile.GenEdChecks{Engl101: true, Engl102: true},
	}

	got := CalculateGenEd(p)
	assert.Equal(t, 2, got.FoundationsComplete)

	// Two of the fourteen slots: round(2/14 * 100) = 14.
	assert.Equal(t, 14, got.OverallPercent)
}

func TestCalculateGenEd_ChecklistNotInferredFromCourses(t *testing.T) {
	// Completing ENGL 101 as a course does not tick the checklist box.
	p := &profile.StudentProfile{
		CompletedCourses: []profile.CompletedCourse{{Code: "ENGL 101", Units: 3}},
	}

	got := CalculateGenEd(p)
	assert.Equal(t, 0, got.FoundationsComplete)
}

func TestIsDomainSatisfied_UnitSumOnly(t *testing.T) {
	// GEOS 170A1 is a single 4-unit Natural Scientist course: the 3-unit
	// domain minimum is met by one course.
	p := &profile.StudentProfile{
		CompletedCourses: []profile.CompletedCourse{{Code: "GEOS 170A1", Units: 4}},
	}

	assert.True(t, IsDomainSatisfied(p, catalog.DomainNaturalScientist))
	assert.Equal(t, 4.0, DomainUnitsCompleted(p, catalog.DomainNaturalScientist))
	assert.False(t, IsDomainSatisfied(p, catalog.DomainArtist))
}

func TestDomainUnitsCompleted_UsesCatalogUnits(t *testing.T) {
	// The logged units are wrong; the catalog's 3-unit figure is used.
	p := &profile.StudentProfile{
		CompletedCourses: []profile.CompletedCourse{{Code: "MUS 109", Units: 99}},
	}

	assert.Equal(t, 3.0, DomainUnitsCompleted(p, catalog.DomainArtist))
}

func TestCalculateGenEd_BCSlots(t *testing.T) {
	cases := []struct {
		name      string
		courses   []string
		wantUnits float64
	}{
		{"two courses give six units", []string{"MUS 327", "MUS 334"}, 6},
		{"three courses cap the slots", []string{"MUS 327", "MUS 334", "ESOC 313"}, 9},
		{"extra courses exceed the unit target", []string{"MUS 327", "MUS 334", "ESOC 313", "GWS 305"}, 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &profile.StudentProfile{}
			for _, code := range tc.courses {
				p.AddCompletedCourse(profile.CompletedCourse{Code: code, Units: 3})
			}

			got := CalculateGenEd(p)
			assert.Equal(t, tc.wantUnits, got.BCUnitsComplete)
		})
	}
}

func TestCalculateGenEd_FullChecklistAndCourses(t *testing.T) {
	p := &profile.StudentProfile{
		GenEdChecks: profile.GenEdChecks{
			Engl101: true, Engl102: true, Math: true,
			Lang1: true, Lang2: true,
			Univ101: true, Univ301: true,
		},
		CompletedCourses: []profile.CompletedCourse{
			{Code: "MUS 109", Units: 3},   // Artist
			{Code: "PHIL 101", Units: 3},  // Humanist
			{Code: "GEOG 101", Units: 3},  // Natural Scientist
			{Code: "PSY 101", Units: 3},   // Social Scientist
			{Code: "MUS 327", Units: 3},   // BC
			{Code: "ESOC 313", Units: 3},  // BC
			{Code: "GWS 305", Units: 3},   // BC
		},
	}

	got := CalculateGenEd(p)
	assert.Equal(t, 3, got.FoundationsComplete)
	assert.Equal(t, 2, got.LanguageComplete)
	assert.Equal(t, 2, got.UnivComplete)
	assert.Equal(t, 4, got.EPDomainsComplete)
	assert.Equal(t, 9.0, got.BCUnitsComplete)
	assert.Equal(t, 100, got.OverallPercent)
}

func TestCompletedForDomain_PreservesCompletionOrder(t *testing.T) {
	p := &profile.StudentProfile{
		CompletedCourses: []profile.CompletedCourse{
			{Code: "ART 130", Units: 3},
			{Code: "MUS 109", Units: 3},
			{Code: "PSY 101", Units: 3},
		},
	}

	assert.Equal(t, []string{"ART 130", "MUS 109"}, CompletedForDomain(p, catalog.DomainArtist))
}
