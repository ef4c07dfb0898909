// Package progress contains the requirement evaluation engine: pure functions
// mapping a student profile against the bundled catalog data. Every function
// here is deterministic, side-effect free, and safe to call on every render.
package progress

import (
	"math"

	"github.com/coursecompass/compass/internal/domain/catalog"
	"github.com/coursecompass/compass/internal/domain/profile"
)

// CompletedForDomain returns the completed course codes that carry the given
// domain tag, in completion order.
func CompletedForDomain(p *profile.StudentProfile, key catalog.DomainKey) []string {
	domainCodes := make(map[string]bool)
	for _, c := range catalog.CoursesForDomain(key) {
		domainCodes[c.Code] = true
	}

	var out []string
	for _, c := range p.CompletedCourses {
		if domainCodes[c.Code] {
			out = append(out, c.Code)
		}
	}
	return out
}

// DomainUnitsCompleted sums the catalog units of completed courses tagged with
// the domain. Unit counts come from the catalog table, not the logged course,
// so imported courses with guessed units do not skew domain progress.
func DomainUnitsCompleted(p *profile.StudentProfile, key catalog.DomainKey) float64 {
	completed := make(map[string]bool)
	for _, code := range CompletedForDomain(p, key) {
		completed[code] = true
	}

	var sum float64
	for _, c := range catalog.CoursesForDomain(key) {
		if completed[c.Code] {
			sum += c.Units
		}
	}
	return sum
}

// IsDomainSatisfied reports whether the summed units for the domain meet its
// minimum. Only the unit sum is checked, not the course count: one 4-unit
// Artist course satisfies the 3-unit Artist minimum alone. This mirrors the
// published checklist behavior and is covered by tests as a policy choice.
func IsDomainSatisfied(p *profile.StudentProfile, key catalog.DomainKey) bool {
	info, ok := catalog.DomainByKey(key)
	if !ok {
		return false
	}
	return DomainUnitsCompleted(p, key) >= info.MinUnits
}

// GenEdProgress is the computed gen ed view-model.
type GenEdProgress struct {
	FoundationsComplete int
	FoundationsTotal    int

	LanguageComplete int
	LanguageTotal    int

	UnivComplete int
	UnivTotal    int

	EPDomainsComplete int
	EPDomainsTotal    int

	BCUnitsComplete float64
	BCUnitsTotal    float64

	// OverallPercent is round(100 x completed / 14) over the fixed
	// 14-slot model: 3 foundations + 2 language + 2 seminars + 4 EP
	// domains + 3 BC slots.
	OverallPercent int
}

// CalculateGenEd computes the five-bucket gen ed progress summary. Foundations,
// language, and seminar counts come from the explicit checklist; EP and BC come
// from completed courses against the catalog.
func CalculateGenEd(p *profile.StudentProfile) GenEdProgress {
	checks := p.GenEdChecks

	foundations := 0
	for _, done := range []bool{checks.Engl101, checks.Engl102, checks.Math} {
		if done {
			foundations++
		}
	}

	language := 0
	for _, done := range []bool{checks.Lang1, checks.Lang2} {
		if done {
			language++
		}
	}

	univ := 0
	for _, done := range []bool{checks.Univ101, checks.Univ301} {
		if done {
			univ++
		}
	}

	epComplete := 0
	for _, d := range catalog.EPDomains {
		if IsDomainSatisfied(p, d.Key) {
			epComplete++
		}
	}

	bcUnits := DomainUnitsCompleted(p, catalog.DomainBuildingConnections)

	// BC contributes floor(units/3) slots, capped at 3.
	bcSlots := int(math.Floor(bcUnits / 3))
	if bcSlots > 3 {
		bcSlots = 3
	}

	totalSlots := 3 + 2 + 2 + len(catalog.EPDomains) + 3
	completedSlots := foundations + language + univ + epComplete + bcSlots

	return GenEdProgress{
		FoundationsComplete: foundations,
		FoundationsTotal:    3,
		LanguageComplete:    language,
		LanguageTotal:       catalog.LanguageSemesters,
		UnivComplete:        univ,
		UnivTotal:           2,
		EPDomainsComplete:   epComplete,
		EPDomainsTotal:      len(catalog.EPDomains),
		BCUnitsComplete:     bcUnits,
		BCUnitsTotal:        catalog.BCUnitTarget,
		OverallPercent:      roundPercent(completedSlots, totalSlots),
	}
}

// roundPercent returns round(100 x part / whole), 0 when whole is 0.
func roundPercent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
