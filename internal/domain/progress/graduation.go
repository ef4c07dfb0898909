package progress

import (
	"fmt"
	"math"
	"time"

	"github.com/coursecompass/compass/internal/domain/catalog"
	"github.com/coursecompass/compass/internal/domain/profile"
	"github.com/coursecompass/compass/pkg/clock"
)

// Term is an academic term in the Spring/Fall cadence used for estimates.
type Term struct {
	Spring bool
	Year   int
}

// Label formats the term as its commencement month, "May 2027" or "Dec 2026".
func (t Term) Label() string {
	if t.Spring {
		return fmt.Sprintf("May %d", t.Year)
	}
	return fmt.Sprintf("Dec %d", t.Year)
}

// next returns the following term in the alternating cadence.
func (t Term) next() Term {
	if t.Spring {
		return Term{Spring: false, Year: t.Year}
	}
	return Term{Spring: true, Year: t.Year + 1}
}

// GraduationEstimate is the dashboard graduation projection.
type GraduationEstimate struct {
	RemainingUnits  float64
	SemestersNeeded int
	Label           string
	Percent         int
	Ready           bool
}

// EstimateGraduation projects the graduation term from remaining units at a
// nominal full-time load. In-progress units count as earned. The calculation
// depends on the evaluation-time date, so the clock is injected rather than
// read ambiently.
func EstimateGraduation(p *profile.StudentProfile, clk clock.Clock) GraduationEstimate {
	remaining := catalog.TotalGraduationUnits - p.CompletedUnits() - p.CurrentUnits()
	if remaining < 0 {
		remaining = 0
	}
	if remaining == 0 {
		return GraduationEstimate{Label: "Ready", Percent: 100, Ready: true}
	}

	semesters := int(math.Ceil(remaining / catalog.NominalUnitsPerSemester))

	term := nextTermBoundary(clk.Now())
	for i := 1; i < semesters; i++ {
		term = term.next()
	}

	percent := int(math.Round((catalog.TotalGraduationUnits - remaining) / catalog.TotalGraduationUnits * 100))
	if percent > 100 {
		percent = 100
	}

	return GraduationEstimate{
		RemainingUnits:  remaining,
		SemestersNeeded: semesters,
		Label:           term.Label(),
		Percent:         percent,
	}
}

// nextTermBoundary picks the first term a student could still complete:
// before May it is the current Spring, before August the coming Fall, and
// from August on the Spring of the next year.
func nextTermBoundary(now time.Time) Term {
	month := int(now.Month())
	switch {
	case month < 5:
		return Term{Spring: true, Year: now.Year()}
	case month < 8:
		return Term{Spring: false, Year: now.Year()}
	default:
		return Term{Spring: true, Year: now.Year() + 1}
	}
}
