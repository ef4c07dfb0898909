package progress

import (
	"math"

	"github.com/coursecompass/compass/internal/domain/catalog"
	"github.com/coursecompass/compass/internal/domain/profile"
)

// estimateTotalCourses is the nominal course count used for unrecognized
// majors. Completed counts are capped against it so the estimate percent
// never exceeds 100.
const estimateTotalCourses = 15

// MajorProgress is the computed progress for one declared major.
type MajorProgress struct {
	Name             string
	CompletedCourses int
	TotalCourses     int
	Percent          int

	// Known is false when the major is not a fully modeled program and the
	// numbers are the generic estimate. Callers should present estimate
	// mode without false precision.
	Known bool
}

// CalculateMajor evaluates a declared major by free-text name. Recognized
// programs get the modeled requirement algorithm; everything else falls back
// to the estimate heuristic with Known=false.
func CalculateMajor(p *profile.StudentProfile, majorName string) MajorProgress {
	m, ok := catalog.MajorByName(majorName)
	if !ok {
		completed := len(p.CompletedCourses)
		if completed > estimateTotalCourses {
			completed = estimateTotalCourses
		}
		percent := int(math.Round(float64(len(p.CompletedCourses)) / estimateTotalCourses * 100))
		if percent > 100 {
			percent = 100
		}
		return MajorProgress{
			Name:             majorName,
			CompletedCourses: completed,
			TotalCourses:     estimateTotalCourses,
			Percent:          percent,
			Known:            false,
		}
	}

	completedCodes := p.CompletedCodes()

	required := m.RequiredCodes()
	completedReq := 0
	for _, code := range required {
		if completedCodes[code] {
			completedReq++
		}
	}

	_, emphasisComplete := BestEmphasis(p, m)
	if emphasisComplete > 3 {
		emphasisComplete = 3
	}

	total := len(required) + m.ElectiveSlots() + m.EmphasisSlots
	completed := completedReq + emphasisComplete

	return MajorProgress{
		Name:             majorName,
		CompletedCourses: completed,
		TotalCourses:     total,
		Percent:          roundPercent(completed, total),
		Known:            true,
	}
}

// BestEmphasis returns the emphasis track with the highest completed-course
// overlap, along with the overlap count. Ties keep the first track in the
// major's stable declaration order.
func BestEmphasis(p *profile.StudentProfile, m *catalog.MajorRequirements) (catalog.EmphasisTrack, int) {
	completedCodes := p.CompletedCodes()

	var best catalog.EmphasisTrack
	bestCount := -1
	for _, emp := range m.Emphases {
		count := 0
		for _, code := range emp.Courses {
			if completedCodes[code] {
				count++
			}
		}
		if count > bestCount {
			best = emp
			bestCount = count
		}
	}
	if bestCount < 0 {
		return catalog.EmphasisTrack{}, 0
	}
	return best, bestCount
}

// MinorProgress is the computed progress for one selected minor.
type MinorProgress struct {
	Name           string
	CompletedUnits float64
	TotalUnits     float64
	Percent        int
	Known          bool
}

// CalculateMinor evaluates a minor by exact lowercase name against the static
// registry. Unknown minors report a fixed 0-of-18-unit default with
// Known=false rather than an error.
func CalculateMinor(p *profile.StudentProfile, minorName string) MinorProgress {
	m, ok := catalog.MinorByName(minorName)
	if !ok {
		return MinorProgress{
			Name:       minorName,
			TotalUnits: 18,
			Known:      false,
		}
	}

	counted := make(map[string]bool, len(m.CountedCourses))
	for _, code := range m.CountedCourses {
		counted[code] = true
	}

	var units float64
	for _, c := range p.CompletedCourses {
		if counted[c.Code] {
			units += c.Units
		}
	}

	return MinorProgress{
		Name:           minorName,
		CompletedUnits: units,
		TotalUnits:     m.TotalUnits,
		Percent:        int(math.Round(units / m.TotalUnits * 100)),
		Known:          true,
	}
}

// RequirementCourse is one course inside a breakdown group with its
// completion flag.
type RequirementCourse struct {
	Code string
	Name string
	Done bool
}

// RequirementGroup is a labeled list of requirement courses.
type RequirementGroup struct {
	Label   string
	Courses []RequirementCourse
}

// MajorBreakdown is the detailed per-course view of a recognized major.
type MajorBreakdown struct {
	Name   string
	Known  bool
	Groups []RequirementGroup
}

// MajorRequirementBreakdown uses the same recognition as CalculateMajor but
// emits the structured group list (core, additional required, best-matching
// emphasis) with per-course done flags for detailed display. Unrecognized
// majors return Known=false with no groups.
func MajorRequirementBreakdown(p *profile.StudentProfile, majorName string) MajorBreakdown {
	m, ok := catalog.MajorByName(majorName)
	if !ok {
		return MajorBreakdown{Name: majorName, Known: false}
	}

	completedCodes := p.CompletedCodes()

	group := func(label string, courses []catalog.Course) RequirementGroup {
		g := RequirementGroup{Label: label}
		for _, c := range courses {
			g.Courses = append(g.Courses, RequirementCourse{
				Code: c.Code,
				Name: c.Name,
				Done: completedCodes[c.Code],
			})
		}
		return g
	}

	best, _ := BestEmphasis(p, m)
	emphasisGroup := RequirementGroup{Label: "Emphasis: " + best.Name}
	for _, code := range best.Courses {
		emphasisGroup.Courses = append(emphasisGroup.Courses, RequirementCourse{
			Code: code,
			Done: completedCodes[code],
		})
	}

	return MajorBreakdown{
		Name:  m.Name,
		Known: true,
		Groups: []RequirementGroup{
			group("Core", m.Core),
			group("Additional Required", m.AdditionalRequired),
			emphasisGroup,
		},
	}
}
