package advisor

import (
	"fmt"
	"strings"

	"github.com/coursecompass/compass/internal/domain/profile"
	"github.com/coursecompass/compass/internal/domain/progress"
)

// BuildSystemPrompt renders the advisor's system prompt: the student's
// profile summary, their completed courses, and current gen ed numbers.
func BuildSystemPrompt(p *profile.StudentProfile) string {
	gened := progress.CalculateGenEd(p)

	interests := p.Interests
	if interests == "" {
		interests = "Not specified"
	}

	var completed strings.Builder
	for _, c := range p.CompletedCourses {
		completed.WriteString("- " + c.Code)
		if c.Grade != "" {
			completed.WriteString(" (" + c.Grade + ")")
		}
		completed.WriteString("\n")
	}
	completedList := strings.TrimRight(completed.String(), "\n")
	if completedList == "" {
		completedList = "None yet"
	}

	return fmt.Sprintf(`You are CourseCompass AI, an academic advisor for University of Arizona undergraduates. You help students plan their courses strategically.

## Current Student Profile
- Name: %s
- Major: %s
- Interests: %s
- Planning Semester: %s
- Catalog Year: %s

## Completed Courses (%d)
%s

## Gen Ed Progress
- Foundations: %d/%d
- Second Language: %d/%d
- UNIV: %d/%d
- Exploring Perspectives: %d/%d domains satisfied
- Building Connections: %s/%s units

## Guidelines
- Give specific, actionable course recommendations using UA course codes
- Consider the student's interests and career goals when recommending gen eds
- Highlight double-dip opportunities (courses that satisfy multiple requirements)
- Keep responses concise and practical
- When unsure about current offerings, say so and suggest the student verify on UAccess`,
		p.Name,
		strings.Join(p.Majors, ", "),
		interests,
		p.PlanSemester,
		p.CatalogYear,
		len(p.CompletedCourses),
		completedList,
		gened.FoundationsComplete, gened.FoundationsTotal,
		gened.LanguageComplete, gened.LanguageTotal,
		gened.UnivComplete, gened.UnivTotal,
		gened.EPDomainsComplete, gened.EPDomainsTotal,
		formatUnits(gened.BCUnitsComplete), formatUnits(gened.BCUnitsTotal),
	)
}

// formatUnits renders whole unit counts without a decimal point.
func formatUnits(u float64) string {
	return fmt.Sprintf("%g", u)
}
