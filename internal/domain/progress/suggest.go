package progress

import (
	"sort"
	"strings"

	"github.com/coursecompass/compass/internal/domain/catalog"
	"github.com/coursecompass/compass/internal/domain/profile"
)

// SuggestedMinor is one minor suggestion with its human-readable reason and
// the number of completed-course department overlaps.
type SuggestedMinor struct {
	Name    string
	Reason  string
	Overlap int
}

// SuggestMinors scores every candidate minor not already selected and returns
// the top three by descending relevance. The score is 3 per interest-keyword
// substring match, 2 per major-keyword match, and 2 per department-prefix
// overlap with completed courses; only candidates scoring above zero are
// kept. The computation is greedy and stateless, re-run on every call, and
// deterministic for identical inputs.
func SuggestMinors(p *profile.StudentProfile) []SuggestedMinor {
	selected := make(map[string]bool, len(p.SelectedMinors))
	for _, m := range p.SelectedMinors {
		selected[strings.ToLower(m)] = true
	}

	interests := strings.ToLower(p.Interests)
	majors := strings.ToLower(strings.Join(p.Majors, " "))
	completedDepts := p.CompletedDepartments()

	type scored struct {
		SuggestedMinor
		score int
	}
	var candidates []scored

	for _, minor := range catalog.SuggestionCandidates {
		if selected[strings.ToLower(minor.Name)] {
			continue
		}

		score := 0
		var reasons []string

		interestMatches := 0
		for _, kw := range minor.Keywords {
			if strings.Contains(interests, kw) {
				interestMatches++
			}
		}
		if interestMatches > 0 {
			score += interestMatches * 3
			reasons = append(reasons, "Matches your interests")
		}

		majorMatches := 0
		for _, kw := range minor.MajorKeywords {
			if strings.Contains(majors, kw) {
				majorMatches++
			}
		}
		if majorMatches > 0 {
			score += majorMatches * 2
			reasons = append(reasons, "Complements your major")
		}

		deptOverlap := 0
		for _, d := range minor.DeptPrefixes {
			if completedDepts[d] {
				deptOverlap++
			}
		}
		if deptOverlap > 0 {
			score += deptOverlap * 2
			reasons = append(reasons, "You already have related courses")
		}

		if score > 0 {
			reason := minor.Description
			if len(reasons) > 0 {
				reason = reasons[0]
			}
			candidates = append(candidates, scored{
				SuggestedMinor: SuggestedMinor{
					Name:    minor.Name,
					Reason:  reason,
					Overlap: deptOverlap,
				},
				score: score,
			})
		}
	}

	// Stable sort keeps candidate-table order on score ties.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > 3 {
		candidates = candidates[:3]
	}
	out := make([]SuggestedMinor, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.SuggestedMinor)
	}
	return out
}
