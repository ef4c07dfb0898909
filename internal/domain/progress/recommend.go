package progress

import (
	"sort"
	"strings"

	"github.com/coursecompass/compass/internal/domain/catalog"
	"github.com/coursecompass/compass/internal/domain/profile"
)

// DefaultRecommendationMax is the list length when the caller passes max <= 0.
const DefaultRecommendationMax = 5

// Recommendation is one suggested next course. Priority is a simple integer,
// higher wins; ties keep insertion order.
type Recommendation struct {
	Code     string
	Name     string
	Units    float64
	Priority int
	Reason   string
}

// Candidate priorities, highest first.
const (
	priorityExitSeminar   = 10
	priorityBuildingConn  = 8
	priorityEPDomain      = 7
	priorityEmphasis      = 6
	priorityMajorRequired = 5
	priorityMinor         = 4
)

// RecommendNextCourses builds the prioritized next-course list for a profile:
// the exit seminar, Building Connections gaps, unsatisfied Exploring
// Perspectives domains, emphasis and required major courses, then minor
// courses. Candidates are deduplicated by code (first occurrence wins),
// sorted by priority descending with stable insertion order on ties, and
// truncated to max.
func RecommendNextCourses(p *profile.StudentProfile, max int) []Recommendation {
	if max <= 0 {
		max = DefaultRecommendationMax
	}

	var recs []Recommendation
	seen := make(map[string]bool)
	add := func(r Recommendation) {
		if seen[r.Code] {
			return
		}
		seen[r.Code] = true
		recs = append(recs, r)
	}

	// 1. Exit seminar, unless taken or checked off.
	if !p.HasTaken(catalog.ExitSeminar) && !p.GenEdChecks.Univ301 {
		c := catalog.ExitSeminarCourse
		add(Recommendation{
			Code:     c.Code,
			Name:     c.Name,
			Units:    c.Units,
			Priority: priorityExitSeminar,
			Reason:   "Required gen ed exit seminar",
		})
	}

	// 2. Up to two Building Connections courses. Interest matches reorder
	// the candidates but never filter them.
	bcCount := 0
	for _, c := range orderByInterest(catalog.CoursesForDomain(catalog.DomainBuildingConnections), p.Interests) {
		if bcCount >= 2 {
			break
		}
		if p.HasTaken(c.Code) {
			continue
		}
		add(Recommendation{
			Code:     c.Code,
			Name:     c.Name,
			Units:    c.Units,
			Priority: priorityBuildingConn,
			Reason:   "Counts toward Building Connections",
		})
		bcCount++
	}

	// 3. One course per unsatisfied EP domain.
	for _, d := range catalog.EPDomains {
		if IsDomainSatisfied(p, d.Key) {
			continue
		}
		for _, c := range catalog.CoursesForDomain(d.Key) {
			if p.HasTaken(c.Code) {
				continue
			}
			add(Recommendation{
				Code:     c.Code,
				Name:     c.Name,
				Units:    c.Units,
				Priority: priorityEPDomain,
				Reason:   "Satisfies the " + d.Name + " domain",
			})
			break
		}
	}

	// 4. Major emphasis and required courses, for the first recognized
	// declared major.
	for _, majorName := range p.Majors {
		m, ok := catalog.MajorByName(majorName)
		if !ok {
			continue
		}

		best, _ := BestEmphasis(p, m)
		emphasisCount := 0
		for _, code := range best.Courses {
			if emphasisCount >= 2 {
				break
			}
			if p.HasTaken(code) {
				continue
			}
			add(Recommendation{
				Code:     code,
				Priority: priorityEmphasis,
				Reason:   "Next in your " + best.Name + " emphasis",
			})
			emphasisCount++
		}

		for _, groups := range [][]catalog.Course{m.Core, m.AdditionalRequired} {
			for _, c := range groups {
				if p.HasTaken(c.Code) {
					continue
				}
				add(Recommendation{
					Code:     c.Code,
					Name:     c.Name,
					Units:    c.Units,
					Priority: priorityMajorRequired,
					Reason:   "Required for " + m.ShortName,
				})
			}
		}
		break
	}

	// 5. One next course per selected minor with known requirements.
	for _, minorName := range p.SelectedMinors {
		m, ok := catalog.MinorByName(minorName)
		if !ok {
			continue
		}
		for _, code := range m.CountedCourses {
			if p.HasTaken(code) {
				continue
			}
			add(Recommendation{
				Code:     code,
				Priority: priorityMinor,
				Reason:   "Counts toward your " + m.Name + " minor",
			})
			break
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority > recs[j].Priority
	})
	if len(recs) > max {
		recs = recs[:max]
	}
	return recs
}

// orderByInterest puts courses whose description mentions one of the
// profile's interest words first, preserving table order within each half.
func orderByInterest(courses []catalog.GenEdCourse, interests string) []catalog.GenEdCourse {
	words := interestWords(interests)
	if len(words) == 0 {
		return courses
	}

	matched := make([]catalog.GenEdCourse, 0, len(courses))
	var rest []catalog.GenEdCourse
	for _, c := range courses {
		desc := strings.ToLower(c.Description)
		hit := false
		for _, w := range words {
			if strings.Contains(desc, w) {
				hit = true
				break
			}
		}
		if hit {
			matched = append(matched, c)
		} else {
			rest = append(rest, c)
		}
	}
	return append(matched, rest...)
}

// interestWords tokenizes the free-text interests field into lowercase words
// of four or more letters, dropping short filler words.
func interestWords(interests string) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(interests)) {
		w = strings.Trim(w, ".,;:!?\"'()")
		if len(w) >= 4 {
			words = append(words, w)
		}
	}
	return words
}
