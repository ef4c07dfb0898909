// Package transcript extracts course entries from pasted transcript text.
// It is a reasonable-effort heuristic, not an authoritative parser: false
// positives and negatives are expected and acceptable, and the caller is
// expected to let the user review the result before importing it.
package transcript

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/coursecompass/compass/internal/domain/profile"
)

// DefaultUnits is assumed when a line carries no recognizable unit count.
const DefaultUnits = 3

var (
	// codePattern matches a department prefix of 2-5 uppercase letters
	// followed by a 3-digit number with an optional trailing letter/digit,
	// e.g. "ENGL 101", "MUS 160D1".
	codePattern = regexp.MustCompile(`\b([A-Z]{2,5})\s+(\d{3}[A-Z]?\d?)\b`)

	// gradePattern matches a single letter grade with an optional +/-. The
	// trailing delimiter is explicit because \b never fires after "+", which
	// would silently strip the plus from a line-final "B+".
	gradePattern = regexp.MustCompile(`\b([ABCDF][+-]?)(?:[\s,;)]|$)`)

	// unitsPattern matches a decimal number followed by a unit marker.
	unitsPattern = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(units?|credits?|cr|\.00)`)
)

// Parse scans free-form text line by line for course code, grade, and unit
// triples. The first occurrence of a course code anywhere in the text wins;
// later duplicates are dropped silently. Zero matches is not an error - the
// caller surfaces an empty result as a visible, retryable condition.
func Parse(text string) []profile.CompletedCourse {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var courses []profile.CompletedCourse
	seen := make(map[string]bool)

	for _, line := range strings.Split(text, "\n") {
		for _, match := range codePattern.FindAllStringSubmatchIndex(line, -1) {
			dept := line[match[2]:match[3]]
			num := line[match[4]:match[5]]
			code := dept + " " + num
			if seen[code] {
				continue
			}
			seen[code] = true

			// Grade and units are searched only after the code, so a
			// department prefix never swallows its own grade letters.
			after := line[match[1]:]

			units := float64(DefaultUnits)
			if um := unitsPattern.FindStringSubmatch(after); um != nil {
				if v, err := strconv.ParseFloat(um[1], 64); err == nil {
					units = v
				}
			}

			grade := ""
			if gm := gradePattern.FindStringSubmatch(after); gm != nil {
				grade = gm[1]
			}

			courses = append(courses, profile.CompletedCourse{
				Code:  code,
				Units: units,
				Grade: grade,
			})
		}
	}
	return courses
}
