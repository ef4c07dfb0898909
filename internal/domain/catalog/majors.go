package catalog

import "strings"

// Course is a catalog course reference used inside requirement definitions.
type Course struct {
	Code  string
	Name  string
	Units float64
}

// ElectiveCategory is a named elective slot group within a major.
type ElectiveCategory struct {
	Label string
	Units float64
	Pick  int
}

// EmphasisTrack is a named elective concentration within a major, satisfied by
// completing a subset of its course list.
type EmphasisTrack struct {
	Key     string
	Name    string
	Units   float64
	Courses []string
}

// MajorRequirements is a fully modeled major requirement definition.
type MajorRequirements struct {
	Name      string
	ShortName string

	// Keywords are matched case-insensitively by substring against a
	// student's declared major name to recognize this program.
	Keywords []string

	Core               []Course
	AdditionalRequired []Course
	Electives          []ElectiveCategory

	// EmphasisSlots is how many emphasis-track courses count toward the
	// total; Emphases are the alternative tracks, in stable order.
	EmphasisSlots int
	Emphases      []EmphasisTrack
}

// ElectiveSlots is the number of elective-category picks counted toward the
// major total.
func (m *MajorRequirements) ElectiveSlots() int {
	n := 0
	for _, e := range m.Electives {
		n += e.Pick
	}
	return n
}

// RequiredCodes returns core plus additional-required course codes, in order.
func (m *MajorRequirements) RequiredCodes() []string {
	codes := make([]string, 0, len(m.Core)+len(m.AdditionalRequired))
	for _, c := range m.Core {
		codes = append(codes, c.Code)
	}
	for _, c := range m.AdditionalRequired {
		codes = append(codes, c.Code)
	}
	return codes
}

// BSIS is the one fully modeled major: BS Information Science.
var BSIS = MajorRequirements{
	Name:      "BS Information Science",
	ShortName: "BSIS",
	Keywords:  []string{"information science", "bsis"},
	Core: []Course{
		{Code: "ISTA 100", Name: "Great Ideas of the Information Age", Units: 3},
		{Code: "ISTA 116", Name: "Statistical Foundations", Units: 3},
		{Code: "ISTA 130", Name: "Computational Thinking & Doing", Units: 4},
		{Code: "ISTA 131", Name: "Dealing with Data", Units: 4},
		{Code: "ISTA 161", Name: "Ethics in a Digital World", Units: 3},
	},
	AdditionalRequired: []Course{
		{Code: "ESOC 302", Name: "Quant Methods for Digital Marketplace", Units: 3},
		{Code: "ISTA 498", Name: "Senior Capstone", Units: 3},
	},
	Electives: []ElectiveCategory{
		{Label: "Computational Arts & Media", Units: 3, Pick: 1},
		{Label: "Society", Units: 3, Pick: 1},
		{Label: "Engagement (Internship/Ind. Study/ESOC 480)", Units: 3, Pick: 1},
	},
	EmphasisSlots: 5,
	Emphases: []EmphasisTrack{
		{
			Key:   "data_science",
			Name:  "Data Science",
			Units: 15,
			Courses: []string{
				"ISTA 311", "ISTA 320", "ISTA 321", "ISTA 322",
				"ISTA 331", "ISTA 350", "ISTA 421", "ISTA 450",
			},
		},
		{
			Key:   "interactive",
			Name:  "Interactive & Immersive Tech",
			Units: 15,
			Courses: []string{
				"ISTA 230", "ISTA 252", "ISTA 301", "ISTA 303",
				"ISTA 329", "ISTA 330", "ISTA 352", "ISTA 411",
			},
		},
		{
			Key:   "ai",
			Name:  "Artificial Intelligence",
			Units: 15,
			Courses: []string{
				"ISTA 421", "ISTA 450", "ISTA 321", "ISTA 457",
			},
		},
	},
}

// knownMajors lists every fully modeled program, in recognition order.
var knownMajors = []*MajorRequirements{&BSIS}

// MajorByName recognizes a free-text major name against the known programs.
// Matching is case-insensitive by substring, so "BS Information Science" and
// "bsis (online)" both resolve to BSIS. Returns false for unmodeled programs.
func MajorByName(name string) (*MajorRequirements, bool) {
	normalized := strings.ToLower(name)
	for _, m := range knownMajors {
		for _, kw := range m.Keywords {
			if strings.Contains(normalized, kw) {
				return m, true
			}
		}
	}
	return nil, false
}
