package catalog

import "strings"

// DoubleDipCourse is a minor course that also satisfies a gen ed requirement.
type DoubleDipCourse struct {
	Code  string
	GenEd string
}

// Advisor is the department contact for a minor.
type Advisor struct {
	Name  string
	Email string
}

// MinorRequirements is a fully modeled minor requirement definition.
type MinorRequirements struct {
	Name             string
	TotalUnits       float64
	UpperDivisionMin float64

	// Structured course lists. Music uses Required + elective units with
	// double-dip courses; Business uses a lower/upper division split.
	Required      []Course
	LowerDivision []Course
	UpperDivision []Course
	ElectiveUnits float64
	ElectiveNote  string

	AllowsDoubleDip bool
	DoubleDipNote   string
	DoubleDip       []DoubleDipCourse

	Advisor Advisor

	// CountedCourses are the codes whose completed units count toward the
	// minor's unit total in progress evaluation.
	CountedCourses []string
}

// MusicMinor is the Music minor definition.
var MusicMinor = MinorRequirements{
	Name:             "Music",
	TotalUnits:       18,
	UpperDivisionMin: 9,
	Required: []Course{
		{Code: "MUS 119", Name: "Intro to Music Theory", Units: 3},
	},
	ElectiveUnits:   15,
	ElectiveNote:    "Any 15 additional MUS/MUSI units",
	AllowsDoubleDip: true,
	DoubleDip: []DoubleDipCourse{
		{Code: "MUS 109", GenEd: "EP: Artist"},
		{Code: "MUS 160D1", GenEd: "EP: Artist"},
		{Code: "MUS 327", GenEd: "Building Connections"},
		{Code: "MUS 334", GenEd: "Building Connections"},
		{Code: "MUS 337", GenEd: "Building Connections"},
	},
	Advisor:        Advisor{Name: "Christina Beasley", Email: "cswanson@arizona.edu"},
	CountedCourses: []string{"MUS 119", "MUS 109", "MUS 160D1", "MUS 327", "MUS 334", "MUS 337"},
}

// BusinessMinor is the Business Administration minor definition.
var BusinessMinor = MinorRequirements{
	Name:             "Business Administration",
	TotalUnits:       18,
	UpperDivisionMin: 9,
	AllowsDoubleDip:  false,
	DoubleDipNote: "Eller College does NOT permit double-use of minor courses with majors " +
		"or minors outside the college. All 18 units must be unique to the minor.",
	LowerDivision: []Course{
		{Code: "MIS 111", Name: "Computers & Internetworked Society", Units: 3},
		{Code: "ECON 200", Name: "Intro to Economics", Units: 3},
		{Code: "ACCT 250", Name: "Information for Business Decisions", Units: 3},
	},
	UpperDivision: []Course{
		{Code: "BNAD 301", Name: "Global & Financial Economics", Units: 3},
		{Code: "BNAD 302", Name: "Organizational Behavior & Management", Units: 3},
		{Code: "BNAD 303", Name: "Marketing Overview", Units: 3},
	},
	CountedCourses: []string{"MIS 111", "ECON 200", "ACCT 250", "BNAD 301", "BNAD 302", "BNAD 303"},
}

// minorRegistry maps exact lowercase minor names to their definitions.
var minorRegistry = map[string]*MinorRequirements{
	"music":                   &MusicMinor,
	"business administration": &BusinessMinor,
}

// MinorByName looks up a minor by exact lowercase name. Unlike major
// recognition there is no substring matching; unmodeled minors get the
// estimate fallback in the progress evaluator.
func MinorByName(name string) (*MinorRequirements, bool) {
	m, ok := minorRegistry[strings.ToLower(name)]
	return m, ok
}
