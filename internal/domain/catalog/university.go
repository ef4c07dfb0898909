package catalog

// University-wide graduation constants (pre-Fall 2026 catalog). These apply to
// all undergraduates regardless of major.
const (
	// TotalGraduationUnits is the minimum unit count for any bachelor's degree.
	TotalGraduationUnits = 120

	// UpperDivisionMinUnits is the minimum number of 300+ level units.
	UpperDivisionMinUnits = 42

	// LanguageSemesters is the required second-language sequence length.
	LanguageSemesters = 2

	// BCUnitTarget is the Building Connections unit requirement.
	BCUnitTarget = 9

	// BCCourseTarget is the nominal Building Connections course count.
	BCCourseTarget = 3

	// EPDomainMinUnits is the per-domain Exploring Perspectives unit minimum.
	EPDomainMinUnits = 3

	// NominalUnitsPerSemester is the full-time load used for graduation
	// estimates.
	NominalUnitsPerSemester = 15
)

// Foundation and entry/exit seminar course codes referenced by the gen ed
// checklist and the recommendation engine.
const (
	CompositionFirst  = "ENGL 101"
	CompositionSecond = "ENGL 102"
	EntrySeminar      = "UNIV 101"
	ExitSeminar       = "UNIV 301"
)

// Entry/exit seminar course details for recommendations.
var (
	EntrySeminarCourse = Course{Code: EntrySeminar, Name: "Wildcat Ready", Units: 1}
	ExitSeminarCourse  = Course{Code: ExitSeminar, Name: "Wildcat Reflections", Units: 1}
)
