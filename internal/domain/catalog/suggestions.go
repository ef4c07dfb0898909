package catalog

// SuggestionCandidate is a minor the suggestion engine can recommend, with
// the static keyword lists used for relevance scoring.
type SuggestionCandidate struct {
	Name string

	// Keywords are matched by substring against the profile's free-text
	// interests field.
	Keywords []string

	// DeptPrefixes are the department codes associated with the minor; a
	// completed course from one of these departments counts as overlap.
	DeptPrefixes []string

	// MajorKeywords are matched against the student's declared majors.
	MajorKeywords []string

	Description string
}

// SuggestionCandidates is the static candidate table, in stable order.
var SuggestionCandidates = []SuggestionCandidate{
	{
		Name:         "Music",
		Keywords:     []string{"music", "audio", "sound", "creative", "art", "perform"},
		DeptPrefixes: []string{"MUS"},
		Description:  "Explore music theory, performance, and technology",
	},
	{
		Name:         "Business Administration",
		Keywords:     []string{"business", "entrepreneur", "startup", "management", "marketing", "finance"},
		DeptPrefixes: []string{"BNAD", "ACCT", "ECON", "MIS", "MGMT"},
		Description:  "Build business fundamentals for any career",
	},
	{
		Name:          "Computer Science",
		Keywords:      []string{"programming", "software", "tech", "coding", "developer", "ai", "machine learning"},
		DeptPrefixes:  []string{"CSC"},
		MajorKeywords: []string{"information science", "data"},
		Description:   "Strengthen programming and algorithm skills",
	},
	{
		Name:          "Data Science",
		Keywords:      []string{"data", "analytics", "machine learning", "ai", "statistics"},
		DeptPrefixes:  []string{"ISTA", "DATA"},
		MajorKeywords: []string{"computer science", "information", "math"},
		Description:   "Learn to extract insights from data at scale",
	},
	{
		Name:         "Psychology",
		Keywords:     []string{"psychology", "behavior", "mental health", "cognitive", "ux", "user experience"},
		DeptPrefixes: []string{"PSY"},
		Description:  "Understand human behavior and cognition",
	},
	{
		Name:         "Spanish",
		Keywords:     []string{"spanish", "language", "bilingual", "latin america", "translation"},
		DeptPrefixes: []string{"SPAN"},
		Description:  "Valuable bilingual communication skills",
	},
	{
		Name:          "Mathematics",
		Keywords:      []string{"math", "quantitative", "modeling", "statistics"},
		DeptPrefixes:  []string{"MATH"},
		MajorKeywords: []string{"engineering", "physics", "computer science"},
		Description:   "Build a strong quantitative foundation",
	},
	{
		Name:          "Communication",
		Keywords:      []string{"communication", "media", "public relations", "journalism", "writing"},
		DeptPrefixes:  []string{"COMM"},
		MajorKeywords: []string{"political science", "english", "media"},
		Description:   "Master persuasion, media, and public speaking",
	},
}
