package profilestore

import (
	"context"

	"github.com/coursecompass/compass/internal/domain/profile"
)

// seedParams is the demo student used to populate a fresh installation: a
// BSIS sophomore with three completed semesters and a fourth in progress.
var seedParams = profile.NewProfileParams{
	Name:   "Alex",
	Majors: []string{"BS Information Science"},
	Interests: "I want to work in AI and music technology. " +
		"Interested in how data science can be applied to creative industries.",
	CatalogYear:    "2024-2025",
	PlanSemester:   "Summer 2026",
	SelectedMinors: []string{"Music"},

	CompletedCourses: []profile.CompletedCourse{
		// Fall 2024
		{Code: "ENGL 101", Name: "First-Year Composition", Units: 3, Grade: "A", Semester: "Fall 2024"},
		{Code: "UNIV 101", Name: "Wildcat Ready", Units: 1, Grade: "A", Semester: "Fall 2024"},
		{Code: "ISTA 100", Name: "Great Ideas of the Information Age", Units: 3, Grade: "A-", Semester: "Fall 2024"},
		{Code: "MATH 112", Name: "College Algebra", Units: 3, Grade: "B+", Semester: "Fall 2024"},
		{Code: "SPAN 101", Name: "First Semester Spanish", Units: 4, Grade: "B", Semester: "Fall 2024"},

		// Spring 2025
		{Code: "ENGL 102", Name: "First-Year Composition", Units: 3, Grade: "A", Semester: "Spring 2025"},
		{Code: "ISTA 116", Name: "Statistical Foundations", Units: 3, Grade: "B+", Semester: "Spring 2025"},
		{Code: "ISTA 130", Name: "Computational Thinking & Doing", Units: 4, Grade: "A-", Semester: "Spring 2025"},
		{Code: "SPAN 102", Name: "Second Semester Spanish", Units: 4, Grade: "B+", Semester: "Spring 2025"},

		// Fall 2025
		{Code: "ISTA 131", Name: "Dealing with Data", Units: 4, Grade: "A", Semester: "Fall 2025"},
		{Code: "ISTA 161", Name: "Ethics in a Digital World", Units: 3, Grade: "A-", Semester: "Fall 2025"},
		{Code: "PSY 101", Name: "Intro to Psychology", Units: 3, Grade: "B+", Semester: "Fall 2025"},
		{Code: "MUS 109", Name: "Intro to Music in Western Culture", Units: 3, Grade: "A", Semester: "Fall 2025"},
		{Code: "MUS 119", Name: "Intro to Music Theory", Units: 3, Grade: "B+", Semester: "Fall 2025"},
	},

	// Spring 2026, in progress
	CurrentCourses: []profile.CompletedCourse{
		{Code: "ISTA 230", Name: "Intro to Web Design", Units: 3},
		{Code: "PHIL 101", Name: "Intro to Philosophy", Units: 3},
		{Code: "GEOG 101", Name: "Intro to Physical Geography", Units: 3},
		{Code: "ESOC 302", Name: "Quant Methods for Digital Marketplace", Units: 3},
	},
}

// EnsureSeed creates the demo profile when no profiles exist yet. It is a
// no-op on an already-populated store, so it is safe to call on every start.
func (s *ProfileStore) EnsureSeed(ctx context.Context) (*profile.StudentProfile, error) {
	ids, err := s.readIndex(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) > 0 {
		return nil, nil
	}

	p, err := s.Create(ctx, seedParams)
	if err != nil {
		return nil, err
	}

	// The demo student has finished both composition courses, the math
	// requirement, the entry seminar, and the two-semester language sequence.
	p.GenEdChecks.Engl101 = true
	p.GenEdChecks.Engl102 = true
	p.GenEdChecks.Math = true
	p.GenEdChecks.Lang1 = true
	p.GenEdChecks.Lang2 = true
	p.GenEdChecks.Univ101 = true
	if err := s.writeProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
