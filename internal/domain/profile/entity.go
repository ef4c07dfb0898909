// Package profile contains the student profile aggregate, the single source
// of truth for everything the evaluators derive. There are no external
// dependencies here - pure business logic only.
package profile

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// CompletedCourse is one logged course. Courses are never mutated in place:
// removal plus re-add is the only way to change one.
type CompletedCourse struct {
	// Code is the canonical "DEPT NUM" string, e.g. "ENGL 101".
	Code string `json:"code"`

	// Name is the display name; may be empty for imported courses.
	Name string `json:"name"`

	// Units is the unit count, positive, typically 1-5.
	Units float64 `json:"units"`

	// Grade is the optional letter grade (current courses have none).
	Grade string `json:"grade,omitempty"`

	// Semester is the optional semester label, e.g. "Fall 2024".
	Semester string `json:"semester,omitempty"`
}

// Department returns the department prefix of the course code ("ENGL 101"
// yields "ENGL").
func (c CompletedCourse) Department() string {
	if i := strings.IndexByte(c.Code, ' '); i > 0 {
		return c.Code[:i]
	}
	return c.Code
}

// Validate checks the course fields.
func (c CompletedCourse) Validate() error {
	if strings.TrimSpace(c.Code) == "" {
		return ErrInvalidCourseCode
	}
	if c.Units <= 0 {
		return ErrInvalidUnits
	}
	return nil
}

// GenEdChecks is the fixed seven-item gen ed checklist. It is mutated only by
// explicit toggles, never inferred from the completed course list.
type GenEdChecks struct {
	Engl101 bool `json:"engl101"`
	Engl102 bool `json:"engl102"`
	Math    bool `json:"math"`
	Lang1   bool `json:"lang1"`
	Lang2   bool `json:"lang2"`
	Univ101 bool `json:"univ101"`
	Univ301 bool `json:"univ301"`
}

// GenEdCheckUpdates is a partial checklist update; nil fields are untouched.
type GenEdCheckUpdates struct {
	Engl101 *bool
	Engl102 *bool
	Math    *bool
	Lang1   *bool
	Lang2   *bool
	Univ101 *bool
	Univ301 *bool
}

// Apply merges the non-nil fields into the checklist.
func (g GenEdChecks) Apply(u GenEdCheckUpdates) GenEdChecks {
	set := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	set(&g.Engl101, u.Engl101)
	set(&g.Engl102, u.Engl102)
	set(&g.Math, u.Math)
	set(&g.Lang1, u.Lang1)
	set(&g.Lang2, u.Lang2)
	set(&g.Univ101, u.Univ101)
	set(&g.Univ301, u.Univ301)
	return g
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT PROFILE
// ══════════════════════════════════════════════════════════════════════════════

// StudentProfile is the root aggregate. One is active at a time; many may
// exist per installation. All progress values are derived from it, never
// stored on it.
type StudentProfile struct {
	// ID is an opaque identifier generated from the name and creation time.
	ID string `json:"id"`

	// SchemaVersion tags the persisted record shape; see migrate.go.
	SchemaVersion int `json:"schemaVersion"`

	// Name is the student's display name.
	Name string `json:"name"`

	// Majors are the declared majors, ordered, 1-3 entries.
	Majors []string `json:"majors"`

	// Emphasis is an optional declared emphasis track name.
	Emphasis string `json:"emphasis,omitempty"`

	// Interests is free text used as a weak relevance signal.
	Interests string `json:"interests"`

	// CatalogYear is the catalog the student matriculated under.
	CatalogYear string `json:"catalogYear"`

	// PlanSemester is the semester the student is planning for.
	PlanSemester string `json:"planSemester"`

	// SelectedMinors are the declared minors, ordered.
	SelectedMinors []string `json:"selectedMinors"`

	// CompletedCourses is unique by course code; adding a duplicate is a
	// no-op.
	CompletedCourses []CompletedCourse `json:"completedCourses"`

	// CurrentCourses is the in-progress enrollment, same shape, also unique
	// by code. Units usually carry no grade.
	CurrentCourses []CompletedCourse `json:"currentCourses,omitempty"`

	// CreatedAt is the creation date, YYYY-MM-DD.
	CreatedAt string `json:"createdAt"`

	// GenEdChecks is the checked-off gen ed checklist.
	GenEdChecks GenEdChecks `json:"genEdChecks"`
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrInvalidName - profile name is empty.
	ErrInvalidName = errors.New("profile name must not be empty")

	// ErrNoMajors - at least one declared major is required.
	ErrNoMajors = errors.New("at least one major is required")

	// ErrTooManyMajors - more than three declared majors.
	ErrTooManyMajors = errors.New("at most three majors are allowed")

	// ErrInvalidCourseCode - course code is empty.
	ErrInvalidCourseCode = errors.New("course code must not be empty")

	// ErrInvalidUnits - course unit count is not positive.
	ErrInvalidUnits = errors.New("course units must be positive")

	// ErrProfileNotFound - no profile with the given id.
	ErrProfileNotFound = errors.New("profile not found")
)

// ══════════════════════════════════════════════════════════════════════════════
// FACTORY
// ══════════════════════════════════════════════════════════════════════════════

// NewProfileParams carries the user-supplied fields for a new profile.
type NewProfileParams struct {
	Name             string
	Majors           []string
	Interests        string
	CatalogYear      string
	PlanSemester     string
	SelectedMinors   []string
	CompletedCourses []CompletedCourse
	CurrentCourses   []CompletedCourse
}

// NewProfile creates a validated profile. The id is derived from the slugified
// name plus a base-36 millisecond timestamp; collisions under rapid repeated
// creation are accepted for a single-user local tool.
func NewProfile(params NewProfileParams, now time.Time) (*StudentProfile, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if len(params.Majors) == 0 {
		return nil, ErrNoMajors
	}
	if len(params.Majors) > 3 {
		return nil, ErrTooManyMajors
	}
	for _, c := range params.CompletedCourses {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}

	p := &StudentProfile{
		ID:            Slugify(name) + "-" + strconv.FormatInt(now.UnixMilli(), 36),
		SchemaVersion: CurrentSchemaVersion,
		Name:          name,
		Majors:        append([]string(nil), params.Majors...),
		Interests:     params.Interests,
		CatalogYear:   params.CatalogYear,
		PlanSemester:  params.PlanSemester,
		SelectedMinors: append([]string(nil),
			params.SelectedMinors...),
		CreatedAt: now.Format("2006-01-02"),
	}
	for _, c := range params.CompletedCourses {
		p.AddCompletedCourse(c)
	}
	for _, c := range params.CurrentCourses {
		p.AddCurrentCourse(c)
	}
	return p, nil
}

// Slugify lowercases a name and strips everything outside [a-z0-9].
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN METHODS
// ══════════════════════════════════════════════════════════════════════════════

// HasCompleted reports whether a course code is in the completed list.
func (p *StudentProfile) HasCompleted(code string) bool {
	for _, c := range p.CompletedCourses {
		if c.Code == code {
			return true
		}
	}
	return false
}

// HasCurrent reports whether a course code is in the current enrollment.
func (p *StudentProfile) HasCurrent(code string) bool {
	for _, c := range p.CurrentCourses {
		if c.Code == code {
			return true
		}
	}
	return false
}

// HasTaken reports whether the course is completed or currently enrolled.
func (p *StudentProfile) HasTaken(code string) bool {
	return p.HasCompleted(code) || p.HasCurrent(code)
}

// AddCompletedCourse appends the course unless its code is already present.
// Returns true if the course was added.
func (p *StudentProfile) AddCompletedCourse(c CompletedCourse) bool {
	if p.HasCompleted(c.Code) {
		return false
	}
	p.CompletedCourses = append(p.CompletedCourses, c)
	return true
}

// RemoveCompletedCourse removes the course with the given code. Returns true
// if a course was removed.
func (p *StudentProfile) RemoveCompletedCourse(code string) bool {
	for i, c := range p.CompletedCourses {
		if c.Code == code {
			p.CompletedCourses = append(p.CompletedCourses[:i], p.CompletedCourses[i+1:]...)
			return true
		}
	}
	return false
}

// AddCurrentCourse appends to the current enrollment unless already present.
func (p *StudentProfile) AddCurrentCourse(c CompletedCourse) bool {
	if p.HasCurrent(c.Code) {
		return false
	}
	p.CurrentCourses = append(p.CurrentCourses, c)
	return true
}

// RemoveCurrentCourse removes an in-progress course by code.
func (p *StudentProfile) RemoveCurrentCourse(code string) bool {
	for i, c := range p.CurrentCourses {
		if c.Code == code {
			p.CurrentCourses = append(p.CurrentCourses[:i], p.CurrentCourses[i+1:]...)
			return true
		}
	}
	return false
}

// CompletedUnits sums the units of all completed courses.
func (p *StudentProfile) CompletedUnits() float64 {
	var sum float64
	for _, c := range p.CompletedCourses {
		sum += c.Units
	}
	return sum
}

// CurrentUnits sums the units of the in-progress enrollment.
func (p *StudentProfile) CurrentUnits() float64 {
	var sum float64
	for _, c := range p.CurrentCourses {
		sum += c.Units
	}
	return sum
}

// CompletedDepartments returns the set of department prefixes across completed
// courses.
func (p *StudentProfile) CompletedDepartments() map[string]bool {
	depts := make(map[string]bool, len(p.CompletedCourses))
	for _, c := range p.CompletedCourses {
		depts[c.Department()] = true
	}
	return depts
}

// CompletedCodes returns the set of completed course codes.
func (p *StudentProfile) CompletedCodes() map[string]bool {
	codes := make(map[string]bool, len(p.CompletedCourses))
	for _, c := range p.CompletedCourses {
		codes[c.Code] = true
	}
	return codes
}

// Clone returns a deep copy, so callers can hand profiles out without
// aliasing the stored slices.
func (p *StudentProfile) Clone() *StudentProfile {
	cp := *p
	cp.Majors = append([]string(nil), p.Majors...)
	cp.SelectedMinors = append([]string(nil), p.SelectedMinors...)
	cp.CompletedCourses = append([]CompletedCourse(nil), p.CompletedCourses...)
	cp.CurrentCourses = append([]CompletedCourse(nil), p.CurrentCourses...)
	return &cp
}
