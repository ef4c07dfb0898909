package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile_Validation(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	_, err := NewProfile(NewProfileParams{Name: "   ", Majors: []string{"BSIS"}}, now)
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = NewProfile(NewProfileParams{Name: "Alex"}, now)
	assert.ErrorIs(t, err, ErrNoMajors)

	_, err = NewProfile(NewProfileParams{
		Name:   "Alex",
		Majors: []string{"a", "b", "c", "d"},
	}, now)
	assert.ErrorIs(t, err, ErrTooManyMajors)

	_, err = NewProfile(NewProfileParams{
		Name:             "Alex",
		Majors:           []string{"BSIS"},
		CompletedCourses: []CompletedCourse{{Code: "ENGL 101", Units: 0}},
	}, now)
	assert.ErrorIs(t, err, ErrInvalidUnits)
}

func TestNewProfile_IDFromNameAndTime(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	p, err := NewProfile(NewProfileParams{Name: "Alex P. Smith", Majors: []string{"BSIS"}}, now)
	require.NoError(t, err)

	assert.Equal(t, "alexpsmith", Slugify("Alex P. Smith"))
	assert.Regexp(t, `^alexpsmith-[0-9a-z]+$`, p.ID)
	assert.Equal(t, "2026-01-15", p.CreatedAt)
	assert.Equal(t, CurrentSchemaVersion, p.SchemaVersion)
	assert.Equal(t, "Alex P. Smith", p.Name)
}

func TestAddCompletedCourse_DuplicateIsNoOp(t *testing.T) {
	p := &StudentProfile{}

	assert.True(t, p.AddCompletedCourse(CompletedCourse{Code: "ENGL 101", Units: 3, Grade: "A"}))
	assert.False(t, p.AddCompletedCourse(CompletedCourse{Code: "ENGL 101", Units: 4, Grade: "B"}))
	require.Len(t, p.CompletedCourses, 1)

	// The original entry is untouched by the rejected duplicate.
	assert.Equal(t, "A", p.CompletedCourses[0].Grade)
	assert.Equal(t, 3.0, p.CompletedCourses[0].Units)
}

func TestRemoveCompletedCourse(t *testing.T) {
	p := &StudentProfile{}
	p.AddCompletedCourse(CompletedCourse{Code: "ENGL 101", Units: 3})
	p.AddCompletedCourse(CompletedCourse{Code: "MATH 112", Units: 3})

	assert.True(t, p.RemoveCompletedCourse("ENGL 101"))
	assert.False(t, p.RemoveCompletedCourse("ENGL 101"))
	require.Len(t, p.CompletedCourses, 1)
	assert.Equal(t, "MATH 112", p.CompletedCourses[0].Code)
}

func TestHasTaken_CoversCompletedAndCurrent(t *testing.T) {
	p := &StudentProfile{}
	p.AddCompletedCourse(CompletedCourse{Code: "ENGL 101", Units: 3})
	p.AddCurrentCourse(CompletedCourse{Code: "PHIL 101", Units: 3})

	assert.True(t, p.HasTaken("ENGL 101"))
	assert.True(t, p.HasTaken("PHIL 101"))
	assert.False(t, p.HasTaken("MUS 109"))
	assert.False(t, p.HasCompleted("PHIL 101"))
}

func TestUnitSums(t *testing.T) {
	p := &StudentProfile{
		CompletedCourses: []CompletedCourse{
			{Code: "ENGL 101", Units: 3},
			{Code: "ISTA 130", Units: 4},
		},
		CurrentCourses: []CompletedCourse{
			{Code: "PHIL 101", Units: 3},
		},
	}

	assert.Equal(t, 7.0, p.CompletedUnits())
	assert.Equal(t, 3.0, p.CurrentUnits())
}

func TestCompletedDepartments(t *testing.T) {
	p := &StudentProfile{
		CompletedCourses: []CompletedCourse{
			{Code: "MUS 109", Units: 3},
			{Code: "MUS 119", Units: 3},
			{Code: "PSY 101", Units: 3},
		},
	}

	depts := p.CompletedDepartments()
	assert.True(t, depts["MUS"])
	assert.True(t, depts["PSY"])
	assert.False(t, depts["ENGL"])
}

func TestGenEdChecks_ApplyPartial(t *testing.T) {
	checks := GenEdChecks{Engl101: true}

	tr := true
	f := false
	updated := checks.Apply(GenEdCheckUpdates{Engl102: &tr, Engl101: &f})

	assert.False(t, updated.Engl101)
	assert.True(t, updated.Engl102)
	assert.False(t, updated.Math)

	// Nil fields leave the receiver's values alone.
	same := checks.Apply(GenEdCheckUpdates{})
	assert.Equal(t, checks, same)
}

func TestClone_DoesNotAliasSlices(t *testing.T) {
	p := &StudentProfile{
		Majors:           []string{"BS Information Science"},
		CompletedCourses: []CompletedCourse{{Code: "ENGL 101", Units: 3}},
	}

	cp := p.Clone()
	cp.Majors[0] = "changed"
	cp.CompletedCourses[0].Code = "changed"

	assert.Equal(t, "BS Information Science", p.Majors[0])
	assert.Equal(t, "ENGL 101", p.CompletedCourses[0].Code)
}
