package advisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursecompass/compass/internal/domain/profile"
	"github.com/coursecompass/compass/pkg/clock"
)

type stubProvider struct {
	reply string
	err   error
	last  Request
	calls int
}

func (s *stubProvider) Complete(_ context.Context, req Request) (string, error) {
	s.calls++
	s.last = req
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func testProfile(t *testing.T) *profile.StudentProfile {
	t.Helper()
	p, err := profile.NewProfile(profile.NewProfileParams{
		Name:         "Alex",
		Majors:       []string{"BS Information Science"},
		Interests:    "music technology",
		CatalogYear:  "2024-2025",
		PlanSemester: "Fall 2026",
		CompletedCourses: []profile.CompletedCourse{
			{Code: "ENGL 101", Units: 3, Grade: "A"},
			{Code: "MATH 112", Units: 3},
		},
	}, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return p
}

func TestAsk_RecordsBothSides(t *testing.T) {
	provider := &stubProvider{reply: "Take ISTA 131 next."}
	adv := New(provider, clock.At(2026, 3, 1))
	p := testProfile(t)

	msg, err := adv.Ask(context.Background(), p, "  What should I take next?  ")
	require.NoError(t, err)

	assert.Equal(t, RoleAssistant, msg.Role)
	assert.Equal(t, "Take ISTA 131 next.", msg.Content)
	assert.NotEmpty(t, msg.ID)

	history := adv.History()
	require.Len(t, history, 2)
	assert.Equal(t, RoleUser, history[0].Role)
	assert.Equal(t, "What should I take next?", history[0].Content)
	assert.NotEqual(t, history[0].ID, history[1].ID)

	// The provider saw the system prompt and the user turn.
	assert.Contains(t, provider.last.System, "CourseCompass AI")
	require.Len(t, provider.last.Messages, 1)
	assert.Equal(t, RoleUser, provider.last.Messages[0].Role)
}

func TestAsk_EmptyMessage(t *testing.T) {
	adv := New(&stubProvider{}, clock.At(2026, 3, 1))

	_, err := adv.Ask(context.Background(), testProfile(t), "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Empty(t, adv.History())
}

func TestAsk_NoProvider(t *testing.T) {
	adv := New(nil, clock.At(2026, 3, 1))

	_, err := adv.Ask(context.Background(), testProfile(t), "hello")
	assert.ErrorIs(t, err, ErrNoProvider)
}

func TestAsk_ProviderFailureKeepsUserMessage(t *testing.T) {
	provider := &stubProvider{err: errors.New("api unavailable")}
	adv := New(provider, clock.At(2026, 3, 1))

	_, err := adv.Ask(context.Background(), testProfile(t), "hello")
	require.Error(t, err)

	history := adv.History()
	require.Len(t, history, 1)
	assert.Equal(t, RoleUser, history[0].Role)
}

func TestAsk_ConversationGrows(t *testing.T) {
	provider := &stubProvider{reply: "ok"}
	adv := New(provider, clock.At(2026, 3, 1))
	p := testProfile(t)

	_, err := adv.Ask(context.Background(), p, "first")
	require.NoError(t, err)
	_, err = adv.Ask(context.Background(), p, "second")
	require.NoError(t, err)

	assert.Len(t, adv.History(), 4)
	// The full conversation rides along on every call.
	assert.Len(t, provider.last.Messages, 3)
	assert.Equal(t, 2, provider.calls)

	adv.Reset()
	assert.Empty(t, adv.History())
}

func TestBuildSystemPrompt(t *testing.T) {
	p := testProfile(t)
	prompt := BuildSystemPrompt(p)

	assert.Contains(t, prompt, "- Name: Alex")
	assert.Contains(t, prompt, "- Major: BS Information Science")
	assert.Contains(t, prompt, "- Interests: music technology")
	assert.Contains(t, prompt, "- Planning Semester: Fall 2026")
	assert.Contains(t, prompt, "## Completed Courses (2)")
	assert.Contains(t, prompt, "- ENGL 101 (A)")
	assert.Contains(t, prompt, "- MATH 112\n")
	assert.Contains(t, prompt, "- Foundations: 0/3")
	assert.Contains(t, prompt, "- Building Connections: 0/9 units")
	assert.Contains(t, prompt, "verify on UAccess")
}

func TestBuildSystemPrompt_EmptyLists(t *testing.T) {
	p, err := profile.NewProfile(profile.NewProfileParams{
		Name:   "Blake",
		Majors: []string{"BA History", "BA English"},
	}, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	prompt := BuildSystemPrompt(p)
	assert.Contains(t, prompt, "- Major: BA History, BA English")
	assert.Contains(t, prompt, "- Interests: Not specified")
	assert.Contains(t, prompt, "None yet")
}
