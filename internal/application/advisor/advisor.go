// Package advisor drives the AI academic advisor conversation. It assembles
// a system prompt from the student's profile and gen ed progress, forwards
// the running conversation to a completion provider, and records both sides
// of the exchange. Provider failures surface as errors and never touch
// stored profile data.
package advisor

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/coursecompass/compass/internal/domain/profile"
	"github.com/coursecompass/compass/pkg/clock"
)

var (
	// ErrEmptyMessage - the user submitted a blank message.
	ErrEmptyMessage = errors.New("message text is empty")
	// ErrNoProvider - the advisor was built without a completion backend.
	ErrNoProvider = errors.New("no completion provider configured")
)

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the advisor conversation.
type Message struct {
	ID      string    `json:"id"`
	Role    Role      `json:"role"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sentAt"`
}

// Request carries one completion call to the backend.
type Request struct {
	System    string
	Messages  []Message
	MaxTokens int
}

// Provider is the completion backend port.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Advisor holds one in-memory conversation for a student profile.
type Advisor struct {
	provider Provider
	clk      clock.Clock
	history  []Message
}

// New creates an advisor over the given provider.
func New(provider Provider, clk clock.Clock) *Advisor {
	return &Advisor{provider: provider, clk: clk}
}

// History returns a copy of the conversation so far.
func (a *Advisor) History() []Message {
	return append([]Message(nil), a.history...)
}

// Reset discards the conversation.
func (a *Advisor) Reset() {
	a.history = nil
}

// Ask appends the user's message, calls the provider with the profile-aware
// system prompt, and appends the assistant's reply. On provider failure the
// user's message stays in the history so the student can retry.
func (a *Advisor) Ask(ctx context.Context, p *profile.StudentProfile, text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrEmptyMessage
	}
	if a.provider == nil {
		return Message{}, ErrNoProvider
	}

	a.history = append(a.history, Message{
		ID:      uuid.NewString(),
		Role:    RoleUser,
		Content: text,
		SentAt:  a.clk.Now(),
	})

	reply, err := a.provider.Complete(ctx, Request{
		System:   BuildSystemPrompt(p),
		Messages: a.History(),
	})
	if err != nil {
		return Message{}, err
	}

	msg := Message{
		ID:      uuid.NewString(),
		Role:    RoleAssistant,
		Content: reply,
		SentAt:  a.clk.Now(),
	}
	a.history = append(a.history, msg)
	return msg, nil
}
