package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursecompass/compass/internal/application/advisor"
	"github.com/coursecompass/compass/pkg/circuitbreaker"
)

func pointClientAt(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	prev := APIURL()
	SetAPIURL(srv.URL)
	t.Cleanup(func() { SetAPIURL(prev) })

	c, err := New(Config{APIKey: "test-key"})
	require.NoError(t, err)
	return c
}

func textResponse(blocks ...string) string {
	type block struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	resp := struct {
		Content []block `json:"content"`
	}{}
	for _, b := range blocks {
		resp.Content = append(resp.Content, block{Type: "text", Text: b})
	}
	raw, _ := json.Marshal(resp)
	return string(raw)
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNew_Defaults(t *testing.T) {
	c, err := New(Config{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, defaultModel, c.cfg.Model)
	assert.Equal(t, defaultMaxTokens, c.cfg.MaxTokens)
}

func TestComplete_Success(t *testing.T) {
	var captured apiRequest
	c := pointClientAt(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, apiVersion, r.Header.Get("anthropic-version"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(textResponse("Take ", "ISTA 131.")))
	})

	content, err := c.Complete(context.Background(), advisor.Request{
		System: "You are an advisor.",
		Messages: []advisor.Message{
			{Role: advisor.RoleUser, Content: "What next?"},
		},
	})
	require.NoError(t, err)

	// Text blocks are concatenated in order.
	assert.Equal(t, "Take ISTA 131.", content)

	assert.Equal(t, defaultModel, captured.Model)
	assert.Equal(t, defaultMaxTokens, captured.MaxTokens)
	assert.Equal(t, "You are an advisor.", captured.System)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
}

func TestComplete_ClientErrorNotRetried(t *testing.T) {
	var calls int
	c := pointClientAt(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"type": "invalid_request_error", "message": "bad model"}}`))
	})

	_, err := c.Complete(context.Background(), advisor.Request{
		Messages: []advisor.Message{{Role: advisor.RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_request_error")
	assert.Contains(t, err.Error(), "bad model")
	assert.Equal(t, 1, calls)
}

func TestComplete_RetriesServerError(t *testing.T) {
	var calls int
	c := pointClientAt(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("upstream blew up"))
			return
		}
		w.Write([]byte(textResponse("recovered")))
	})

	content, err := c.Complete(context.Background(), advisor.Request{
		Messages: []advisor.Message{{Role: advisor.RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "recovered", content)
	assert.Equal(t, 2, calls)
}

func TestComplete_RateLimitExhaustsRetries(t *testing.T) {
	var calls int
	c := pointClientAt(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"type": "rate_limit_error", "message": "slow down"}}`))
	})

	_, err := c.Complete(context.Background(), advisor.Request{
		Messages: []advisor.Message{{Role: advisor.RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate_limit_error")
	assert.Equal(t, 3, calls)
}

func TestComplete_NoTextContent(t *testing.T) {
	c := pointClientAt(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content": []}`))
	})

	_, err := c.Complete(context.Background(), advisor.Request{
		Messages: []advisor.Message{{Role: advisor.RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text content")
}

func TestComplete_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var calls int
	c := pointClientAt(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"type": "invalid_request_error", "message": "nope"}}`))
	})

	req := advisor.Request{Messages: []advisor.Message{{Role: advisor.RoleUser, Content: "hi"}}}
	for i := 0; i < 3; i++ {
		_, err := c.Complete(context.Background(), req)
		require.Error(t, err)
	}
	require.Equal(t, 3, calls)

	// The circuit is open now; the API is not hit again.
	_, err := c.Complete(context.Background(), req)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	assert.Equal(t, 3, calls)
}

func TestComplete_RequestMaxTokensOverride(t *testing.T) {
	var captured apiRequest
	c := pointClientAt(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(textResponse("ok")))
	})

	_, err := c.Complete(context.Background(), advisor.Request{
		MaxTokens: 256,
		Messages:  []advisor.Message{{Role: advisor.RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 256, captured.MaxTokens)
}
