// Package anthropic implements the advisor completion port against the
// Anthropic Messages API.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/coursecompass/compass/internal/application/advisor"
	"github.com/coursecompass/compass/pkg/circuitbreaker"
	"github.com/coursecompass/compass/pkg/retry"
)

// apiURL is a var to allow test overrides via httptest.
var apiURL = "https://api.anthropic.com/v1/messages"

// APIURL returns the current Messages API endpoint.
func APIURL() string { return apiURL }

// SetAPIURL overrides the Messages API endpoint. Intended for tests only.
func SetAPIURL(u string) { apiURL = u }

const (
	apiVersion       = "2023-06-01"
	defaultModel     = "claude-sonnet-4-20250514"
	defaultMaxTokens = 1024
	maxBodyBytes     = 10 * 1024 * 1024
)

// ErrMissingAPIKey - the client was configured without an API key.
var ErrMissingAPIKey = errors.New("anthropic API key is not set")

// Config holds the Anthropic client settings.
type Config struct {
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// DefaultConfig returns a Config with production defaults. The API key must
// still be supplied by the caller.
func DefaultConfig() Config {
	return Config{
		Model:     defaultModel,
		MaxTokens: defaultMaxTokens,
		Timeout:   2 * time.Minute,
	}
}

// Client calls the Anthropic Messages API. Rate-limit and server errors are
// retried with backoff; everything else fails fast. A circuit breaker sits
// around the whole call so a consistently failing API is backed off from.
type Client struct {
	cfg     Config
	http    *http.Client
	retrier *retry.Retrier
	breaker *circuitbreaker.CircuitBreaker
}

var _ advisor.Provider = (*Client)(nil)

// New creates a Client. The API key is required; other fields fall back to
// defaults.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		retrier: retry.AdvisorRetrier(),
		breaker: circuitbreaker.AdvisorBreaker(nil),
	}, nil
}

type apiRequest struct {
	Model     string       `json:"model"`
	MaxTokens int          `json:"max_tokens"`
	System    string       `json:"system,omitempty"`
	Messages  []apiMessage `json:"messages"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends the conversation to the Messages API and returns the
// concatenated text blocks of the reply.
func (c *Client) Complete(ctx context.Context, req advisor.Request) (string, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.cfg.MaxTokens
	}

	body := apiRequest{
		Model:     c.cfg.Model,
		MaxTokens: maxTokens,
		System:    req.System,
		Messages:  make([]apiMessage, 0, len(req.Messages)),
	}
	for _, m := range req.Messages {
		body.Messages = append(body.Messages, apiMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	var content string
	err = c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.retrier.Do(ctx, func(ctx context.Context) error {
			var callErr error
			content, callErr = c.call(ctx, payload)
			return callErr
		})
	})
	return content, err
}

// call performs one Messages API round trip. Transport failures, 429s, and
// server errors are marked retryable.
func (c *Client) call(ctx context.Context, payload []byte) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.cfg.APIKey)
	httpReq.Header.Set("anthropic-version", apiVersion)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", retry.Retryable(fmt.Errorf("HTTP request failed: %w", err))
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", retry.Retryable(fmt.Errorf("reading response body: %w", err))
	}

	var ar apiResponse
	if err := json.Unmarshal(respBytes, &ar); err != nil && resp.StatusCode == http.StatusOK {
		return "", fmt.Errorf("parsing response JSON (HTTP %d, body: %s): %w",
			resp.StatusCode, truncate(string(respBytes), 200), err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := fmt.Errorf("anthropic: HTTP %d: %s", resp.StatusCode, truncate(string(respBytes), 200))
		if ar.Error != nil {
			apiErr = fmt.Errorf("anthropic: %s: %s", ar.Error.Type, ar.Error.Message)
		}
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return "", retry.Retryable(apiErr)
		}
		return "", apiErr
	}

	var content string
	for _, block := range ar.Content {
		if block.Type == "text" {
			content += block.Text
		}
	}
	if content == "" {
		return "", fmt.Errorf("anthropic: no text content in response (got %d content blocks)", len(ar.Content))
	}
	return content, nil
}

// truncate limits a string to maxLen runes, appending "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
