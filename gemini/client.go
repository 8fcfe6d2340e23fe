// Package gemini wraps the Generative Language API behind a single Generate
// operation. One invocation makes exactly one outbound call; failures are
// surfaced immediately with no retry.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cloudadvisor/prompt"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// APIError is the uniform failure type for a model call. Message carries the
// lower-level failure message; Detail carries the provider's block or finish
// diagnostic when one was returned.
type APIError struct {
	Message string
	Detail  string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Detail)
	}
	return e.Message
}

// Client communicates with the Generative Language API. It is constructed
// once at startup and shared read-only across all requests.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// Option adjusts a Client at construction time.
type Option func(*Client)

// WithBaseURL points the client at a different API host.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a client for the given API key and model.
func NewClient(apiKey, model string, opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second, // Model request timeout
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generate sends the prompt to the model and returns the generated text.
// Every failure is returned as an *APIError.
func (c *Client) Generate(ctx context.Context, spec prompt.Spec) (string, error) {
	parts := make([]part, 0, len(spec.Parts))
	for _, p := range spec.Parts {
		parts = append(parts, part{Text: p})
	}
	payload := generateRequest{
		Contents: []content{{Role: "user", Parts: parts}},
		GenerationConfig: generationConfig{
			MaxOutputTokens: spec.MaxOutputTokens,
			Temperature:     spec.Temperature,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &APIError{Message: err.Error()}
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &APIError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &APIError{Message: fmt.Sprintf("unparsable response from Gemini API: %s", err)}
	}

	if parsed.Error != nil {
		return "", &APIError{Message: parsed.Error.Message, Detail: parsed.Error.Status}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &APIError{Message: fmt.Sprintf("Gemini API returned status %d", resp.StatusCode)}
	}

	if len(parsed.Candidates) == 0 {
		apiErr := &APIError{Message: "no candidates returned by Gemini API"}
		if parsed.PromptFeedback != nil && parsed.PromptFeedback.BlockReason != "" {
			apiErr.Message = "prompt was blocked by Gemini safety filters"
			apiErr.Detail = parsed.PromptFeedback.BlockReason
		}
		return "", apiErr
	}

	cand := parsed.Candidates[0]
	var b strings.Builder
	for _, p := range cand.Content.Parts {
		b.WriteString(p.Text)
	}
	text := b.String()
	if text == "" {
		return "", &APIError{Message: "empty response from Gemini API", Detail: cand.FinishReason}
	}
	return text, nil
}
