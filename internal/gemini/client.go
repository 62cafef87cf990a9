// Package gemini is the prompt gateway: templated prompts in, plain text
// out. One round trip per call, no streaming, no retries; callers map every
// failure to a domain fallback string.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode"
)

const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// maxReplyRunes bounds generated text before it reaches any view. Upstream
// places no limit on candidate length.
const maxReplyRunes = 4000

var ErrNoAPIKey = errors.New("gemini API key not configured")

type Client struct {
	apiKey  string
	baseURL string
	model   string
	httpc   *http.Client
}

func NewClient(apiKey, baseURL, model string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = "gemini-3-flash-preview"
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// generate performs one generateContent round trip and returns the first
// candidate's text, sanitized and size-capped.
func (c *Client) generate(ctx context.Context, req Request) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr ErrorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("gemini: %s (status %d)", apiErr.Error.Message, resp.StatusCode)
		}
		return "", fmt.Errorf("gemini: unexpected status %d", resp.StatusCode)
	}

	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if len(out.Candidates) == 0 {
		return "", errors.New("gemini: no candidates in response")
	}

	var text strings.Builder
	for _, part := range out.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return "", errors.New("gemini: no text content in response")
	}
	return sanitize(text.String()), nil
}

// sanitize strips control characters (newlines and tabs excepted) and caps
// the reply length.
func sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	runes := []rune(s)
	if len(runes) > maxReplyRunes {
		s = string(runes[:maxReplyRunes])
	}
	return strings.TrimSpace(s)
}
