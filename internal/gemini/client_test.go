package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateBody(text string) string {
	b, _ := json.Marshal(Response{
		Candidates: []Candidate{{Content: Content{Role: "model", Parts: []Part{{Text: text}}}}},
	})
	return string(b)
}

// newTestClient points a client at a stub generateContent endpoint and
// captures the decoded request for inspection.
func newTestClient(t *testing.T, status int, body string) (*Client, *Request) {
	t.Helper()
	var captured Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, ":generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewClient("test-key", srv.URL, "gemini-3-flash-preview"), &captured
}

func TestChatReply(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, candidateBody("Stock up on staples."))

	history := []Turn{
		{Role: "user", Text: "Hi"},
		{Role: "model", Text: "Hello!"},
	}
	got, err := c.ChatReply(context.Background(), history, "What should I stock?")
	require.NoError(t, err)
	assert.Equal(t, "Stock up on staples.", got)

	require.Len(t, captured.Contents, 3)
	assert.Equal(t, "user", captured.Contents[0].Role)
	assert.Equal(t, "model", captured.Contents[1].Role)
	assert.Equal(t, "What should I stock?", captured.Contents[2].Parts[0].Text)
	require.NotNil(t, captured.SystemInstruction)
	assert.Contains(t, captured.SystemInstruction.Parts[0].Text, "Asanix AI")
}

func TestNegotiationStrategyRequestShape(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, candidateBody("Open at 15% below."))

	_, err := c.NegotiationStrategy(context.Background(), "Rice Bag", 1800, 1450, 10)
	require.NoError(t, err)

	require.Len(t, captured.Contents, 1)
	prompt := captured.Contents[0].Parts[0].Text
	assert.Contains(t, prompt, "Rice Bag")
	assert.Contains(t, prompt, "₹1800.00")
	assert.Contains(t, prompt, "₹1450.00")
	require.NotNil(t, captured.GenerationConfig)
	assert.Equal(t, 0.7, captured.GenerationConfig.Temperature)
	require.NotNil(t, captured.GenerationConfig.ThinkingConfig)
	assert.Equal(t, 100, captured.GenerationConfig.ThinkingConfig.ThinkingBudget)
}

func TestIdentifyProductSendsInlineData(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK, candidateBody("Looks like instant tea."))

	_, err := c.IdentifyProduct(context.Background(), "aGVsbG8=")
	require.NoError(t, err)

	require.Len(t, captured.Contents, 1)
	parts := captured.Contents[0].Parts
	require.Len(t, parts, 2)
	require.NotNil(t, parts[0].InlineData)
	assert.Equal(t, "image/jpeg", parts[0].InlineData.MimeType)
	assert.Equal(t, "aGVsbG8=", parts[0].InlineData.Data)
	assert.Contains(t, parts[1].Text, "Asanix Vision")
}

func TestGenerateAPIError(t *testing.T) {
	c, _ := newTestClient(t, http.StatusTooManyRequests,
		`{"error":{"code":429,"message":"Resource has been exhausted","status":"RESOURCE_EXHAUSTED"}}`)

	_, err := c.ChatReply(context.Background(), nil, "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Resource has been exhausted")
	assert.Contains(t, err.Error(), "429")
}

func TestGenerateNoCandidates(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, `{"candidates":[]}`)

	_, err := c.ChatReply(context.Background(), nil, "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestGenerateMissingKey(t *testing.T) {
	c := NewClient("", "http://localhost:0", "")
	_, err := c.ChatReply(context.Background(), nil, "hi")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestSanitize(t *testing.T) {
	t.Run("strips control characters but keeps newlines and tabs", func(t *testing.T) {
		assert.Equal(t, "a\nb\tc", sanitize("a\nb\tc\x00\x07"))
	})

	t.Run("trims whitespace", func(t *testing.T) {
		assert.Equal(t, "hello", sanitize("  hello \n"))
	})

	t.Run("caps long replies", func(t *testing.T) {
		long := strings.Repeat("x", maxReplyRunes+500)
		assert.Len(t, []rune(sanitize(long)), maxReplyRunes)
	})
}
