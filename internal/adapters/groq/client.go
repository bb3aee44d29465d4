// Package groq provides an adapter for an OpenAI-compatible chat
// completion service. It turns a window of conversation turns plus a tone
// hint into a single assistant reply.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avaldez-labs/moodtunes/internal/core/domain"
	"github.com/avaldez-labs/moodtunes/internal/core/ports"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama-3.1-8b-instant"

	maxTokens   = 150
	temperature = 0.7
)

// Client is an HTTP client for the completion backend.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// compile-time interface assertion
var _ ports.ReplyGenerator = (*Client)(nil)

// NewClient constructs a completion client. baseURL and model fall back to
// the Groq defaults when empty.
func NewClient(apiKey, baseURL, model string) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

type chatRequest struct {
	Model       string           `json:"model"`
	Messages    []domain.Message `json:"messages"`
	MaxTokens   int              `json:"max_tokens"`
	Temperature float64          `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateReply sends the shaped message sequence and returns the first
// choice's content, trimmed. A missing credential fails eagerly with
// ports.ErrNotConfigured. A success response with no choices yields an
// empty reply rather than an error.
func (c *Client) GenerateReply(ctx context.Context, turns []string, tone string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("groq: %w: API key not set", ports.ErrNotConfigured)
	}

	payload := chatRequest{
		Model:       c.model,
		Messages:    domain.BuildMessages(turns, tone),
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("groq: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("groq: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("groq: %w: %w", ports.ErrCompletion, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		const maxErr = 4096
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErr))
		return "", fmt.Errorf("groq: %w: %s: %s",
			ports.ErrCompletion, resp.Status, strings.TrimSpace(string(b)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("groq: %w: decode response: %w", ports.ErrCompletion, err)
	}

	if len(parsed.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
