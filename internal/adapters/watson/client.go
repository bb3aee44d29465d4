// Package watson provides an adapter for an IBM NLU-style emotion
// classification service. It submits text with emotion features requested
// and reduces the per-emotion score map to the single dominant emotion.
package watson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/avaldez-labs/moodtunes/internal/core/domain"
	"github.com/avaldez-labs/moodtunes/internal/core/ports"
)

const apiVersion = "2021-08-01"

// Client is an HTTP client for the emotion classifier.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// compile-time interface assertion
var _ ports.ToneClassifier = (*Client)(nil)

// NewClient constructs a classifier client. An empty apiKey or baseURL
// leaves the client unconfigured; AnalyzeTone then degrades to the neutral
// result instead of calling out.
func NewClient(apiKey, baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type analyzeRequest struct {
	Text     string          `json:"text"`
	Features analyzeFeatures `json:"features"`
}

type analyzeFeatures struct {
	Emotion struct{} `json:"emotion"`
}

type analyzeResponse struct {
	Emotion struct {
		Document struct {
			Emotion map[string]float64 `json:"emotion"`
		} `json:"document"`
	} `json:"emotion"`
}

// AnalyzeTone classifies text and returns the dominant emotion. Blank text
// or an unconfigured backend yields {neutral, 0.0} without a network call.
func (c *Client) AnalyzeTone(ctx context.Context, text string) (domain.ToneResult, error) {
	if c.apiKey == "" || c.baseURL == "" || strings.TrimSpace(text) == "" {
		return domain.Neutral(), nil
	}

	b, err := json.Marshal(analyzeRequest{Text: text})
	if err != nil {
		return domain.ToneResult{}, fmt.Errorf("watson: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/analyze?version=%s", c.baseURL, apiVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return domain.ToneResult{}, fmt.Errorf("watson: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.ToneResult{}, fmt.Errorf("watson: %w: %w", ports.ErrClassification, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		const maxErr = 4096
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErr))
		return domain.ToneResult{}, fmt.Errorf("watson: %w: %s: %s",
			ports.ErrClassification, resp.Status, strings.TrimSpace(string(body)))
	}

	var parsed analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return domain.ToneResult{}, fmt.Errorf("watson: %w: decode response: %w", ports.ErrClassification, err)
	}

	return domain.DominantEmotion(parsed.Emotion.Document.Emotion), nil
}
