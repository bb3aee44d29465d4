// Package lastfm provides an adapter for a Last.fm-style track catalog.
//
// The catalog runs in degraded mode: a missing credential, a network
// failure, or a non-success status all collapse to an empty track list with
// the failure logged. Only a malformed response body surfaces as
// ports.ErrCatalog.
package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/avaldez-labs/moodtunes/internal/core/domain"
	"github.com/avaldez-labs/moodtunes/internal/core/ports"
)

const defaultBaseURL = "https://ws.audioscrobbler.com/2.0/"

// Client is an HTTP client for the track catalog.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// compile-time interface assertion
var _ ports.TrackCatalog = (*Client)(nil)

// NewClient constructs a catalog client. An empty apiKey leaves the client
// unconfigured; lookups then return empty results without calling out.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		// Last.fm guidelines: stay under ~5 req/s
		limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 1),
	}
}

// TopTracksByTag returns the catalog's top tracks for a mood tag, at most
// limit entries, in upstream order.
func (c *Client) TopTracksByTag(ctx context.Context, tag string, limit int) ([]domain.Track, error) {
	if c.apiKey == "" {
		return []domain.Track{}, nil
	}

	params := url.Values{}
	params.Set("method", "tag.gettoptracks")
	params.Set("tag", tag)

	var parsed topTracksResponse
	ok, err := c.get(ctx, params, limit, &parsed)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Track{}, nil
	}
	return mapTracks(parsed.Tracks.Track), nil
}

// SimilarTracks returns tracks similar to the given seed track, at most
// limit entries, in upstream order.
func (c *Client) SimilarTracks(ctx context.Context, track, artist string, limit int) ([]domain.Track, error) {
	if c.apiKey == "" {
		return []domain.Track{}, nil
	}

	params := url.Values{}
	params.Set("method", "track.getsimilar")
	params.Set("track", track)
	params.Set("artist", artist)

	var parsed similarTracksResponse
	ok, err := c.get(ctx, params, limit, &parsed)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Track{}, nil
	}
	return mapTracks(parsed.SimilarTracks.Track), nil
}

// get performs one catalog call. It reports ok=false for swallowed failures
// (network error, non-success status) after logging them, and returns an
// error only when the response body cannot be decoded.
func (c *Client) get(ctx context.Context, params url.Values, limit int, out any) (bool, error) {
	params.Set("api_key", c.apiKey)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))

	if err := c.limiter.Wait(ctx); err != nil {
		log.Printf("lastfm: limiter wait: %v", err)
		return false, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		log.Printf("lastfm: build request: %v", err)
		return false, nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("lastfm: %s: %v", params.Get("method"), err)
		return false, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("lastfm: %s: status %s", params.Get("method"), resp.Status)
		return false, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("lastfm: %w: decode response: %w", ports.ErrCatalog, err)
	}
	return true, nil
}
