// ABOUTME: Genius lyrics API client: search for a song and surface its page
// ABOUTME: Invoked only on explicit request, never on the per-tick path

// Package lyrics fetches song information from the Genius API. The API
// does not serve lyric text directly, so the client returns the matched
// song's page reference for display in the lyrics pane.
package lyrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound reports that no lyrics could be located for the track.
// Rendered as a pane message, never as a fatal error.
var ErrNotFound = errors.New("no lyrics found")

const defaultBaseURL = "https://api.genius.com"

// Client talks to the Genius search API.
type Client struct {
	token   string
	baseURL string
	hc      *http.Client
}

// NewClient creates a client with the given API token. An empty token is
// allowed; Fetch then always reports ErrNotFound.
func NewClient(token string) *Client {
	return &Client{
		token:   token,
		baseURL: defaultBaseURL,
		hc:      &http.Client{Timeout: 10 * time.Second},
	}
}

// song mirrors the subset of a Genius search result we use.
type song struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	PrimaryArtist struct {
		Name string `json:"name"`
	} `json:"primary_artist"`
}

type searchResponse struct {
	Response struct {
		Hits []struct {
			Result song `json:"result"`
		} `json:"hits"`
	} `json:"response"`
}

// Fetch looks up the song for the given artist and title and returns a
// text block for the lyrics pane. Returns ErrNotFound when the API has
// no matching song or no token is configured.
func (c *Client) Fetch(ctx context.Context, artist, title string) (string, error) {
	if c.token == "" || artist == "" || title == "" {
		return "", ErrNotFound
	}

	query := url.Values{"q": []string{artist + " " + title}}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build lyrics request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("lyrics request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("lyrics API returned %s", resp.Status)
	}

	var search searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return "", fmt.Errorf("failed to decode lyrics response: %w", err)
	}

	match := bestHit(search, artist, title)
	if match == nil {
		return "", ErrNotFound
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s - %s\n\n", match.PrimaryArtist.Name, match.Title)
	b.WriteString("The Genius API does not serve lyric text directly.\n")
	fmt.Fprintf(&b, "Full lyrics: %s\n", match.URL)

	return b.String(), nil
}

// bestHit prefers an exact artist+title match and falls back to the
// first hit, which Genius ranks by relevance.
func bestHit(search searchResponse, artist, title string) *song {
	hits := search.Response.Hits
	if len(hits) == 0 {
		return nil
	}

	for i := range hits {
		result := &hits[i].Result
		if strings.EqualFold(result.PrimaryArtist.Name, artist) && strings.EqualFold(result.Title, title) {
			return result
		}
	}

	return &hits[0].Result
}
