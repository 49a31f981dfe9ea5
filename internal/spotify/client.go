package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"trackmatch/internal/match"
)

// Artist is one credited artist on a track.
type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Album carries the subset of album metadata surfaced to callers.
type Album struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ReleaseDate string `json:"release_date"`
}

// Track is one search hit. Raw keeps the provider JSON for this item
// untouched so downstream consumers can reach fields we do not model.
type Track struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Artists      []Artist          `json:"artists"`
	Album        Album             `json:"album"`
	DurationMS   int               `json:"duration_ms"`
	Popularity   int               `json:"popularity"`
	ExternalURLs map[string]string `json:"external_urls"`

	Raw json.RawMessage `json:"raw,omitempty"`
}

// ArtistNames returns the credited artist names in order.
func (t Track) ArtistNames() []string {
	names := make([]string, 0, len(t.Artists))
	for _, artist := range t.Artists {
		names = append(names, artist.Name)
	}
	return names
}

// Candidate converts a search hit into the matcher's candidate shape.
func (t Track) Candidate() match.CandidateTrack {
	return match.CandidateTrack{
		ID:          t.ID,
		Title:       t.Name,
		ArtistNames: t.ArtistNames(),
		RawPayload:  t.Raw,
	}
}

// SearchResult is one page of track search hits.
type SearchResult struct {
	Tracks []Track
	Total  int
}

// Candidates converts every hit for the matcher.
func (r *SearchResult) Candidates() []match.CandidateTrack {
	candidates := make([]match.CandidateTrack, 0, len(r.Tracks))
	for _, track := range r.Tracks {
		candidates = append(candidates, track.Candidate())
	}
	return candidates
}

// SearchOptions contains optional parameters for a track search.
type SearchOptions struct {
	// Market restricts results to tracks playable in the given country
	// code.
	Market string
	// Limit caps the number of hits per page (Spotify allows up to 50).
	Limit int
}

// CacheKey returns a stable string representation for caching.
func (o SearchOptions) CacheKey() string {
	var builder strings.Builder
	builder.WriteString("m=")
	builder.WriteString(strings.ToUpper(strings.TrimSpace(o.Market)))
	builder.WriteString("|l=")
	builder.WriteString(strconv.Itoa(o.Limit))
	return builder.String()
}

// Searcher defines the catalog search operation used by matching and
// imports.
type Searcher interface {
	SearchTracks(ctx context.Context, query string, opts SearchOptions) (*SearchResult, error)
}

// Client talks to the Spotify Web API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ Searcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client, bypassing the
// client-credentials transport. Intended for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		baseURL = strings.TrimSpace(baseURL)
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// New creates a Spotify client using the client-credentials flow.
func New(clientID, clientSecret, baseURL, tokenURL string, opts ...Option) (*Client, error) {
	clientID = strings.TrimSpace(clientID)
	clientSecret = strings.TrimSpace(clientSecret)
	if clientID == "" || clientSecret == "" {
		return nil, errors.New("spotify client credentials required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("spotify base url required")
	}
	tokenURL = strings.TrimSpace(tokenURL)
	if tokenURL == "" {
		return nil, errors.New("spotify token url required")
	}

	credentials := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}
	httpClient := credentials.Client(context.Background())
	httpClient.Timeout = 10 * time.Second

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// searchResponse models the /search payload. Items stay raw so each
// track can carry its untouched provider JSON.
type searchResponse struct {
	Tracks struct {
		Items []json.RawMessage `json:"items"`
		Total int               `json:"total"`
	} `json:"tracks"`
}

// SearchTracks performs a track search with the given query string.
func (c *Client) SearchTracks(ctx context.Context, query string, opts SearchOptions) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	endpoint, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("parse spotify url: %w", err)
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "track")
	if opts.Market != "" {
		params.Set("market", strings.ToUpper(strings.TrimSpace(opts.Market)))
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("spotify rate limited, retry after %s", resp.Header.Get("Retry-After"))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spotify search returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode spotify response: %w", err)
	}

	result := &SearchResult{
		Tracks: make([]Track, 0, len(payload.Tracks.Items)),
		Total:  payload.Tracks.Total,
	}
	for _, item := range payload.Tracks.Items {
		var track Track
		if err := json.Unmarshal(item, &track); err != nil {
			return nil, fmt.Errorf("decode track item: %w", err)
		}
		track.Raw = item
		result.Tracks = append(result.Tracks, track)
	}
	return result, nil
}
