package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"marquee/internal/services"
)

// Person represents a single TMDB person search match.
type Person struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Popularity float64 `json:"popularity"`
}

type personSearchResponse struct {
	Page         int      `json:"page"`
	Results      []Person `json:"results"`
	TotalResults int      `json:"total_results"`
}

// Credit describes one crew credit on a person's filmography.
type Credit struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Job         string  `json:"job"`
	Popularity  float64 `json:"popularity"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

type movieCreditsResponse struct {
	ID   int64    `json:"id"`
	Crew []Credit `json:"crew"`
}

// Client provides access to the TMDB API for director lookups.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a TMDB client.
func New(apiKey, baseURL, language string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("tmdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tmdb base url required")
	}
	language = strings.TrimSpace(language)
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   language,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SearchPerson searches TMDB for people matching the supplied name, in the
// API's own relevance order.
func (c *Client) SearchPerson(ctx context.Context, name string) ([]Person, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("person name must not be empty")
	}
	endpoint, err := url.Parse(c.baseURL + "/search/person")
	if err != nil {
		return nil, fmt.Errorf("parse tmdb url: %w", err)
	}
	params := url.Values{}
	params.Set("query", name)
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	endpoint.RawQuery = params.Encode()

	var payload personSearchResponse
	if err := c.get(ctx, endpoint.String(), "person search", &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// MovieCredits fetches the crew credits on a person's movie filmography.
func (c *Client) MovieCredits(ctx context.Context, personID int64) ([]Credit, error) {
	if personID <= 0 {
		return nil, errors.New("person id must be positive")
	}
	endpoint, err := url.Parse(fmt.Sprintf("%s/person/%d/movie_credits", c.baseURL, personID))
	if err != nil {
		return nil, fmt.Errorf("parse tmdb url: %w", err)
	}
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	endpoint.RawQuery = params.Encode()

	var payload movieCreditsResponse
	if err := c.get(ctx, endpoint.String(), "movie credits", &payload); err != nil {
		return nil, err
	}
	return payload.Crew, nil
}

// TopFilmsByDirector returns up to limit titles directed by the named
// person, most popular first. The first person search match is taken as the
// director; an unknown name yields an empty slice, not an error.
func (c *Client) TopFilmsByDirector(ctx context.Context, name string, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be positive")
	}
	people, err := c.SearchPerson(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(people) == 0 {
		return nil, nil
	}

	credits, err := c.MovieCredits(ctx, people[0].ID)
	if err != nil {
		return nil, err
	}

	directed := make([]Credit, 0, len(credits))
	for _, credit := range credits {
		if credit.Job == "Director" && strings.TrimSpace(credit.Title) != "" {
			directed = append(directed, credit)
		}
	}
	// Stable sort keeps the API's credit order for popularity ties.
	sort.SliceStable(directed, func(i, j int) bool {
		return directed[i].Popularity > directed[j].Popularity
	})
	if len(directed) > limit {
		directed = directed[:limit]
	}

	titles := make([]string, 0, len(directed))
	for _, credit := range directed {
		titles = append(titles, credit.Title)
	}
	return titles, nil
}

// ProbeConnection verifies the API key works by searching for a person every
// TMDB mirror knows about.
func (c *Client) ProbeConnection(ctx context.Context) error {
	people, err := c.SearchPerson(ctx, "Christopher Nolan")
	if err != nil {
		return err
	}
	if len(people) == 0 {
		return fmt.Errorf("%w: probe search returned no results", services.ErrLookup)
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint, operation string, payload any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("%w: execute request (latency=%v): %w", services.ErrLookup, latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: tmdb %s returned %d (latency=%v)", services.ErrLookup, operation, resp.StatusCode, latency)
	}

	if err := json.NewDecoder(resp.Body).Decode(payload); err != nil {
		return fmt.Errorf("%w: decode tmdb %s response: %w", services.ErrLookup, operation, err)
	}
	return nil
}
