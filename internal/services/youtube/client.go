package youtube

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"marquee/internal/services"
)

// Results pages run to a few hundred kilobytes; anything past this is not
// going to contain the top hit.
const maxResponseBytes = 4 << 20

var videoIDPattern = regexp.MustCompile(`watch\?v=([A-Za-z0-9_-]{11})`)

// Client searches the public YouTube results page for trailer videos.
type Client struct {
	baseURL    string
	userAgent  string
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

// New creates a YouTube search client.
func New(baseURL, userAgent string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("youtube base url required")
	}
	userAgent = strings.TrimSpace(userAgent)
	if userAgent == "" {
		return nil, errors.New("youtube user agent required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SearchTrailer runs the query against the results page and returns the
// first video identifier found. An empty identifier with a nil error means
// the page rendered no watchable results.
func (c *Client) SearchTrailer(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", errors.New("query must not be empty")
	}
	endpoint, err := url.Parse(c.baseURL + "/results")
	if err != nil {
		return "", fmt.Errorf("parse youtube url: %w", err)
	}
	params := url.Values{}
	params.Set("search_query", query)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return "", fmt.Errorf("%w: execute request (latency=%v): %w", services.ErrLookup, latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: youtube search returned %d (latency=%v)", services.ErrLookup, resp.StatusCode, latency)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("%w: read youtube response: %w", services.ErrLookup, err)
	}

	match := videoIDPattern.FindSubmatch(body)
	if match == nil {
		return "", nil
	}
	return string(match[1]), nil
}
