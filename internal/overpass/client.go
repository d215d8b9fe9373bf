// Package overpass fetches kid-friendly places for the fixed region from the
// Overpass API and classifies them into the domain category set.
// The client holds no state between calls: every Fetch is a full re-query
// and a full re-classification.
package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkordes/kidmap/backend/internal/domain"
)

// DefaultEndpoint is the public Overpass interpreter.
const DefaultEndpoint = "https://overpass-api.de/api/interpreter"

// QueryTimeout is the server-side timeout hint embedded in every query.
const QueryTimeout = 90 * time.Second

// Client issues the region query against an Overpass endpoint.
type Client struct {
	endpoint  string
	http      *http.Client
	bounds    domain.BoundingBox
	userAgent string
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithBounds overrides the queried region. Production uses domain.RegionBounds.
func WithBounds(b domain.BoundingBox) Option {
	return func(c *Client) { c.bounds = b }
}

// NewClient constructs a Client for endpoint. An empty endpoint means DefaultEndpoint.
// The default HTTP timeout sits above QueryTimeout so the server gives up first.
func NewClient(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint:  endpoint,
		http:      &http.Client{Timeout: QueryTimeout + 10*time.Second},
		bounds:    domain.RegionBounds,
		userAgent: "kidmap/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch runs one query and returns the classified places in source order.
// Transport failures, non-2xx statuses, and undecodable bodies are returned
// wrapping domain.ErrNetwork. There is no retry and no partial result.
func (c *Client) Fetch(ctx context.Context) ([]domain.Place, error) {
	form := url.Values{"data": {BuildQuery(c.bounds, QueryTimeout)}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("overpass.Client.Fetch: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass.Client.Fetch: %w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("overpass.Client.Fetch: %w: HTTP status %d", domain.ErrNetwork, resp.StatusCode)
	}

	var body Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("overpass.Client.Fetch: %w: decode response: %v", domain.ErrNetwork, err)
	}

	return Classify(body.Elements), nil
}

// BuildQuery renders the Overpass QL for every category predicate inside b.
// Selectors follow category table order; each predicate is requested for
// nodes, ways, and relations, and "out center" asks for way/relation centroids.
func BuildQuery(b domain.BoundingBox, timeout time.Duration) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[bbox:%s,%s,%s,%s][out:json][timeout:%d];\n(\n",
		coord(b.South), coord(b.West), coord(b.North), coord(b.East), int(timeout.Seconds()))
	for _, c := range domain.Categories() {
		for _, kind := range []string{"node", "way", "relation"} {
			fmt.Fprintf(&sb, "  %s[%q=%q];\n", kind, c.Tag.Key, c.Tag.Value)
		}
	}
	sb.WriteString(");\nout center meta;\n")
	return sb.String()
}

func coord(f float64) string {
	return fmt.Sprintf("%.4f", f)
}
