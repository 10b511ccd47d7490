package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Searcher defines the lookups the UI performs against the directory API.
// This interface is implemented by *Client and can be stubbed in tests.
type Searcher interface {
	SearchLocations(ctx context.Context, query string) ([]Location, error)
	DefaultLocation(ctx context.Context) (Location, error)
	SearchListings(ctx context.Context, query, locationID string) ([]Listing, error)
}

// Ensure Client implements Searcher at compile time.
var _ Searcher = (*Client)(nil)

// Client talks to the directory HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBind   = "127.0.0.1:8640"
	defaultUserAgent = "roost/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client using the provided apiBind host:port value.
func NewClient(apiBind string) (*Client, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// SearchLocations retrieves locations matching query. An empty query returns
// the backend's suggested locations, used to populate the dropdown on focus.
func (c *Client) SearchLocations(ctx context.Context, query string) ([]Location, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	if q := strings.TrimSpace(query); q != "" {
		values.Set("q", q)
	}
	rel := &url.URL{Path: "/api/locations/search", RawQuery: values.Encode()}
	var payload LocationListResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	return payload.Locations, nil
}

// DefaultLocation retrieves the backend's default location, used when the
// user has never picked one.
func (c *Client) DefaultLocation(ctx context.Context) (Location, error) {
	if c == nil {
		return Location{}, fmt.Errorf("client is nil")
	}
	var payload DefaultLocationResponse
	if err := c.do(ctx, http.MethodGet, "/api/locations/default", &payload); err != nil {
		return Location{}, err
	}
	return payload.Location, nil
}

// SearchListings retrieves listings matching query, optionally scoped to a
// location.
func (c *Client) SearchListings(ctx context.Context, query, locationID string) ([]Listing, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	if q := strings.TrimSpace(query); q != "" {
		values.Set("q", q)
	}
	if loc := strings.TrimSpace(locationID); loc != "" {
		values.Set("location", loc)
	}
	rel := &url.URL{Path: "/api/listings/search", RawQuery: values.Encode()}
	var payload ListingListResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	return payload.Listings, nil
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, method, rel, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_bind %q: %w", apiBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
