package contentful

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tendant/simple-recipes/pkg/simplerecipes"
)

const (
	DefaultHost        = "cdn.contentful.com"
	PreviewHost        = "preview.contentful.com"
	DefaultEnvironment = "master"

	// MaxLimit is the largest page the delivery API returns
	MaxLimit = 1000
)

// Config options for the Contentful delivery client
type Config struct {
	SpaceID     string        // Space identifier
	AccessToken string        // Delivery (or preview) API token
	Environment string        // Environment name (default: master)
	Host        string        // API host (default: cdn.contentful.com)
	BaseURL     string        // Optional full base URL, overrides Host (used against test servers)
	HTTPClient  *http.Client  // Optional HTTP client
	Timeout     time.Duration // Optional timeout of the default HTTP client (default: none, the request context bounds the call)
}

// Client is a simplerecipes.ContentClient backed by the Contentful
// Content Delivery API. It is stateless and safe for concurrent use.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
}

// New creates a new Contentful delivery client
func New(config Config) (*Client, error) {
	if config.SpaceID == "" {
		return nil, errors.New("contentful space ID is required")
	}
	if config.AccessToken == "" {
		return nil, errors.New("contentful access token is required")
	}

	if config.Environment == "" {
		config.Environment = DefaultEnvironment
	}
	if config.Host == "" {
		config.Host = DefaultHost
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	base := config.BaseURL
	if base == "" {
		base = "https://" + config.Host
	}
	base = strings.TrimRight(base, "/") + "/spaces/" + url.PathEscape(config.SpaceID) +
		"/environments/" + url.PathEscape(config.Environment)

	return &Client{
		http:    httpClient,
		baseURL: base,
		token:   config.AccessToken,
	}, nil
}

// ListEntries fetches entries of one content type with linked assets resolved
func (c *Client) ListEntries(ctx context.Context, query simplerecipes.EntryQuery) ([]simplerecipes.Entry, error) {
	params := url.Values{}
	if query.ContentType != "" {
		params.Set("content_type", query.ContentType)
	}
	if query.Order != "" {
		params.Set("order", query.Order)
	}
	params.Set("limit", strconv.Itoa(clampLimit(query.Limit)))
	params.Set("include", "1")

	var resp entriesResponse
	if err := c.get(ctx, "/entries", params, &resp); err != nil {
		return nil, err
	}
	return resp.entries(), nil
}

// GetEntry fetches one entry by ID. The collection endpoint is used so that
// the image link comes back resolved in the includes.
func (c *Client) GetEntry(ctx context.Context, id string) (*simplerecipes.Entry, error) {
	params := url.Values{}
	params.Set("sys.id", id)
	params.Set("include", "1")

	var resp entriesResponse
	if err := c.get(ctx, "/entries", params, &resp); err != nil {
		return nil, err
	}
	entries := resp.entries()
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", simplerecipes.ErrNotFound, id)
	}
	return &entries[0], nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to build request: %w", simplerecipes.ErrFetch, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %w", simplerecipes.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", simplerecipes.ErrNotFound, apiMessage(resp.Body))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d: %s", simplerecipes.ErrFetch, resp.StatusCode, apiMessage(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", simplerecipes.ErrFetch, err)
	}
	return nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return simplerecipes.DefaultFetchLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

// apiMessage extracts the message of an API error body
func apiMessage(r io.Reader) string {
	var apiErr struct {
		Message string `json:"message"`
		Sys     struct {
			ID string `json:"id"`
		} `json:"sys"`
	}
	body, _ := io.ReadAll(io.LimitReader(r, 64<<10))
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Message == "" {
		return strings.TrimSpace(string(body))
	}
	if apiErr.Sys.ID != "" {
		return apiErr.Sys.ID + ": " + apiErr.Message
	}
	return apiErr.Message
}
