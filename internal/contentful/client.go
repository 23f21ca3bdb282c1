// Package contentful reads content type definitions from the Contentful
// Content Management API.
package contentful

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/contentful-labs/contentful-generator/internal/schema"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the public Content Management API endpoint
	DefaultBaseURL = "https://api.contentful.com"

	// DefaultEnvironment is used when no environment is given
	DefaultEnvironment = "master"

	// PageSize is the number of content types requested per page
	PageSize = 100

	defaultTimeout = 30 * time.Second
)

// Client fetches content types of a space
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at another API host
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client authenticated with a management token
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentTypes returns every content type of the given space environment.
// Pages are requested until the reported total is reached.
func (c *Client) ContentTypes(ctx context.Context, spaceID, environment string) ([]schema.ContentType, error) {
	if spaceID == "" {
		return nil, ErrMissingSpace
	}
	if c.token == "" {
		return nil, ErrMissingToken
	}
	if environment == "" {
		environment = DefaultEnvironment
	}

	var all []schema.ContentType
	for skip := 0; ; {
		page, err := c.fetchPage(ctx, spaceID, environment, skip)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Items...)
		skip += len(page.Items)

		c.logger.Debug().
			Str("space", spaceID).
			Str("environment", environment).
			Int("count", len(all)).
			Int("total", page.Total).
			Msg("fetched content types page")

		if len(page.Items) == 0 || skip >= page.Total {
			break
		}
	}
	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, spaceID, environment string, skip int) (*schema.Collection, error) {
	endpoint := fmt.Sprintf("%s/spaces/%s/environments/%s/content_types",
		c.baseURL, url.PathEscape(spaceID), url.PathEscape(environment))

	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("limit", strconv.Itoa(PageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.contentful.management.v1+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content types: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    errorMessage(body),
		}
	}

	return schema.ParseContentTypes(body)
}

// errorMessage extracts the message of a CMA error payload, if any
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
