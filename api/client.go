package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/poiesic/sbasearch/core"
)

// DefaultBaseURL is the production endpoint of the certification search API.
const DefaultBaseURL = "https://search.certifications.sba.gov/_api/v2"

// DefaultTimeout applies to each individual request.
const DefaultTimeout = 60 * time.Second

const (
	// searchAttempts is 1 initial try plus at most 2 retries.
	searchAttempts = 3
	// profileAttempts is 1 initial try plus at most 1 retry.
	profileAttempts = 2

	defaultRetryDelay = 500 * time.Millisecond
)

// Client calls the search and profile endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	retryDelay time.Duration
	proxy      ProxySource
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Non-positive values keep the
// default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithProxySource sets the per-request proxy capability.
func WithProxySource(source ProxySource) Option {
	return func(c *Client) {
		c.proxy = source
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithRetryDelay sets the base backoff delay between retries.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.retryDelay = d
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// NewClient creates a client for the given base URL. An empty base URL means
// the production endpoint.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		timeout:    DefaultTimeout,
		retryDelay: defaultRetryDelay,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search POSTs the canonical filter tree and returns the decoded response.
// Transport failures and retryable statuses are retried up to twice; a
// response body carrying a domain error field is immediately fatal.
func (c *Client) Search(ctx context.Context, filters *core.Filters) (*core.SearchResponse, error) {
	body, err := json.Marshal(filters)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding filters: %w", ErrSearchFailed, err)
	}

	var response core.SearchResponse
	err = retryWithBackoff(ctx, func() error {
		response = core.SearchResponse{}
		return c.do(ctx, http.MethodPost, c.baseURL+"/search", body, &response)
	}, searchAttempts, c.retryDelay)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}

	if response.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrAPIError, response.Error)
	}
	return &response, nil
}

// FetchProfile GETs the detail record for one entity. Retried at most once.
func (c *Client) FetchProfile(ctx context.Context, uei, cageCode string) (any, error) {
	endpoint := c.baseURL + "/profile/" + url.PathEscape(uei) + "/" + url.PathEscape(cageCode)

	var profile any
	err := retryWithBackoff(ctx, func() error {
		profile = nil
		return c.do(ctx, http.MethodGet, endpoint, nil, &profile)
	}, profileAttempts, c.retryDelay)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProfileFailed, err)
	}
	return profile, nil
}

// do performs one HTTP exchange with the per-request timeout and, when a
// proxy source is configured, a freshly requested proxy URL.
func (c *Client) do(ctx context.Context, method, endpoint string, body []byte, out any) error {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(reqCtx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client, err := c.clientFor(reqCtx)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096)) //nolint:errcheck
		return &statusError{status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// clientFor returns the HTTP client to use for one request, requesting a
// proxy URL from the source when one is configured.
func (c *Client) clientFor(ctx context.Context) (*http.Client, error) {
	if c.proxy == nil {
		return c.httpClient, nil
	}
	raw, err := c.proxy.URL(ctx)
	if err != nil {
		return nil, fmt.Errorf("proxy source: %w", err)
	}
	if raw == "" {
		return c.httpClient, nil
	}
	proxyURL, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("proxy source: %w", err)
	}
	proxied := *c.httpClient
	proxied.Transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
	return &proxied, nil
}
