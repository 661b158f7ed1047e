// Package scryfall implements card enrichment against the Scryfall API.
// The client rate-limits itself to the documented courtesy limit and
// retries transient failures with capped backoff.
package scryfall

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.scryfall.com"
	rateLimitDelay = 100 * time.Millisecond // 10 req/sec courtesy limit
	requestTimeout = 30 * time.Second
	maxRetries     = 3
	initialBackoff = 1 * time.Second
	maxBackoff     = 16 * time.Second
)

// Client is a rate-limited Scryfall API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
	backoff    time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithRetryBackoff overrides the initial retry backoff.
func WithRetryBackoff(d time.Duration) ClientOption {
	return func(c *Client) {
		c.backoff = d
	}
}

// NewClient creates a new Scryfall API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		limiter:   rate.NewLimiter(rate.Every(rateLimitDelay), 1),
		userAgent: "edhgrab/1.0",
		backoff:   initialBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CardByName retrieves a card by its exact name.
func (c *Client) CardByName(ctx context.Context, name string) (*Card, error) {
	u := fmt.Sprintf("%s/cards/named?exact=%s", c.baseURL, url.QueryEscape(name))

	var card Card
	if err := c.doRequest(ctx, u, &card); err != nil {
		return nil, fmt.Errorf("get card %q: %w", name, err)
	}

	return &card, nil
}

// SetByCode retrieves set information by set code.
func (c *Client) SetByCode(ctx context.Context, code string) (*Set, error) {
	u := fmt.Sprintf("%s/sets/%s", c.baseURL, url.PathEscape(code))

	var set Set
	if err := c.doRequest(ctx, u, &set); err != nil {
		return nil, fmt.Errorf("get set %q: %w", code, err)
	}

	return &set, nil
}

// doRequest performs a GET with rate limiting and retry, decoding the
// JSON response into result.
func (c *Client) doRequest(ctx context.Context, url string, result any) error {
	var lastErr error
	backoff := c.backoff

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		body, status, header, err := c.get(ctx, url, "application/json")
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if attempt < maxRetries {
				if err := sleep(ctx, backoff); err != nil {
					return err
				}
				backoff = min(backoff*2, maxBackoff)
				continue
			}
			return lastErr
		}

		switch status {
		case http.StatusOK:
			if err := json.Unmarshal(body, result); err != nil {
				return fmt.Errorf("parse response: %w", err)
			}
			return nil

		case http.StatusTooManyRequests:
			lastErr = fmt.Errorf("rate limited (HTTP 429)")
			if attempt < maxRetries {
				delay := backoff
				if ra := header.Get("Retry-After"); ra != "" {
					if d, err := time.ParseDuration(ra + "s"); err == nil {
						delay = d
					}
				}
				if err := sleep(ctx, delay); err != nil {
					return err
				}
				backoff = min(backoff*2, maxBackoff)
				continue
			}
			return lastErr

		case http.StatusNotFound:
			return &NotFoundError{URL: url}

		default:
			var apiErr APIError
			if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Details != "" {
				return &apiErr
			}
			return fmt.Errorf("HTTP %d: %s", status, string(body))
		}
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

// get issues a single GET request and returns the body, status and headers.
func (c *Client) get(ctx context.Context, url string, accept string) ([]byte, int, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", accept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, nil, err
	}

	return body, resp.StatusCode, resp.Header, nil
}

// fetchRaw retrieves a non-JSON resource (e.g. a set symbol SVG),
// honoring the shared rate limit.
func (c *Client) fetchRaw(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, status, _, err := c.get(ctx, url, "*/*")
	if err != nil {
		return nil, err
	}

	switch status {
	case http.StatusOK:
		return body, nil
	case http.StatusNotFound:
		return nil, &NotFoundError{URL: url}
	default:
		return nil, fmt.Errorf("HTTP %d fetching %s", status, url)
	}
}

// sleep waits for the duration unless the context ends first.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
