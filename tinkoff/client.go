// Package tinkoff implements opsheet.Broker on top of the Tinkoff Invest OpenAPI (v1) REST API.
package tinkoff

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL   = "https://api-invest.tinkoff.ru/openapi"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 4 // requests per second
)

// Client is a Tinkoff Invest API client. It is safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     zerolog.Logger
	// instruments memoizes ticker and figi lookups for the life of the process.
	instruments *cache.Cache
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit. A non positive limit keeps the default.
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		if requestsPerSecond <= 0 {
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithDiskCache caches instrument search responses in dir for the day.
func WithDiskCache(dir string) ClientOption {
	return func(c *Client) {
		base := c.httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		c.httpClient.Transport = &diskCache{base: base, dir: dir, logger: &c.logger}
	}
}

// NewClient creates a new client authenticated with token.
func NewClient(token string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter:     rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:      zerolog.Nop(),
		instruments: cache.New(6*time.Hour, time.Hour),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tinkoff API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// get performs a rate-limited GET request and decodes the payload found at
// "$.payload"+field in the response envelope into result.
//
// Every response is wrapped as {"trackingId": ..., "status": "Ok"|"Error", "payload": ...}.
func (c *Client) get(ctx context.Context, path string, params url.Values, field string, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := c.baseURL + "/" + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	c.logger.Debug().Str("path", path).Str("query", params.Encode()).Msg("tinkoff API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// numbers are kept as json.Number so that amounts survive the round trip exactly.
	var envelope any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	decodeErr := dec.Decode(&envelope)

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Str("path", path).Int("status", resp.StatusCode).Msg("tinkoff API failure")
		msg := string(body)
		if decodeErr == nil {
			if m, ok := stringAt(envelope, "$.payload.message"); ok {
				msg = m
			}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg, Endpoint: path}
	}
	if decodeErr != nil {
		return fmt.Errorf("failed to decode response: %w", decodeErr)
	}
	if status, _ := stringAt(envelope, "$.status"); status != "Ok" {
		msg, _ := stringAt(envelope, "$.payload.message")
		return &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("status %q: %s", status, msg), Endpoint: path}
	}

	payload, err := jsonpath.Get("$.payload"+field, envelope)
	if err != nil {
		return fmt.Errorf("reading payload%s of %s: %w", field, path, err)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("failed to decode payload%s of %s: %w", field, path, err)
	}
	return nil
}

// stringAt returns the string at path in a decoded JSON document.
func stringAt(doc any, path string) (string, bool) {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
