package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client handles calls to the DiscordDollars API
type Client struct {
	httpClient        *http.Client
	baseURL           string
	token             string
	userAgent         string
	logger            *zap.Logger
	concurrentLookups bool
	stageHook         func(Stage)
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at a different API host
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = timeout
		c.httpClient = &hc
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithConcurrentLookups lets Transact issue its four lookups in parallel
func WithConcurrentLookups(enabled bool) Option {
	return func(c *Client) {
		c.concurrentLookups = enabled
	}
}

// WithStageHook registers a callback invoked as each Transact stage begins
func WithStageHook(hook func(Stage)) Option {
	return func(c *Client) {
		c.stageHook = hook
	}
}

// NewClient creates a new API client authenticated with token
func NewClient(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, &ConfigurationError{Field: "token", Err: ErrMissingToken}
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL:   BaseURL,
		token:     token,
		userAgent: DefaultUserAgent,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the API base URL the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// request performs one round trip against the API.
// POST data is sent as a JSON body, GET data as query parameters.
func (c *Client) request(ctx context.Context, method, endpoint string, data interface{}) (Body, error) {
	target := c.baseURL + endpoint

	var reqBody io.Reader
	switch {
	case method == http.MethodPost && data != nil:
		payload, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	case method == http.MethodGet && data != nil:
		query, err := encodeQuery(data)
		if err != nil {
			return nil, err
		}
		if len(query) > 0 {
			sep := "?"
			if strings.Contains(target, "?") {
				sep = "&"
			}
			target += sep + query.Encode()
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			Method:     method,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return decodeBody(body)
}

func decodeBody(data []byte) (Body, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Body{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var result Body
	if err := dec.Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if result == nil {
		result = Body{}
	}
	return result, nil
}

func encodeQuery(data interface{}) (url.Values, error) {
	switch d := data.(type) {
	case url.Values:
		return d, nil
	case map[string]string:
		query := url.Values{}
		for k, v := range d {
			query.Set(k, v)
		}
		return query, nil
	case map[string]interface{}:
		query := url.Values{}
		for k, v := range d {
			query.Set(k, fmt.Sprint(v))
		}
		return query, nil
	default:
		return nil, fmt.Errorf("unsupported query data type %T", data)
	}
}

// path joins an endpoint template with escaped path segments
func path(format string, segments ...string) string {
	args := make([]interface{}, len(segments))
	for i, s := range segments {
		args[i] = url.PathEscape(s)
	}
	return fmt.Sprintf(format, args...)
}
