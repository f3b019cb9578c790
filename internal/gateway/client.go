// Package gateway talks to the external phone validation and world time APIs.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"contact-directory/config"
	"contact-directory/internal/metrics"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	apiKeyHeader = "X-Api-Key"
	maxBodyBytes = 1 << 20
)

// Client performs single-shot, credentialed GET calls against the upstream API.
// It is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    *metrics.Metrics
	log        *zap.SugaredLogger
}

// Option customises client instantiation.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithMetrics records every call on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New constructs a Client from upstream configuration.
func New(cfg config.UpstreamConfig, log *zap.SugaredLogger, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid upstream base url: %w", err)
	}
	if cfg.APIKey == "" {
		return nil, errors.New("upstream api key is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	limit := rate.Inf
	if cfg.RateLimitRPS > 0 {
		limit = rate.Limit(cfg.RateLimitRPS)
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = 1
	}

	c := &Client{
		baseURL:    base,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, burst),
		log:        log.Named("gateway"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) getJSON(ctx context.Context, provider, path string, query url.Values, v any) (err error) {
	start := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		c.metrics.ObserveUpstream(provider, outcome, time.Since(start))
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		return &Error{Provider: provider, Message: "rate limiter", Err: err}
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &Error{Provider: provider, Message: "create request", Err: err}
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warnw("upstream request failed", "provider", provider, "error", err)
		return &Error{Provider: provider, Message: "perform request", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &Error{Provider: provider, Status: resp.StatusCode, Message: "read body", Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Warnw("upstream rejected request", "provider", provider, "status", resp.StatusCode)
		return &Error{Provider: provider, Status: resp.StatusCode, Message: extractError(body)}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &Error{Provider: provider, Status: resp.StatusCode, Message: "decode response", Err: err}
	}
	return nil
}

func extractError(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Error == "" {
		return strings.TrimSpace(string(body))
	}
	return strings.TrimSpace(payload.Error)
}
