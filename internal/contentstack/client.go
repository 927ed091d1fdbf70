// Package contentstack implements a client for the Contentstack
// Content Delivery API. It fetches raw entries for a content type and
// locale; transformation into typed page models happens elsewhere.
package contentstack

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/storefrontapp/storefront-server/internal/content"
	"github.com/storefrontapp/storefront-server/internal/ratelimit"
)

const (
	defaultHost = "cdn.contentstack.io"

	// Delivery API allows generous throughput; stay well under it.
	defaultRPS   = 10.0
	defaultBurst = 20

	defaultTimeout = 30 * time.Second
)

// Config holds the delivery credentials. APIKey, DeliveryToken, and
// Environment are required; the preview pair is only needed for
// preview-host setups.
type Config struct {
	APIKey        string
	DeliveryToken string
	PreviewToken  string
	PreviewHost   string
	Environment   string
	Host          string
}

// Configured reports whether the required credentials are present.
func (c Config) Configured() bool {
	return c.APIKey != "" && c.DeliveryToken != "" && c.Environment != ""
}

// Client is a rate-limited Contentstack Delivery API client.
type Client struct {
	http    *http.Client
	limiter *ratelimit.KeyedRateLimiter
	cfg     Config
	baseURL string
	logger  *slog.Logger
}

// New creates a new delivery client. It fails with a configuration
// error when the required credentials are missing.
func New(cfg Config, logger *slog.Logger) (*Client, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}
	if cfg.Host == "" {
		cfg.Host = defaultHost
	}

	return &Client{
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter: ratelimit.New(defaultRPS, defaultBurst),
		cfg:     cfg,
		baseURL: "https://" + cfg.Host,
		logger:  logger,
	}, nil
}

// entriesResponse is the delivery API result envelope.
type entriesResponse struct {
	Entries []content.RawEntry `json:"entries"`
}

// errorResponse is the delivery API error envelope.
type errorResponse struct {
	ErrorMessage string `json:"error_message"`
	ErrorCode    int    `json:"error_code"`
}

// Entries fetches all entries of a content type in a locale. A single
// attempt is made; transport errors propagate unchanged. An empty
// result set yields ErrNotFound.
func (c *Client) Entries(ctx context.Context, q Query) ([]content.RawEntry, error) {
	body, err := c.doRequest(ctx, q)
	if err != nil {
		return nil, wrapError("entries", q.ContentType, err)
	}

	var result entriesResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, wrapError("entries", q.ContentType, fmt.Errorf("parse response: %w", err))
	}

	// The vendor reports an existing-but-empty content type as a 200
	// with no entries, or with a single empty object.
	if len(result.Entries) == 0 || len(result.Entries[0]) == 0 {
		return nil, wrapError("entries", q.ContentType, ErrNotFound)
	}

	c.logger.Debug("fetched entries",
		"content_type", q.ContentType,
		"locale", q.Locale,
		"count", len(result.Entries),
	)

	return result.Entries, nil
}

// EntryByURL fetches the single entry whose url field matches
// entryURL. Any filter already on the query is replaced.
func (c *Client) EntryByURL(ctx context.Context, q Query, entryURL string) (content.RawEntry, error) {
	q.Filter = map[string]any{"url": entryURL}
	q.Operator = ""

	entries, err := c.Entries(ctx, q)
	if err != nil {
		var csErr *Error
		if errors.As(err, &csErr) {
			csErr.Op = "entryByUrl"
		}
		return nil, err
	}

	return entries[0], nil
}

// doRequest executes one rate-limited GET against the entries endpoint.
func (c *Client) doRequest(ctx context.Context, q Query) ([]byte, error) {
	if err := c.limiter.Wait(ctx, c.cfg.Host); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	requestURL := c.baseURL + "/v3/content_types/" + q.ContentType + "/entries?" + q.params(c.cfg.Environment).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("api_key", c.cfg.APIKey)
	req.Header.Set("access_token", c.cfg.DeliveryToken)

	c.logger.Debug("contentstack request",
		"content_type", q.ContentType,
		"locale", q.Locale,
	)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: %s", ErrServer, vendorMessage(body, resp.StatusCode))
	default:
		return nil, fmt.Errorf("%w: %s", ErrBadRequest, vendorMessage(body, resp.StatusCode))
	}
}

// vendorMessage extracts the vendor's human-readable error message so
// it can pass through to API consumers.
func vendorMessage(body []byte, status int) string {
	var vendor errorResponse
	if err := json.Unmarshal(body, &vendor); err == nil && vendor.ErrorMessage != "" {
		return vendor.ErrorMessage
	}
	return fmt.Sprintf("status %d", status)
}
