// Package personalize implements a client for the Contentstack
// Personalize Edge API. It binds an anonymous user id to a project and
// reports which experiment variants that user is bucketed into.
package personalize

import (
	"bytes"
	"context"
	"encoding/json/v2"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/storefrontapp/storefront-server/internal/errors"
	"github.com/storefrontapp/storefront-server/internal/ratelimit"
)

const (
	defaultEdgeAPIURL = "https://personalize-edge.contentstack.com"

	defaultRPS     = 10.0
	defaultBurst   = 20
	defaultTimeout = 30 * time.Second

	headerProjectUID = "x-project-uid"
	headerUserUID    = "x-cs-personalize-user-uid"
)

// ErrNotConfigured is returned when the personalize project is not set up.
var ErrNotConfigured = apperrors.Configuration(
	"personalize client is not initialized; check environment variables: " +
		"CONTENTSTACK_PERSONALIZE_PROJECT_UID, CONTENTSTACK_PERSONALIZE_EDGE_API_URL")

// Experience is one experiment the project runs. ActiveVariantShortUID
// is nil when the user is not bucketed into any variant.
type Experience struct {
	ShortUID              string  `json:"shortUid"`
	ActiveVariantShortUID *string `json:"activeVariantShortUid"`
}

// SessionData is the per-user personalization result. Slices are
// always non-nil; VariantIDs is the comma-joined alias list for
// transport convenience.
type SessionData struct {
	VariantAliases []string     `json:"variantAliases"`
	Experiences    []Experience `json:"experiences"`
	VariantIDs     string       `json:"variantIds"`
}

// Client is a rate-limited Personalize Edge API client.
type Client struct {
	http       *http.Client
	limiter    *ratelimit.KeyedRateLimiter
	projectUID string
	baseURL    string
	logger     *slog.Logger
}

// New creates a new edge client bound to a project. The edge URL
// defaults to the public endpoint when empty.
func New(projectUID, edgeAPIURL string, logger *slog.Logger) (*Client, error) {
	if projectUID == "" {
		return nil, ErrNotConfigured
	}
	if edgeAPIURL == "" {
		edgeAPIURL = defaultEdgeAPIURL
	}
	if _, err := url.Parse(edgeAPIURL); err != nil {
		return nil, ErrNotConfigured.WithCause(err)
	}

	return &Client{
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter:    ratelimit.New(defaultRPS, defaultBurst),
		projectUID: projectUID,
		baseURL:    strings.TrimRight(edgeAPIURL, "/"),
		logger:     logger,
	}, nil
}

// ProjectUID returns the bound project id.
func (c *Client) ProjectUID() string {
	return c.projectUID
}

// EdgeURL returns the edge API endpoint in use.
func (c *Client) EdgeURL() string {
	return c.baseURL
}

// manifestResponse is the edge manifest envelope.
type manifestResponse struct {
	Experiences []Experience `json:"experiences"`
}

// InitSession binds userID to the project and returns the user's
// variant data. Attribute seeding and the manifest fetch are part of
// initialization: their failures propagate. A manifest that fetches
// but does not parse degrades to an empty result instead of failing
// the request.
func (c *Client) InitSession(ctx context.Context, userID string, attrs map[string]any) (SessionData, error) {
	empty := SessionData{
		VariantAliases: []string{},
		Experiences:    []Experience{},
	}

	if len(attrs) > 0 {
		if err := c.setAttributes(ctx, userID, attrs); err != nil {
			return empty, err
		}
	}

	body, err := c.doRequest(ctx, http.MethodGet, "/manifest", userID, nil)
	if err != nil {
		return empty, err
	}

	var manifest manifestResponse
	if err := json.Unmarshal(body, &manifest); err != nil {
		c.logger.Warn("malformed personalize manifest, serving unpersonalized",
			"error", err,
			"user_id", userID,
		)
		return empty, nil
	}

	data := SessionData{
		VariantAliases: []string{},
		Experiences:    manifest.Experiences,
	}
	if data.Experiences == nil {
		data.Experiences = []Experience{}
	}
	for _, exp := range data.Experiences {
		if exp.ShortUID == "" || exp.ActiveVariantShortUID == nil {
			continue
		}
		data.VariantAliases = append(data.VariantAliases, exp.ShortUID+"_"+*exp.ActiveVariantShortUID)
	}
	data.VariantIDs = strings.Join(data.VariantAliases, ",")

	c.logger.Debug("personalize session initialized",
		"user_id", userID,
		"experiences", len(data.Experiences),
		"variants", len(data.VariantAliases),
	)

	return data, nil
}

// setAttributes seeds live user attributes for bucketing.
func (c *Client) setAttributes(ctx context.Context, userID string, attrs map[string]any) error {
	payload, err := json.Marshal(attrs)
	if err != nil {
		return fmt.Errorf("encode attributes: %w", err)
	}
	_, err = c.doRequest(ctx, http.MethodPatch, "/user-attributes", userID, payload)
	if err != nil {
		return fmt.Errorf("set attributes: %w", err)
	}
	return nil
}

// doRequest executes one rate-limited edge API call.
func (c *Client) doRequest(ctx context.Context, method, path, userID string, payload []byte) ([]byte, error) {
	if err := c.limiter.Wait(ctx, c.baseURL); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerProjectUID, c.projectUID)
	req.Header.Set(headerUserUID, userID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("personalize %s %s: status %d", method, path, resp.StatusCode)
	}

	return body, nil
}
