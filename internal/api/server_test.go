package api

import (
	"context"
	"encoding/json/v2"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefrontapp/storefront-server/internal/config"
	"github.com/storefrontapp/storefront-server/internal/content"
	"github.com/storefrontapp/storefront-server/internal/contentstack"
	"github.com/storefrontapp/storefront-server/internal/http/response"
	"github.com/storefrontapp/storefront-server/internal/personalize"
)

// stubEntrySource records calls and serves canned results.
type stubEntrySource struct {
	entries []content.RawEntry
	entry   content.RawEntry
	err     error

	calls     int
	lastQuery contentstack.Query
	lastURL   string
}

func (s *stubEntrySource) Entries(_ context.Context, q contentstack.Query) ([]content.RawEntry, error) {
	s.calls++
	s.lastQuery = q
	if s.err != nil {
		return nil, s.err
	}
	return s.entries, nil
}

func (s *stubEntrySource) EntryByURL(_ context.Context, q contentstack.Query, entryURL string) (content.RawEntry, error) {
	s.calls++
	s.lastQuery = q
	s.lastURL = entryURL
	if s.err != nil {
		return nil, s.err
	}
	return s.entry, nil
}

// stubSessionSource records calls and serves canned session data.
type stubSessionSource struct {
	data personalize.SessionData
	err  error

	calls      int
	lastUserID string
	lastAttrs  map[string]any
}

func (s *stubSessionSource) ProjectUID() string { return "project-uid" }
func (s *stubSessionSource) EdgeURL() string    { return "https://edge.example" }

func (s *stubSessionSource) InitSession(_ context.Context, userID string, attrs map[string]any) (personalize.SessionData, error) {
	s.calls++
	s.lastUserID = userID
	s.lastAttrs = attrs
	if s.err != nil {
		return personalize.SessionData{VariantAliases: []string{}, Experiences: []personalize.Experience{}}, s.err
	}
	return s.data, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App:    config.AppConfig{Environment: "development"},
		Logger: config.LoggerConfig{Level: "error"},
		Server: config.ServerConfig{Port: "8080", CORSOrigins: []string{"*"}},
	}
}

func newTestServer(t *testing.T, cms EntrySource, personalizer SessionSource) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(testConfig(), cms, personalizer, logger)
}

func doRequest(t *testing.T, server *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHealthCheck_Healthy(t *testing.T) {
	server := newTestServer(t, &stubEntrySource{}, &stubSessionSource{})

	w := doRequest(t, server, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"healthy"`)
}

func TestHealthCheck_DegradedWithoutVendors(t *testing.T) {
	server := newTestServer(t, nil, nil)

	w := doRequest(t, server, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"degraded"`)
	assert.Contains(t, w.Body.String(), `"not_configured"`)
}

func TestRequestIDHeader(t *testing.T) {
	server := newTestServer(t, &stubEntrySource{}, &stubSessionSource{})

	w := doRequest(t, server, "/health")

	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestUnversionedAliases(t *testing.T) {
	cms := &stubEntrySource{entries: []content.RawEntry{{"url": "/"}}}
	server := newTestServer(t, cms, &stubSessionSource{})

	w := doRequest(t, server, "/entries?contentTypeUid=page&locale=en-us")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, cms.calls)
}
