package api

import (
	"encoding/json/v2"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefrontapp/storefront-server/internal/identity"
	"github.com/storefrontapp/storefront-server/internal/personalize"
)

func variantShortUID(s string) *string { return &s }

func userCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == identity.CookieName {
			return c
		}
	}
	t.Fatalf("cookie %s not set", identity.CookieName)
	return nil
}

func TestPersonalizeSDK_Success(t *testing.T) {
	personalizer := &stubSessionSource{data: personalize.SessionData{
		VariantAliases: []string{"exp1_a"},
		Experiences:    []personalize.Experience{{ShortUID: "exp1", ActiveVariantShortUID: variantShortUID("a")}},
		VariantIDs:     "exp1_a",
	}}
	server := newTestServer(t, nil, personalizer)

	w := doRequest(t, server, "/api/v1/personalize-sdk")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data PersonalizeSDKResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "project-uid", body.Data.ProjectUID)
	assert.Equal(t, "https://edge.example", body.Data.EdgeURL)
	assert.Equal(t, []string{"exp1_a"}, body.Data.VariantAliases)
	assert.Equal(t, "exp1_a", body.Data.VariantIDs)
	require.NoError(t, uuid.Validate(body.Data.UserID))
	assert.Equal(t, personalizer.lastUserID, body.Data.UserID)
}

func TestPersonalizeSDK_SetsDurableCookie(t *testing.T) {
	server := newTestServer(t, nil, &stubSessionSource{})

	w := doRequest(t, server, "/api/v1/personalize-sdk")

	c := userCookie(t, w)
	require.NoError(t, uuid.Validate(c.Value))
	assert.Equal(t, 365*24*60*60, c.MaxAge)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.False(t, c.HttpOnly, "front-end script reads the cookie")
	assert.False(t, c.Secure, "secure only in production")
}

func TestPersonalizeSDK_ReusesExistingID(t *testing.T) {
	personalizer := &stubSessionSource{}
	server := newTestServer(t, nil, personalizer)
	existing := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/personalize-sdk", nil)
	req.AddCookie(&http.Cookie{Name: identity.CookieName, Value: existing})
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, existing, personalizer.lastUserID)
	assert.Equal(t, existing, userCookie(t, w).Value)
}

func TestPersonalizeSDK_SeedsAttributes(t *testing.T) {
	personalizer := &stubSessionSource{}
	server := newTestServer(t, nil, personalizer)

	w := doRequest(t, server, "/api/v1/personalize-sdk?category=audio&subcategory=headphones")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"category": "audio", "subcategory": "headphones"}, personalizer.lastAttrs)
}

func TestPersonalizeSDK_NotConfigured(t *testing.T) {
	server := newTestServer(t, nil, nil)

	w := doRequest(t, server, "/api/v1/personalize-sdk")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, decodeEnvelope(t, w).Error, "CONTENTSTACK_PERSONALIZE_PROJECT_UID")
	// The cookie is still minted so the id survives misconfiguration.
	require.NoError(t, uuid.Validate(userCookie(t, w).Value))
}

func TestPersonalizeSDK_InitFailure(t *testing.T) {
	personalizer := &stubSessionSource{err: errors.New("edge api unreachable")}
	server := newTestServer(t, nil, personalizer)

	w := doRequest(t, server, "/api/v1/personalize-sdk")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "edge api unreachable", decodeEnvelope(t, w).Error)
	require.NoError(t, uuid.Validate(userCookie(t, w).Value))
}
