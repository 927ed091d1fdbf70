// Package identity issues the durable anonymous user identifier the
// personalization vendor keys sessions on. The cookie is the only
// persistence; no identifier is stored server-side.
package identity

import (
	"net/http"

	"github.com/google/uuid"
)

// CookieName is the vendor-prescribed cookie carrying the anonymous id.
// Client-side script reads it, so it is never HttpOnly.
const CookieName = "cs-personalize-user-uid"

// cookieMaxAge is one year in seconds.
const cookieMaxAge = 365 * 24 * 60 * 60

// GetOrCreate returns the visitor's anonymous identifier. An existing
// well-formed cookie value is reused; anything else is replaced by a
// fresh random UUID. The cookie is re-set on every call so the
// one-year expiry keeps sliding forward.
func GetOrCreate(w http.ResponseWriter, r *http.Request, secure bool) string {
	anonID := ""
	if cookie, err := r.Cookie(CookieName); err == nil {
		if _, err := uuid.Parse(cookie.Value); err == nil {
			anonID = cookie.Value
		}
	}
	if anonID == "" {
		anonID = uuid.NewString()
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    anonID,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: false,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})

	return anonID
}
