package contentstack

import (
	"errors"
	"fmt"

	apperrors "github.com/storefrontapp/storefront-server/internal/errors"
)

// ErrNotConfigured is returned when the delivery client is missing its
// required credentials. The message enumerates the environment values
// operators must check.
var ErrNotConfigured = apperrors.Configuration(
	"contentstack client is not initialized; check environment variables: " +
		"CONTENTSTACK_API_KEY, CONTENTSTACK_DELIVERY_TOKEN, CONTENTSTACK_PREVIEW_TOKEN, " +
		"CONTENTSTACK_PREVIEW_HOST, CONTENTSTACK_ENVIRONMENT")

// Sentinel errors for delivery API operations.
var (
	ErrNotFound    = errors.New("contentstack: not found")
	ErrRateLimited = errors.New("contentstack: rate limited by server")
	ErrServer      = errors.New("contentstack: server error")
	ErrBadRequest  = errors.New("contentstack: bad request")
)

// Error wraps an underlying error with operation context.
type Error struct {
	Op          string // Operation: "entries", "entryByUrl"
	ContentType string
	Err         error
}

func (e *Error) Error() string {
	return fmt.Sprintf("contentstack %s [%s]: %v", e.Op, e.ContentType, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrapError creates an Error with context.
func wrapError(op, contentType string, err error) error {
	return &Error{
		Op:          op,
		ContentType: contentType,
		Err:         err,
	}
}
