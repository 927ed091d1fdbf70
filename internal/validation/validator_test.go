package validation_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/storefrontapp/storefront-server/internal/errors"
	"github.com/storefrontapp/storefront-server/internal/validation"
)

type listRequest struct {
	ContentTypeUID string `query:"contentTypeUid" validate:"required"`
	Locale         string `query:"locale" validate:"required"`
	QueryOperator  string `query:"queryOperator" validate:"omitempty,oneof=and or"`
}

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()

	req := listRequest{
		ContentTypeUID: "page",
		Locale:         "en-us",
	}

	assert.NoError(t, v.Validate(req))
}

func TestValidator_MissingParameterMessage(t *testing.T) {
	v := validation.New()

	req := listRequest{
		ContentTypeUID: "page",
	}

	err := v.Validate(req)
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus())
	assert.Equal(t, "Missing required parameter: locale", domainErr.Message)
}

func TestValidator_MultipleErrorsUseDetails(t *testing.T) {
	v := validation.New()

	req := listRequest{
		QueryOperator: "xor",
	}

	err := v.Validate(req)
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus())

	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok, "details should map fields to messages")
	assert.Contains(t, details, "contentTypeUid")
	assert.Contains(t, details, "locale")
	assert.Contains(t, details, "queryOperator")
}

func TestValidator_UsesQueryTagNames(t *testing.T) {
	v := validation.New()

	type onlyJSON struct {
		EntryURL string `json:"entryUrl" validate:"required"`
	}

	err := v.Validate(onlyJSON{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entryUrl")
}
