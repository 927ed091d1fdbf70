package api

import (
	"encoding/json/v2"
	"errors"
	"net/http"

	"github.com/storefrontapp/storefront-server/internal/content"
	"github.com/storefrontapp/storefront-server/internal/contentstack"
	domainerrors "github.com/storefrontapp/storefront-server/internal/errors"
	"github.com/storefrontapp/storefront-server/internal/http/response"
)

// defaultPageContentType is the content type the /page endpoint reads
// when the caller does not name one.
const defaultPageContentType = "page"

// entriesParams are the query parameters shared by the content routes.
type entriesParams struct {
	ContentTypeUID string `query:"contentTypeUid" validate:"required"`
	Locale         string `query:"locale" validate:"required"`
}

// handleListEntries serves GET /entries: all entries of a content type
// in a locale, optionally filtered.
func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	params := entriesParams{
		ContentTypeUID: values.Get("contentTypeUid"),
		Locale:         values.Get("locale"),
	}
	if err := s.validator.Validate(params); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	if err := checkLocale(params.Locale); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	query := contentstack.Query{
		ContentType:         params.ContentTypeUID,
		Locale:              params.Locale,
		ReferenceFieldPaths: splitCSV(values.Get("referenceFieldPath")),
		JSONRTEPaths:        splitCSV(values.Get("jsonRtePath")),
		Limit:               parseLimit(values.Get("limit")),
		Operator:            values.Get("queryOperator"),
	}

	if raw := values.Get("filterQuery"); raw != "" {
		var filter map[string]any
		if err := json.Unmarshal([]byte(raw), &filter); err != nil {
			response.BadRequest(w, "Invalid filterQuery JSON format", s.logger)
			return
		}
		query.Filter = filter
	}

	if s.cms == nil {
		response.HandleError(w, contentstack.ErrNotConfigured, s.logger)
		return
	}

	entries, err := s.cms.Entries(r.Context(), query)
	if err != nil {
		s.handleFetchError(w, err, "Entries not found")
		return
	}

	response.SuccessWithCount(w, entries, len(entries), s.logger)
}

// handleEntryByURL serves GET /entrybyurl: the single entry matching a
// page URL.
func (s *Server) handleEntryByURL(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	params := struct {
		entriesParams
		EntryURL string `query:"entryUrl" validate:"required"`
	}{
		entriesParams: entriesParams{
			ContentTypeUID: values.Get("contentTypeUid"),
			Locale:         values.Get("locale"),
		},
		EntryURL: values.Get("entryUrl"),
	}
	if err := s.validator.Validate(params); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	if err := checkLocale(params.Locale); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	if s.cms == nil {
		response.HandleError(w, contentstack.ErrNotConfigured, s.logger)
		return
	}

	query := contentstack.Query{
		ContentType:         params.ContentTypeUID,
		Locale:              params.Locale,
		ReferenceFieldPaths: splitCSV(values.Get("referenceFieldPath")),
		JSONRTEPaths:        splitCSV(values.Get("jsonRtePath")),
	}

	entry, err := s.cms.EntryByURL(r.Context(), query, params.EntryURL)
	if err != nil {
		s.handleFetchError(w, err, "Entry not found")
		return
	}

	response.Success(w, entry, s.logger)
}

// handlePage serves GET /page: an entry fetched by URL and shaped into
// the typed page view model.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	params := struct {
		Locale   string `query:"locale" validate:"required"`
		EntryURL string `query:"entryUrl" validate:"required"`
	}{
		Locale:   values.Get("locale"),
		EntryURL: values.Get("entryUrl"),
	}
	if err := s.validator.Validate(params); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	if err := checkLocale(params.Locale); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	contentType := values.Get("contentTypeUid")
	if contentType == "" {
		contentType = defaultPageContentType
	}

	if s.cms == nil {
		response.HandleError(w, contentstack.ErrNotConfigured, s.logger)
		return
	}

	query := contentstack.Query{
		ContentType:         contentType,
		Locale:              params.Locale,
		ReferenceFieldPaths: splitCSV(values.Get("referenceFieldPath")),
		JSONRTEPaths:        splitCSV(values.Get("jsonRtePath")),
	}

	entry, err := s.cms.EntryByURL(r.Context(), query, params.EntryURL)
	if err != nil {
		s.handleFetchError(w, err, "Page not found")
		return
	}

	response.Success(w, content.Transform(entry), s.logger)
}

// handleFetchError maps CMS fetch failures onto the HTTP surface. All
// status mapping happens here, never below the handler layer.
func (s *Server) handleFetchError(w http.ResponseWriter, err error, notFoundMsg string) {
	if errors.Is(err, contentstack.ErrNotFound) {
		response.NotFound(w, notFoundMsg, s.logger)
		return
	}

	var domainErr *domainerrors.Error
	if errors.As(err, &domainErr) {
		response.Error(w, domainErr.HTTPStatus(), domainErr.Error(), s.logger)
		return
	}

	s.logger.Error("CMS fetch failed", "error", err)
	// The vendor's message passes through to the consumer.
	response.InternalError(w, err.Error(), s.logger)
}
