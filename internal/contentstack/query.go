package contentstack

import (
	"encoding/json/v2"
	"maps"
	"net/url"
	"slices"
	"strconv"
)

// Query describes a single entry fetch: the content type and locale to
// scope to, the reference fields to expand, and optional filtering.
type Query struct {
	ContentType string
	Locale      string

	// ReferenceFieldPaths are reference fields to include (expand) in
	// the response.
	ReferenceFieldPaths []string

	// JSONRTEPaths name the JSON rich-text fields the front-end will
	// render. The delivery API takes no such parameter; they are
	// carried so callers can shape the response consistently.
	JSONRTEPaths []string

	// Limit caps the result set; zero means no explicit limit.
	Limit int

	// Operator selects how multi-clause filters combine. "or" wraps
	// the filter's top-level clauses in an $or; anything else leaves
	// the filter as-is (implicit and).
	Operator string

	// Filter is a Contentstack query object matched against entries.
	Filter map[string]any
}

// params renders the query as delivery API parameters. Fallback-locale
// content, embedded items, entry metadata, and applied variants are
// always requested.
func (q Query) params(environment string) url.Values {
	params := url.Values{}
	params.Set("environment", environment)
	params.Set("locale", q.Locale)
	params.Set("include_fallback", "true")
	params.Add("include_embedded_items[]", "BASE")
	params.Set("include_metadata", "true")
	params.Set("include_applied_variants", "true")

	for _, path := range q.ReferenceFieldPaths {
		params.Add("include[]", path)
	}

	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	if filter := q.filterObject(); filter != nil {
		if data, err := json.Marshal(filter, json.Deterministic(true)); err == nil {
			params.Set("query", string(data))
		}
	}

	return params
}

// filterObject applies the operator to the filter clauses.
func (q Query) filterObject() any {
	if len(q.Filter) == 0 {
		return nil
	}
	if q.Operator != "or" || len(q.Filter) < 2 {
		return q.Filter
	}

	clauses := make([]map[string]any, 0, len(q.Filter))
	for _, key := range slices.Sorted(maps.Keys(q.Filter)) {
		clauses = append(clauses, map[string]any{key: q.Filter[key]})
	}
	return map[string]any{"$or": clauses}
}
