package content

import (
	"encoding/json/v2"
)

// Transform maps a raw CMS entry to a typed PageProps. It is total and
// pure: any input, including nil, yields a structurally complete value.
// Missing or wrong-typed fields degrade to type-correct defaults
// rather than propagating absence; unrecognized fields are ignored.
func Transform(raw RawEntry) PageProps {
	return PageProps{
		URL:        stringValue(raw["url"]),
		Taxonomies: taxonomiesValue(raw["taxonomies"]),
		Components: decodeBlocks[PageBlock](raw["components"]),
		Hero:       decodeBlocks[Hero](raw["hero"]),
		SEO:        seoValue(raw["seo"]),
		Media:      decodeBlocks[Media](raw["media"]),
		Details:    decodeBlocks[PDPPageBlock](raw["details"]),
		Marketing:  decodeBlocks[PDPPageBlock](raw["marketing"]),
	}
}

// TransformAll is the sequence-mapped form of Transform. The result is
// never nil.
func TransformAll(raws []RawEntry) []PageProps {
	pages := make([]PageProps, 0, len(raws))
	for _, raw := range raws {
		pages = append(pages, Transform(raw))
	}
	return pages
}

// stringValue returns v as a string, or "" when absent or wrong-typed.
func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// boolValue returns v as a bool, or false when absent or wrong-typed.
func boolValue(v any) bool {
	b, _ := v.(bool)
	return b
}

// seoValue merges a possibly-partial SEO object under the full default
// record. Each key falls back independently.
func seoValue(v any) SeoProps {
	seo := SeoProps{}
	m, ok := v.(map[string]any)
	if !ok {
		return seo
	}
	seo.Title = stringValue(m["title"])
	seo.Description = stringValue(m["description"])
	seo.CanonicalURL = stringValue(m["canonical_url"])
	seo.NoFollow = boolValue(m["no_follow"])
	seo.NoIndex = boolValue(m["no_index"])
	return seo
}

// taxonomiesValue extracts taxonomy/term pairs, skipping nothing:
// wrong-typed elements contribute an empty pair.
func taxonomiesValue(v any) []Taxonomy {
	items, ok := v.([]any)
	if !ok {
		return []Taxonomy{}
	}
	taxonomies := make([]Taxonomy, 0, len(items))
	for _, item := range items {
		tax := Taxonomy{}
		if m, ok := item.(map[string]any); ok {
			tax.TaxonomyUID = stringValue(m["taxonomy_uid"])
			tax.TermUID = stringValue(m["term_uid"])
		}
		taxonomies = append(taxonomies, tax)
	}
	return taxonomies
}

// decodeBlocks leniently decodes a raw slice into typed blocks via a
// JSON round trip. Non-slice input yields an empty slice; elements
// that fail to decode degrade to the zero block so output length
// always matches input length.
func decodeBlocks[T any](v any) []T {
	items, ok := v.([]any)
	if !ok {
		return []T{}
	}
	blocks := make([]T, 0, len(items))
	for _, item := range items {
		var block T
		if data, err := json.Marshal(item); err == nil {
			if err := json.Unmarshal(data, &block); err != nil {
				// Partial decodes are discarded to keep the mapping
				// deterministic for identical input.
				var zero T
				block = zero
			}
		}
		blocks = append(blocks, block)
	}
	return blocks
}
