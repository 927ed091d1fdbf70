package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransform_EmptyInput(t *testing.T) {
	tests := []struct {
		name string
		raw  RawEntry
	}{
		{"nil entry", nil},
		{"empty entry", RawEntry{}},
		{
			"null fields",
			RawEntry{
				"url": nil, "taxonomies": nil, "components": nil,
				"hero": nil, "seo": nil, "media": nil,
				"details": nil, "marketing": nil,
			},
		},
		{
			"wrong-typed fields",
			RawEntry{
				"url": 42, "taxonomies": "nope", "components": map[string]any{},
				"hero": 3.14, "seo": []any{}, "media": true,
				"details": "x", "marketing": 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transform(tt.raw)

			assert.Equal(t, "", got.URL)
			assert.NotNil(t, got.Taxonomies)
			assert.NotNil(t, got.Components)
			assert.NotNil(t, got.Hero)
			assert.NotNil(t, got.Media)
			assert.NotNil(t, got.Details)
			assert.NotNil(t, got.Marketing)
			assert.Empty(t, got.Taxonomies)
			assert.Empty(t, got.Components)
			assert.Equal(t, SeoProps{}, got.SEO)
		})
	}
}

func TestTransform_Idempotent(t *testing.T) {
	raw := RawEntry{
		"url": "/shoes",
		"seo": map[string]any{"title": "Shoes", "no_index": true},
		"components": []any{
			map[string]any{"teaser": map[string]any{"heading": "Sale", "isABEnabled": true}},
			map[string]any{"teaser": map[string]any{"heading": 7}}, // wrong-typed
		},
		"taxonomies": []any{
			map[string]any{"taxonomy_uid": "category", "term_uid": "footwear"},
		},
	}

	first := Transform(raw)
	second := Transform(raw)

	assert.Equal(t, first, second)
}

func TestTransform_SeoDefaultMerge(t *testing.T) {
	got := Transform(RawEntry{"seo": map[string]any{"title": "X"}})

	assert.Equal(t, SeoProps{
		Title:        "X",
		Description:  "",
		CanonicalURL: "",
		NoFollow:     false,
		NoIndex:      false,
	}, got.SEO)
}

func TestTransform_SeoAbsent(t *testing.T) {
	got := Transform(RawEntry{"url": "/"})

	assert.Equal(t, SeoProps{}, got.SEO)
}

func TestTransform_SeoWrongTypedKeys(t *testing.T) {
	got := Transform(RawEntry{"seo": map[string]any{
		"title":     true,
		"no_follow": "yes",
		"no_index":  true,
	}})

	assert.Equal(t, "", got.SEO.Title)
	assert.False(t, got.SEO.NoFollow)
	assert.True(t, got.SEO.NoIndex)
}

func TestTransform_URL(t *testing.T) {
	assert.Equal(t, "/home", Transform(RawEntry{"url": "/home"}).URL)
	assert.Equal(t, "", Transform(RawEntry{"url": 12}).URL)
}

func TestTransform_Taxonomies(t *testing.T) {
	got := Transform(RawEntry{"taxonomies": []any{
		map[string]any{"taxonomy_uid": "category", "term_uid": "shoes"},
		"wrong-typed element",
	}})

	require.Len(t, got.Taxonomies, 2)
	assert.Equal(t, Taxonomy{TaxonomyUID: "category", TermUID: "shoes"}, got.Taxonomies[0])
	assert.Equal(t, Taxonomy{}, got.Taxonomies[1])
}

func TestTransform_Components(t *testing.T) {
	got := Transform(RawEntry{"components": []any{
		map[string]any{
			"teaser": map[string]any{
				"id":      "t1",
				"heading": "Summer Sale",
				"cta": []any{
					map[string]any{"text": "Shop now", "external_url": "https://example.com"},
				},
			},
		},
		map[string]any{
			"card_collection": map[string]any{
				"id":    "c1",
				"count": 2,
				"cards": []any{
					map[string]any{"title": "Card A", "url": "/a"},
					map[string]any{"title": "Card B", "url": "/b"},
				},
			},
		},
	}})

	require.Len(t, got.Components, 2)

	teaser := got.Components[0].Teaser
	assert.Equal(t, "t1", teaser.ID)
	assert.Equal(t, "Summer Sale", teaser.Heading)
	require.Len(t, teaser.CTA, 1)
	assert.Equal(t, "Shop now", teaser.CTA[0].Text)

	cards := got.Components[1].CardCollection
	assert.Equal(t, 2, cards.Count)
	require.Len(t, cards.Cards, 2)
	assert.Equal(t, "Card A", cards.Cards[0].Title)
}

func TestTransform_Hero(t *testing.T) {
	got := Transform(RawEntry{"hero": []any{
		map[string]any{
			"id":      "h1",
			"heading": "Welcome",
			"styles":  map[string]any{"theme": "dark", "text_align": "center"},
		},
	}})

	require.Len(t, got.Hero, 1)
	assert.Equal(t, "Welcome", got.Hero[0].Heading)
	assert.Equal(t, "dark", got.Hero[0].Styles.Theme)
}

func TestTransform_PDPBlocks(t *testing.T) {
	got := Transform(RawEntry{"details": []any{
		map[string]any{
			"product_title": map[string]any{"dynamic_component": true, "label": "Title"},
			"accordion_group": map[string]any{
				"dynamic_component": false,
				"items": []any{
					map[string]any{"title": "Care", "dynamic": false},
				},
			},
		},
	}})

	require.Len(t, got.Details, 1)
	assert.True(t, got.Details[0].ProductTitle.DynamicComponent)
	assert.Equal(t, "Title", got.Details[0].ProductTitle.Label)
	require.Len(t, got.Details[0].AccordionGroup.Items, 1)
	assert.Equal(t, "Care", got.Details[0].AccordionGroup.Items[0].Title)
}

func TestTransform_UnknownFieldsIgnored(t *testing.T) {
	got := Transform(RawEntry{
		"url":            "/p",
		"uid":            "blt123",
		"_version":       7,
		"unknown_widget": map[string]any{"x": 1},
	})

	assert.Equal(t, "/p", got.URL)
}

func TestTransformAll(t *testing.T) {
	got := TransformAll([]RawEntry{
		{"url": "/a"},
		{"url": "/b"},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "/a", got[0].URL)
	assert.Equal(t, "/b", got[1].URL)

	assert.NotNil(t, TransformAll(nil))
	assert.Empty(t, TransformAll(nil))
}
