// Package content defines the typed page view model served to the
// storefront front-end and the transformation from raw CMS entries
// into it.
package content

// RawEntry is a loosely-shaped content record as returned by the CMS.
// Fields may be missing or wrong-typed; it exists only as
// transformation input.
type RawEntry map[string]any

// PageProps is the canonical view model for a page. Every slice field
// is always non-nil; SEO always carries all of its keys.
type PageProps struct {
	URL        string         `json:"url"`
	Taxonomies []Taxonomy     `json:"taxonomies"`
	Components []PageBlock    `json:"components"`
	Hero       []Hero         `json:"hero"`
	SEO        SeoProps       `json:"seo"`
	Media      []Media        `json:"media"`
	Details    []PDPPageBlock `json:"details"`
	Marketing  []PDPPageBlock `json:"marketing"`
}

// Taxonomy is a taxonomy/term tag pair attached to an entry.
type Taxonomy struct {
	TaxonomyUID string `json:"taxonomy_uid"`
	TermUID     string `json:"term_uid"`
}

// PageBlock is a modular content block; exactly one of its members is
// typically populated per block instance.
type PageBlock struct {
	APIComponent   APIComponent      `json:"api_component"`
	Teaser         Teaser            `json:"teaser"`
	Text           Text              `json:"text"`
	CardCollection CardCollection    `json:"card_collection"`
	PGPCollection  PGPCardCollection `json:"pgp_collection"`
	QuickLinks     QuickLinks        `json:"quick_links"`
	ImagePreset    Image             `json:"image_preset"`
}

// APIComponent names a server-driven component rendered by the front-end.
type APIComponent struct {
	ID            string `json:"id"`
	ComponentName string `json:"component_name"`
}

// Teaser is a promotional block with copy, media, and calls to action.
type Teaser struct {
	ID          string  `json:"id"`
	Heading     string  `json:"heading"`
	Content     string  `json:"content"`
	CTA         []CTA   `json:"cta"`
	Image       []Image `json:"image"`
	Video       Video   `json:"video"`
	IsABEnabled bool    `json:"isABEnabled"`
	Styles      Styles  `json:"styles"`
}

// Text is a rich-text block; content is an opaque RTE document.
type Text struct {
	ID      string `json:"id"`
	Content any    `json:"content"`
}

// CardCollection is a titled group of image cards.
type CardCollection struct {
	Header    CardCollectionHeader `json:"header"`
	ID        string               `json:"id"`
	Cards     []ImageCardItem      `json:"cards"`
	Count     int                  `json:"count"`
	EditKey   string               `json:"edit_key"`
	ClassName string               `json:"class_name"`
}

// CardCollectionHeader introduces a card collection.
type CardCollectionHeader struct {
	ID         string `json:"id"`
	Heading    string `json:"heading"`
	Content    string `json:"content"`
	SubHeading string `json:"sub_heading"`
	ClassName  string `json:"class_name"`
	CTA        CTA    `json:"cta"`
}

// ImageCardItem is a single card within a card collection.
type ImageCardItem struct {
	ID    any `json:"id"`
	Key   any `json:"key"`
	Count int `json:"count"`
	Index any `json:"index"`

	Image         Asset  `json:"image"`
	CoverImage    Asset  `json:"cover_image"`
	ImageAltText  string `json:"image_alt_text"`
	ImagePosition string `json:"image_position"`
	IsThumbnail   bool   `json:"is_thumbnail"`
	Alt           string `json:"alt"`

	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTA      CTA    `json:"cta"`
	URL      string `json:"url"`
	Summary  string `json:"summary"`
}

// PGPCardCollection is the product-grid variant of a card collection.
type PGPCardCollection struct {
	Header CardCollectionHeader `json:"header"`
	Cards  []PGPImageCardItem   `json:"cards"`
}

// PGPImageCardItem is a single card within a product-grid collection.
type PGPImageCardItem struct {
	Content      string `json:"content"`
	CTA          CTA    `json:"cta"`
	Image        Asset  `json:"image"`
	ImageAltText string `json:"image_alt_text"`
	IsThumbnail  bool   `json:"is_thumbnail"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
}

// QuickLinks is a titled link-list block.
type QuickLinks struct {
	Title string `json:"title"`
}

// Asset is a CMS-managed file reference.
type Asset struct {
	ContentType string    `json:"content_type"`
	Dimension   Dimension `json:"dimension"`
	FileSize    string    `json:"file_size"`
	Filename    string    `json:"filename"`
	IsDir       bool      `json:"is_dir"`
	URL         string    `json:"url"`
}

// Dimension holds image pixel dimensions.
type Dimension struct {
	Height int `json:"height"`
	Width  int `json:"width"`
}

// Video pairs a video asset with its alt text.
type Video struct {
	ID           any    `json:"id"`
	Video        Asset  `json:"video"`
	VideoAltText string `json:"video_alt_text"`
}

// Image pairs an image asset with presentation hints.
type Image struct {
	ID            any    `json:"id"`
	Image         Asset  `json:"image"`
	CoverImage    Asset  `json:"cover_image"`
	ImageAltText  string `json:"image_alt_text"`
	ImagePosition string `json:"image_position"`
	IsThumbnail   bool   `json:"is_thumbnail"`
	Alt           string `json:"alt"`
}

// CTA is a call to action pointing at an external URL or an internal entry.
type CTA struct {
	Text        string         `json:"text"`
	ExternalURL string         `json:"external_url"`
	Link        []InternalLink `json:"link"`
}

// InternalLink references another CMS entry by uid and content type.
type InternalLink struct {
	UID            string `json:"uid"`
	ContentTypeUID string `json:"content_type_uid"`
	URL            string `json:"url"`
	Text           string `json:"text"`
}

// Styles carries presentation hints for a block.
type Styles struct {
	TextAlign     string `json:"text_align"`
	Theme         string `json:"theme"`
	ImagePosition string `json:"image_position"`
}

// Hero is a full-width banner block.
type Hero struct {
	ID         string  `json:"id"`
	Heading    string  `json:"heading"`
	Content    string  `json:"content"`
	CTA        []CTA   `json:"cta"`
	Image      []Image `json:"image"`
	Video      Video   `json:"video"`
	Styles     Styles  `json:"styles"`
	Summary    string  `json:"summary"`
	Title      string  `json:"title"`
	URL        string  `json:"url"`
	CoverImage Asset   `json:"cover_image"`
}

// SeoProps holds page SEO metadata. All keys are always present.
type SeoProps struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	CanonicalURL string `json:"canonical_url"`
	NoFollow     bool   `json:"no_follow"`
	NoIndex      bool   `json:"no_index"`
}

// Media is a brand/media tile.
type Media struct {
	Badge       bool   `json:"badge"`
	Identifier  string `json:"identifier"`
	Name        string `json:"name"`
	ImageURL    string `json:"image_url"`
	Alt         string `json:"alt"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

// PDPPageBlock describes the slots of a product-detail page section.
type PDPPageBlock struct {
	BrandLink          DynamicComponent             `json:"brand_link"`
	ProductTitle       DynamicComponent             `json:"product_title"`
	RatingSummary      DynamicComponent             `json:"rating_summary"`
	CurrentPrice       DynamicComponent             `json:"current_price"`
	PromotionLink      DynamicComponent             `json:"promotion_link"`
	ColorVariant       DynamicComponent             `json:"color_variant"`
	InlineBundle       DynamicComponent             `json:"inline_bundle"`
	SizeSelection      DynamicComponent             `json:"size_selection"`
	LengthSelection    DynamicComponent             `json:"length_selection"`
	CrossSellPanel     DynamicComponent             `json:"cross_sell_panel"`
	PurchaseAction     DynamicComponent             `json:"purchase_action"`
	PersonalizedList   DynamicComponent             `json:"personalized_list"`
	Payment            DynamicComponent             `json:"payment"`
	TrustAssurance     DynamicComponent             `json:"trust_assurance"`
	FulfillmentOptions DynamicComponent             `json:"fulfillment_options"`
	ShippingOptions    ShippingPromoBannerComponent `json:"shipping_options"`
	AccordionGroup     AccordionGroupComponent      `json:"accordion_group"`
	StyleInspiration   DynamicComponent             `json:"style_inspiration"`
	FrequentlyBought   DynamicComponent             `json:"frequently_bought"`
	ShopSimilar        DynamicComponent             `json:"shop_similar"`
	Reviews            DynamicComponent             `json:"reviews"`
	QuickLinks         QuickLinks                   `json:"quick_links"`
}

// DynamicComponent marks a PDP slot whose content is resolved at render time.
type DynamicComponent struct {
	DynamicComponent bool   `json:"dynamic_component"`
	Label            string `json:"label"`
}

// ShippingPromoBannerComponent is the shipping-options PDP slot.
type ShippingPromoBannerComponent struct {
	DynamicComponent bool                      `json:"dynamic_component"`
	Icon             string                    `json:"icon"`
	Guest            ShippingPromoBannerContent `json:"guest"`
	Signed           ShippingPromoBannerContent `json:"signed"`
}

// ShippingPromoBannerContent is audience-specific shipping banner copy.
type ShippingPromoBannerContent struct {
	Title    RichText `json:"title"`
	Subtitle RichText `json:"subtitle"`
}

// RichText wraps an opaque RTE document.
type RichText struct {
	Content any `json:"content"`
}

// AccordionGroupComponent is the accordion PDP slot.
type AccordionGroupComponent struct {
	DynamicComponent bool            `json:"dynamic_component"`
	Items            []AccordionItem `json:"items"`
}

// AccordionItem is a single accordion row.
type AccordionItem struct {
	Dynamic bool     `json:"dynamic"`
	Title   string   `json:"title"`
	Content RichText `json:"content"`
}
