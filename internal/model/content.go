package model

// PageType classifies the purpose of an analyzed page.
// It drives dynamic scoring weights and recommendation priority/filtering.
type PageType string

// Page type values, roughly ordered from most to least specific.
const (
	PageTypeHomepage      PageType = "homepage"
	PageTypeArticle       PageType = "article"
	PageTypeBlog          PageType = "blog"
	PageTypeProduct       PageType = "product"
	PageTypeCategory      PageType = "category"
	PageTypeDocumentation PageType = "documentation"
	PageTypeAbout         PageType = "about"
	PageTypeContact       PageType = "contact"
	PageTypeSearch        PageType = "search"
	PageTypeGeneral       PageType = "general"
)

// BusinessType classifies the site's business domain.
// It personalizes recommendation phrasing and generated examples.
type BusinessType string

// Business type values.
const (
	BusinessTypePayment       BusinessType = "payment"
	BusinessTypeEcommerce     BusinessType = "ecommerce"
	BusinessTypeBlog          BusinessType = "blog"
	BusinessTypeNews          BusinessType = "news"
	BusinessTypeDocumentation BusinessType = "documentation"
	BusinessTypeCorporate     BusinessType = "corporate"
	BusinessTypeEducational   BusinessType = "educational"
	BusinessTypeOther         BusinessType = "other"
)

// Sentiment is the inferred tone of a competitor mention.
type Sentiment string

// Sentiment values. Positive cues outrank negative cues during inference;
// mentions with neither default to neutral.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// BusinessAttributes holds business facts mined from page text.
// Every field is optional: an empty string means no extraction pattern
// matched, which is an expected outcome rather than an error.
type BusinessAttributes struct {
	Industry         string `json:"industry,omitempty"`
	TargetAudience   string `json:"target_audience,omitempty"`
	MainProduct      string `json:"main_product,omitempty"`
	MainService      string `json:"main_service,omitempty"`
	UniqueValue      string `json:"unique_value,omitempty"`
	MissionStatement string `json:"mission_statement,omitempty"`
	YearFounded      string `json:"year_founded,omitempty"`
	Location         string `json:"location,omitempty"`
	TeamSize         string `json:"team_size,omitempty"`
}

// CompetitorMention is a single competitor reference found in page text.
type CompetitorMention struct {
	// Name is the competitor name as written, trimmed.
	Name string `json:"name"`

	// Context is the text surrounding the mention, used for review and
	// for sentiment inference.
	Context string `json:"context"`

	// Sentiment is the inferred tone of the mention.
	Sentiment Sentiment `json:"sentiment"`
}

// Heading is one document heading with optional trailing content.
type Heading struct {
	// Level is the heading level (1 for h1 through 6 for h6).
	Level int `json:"level"`

	// Text is the heading text, trimmed.
	Text string `json:"text"`

	// Content is the text immediately following the heading, when sampled.
	Content string `json:"content,omitempty"`
}

// List is a sampled HTML list.
type List struct {
	// Type is "ordered" or "unordered".
	Type string `json:"type"`

	// Items contains the list item texts, capped per item and per list.
	Items []string `json:"items"`
}

// ContentSamples is the bounded structural sample of a page.
// Caps keep the model small enough to pass around freely: 20 headings,
// 10 paragraphs, 5 lists of 10 items, 10 statistics, 5 comparisons.
type ContentSamples struct {
	Title           string    `json:"title"`
	MetaDescription string    `json:"meta_description"`
	Headings        []Heading `json:"headings"`
	Paragraphs      []string  `json:"paragraphs"`
	Lists           []List    `json:"lists"`
	Statistics      []string  `json:"statistics"`
	Comparisons     []string  `json:"comparisons"`
}

// DetectedFeatures records page capabilities discovered during extraction.
// These feed recommendation personalization (a page that already has an
// FAQ section gets different fix guidance than one without).
type DetectedFeatures struct {
	HasPricing      bool `json:"has_pricing"`
	HasFAQ          bool `json:"has_faq"`
	HasTestimonials bool `json:"has_testimonials"`
	HasDemo         bool `json:"has_demo"`
	HasFreeTier     bool `json:"has_free_tier"`
	HasAPI          bool `json:"has_api"`
	HasComparison   bool `json:"has_comparison"`
	HasCalculator   bool `json:"has_calculator"`
}

// ExtractedContent is the full typed content model produced from raw HTML.
// It is created once per analyzed page and consumed read-only by the scorer
// and the recommendation generator.
//
// Design decision: ExtractedContent is treated as immutable after
// construction. Nothing downstream writes to it, which is what makes
// concurrent analysis of independent pages safe without locking.
type ExtractedContent struct {
	// PrimaryTopic is the dominant subject of the page.
	PrimaryTopic string `json:"primary_topic"`

	// DetectedTopics lists all identified subject areas.
	DetectedTopics []string `json:"detected_topics"`

	// BusinessType is the classified business domain of the site.
	BusinessType BusinessType `json:"business_type"`

	// PageType is the classified purpose of the page.
	PageType PageType `json:"page_type"`

	// BusinessAttributes holds business facts mined from page text.
	BusinessAttributes BusinessAttributes `json:"business_attributes"`

	// CompetitorMentions lists competitor references, capped at 10.
	CompetitorMentions []CompetitorMention `json:"competitor_mentions"`

	// ContentSamples is the bounded structural sample of the page.
	ContentSamples ContentSamples `json:"content_samples"`

	// DetectedFeatures records discovered page capabilities.
	DetectedFeatures DetectedFeatures `json:"detected_features"`

	// KeyTerms are the most frequent meaningful terms on the page.
	KeyTerms []string `json:"key_terms"`

	// ProductNames are capitalized product-like names, capped at 10.
	ProductNames []string `json:"product_names"`

	// TechnicalTerms are recognized technology terms found on the page.
	TechnicalTerms []string `json:"technical_terms"`

	// WordCount is the number of words in the flattened page text.
	WordCount int `json:"word_count"`

	// Language is the detected ISO 639-1 language code, "en" if unknown.
	Language string `json:"language"`
}

// DefaultExtractedContent returns the fully-defaulted content model used
// when extraction fails at page level or the page is flagged as an error
// page. Every slice is non-nil so downstream code can range without checks.
func DefaultExtractedContent() *ExtractedContent {
	return &ExtractedContent{
		PrimaryTopic:       "general content",
		DetectedTopics:     []string{},
		BusinessType:       BusinessTypeOther,
		PageType:           PageTypeGeneral,
		CompetitorMentions: []CompetitorMention{},
		ContentSamples: ContentSamples{
			Headings:    []Heading{},
			Paragraphs:  []string{},
			Lists:       []List{},
			Statistics:  []string{},
			Comparisons: []string{},
		},
		KeyTerms:       []string{},
		ProductNames:   []string{},
		TechnicalTerms: []string{},
		Language:       "en",
	}
}
