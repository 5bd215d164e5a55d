package extract

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aiready/aiready/internal/classify"
	"github.com/aiready/aiready/internal/model"
)

// Input caps. Pages beyond these sizes are truncated, not rejected:
// the head of a document carries nearly all classification signal.
const (
	// maxHTMLLength caps the HTML handed to the parser.
	maxHTMLLength = 100_000

	// maxProductScanLength caps the text scanned for product names, which
	// is the most expensive regex pass.
	maxProductScanLength = 50_000
)

// Extractor produces ExtractedContent from raw HTML and an optional URL.
// A single Extractor is safe for concurrent use: it carries only
// configuration, never per-page state.
type Extractor struct {
	// maxHTML is the HTML truncation cap.
	maxHTML int

	// logger receives debug records for degraded extraction steps.
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets a custom logger for the extractor.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// WithMaxHTML overrides the HTML truncation cap. Intended for tests;
// production callers should keep the default.
func WithMaxHTML(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.maxHTML = n
		}
	}
}

// New creates an Extractor with the given options.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		maxHTML: maxHTMLLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Extract produces the full content model for a page. rawURL may be empty.
//
// Extract never fails: unparseable HTML or an error page yields the
// fully-defaulted content model, and a failure inside any single step
// leaves only that step's field at its default.
func (e *Extractor) Extract(html, rawURL string) *model.ExtractedContent {
	if len(html) > e.maxHTML {
		html = html[:e.maxHTML]
	}

	signals := classify.CollectSignals(html, rawURL)
	if classify.IsErrorPage(signals) {
		e.logger.Debug("page flagged as non-content, using defaults", "url", rawURL)
		return model.DefaultExtractedContent()
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		e.logger.Debug("HTML parse failed, using defaults", "url", rawURL, "error", err)
		return model.DefaultExtractedContent()
	}

	// Flattened original-case text. Attribute and product-name patterns
	// depend on capitalization, so this is kept separate from the
	// lowercased signal text.
	text := flattenText(doc)

	content := model.DefaultExtractedContent()
	content.WordCount = signals.WordCount

	e.step("samples", rawURL, func() {
		content.ContentSamples = extractSamples(doc, signals.Title)
	})
	e.step("topics", rawURL, func() {
		topics := detectTopics(signals.Title, content.ContentSamples.Headings, text)
		content.PrimaryTopic = topics.primary
		content.DetectedTopics = topics.detected
		content.KeyTerms = topics.keyTerms
	})
	e.step("attributes", rawURL, func() {
		content.BusinessAttributes = extractAttributes(text)
	})
	e.step("competitors", rawURL, func() {
		content.CompetitorMentions = extractCompetitors(text)
	})
	e.step("products", rawURL, func() {
		content.ProductNames = extractProductNames(text)
	})
	e.step("technical_terms", rawURL, func() {
		content.TechnicalTerms = extractTechnicalTerms(signals.Text)
	})
	e.step("features", rawURL, func() {
		content.DetectedFeatures = detectFeatures(signals, content.ContentSamples)
	})
	e.step("language", rawURL, func() {
		content.Language = detectLanguage(text)
	})
	e.step("classification", rawURL, func() {
		content.PageType = classify.DetectPageType(signals)
		content.BusinessType = classify.DetectBusinessType(content.DetectedTopics, signals)
	})

	return content
}

// step runs one extraction step and absorbs any panic, leaving the
// affected field at its default. Recovered panics are logged at debug
// level: they indicate a pattern hitting pathological input, which is
// expected on the open web and not actionable per page.
func (e *Extractor) step(name, url string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Debug("extraction step degraded",
				"step", name,
				"url", url,
				"panic", r,
			)
		}
	}()
	fn()
}

// flattenText reduces the document body to space-normalized text with
// script and style content removed.
func flattenText(doc *goquery.Document) string {
	body := doc.Find("body")
	if body.Length() == 0 {
		return ""
	}
	body = body.Clone()
	body.Find("script, style, noscript").Remove()
	return strings.Join(strings.Fields(body.Text()), " ")
}
