package classify

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxSignalTextLength caps the amount of flattened text kept on a
// PageSignals value. Keyword rules only need the head of the document;
// keeping the whole text of a large page would make signals expensive to
// pass around.
const maxSignalTextLength = 50_000

// PageSignals is the precomputed input for every classification rule.
// It is built once per page from the parsed DOM and the source URL, then
// consumed read-only by the rule cascades.
type PageSignals struct {
	// URLPath is the lowercased URL path, "" when no URL was supplied.
	URLPath string

	// Host is the lowercased hostname, "" when no URL was supplied.
	Host string

	// StructuredDataTypes holds the @type values found in JSON-LD blocks
	// and itemtype microdata attributes, lowercased.
	StructuredDataTypes map[string]bool

	// NavCount is the number of nav elements and elements with a nav role.
	NavCount int

	// ContentCount is the number of content-bearing elements
	// (article, section, main).
	ContentCount int

	// LinkCount is the number of anchor elements with an href.
	LinkCount int

	// CodeBlockCount is the number of pre and code elements.
	CodeBlockCount int

	// HasPriceElement is true when a price-like element was found.
	HasPriceElement bool

	// HasAddToCart is true when an add-to-cart or product-info element was
	// found.
	HasAddToCart bool

	// HasDocsContainer is true when a documentation content container was
	// found.
	HasDocsContainer bool

	// HasAuthorSignal is true when an author byline marker was found.
	HasAuthorSignal bool

	// HasDateSignal is true when a publish-date marker was found.
	HasDateSignal bool

	// HasBlogMarkup is true when blog-specific markup was found.
	HasBlogMarkup bool

	// HasNewsMarkup is true when news-specific markup was found.
	HasNewsMarkup bool

	// Title is the page title, trimmed.
	Title string

	// Text is the flattened lowercased body text, capped at
	// maxSignalTextLength characters.
	Text string

	// TextLength is the length of the full flattened text before capping.
	TextLength int

	// HasMainContainer is true when a designated main-content container
	// (main, article, or #content) exists on the page.
	HasMainContainer bool

	// MainContentLength is the text length of the designated main-content
	// container, 0 when absent or empty.
	MainContentLength int

	// WordCount is the number of words in the flattened text.
	WordCount int

	// UniqueWordCount is the number of distinct lowercased words.
	UniqueWordCount int
}

// datePathPattern matches date-shaped path segments such as /2024/05/ or
// /2023-11-02/ that conventionally mark article permalinks.
var datePathPattern = regexp.MustCompile(`/(19|20)\d{2}[/-](0?[1-9]|1[0-2])([/-]|$)`)

// HasDateInPath reports whether the URL path contains a date-shaped segment.
func (s *PageSignals) HasDateInPath() bool {
	return datePathPattern.MatchString(s.URLPath)
}

// HasStructuredData reports whether any of the given structured-data types
// is present on the page. Type names are matched case-insensitively.
func (s *PageSignals) HasStructuredData(types ...string) bool {
	for _, t := range types {
		if s.StructuredDataTypes[strings.ToLower(t)] {
			return true
		}
	}
	return false
}

// ContainsKeyword reports whether any of the given keywords appears in the
// page title or capped body text. Keywords must be lowercase.
func (s *PageSignals) ContainsKeyword(keywords ...string) bool {
	title := strings.ToLower(s.Title)
	for _, kw := range keywords {
		if strings.Contains(s.Text, kw) || strings.Contains(title, kw) {
			return true
		}
	}
	return false
}

// CollectSignals parses HTML once and derives every signal the
// classification cascades need. rawURL may be empty; URL-based rules then
// never match. Malformed HTML is not an error: goquery parses what it can
// and the remaining signals default to zero values.
func CollectSignals(html, rawURL string) *PageSignals {
	signals := &PageSignals{
		StructuredDataTypes: make(map[string]bool),
	}

	if rawURL != "" {
		if u, err := url.Parse(rawURL); err == nil {
			signals.URLPath = strings.ToLower(u.Path)
			signals.Host = strings.ToLower(u.Hostname())
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return signals
	}

	signals.Title = strings.TrimSpace(doc.Find("title").First().Text())

	collectStructuredData(doc, signals)
	collectElementCounts(doc, signals)
	collectSelectorProbes(doc, signals)
	collectText(doc, signals)

	return signals
}

// collectStructuredData gathers @type values from JSON-LD script blocks
// and itemtype microdata attributes.
func collectStructuredData(doc *goquery.Document, signals *PageSignals) {
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		for _, t := range structuredDataTypes(sel.Text()) {
			signals.StructuredDataTypes[t] = true
		}
	})

	doc.Find("[itemtype]").Each(func(_ int, sel *goquery.Selection) {
		itemType, _ := sel.Attr("itemtype")
		// itemtype values are schema.org URLs; the type is the last segment.
		if idx := strings.LastIndex(itemType, "/"); idx >= 0 {
			itemType = itemType[idx+1:]
		}
		if itemType != "" {
			signals.StructuredDataTypes[strings.ToLower(itemType)] = true
		}
	})
}

// structuredDataTypes extracts @type values from a JSON-LD payload.
// Payloads may be a single object, an array of objects, or use @graph.
// Malformed JSON yields no types rather than an error.
func structuredDataTypes(raw string) []string {
	var node any
	if err := json.Unmarshal([]byte(raw), &node); err != nil {
		return nil
	}

	var types []string
	var walk func(any)
	walk = func(n any) {
		switch v := n.(type) {
		case map[string]any:
			switch t := v["@type"].(type) {
			case string:
				types = append(types, strings.ToLower(t))
			case []any:
				for _, item := range t {
					if s, ok := item.(string); ok {
						types = append(types, strings.ToLower(s))
					}
				}
			}
			if graph, ok := v["@graph"]; ok {
				walk(graph)
			}
		case []any:
			for _, item := range v {
				walk(item)
			}
		}
	}
	walk(node)
	return types
}

// collectElementCounts counts the elements the fallback heuristics rely on.
func collectElementCounts(doc *goquery.Document, signals *PageSignals) {
	signals.NavCount = doc.Find(`nav, [role="navigation"]`).Length()
	signals.ContentCount = doc.Find("article, section, main").Length()
	signals.LinkCount = doc.Find("a[href]").Length()
	signals.CodeBlockCount = doc.Find("pre, code").Length()
}

// Selector groups for the boolean probes. Each group is a single goquery
// query so one pass answers one probe.
const (
	priceSelectors = `.price, .product-price, [itemprop="price"], ` +
		`[class*="price-tag"], [data-price]`
	addToCartSelectors = `[class*="add-to-cart"], [class*="addtocart"], ` +
		`[id*="add-to-cart"], button[name="add"], .product-info, .product-details`
	docsContainerSelectors = `.docs-content, .documentation, .markdown-body, ` +
		`[class*="doc-content"], .theme-doc-markdown`
	authorSelectors = `[rel="author"], .author, .byline, [class*="author-name"], ` +
		`[itemprop="author"]`
	dateSelectors = `time[datetime], [itemprop="datePublished"], ` +
		`.published, .post-date, [class*="publish-date"]`
	blogSelectors = `.post, .blog-post, article.entry, [class*="blog-"]`
	newsSelectors = `.news-item, .headline, [class*="news-"], .breaking`
)

// collectSelectorProbes answers the boolean DOM probes used by the page
// and business type cascades.
func collectSelectorProbes(doc *goquery.Document, signals *PageSignals) {
	signals.HasPriceElement = doc.Find(priceSelectors).Length() > 0
	signals.HasAddToCart = doc.Find(addToCartSelectors).Length() > 0
	signals.HasDocsContainer = doc.Find(docsContainerSelectors).Length() > 0
	signals.HasAuthorSignal = doc.Find(authorSelectors).Length() > 0
	signals.HasDateSignal = doc.Find(dateSelectors).Length() > 0
	signals.HasBlogMarkup = doc.Find(blogSelectors).Length() > 0
	signals.HasNewsMarkup = doc.Find(newsSelectors).Length() > 0
}

// wordPattern splits flattened text into words for the repetition ratio.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}']+`)

// collectText flattens the body text and derives the length and word
// statistics the error-page heuristics use.
func collectText(doc *goquery.Document, signals *PageSignals) {
	body := doc.Find("body")
	if body.Length() == 0 {
		return
	}

	// Drop script/style text so keyword rules see rendered content only.
	body.Find("script, style, noscript").Remove()

	text := strings.Join(strings.Fields(body.Text()), " ")
	signals.TextLength = len(text)

	lower := strings.ToLower(text)
	if len(lower) > maxSignalTextLength {
		lower = lower[:maxSignalTextLength]
	}
	signals.Text = lower

	main := doc.Find("main, article, #content").First()
	if main.Length() > 0 {
		signals.HasMainContainer = true
		signals.MainContentLength = len(strings.TrimSpace(main.Text()))
	}

	words := wordPattern.FindAllString(lower, -1)
	signals.WordCount = len(words)
	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}
	signals.UniqueWordCount = len(unique)
}
