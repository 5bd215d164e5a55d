package classify

import (
	"regexp"
	"strings"

	"github.com/aiready/aiready/internal/model"
)

// pageTypeRule is one entry in the page type cascade.
// Rules are evaluated in declaration order and the first match wins.
type pageTypeRule struct {
	// name identifies the rule in logs and tests.
	name string

	// match is a pure predicate over the precomputed signals.
	match func(*PageSignals) bool

	// result is the page type assigned when the rule matches.
	result model.PageType
}

// languageRootPattern matches two-letter or two-letter-plus-region language
// root paths such as /en, /en-us/ or /de_DE that sites use as localized
// homepages.
var languageRootPattern = regexp.MustCompile(`^/[a-z]{2}([-_][a-zA-Z]{2})?/?$`)

// Substring groups for URL-shape rules. All are matched against the
// lowercased URL path.
var (
	blogPathMarkers = []string{"/blog", "/article", "/post/", "/posts/", "/news/", "/story/"}

	// productPathMarkers includes the path shapes of the major commerce
	// platforms: Shopify (/products/), Amazon (/dp/), eBay (/itm/).
	productPathMarkers = []string{"/product", "/item/", "/p/", "/dp/", "/itm/", "/shop/", "/buy/"}

	docsPathMarkers = []string{"/docs", "/documentation", "/api-reference", "/reference/", "/developers", "/manual", "/guide/"}

	// contentSubdomains are hostname prefixes conventionally reserved for
	// editorial content.
	contentSubdomains = []string{"blog.", "news.", "medium.", "press."}
)

// pageTypeCascade is the ordered rule list for page type detection.
// The ordering is a deliberate precedence, not a scored vote: homepage
// shapes are checked before article shapes, and article shapes before
// product shapes, so a blog post listed under /blog/best-products-2025
// stays an article even though it mentions products.
var pageTypeCascade = []pageTypeRule{
	{
		name: "homepage_path",
		match: func(s *PageSignals) bool {
			path := strings.TrimSuffix(s.URLPath, "/")
			return s.URLPath == "/" || path == "" && s.Host != "" ||
				strings.HasPrefix(path, "/index") || strings.HasPrefix(path, "/home")
		},
		result: model.PageTypeHomepage,
	},
	{
		name: "language_root",
		match: func(s *PageSignals) bool {
			return languageRootPattern.MatchString(s.URLPath)
		},
		result: model.PageTypeHomepage,
	},
	{
		name: "organization_short_path",
		match: func(s *PageSignals) bool {
			return s.HasStructuredData("Organization") && shortPath(s.URLPath)
		},
		result: model.PageTypeHomepage,
	},
	{
		name: "blog_article",
		match: func(s *PageSignals) bool {
			return pathContainsAny(s.URLPath, blogPathMarkers) ||
				hostHasPrefixAny(s.Host, contentSubdomains) ||
				s.HasDateInPath() ||
				s.HasStructuredData("Article", "BlogPosting", "NewsArticle") ||
				(s.HasAuthorSignal && s.HasDateSignal)
		},
		result: model.PageTypeBlog,
	},
	{
		name: "product",
		match: func(s *PageSignals) bool {
			return pathContainsAny(s.URLPath, productPathMarkers) ||
				s.HasStructuredData("Product") ||
				(s.HasPriceElement && s.HasAddToCart)
		},
		result: model.PageTypeProduct,
	},
	{
		name: "documentation",
		match: func(s *PageSignals) bool {
			return pathContainsAny(s.URLPath, docsPathMarkers) || s.HasDocsContainer
		},
		result: model.PageTypeDocumentation,
	},
	{
		name: "navigation_heavy_fallback",
		match: func(s *PageSignals) bool {
			if s.NavCount <= 2 || s.LinkCount == 0 {
				return false
			}
			return float64(s.ContentCount)/float64(s.LinkCount) < 0.2
		},
		result: model.PageTypeHomepage,
	},
}

// DetectPageType classifies a page by evaluating the fixed-priority rule
// cascade against the precomputed signals. Pages matching no rule default
// to blog: long-form content is the most common shape on the open web and
// the safest assumption for scoring weights.
func DetectPageType(signals *PageSignals) model.PageType {
	for _, rule := range pageTypeCascade {
		if rule.match(signals) {
			return rule.result
		}
	}
	return model.PageTypeBlog
}

// shortPath reports whether a URL path is shallow enough to plausibly be a
// site root: at most one segment and no more than 12 characters.
func shortPath(path string) bool {
	trimmed := strings.Trim(path, "/")
	return len(path) <= 12 && !strings.Contains(trimmed, "/")
}

// pathContainsAny reports whether the path contains any of the markers.
func pathContainsAny(path string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(path, m) {
			return true
		}
	}
	return false
}

// hostHasPrefixAny reports whether the host starts with any of the prefixes.
func hostHasPrefixAny(host string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(host, p) {
			return true
		}
	}
	return false
}
