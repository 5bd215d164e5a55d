package recommend

import "github.com/aiready/aiready/internal/model"

// Priority multipliers by rank in a page type's priority list.
// Metrics beyond rank five, or not listed, keep their base gain.
var priorityMultipliers = []float64{1.5, 1.3, 1.2, 1.1, 1.1}

// pageTypeConfig tunes recommendation generation for one page type.
type pageTypeConfig struct {
	// priority ranks the metrics that matter most for this page type.
	// Rank boosts the recommendation's gain and therefore its position.
	priority []string

	// skip lists metrics never recommended for this page type, even when
	// their checks fail.
	skip []string

	// customWhy replaces the generic opening of a metric's why text with a
	// page-type-specific message.
	customWhy map[string]string

	// contextPrefix is prepended to every why during personalization.
	contextPrefix string

	// fixAddenda appends page-type-specific guidance to a metric's fix.
	fixAddenda map[string]string
}

// pageTypeConfigs is the per-page-type tuning table. Page types without an
// entry get no boosts, no skips, and no custom messages.
var pageTypeConfigs = map[model.PageType]pageTypeConfig{
	model.PageTypeHomepage: {
		priority: []string{"structuredData", "napConsistency", "mainContent", "ttfb", "directAnswers"},
		skip:     []string{"listicleFormat"},
		customWhy: map[string]string{
			"structuredData": "Your homepage is the page AI assistants resolve your brand to, and without Organization markup they cannot connect the name to the site.",
			"napConsistency": "Assistants verify a business against its homepage first, so identity details here carry the most weight.",
		},
		contextPrefix: "As your site's front door: ",
		fixAddenda: map[string]string{
			"structuredData": "Use the Organization type with name, url, and logo at minimum.",
		},
	},
	model.PageTypeArticle: {
		priority: []string{"uniqueStats", "citations", "authorBio", "lastModified", "headingFrequency"},
		customWhy: map[string]string{
			"uniqueStats": "Articles live or die on quotable facts; an article without original numbers is summarized from someone else's.",
		},
		contextPrefix: "For an article: ",
		fixAddenda: map[string]string{
			"authorBio": "Include the author's relevant credentials in one sentence.",
		},
	},
	model.PageTypeBlog: {
		priority: []string{"listicleFormat", "questionHeadings", "uniqueStats", "lastModified", "authorBio"},
		customWhy: map[string]string{
			"listicleFormat": "Blog posts in list form are the single most-lifted content shape in AI answers.",
		},
		contextPrefix: "For a blog post: ",
	},
	model.PageTypeProduct: {
		priority: []string{"structuredData", "uniqueStats", "comparisonContent", "mainContent", "semanticUrl"},
		skip:     []string{"listicleFormat"},
		customWhy: map[string]string{
			"structuredData": "Product pages without Product markup are invisible to shopping-intent queries.",
		},
		contextPrefix: "For a product page: ",
		fixAddenda: map[string]string{
			"structuredData": "Use the Product type with offers, price, and availability.",
		},
	},
	model.PageTypeCategory: {
		priority: []string{"headingFrequency", "structuredData", "semanticUrl"},
		skip:     []string{"listicleFormat", "authorBio"},
		contextPrefix: "For a category page: ",
	},
	model.PageTypeDocumentation: {
		priority: []string{"headingDepth", "structuredData", "mainContent", "htmlSize", "semanticUrl"},
		skip:     []string{"listicleFormat", "authorBio"},
		customWhy: map[string]string{
			"headingDepth": "Developers' assistants navigate docs by outline; a broken heading hierarchy breaks section retrieval.",
		},
		contextPrefix: "For documentation: ",
		fixAddenda: map[string]string{
			"structuredData": "Use the TechArticle type per page.",
		},
	},
	model.PageTypeAbout: {
		priority: []string{"napConsistency", "authorBio", "structuredData"},
		skip:     []string{"listicleFormat"},
		contextPrefix: "For an about page: ",
	},
	model.PageTypeContact: {
		priority: []string{"napConsistency", "structuredData", "mainContent"},
		skip:     []string{"listicleFormat", "authorBio", "uniqueStats"},
		customWhy: map[string]string{
			"napConsistency": "Contact pages are the ground truth assistants check business details against.",
		},
		contextPrefix: "For a contact page: ",
	},
	model.PageTypeSearch: {
		priority: []string{"ttfb", "htmlSize", "mainContent"},
		skip:     []string{"listicleFormat", "authorBio"},
		contextPrefix: "For a search results page: ",
	},
}

// skips reports whether a metric is on the page type's skip list.
func (c pageTypeConfig) skips(metric string) bool {
	for _, m := range c.skip {
		if m == metric {
			return true
		}
	}
	return false
}

// multiplier returns the gain multiplier for a metric's rank in the page
// type's priority list.
func (c pageTypeConfig) multiplier(metric string) float64 {
	for rank, m := range c.priority {
		if m != metric {
			continue
		}
		if rank < len(priorityMultipliers) {
			return priorityMultipliers[rank]
		}
		return 1.0
	}
	return 1.0
}
