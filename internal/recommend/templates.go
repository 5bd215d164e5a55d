package recommend

import "github.com/aiready/aiready/internal/model"

// templates is the authored fix-template table keyed by metric name.
// Each template's Gain is the metric's maximum score, the points
// recoverable by fully fixing the check. Templates are reference data:
// generation always clones before touching one.
var templates = map[string]model.RecommendationTemplate{
	// RETRIEVAL
	"ttfb": {
		Why:  "Slow responses make AI crawlers abandon the fetch before reading your content.",
		Fix:  "Serve HTML from a CDN or cache so the first byte arrives within 200ms.",
		Gain: 10,
		Example: "Before: TTFB 2.4s from origin on every request\n" +
			"After: TTFB 120ms from edge cache",
	},
	"paywall": {
		Why:  "Content behind a paywall or login is invisible to AI assistants, so they cite sources that are open instead.",
		Fix:  "Expose the substance of each page to crawlers, or publish an open summary that carries the key facts.",
		Gain: 5,
		Example: "Before: <div class=\"paywall\">Subscribe to continue reading</div>\n" +
			"After: full article text in the initial HTML response",
	},
	"mainContent": {
		Why:  "When the main content only appears after client-side rendering, crawlers that read raw HTML see an empty page.",
		Fix:  "Server-render the primary content so it is present in the initial HTML response.",
		Gain: 10,
		Example: "Before: <div id=\"root\"></div> plus a 2MB JavaScript bundle\n" +
			"After: <main> containing the full article in the first response",
	},
	"htmlSize": {
		Why:  "Oversized HTML payloads get truncated by crawler fetch limits, cutting off whatever renders last.",
		Fix:  "Trim inline scripts, styles, and SVG payloads until the document is under 500KB.",
		Gain: 5,
		Example: "Before: 2.1MB document, 85% inline JavaScript\n" +
			"After: 180KB document with scripts in external files",
	},

	// FACT_DENSITY
	"uniqueStats": {
		Why:  "AI assistants quote pages that state concrete numbers; prose without figures rarely gets cited.",
		Fix:  "Add specific statistics, dates, and quantities that only your organization can publish.",
		Gain: 10,
		Example: "Before: \"Trusted by many companies worldwide\"\n" +
			"After: \"Trusted by 4,200 companies across 31 countries as of 2025\"",
	},
	"dataMarkup": {
		Why:  "Numbers buried in paragraphs are hard for machines to lift; tables and lists are quoted verbatim.",
		Fix:  "Move key figures into HTML tables or definition lists with clear headers.",
		Gain: 5,
		Example: "Before: \"Our basic plan costs $9 and the pro plan costs $29\"\n" +
			"After: a two-column pricing table with plan and price headers",
	},
	"citations": {
		Why:  "Unsourced claims read as marketing; linked primary sources make your page the citable middle step.",
		Fix:  "Link every external claim to its primary source, and date the references.",
		Gain: 5,
		Example: "Before: \"Studies show response times matter\"\n" +
			"After: \"A 2024 Stanford study <a href=\"...\">found</a> that...\"",
	},
	"deduplication": {
		Why:  "Near-duplicate pages split citation signals and make every copy look machine-generated.",
		Fix:  "Consolidate overlapping pages and point alternates at one canonical URL.",
		Gain: 5,
		Example: "Before: /pricing, /pricing-2024, /plans all carrying the same table\n" +
			"After: one /pricing page, others redirecting with 301",
	},

	// STRUCTURE
	"headingFrequency": {
		Why:  "Long unbroken text blocks exceed what AI retrieval returns as a single chunk, so your point gets cut mid-argument.",
		Fix:  "Add a descriptive heading roughly every 150-300 words.",
		Gain: 5,
		Example: "Before: 1,800 words under a single h1\n" +
			"After: six h2 sections, each answering one question",
	},
	"headingDepth": {
		Why:  "Skipped heading levels break the document outline machines use to understand section nesting.",
		Fix:  "Use one h1 and nest h2/h3 without skipping levels.",
		Gain: 5,
		Example: "Before: h1 followed directly by h4 subsections\n" +
			"After: h1 > h2 > h3 in strict order",
	},
	"structuredData": {
		Why:  "Without schema.org markup, assistants must guess what your page represents and often guess wrong.",
		Fix:  "Add JSON-LD structured data describing the page's primary entity.",
		Gain: 5,
		Example: "Before: no structured data\n" +
			"After: <script type=\"application/ld+json\">{\"@type\":\"Organization\",...}</script>",
	},
	"rssFeed": {
		Why:  "Feeds are the cheapest way for AI indexes to notice new content without recrawling your whole site.",
		Fix:  "Publish an RSS or Atom feed and advertise it with a <link rel=\"alternate\"> tag.",
		Gain: 5,
		Example: "Before: no feed\n" +
			"After: <link rel=\"alternate\" type=\"application/rss+xml\" href=\"/feed.xml\">",
	},

	// TRUST
	"authorBio": {
		Why:  "Content without a named, credentialed author ranks below equivalent content with one in AI source selection.",
		Fix:  "Add an author byline with a short bio stating relevant credentials, linked to an author page.",
		Gain: 5,
		Example: "Before: \"Posted by admin\"\n" +
			"After: \"By Dr. Jane Doe, 12 years in payment infrastructure\" with a bio page",
	},
	"napConsistency": {
		Why:  "Inconsistent name, address, and phone details across pages make assistants distrust your business identity.",
		Fix:  "Use one canonical business name, address, and phone number everywhere, backed by Organization markup.",
		Gain: 5,
		Example: "Before: three spellings of the company name across footer, contact, and about pages\n" +
			"After: identical NAP block on every page, mirrored in JSON-LD",
	},
	"license": {
		Why:  "Pages with explicit licensing are safer for AI systems to quote, so they get preferred as sources.",
		Fix:  "State a content license and link it from the footer or page metadata.",
		Gain: 5,
		Example: "Before: no licensing information\n" +
			"After: \"Content licensed CC BY 4.0\" with a license link",
	},

	// RECENCY
	"lastModified": {
		Why:  "Without a visible update date, assistants assume the content is stale and prefer dated sources.",
		Fix:  "Show a last-updated date on the page and keep the Last-Modified header accurate.",
		Gain: 5,
		Example: "Before: no date anywhere on the page\n" +
			"After: \"Last updated 14 March 2025\" near the title, matching the HTTP header",
	},
	"stableCanonical": {
		Why:  "Changing or parameterized URLs reset the citation history a page has accumulated.",
		Fix:  "Keep one stable canonical URL per page and declare it with rel=\"canonical\".",
		Gain: 5,
		Example: "Before: /article?id=9134&ref=nav (changes per session)\n" +
			"After: /guides/payment-routing with rel=\"canonical\"",
	},

	// Auxiliary checks
	"listicleFormat": {
		Why:  "List-shaped titles and sections map directly onto how assistants assemble answers, and get lifted wholesale.",
		Fix:  "Restructure suitable pages as numbered lists with a count in the title.",
		Gain: 10,
		Example: "Before: \"Thoughts on improving checkout\"\n" +
			"After: \"7 Ways to Cut Checkout Abandonment\"",
	},
	"semanticUrl": {
		Why:  "Descriptive URLs are read as topic evidence; opaque IDs say nothing about the page.",
		Fix:  "Use short, hyphenated, human-readable URL slugs that name the topic.",
		Gain: 5,
		Example: "Before: /p/9f8e2\n" +
			"After: /guides/invoice-automation",
	},
	"directAnswers": {
		Why:  "Sections that open with a one-sentence answer are quoted as-is; sections that build up to it are skipped.",
		Fix:  "Start each section with a direct answer, then elaborate.",
		Gain: 5,
		Example: "Before: three paragraphs of context before the definition\n" +
			"After: \"An API gateway is X. Here is why that matters...\"",
	},
	"comparisonContent": {
		Why:  "\"X vs Y\" questions dominate assistant queries, and pages with honest comparisons own those answers.",
		Fix:  "Add a comparison section or table against the alternatives your audience evaluates.",
		Gain: 5,
		Example: "Before: features listed in isolation\n" +
			"After: a feature-by-feature table against the two main alternatives",
	},
	"llmsTxt": {
		Why:  "An llms.txt file tells AI systems what your site covers and which pages carry the substance.",
		Fix:  "Publish /llms.txt summarizing the site and linking its most answer-worthy pages.",
		Gain: 5,
		Example: "Before: no /llms.txt\n" +
			"After: \"# Acme\\n> Invoice automation...\\n## Docs\\n- /guides/...\"",
	},
	"questionHeadings": {
		Why:  "Headings phrased as questions match assistant queries verbatim, putting the matching section straight into the answer.",
		Fix:  "Rephrase section headings as the questions your readers actually ask.",
		Gain: 5,
		Example: "Before: \"Pricing details\"\n" +
			"After: \"How much does invoice automation cost?\"",
	},
}

// TemplateFor returns the static template for a metric. The second return
// is false for metrics without an authored template.
func TemplateFor(metric string) (model.RecommendationTemplate, bool) {
	tmpl, ok := templates[metric]
	return tmpl, ok
}
