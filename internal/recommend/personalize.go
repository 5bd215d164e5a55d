package recommend

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aiready/aiready/internal/model"
)

// titleCaser renders extracted lowercase topics as title-case headings.
var titleCaser = cases.Title(language.English)

// personalize rewrites a recommendation with page-type context and real
// extracted data. Any panic restores the recommendation to its
// pre-personalization state; a bad page must never lose its fix list.
func (g *Generator) personalize(rec *model.Recommendation, cfg pageTypeConfig, content *model.ExtractedContent) {
	static := *rec
	defer func() {
		if r := recover(); r != nil {
			*rec = static
			g.logger.Debug("personalization degraded to static template",
				"metric", rec.Metric,
				"panic", r,
			)
		}
	}()

	if cfg.contextPrefix != "" {
		rec.Why = cfg.contextPrefix + rec.Why
	}
	if detail := whyDetail(rec.Metric, content); detail != "" {
		rec.Why += " " + detail
	}
	if addendum, ok := cfg.fixAddenda[rec.Metric]; ok {
		rec.Fix += " " + addendum
	}

	if builder, ok := exampleBuilders[rec.Metric]; ok {
		if example, ok := builder(content); ok {
			rec.Example = example
		} else if generic := genericExample(content.BusinessType); generic != "" {
			rec.Example = generic
		}
	}
}

// whyDetail returns a metric-specific sentence grounded in the extracted
// content, or "" when the content has nothing to add.
func whyDetail(metric string, content *model.ExtractedContent) string {
	samples := content.ContentSamples
	switch metric {
	case "uniqueStats":
		if n := len(samples.Statistics); n > 0 {
			return fmt.Sprintf("Your page currently surfaces %d concrete figures; assistants need more to quote you over a competitor.", n)
		}
		return "No concrete figures were found on this page."
	case "headingFrequency":
		if content.WordCount > 0 {
			return fmt.Sprintf("This page has %d headings for %d words.", len(samples.Headings), content.WordCount)
		}
	case "questionHeadings":
		questions := 0
		for _, h := range samples.Headings {
			if strings.HasSuffix(strings.TrimSpace(h.Text), "?") {
				questions++
			}
		}
		return fmt.Sprintf("%d of %d headings are phrased as questions.", questions, len(samples.Headings))
	case "comparisonContent":
		if len(content.CompetitorMentions) > 0 {
			return fmt.Sprintf("You already mention %s; a structured comparison would put that to work.", content.CompetitorMentions[0].Name)
		}
	case "dataMarkup":
		if n := len(samples.Statistics); n > 0 {
			return fmt.Sprintf("%d figures found in prose could move into a table.", n)
		}
	}
	return ""
}

// exampleBuilders regenerates before/after examples from real extracted
// data. A builder returns false when the content lacks what it needs; the
// caller then falls back to a business-type generic example.
var exampleBuilders = map[string]func(*model.ExtractedContent) (string, bool){
	"listicleFormat":    buildListicleExample,
	"semanticUrl":       buildSemanticURLExample,
	"directAnswers":     buildDirectAnswerExample,
	"comparisonContent": buildComparisonExample,
	"uniqueStats":       buildUniqueStatsExample,
	"headingFrequency":  buildHeadingExample,
	"structuredData":    buildStructuredDataExample,
	"authorBio":         buildAuthorBioExample,
	"dataMarkup":        buildDataMarkupExample,
	"llmsTxt":           buildLLMSTxtExample,
}

func buildListicleExample(content *model.ExtractedContent) (string, bool) {
	title := strings.TrimSpace(content.ContentSamples.Title)
	if title == "" {
		return "", false
	}
	topic := titleCaser.String(content.PrimaryTopic)
	return fmt.Sprintf("Before: %q\nAfter: \"7 Ways to Get More From %s\"", title, topic), true
}

func buildSemanticURLExample(content *model.ExtractedContent) (string, bool) {
	slug := topicSlug(content)
	if slug == "" {
		return "", false
	}
	return fmt.Sprintf("Before: /p/4821?ref=nav\nAfter: /%s", slug), true
}

func buildDirectAnswerExample(content *model.ExtractedContent) (string, bool) {
	for _, h := range content.ContentSamples.Headings {
		text := strings.TrimSpace(h.Text)
		if !strings.HasSuffix(text, "?") {
			continue
		}
		return fmt.Sprintf("Before: %q followed by background paragraphs\nAfter: %q followed by a one-sentence answer, then the detail", text, text), true
	}
	return "", false
}

func buildComparisonExample(content *model.ExtractedContent) (string, bool) {
	subject := firstProductName(content)
	if len(content.CompetitorMentions) == 0 || subject == "" {
		return "", false
	}
	competitor := content.CompetitorMentions[0].Name
	return fmt.Sprintf("Before: features listed with no reference point\nAfter: a \"%s vs %s\" table comparing pricing, setup time, and support", subject, competitor), true
}

func buildUniqueStatsExample(content *model.ExtractedContent) (string, bool) {
	stats := content.ContentSamples.Statistics
	if len(stats) == 0 {
		return "", false
	}
	return fmt.Sprintf("Before: the figure %q buried mid-paragraph\nAfter: \"%s\" leading its own sentence near the top of the section", stats[0], stats[0]), true
}

func buildHeadingExample(content *model.ExtractedContent) (string, bool) {
	headings := content.ContentSamples.Headings
	if len(headings) == 0 {
		return "", false
	}
	return fmt.Sprintf("Before: long text after %q with no subdivisions\nAfter: %q split into h3 sections, one claim each", headings[0].Text, headings[0].Text), true
}

// schemaTypes maps business types to the schema.org type an assistant
// expects for that kind of site.
var schemaTypes = map[model.BusinessType]string{
	model.BusinessTypePayment:       "FinancialService",
	model.BusinessTypeEcommerce:     "Product",
	model.BusinessTypeBlog:          "BlogPosting",
	model.BusinessTypeNews:          "NewsArticle",
	model.BusinessTypeDocumentation: "TechArticle",
	model.BusinessTypeCorporate:     "Organization",
	model.BusinessTypeEducational:   "Course",
	model.BusinessTypeOther:         "WebPage",
}

func buildStructuredDataExample(content *model.ExtractedContent) (string, bool) {
	schemaType, ok := schemaTypes[content.BusinessType]
	if !ok {
		schemaType = schemaTypes[model.BusinessTypeOther]
	}
	name := firstProductName(content)
	if name == "" {
		name = titleCaser.String(content.PrimaryTopic)
	}
	return fmt.Sprintf("Before: no structured data\nAfter: <script type=\"application/ld+json\">{\"@context\":\"https://schema.org\",\"@type\":%q,\"name\":%q}</script>", schemaType, name), true
}

func buildAuthorBioExample(content *model.ExtractedContent) (string, bool) {
	field := content.BusinessAttributes.Industry
	if field == "" {
		field = content.PrimaryTopic
	}
	if field == "" {
		return "", false
	}
	return fmt.Sprintf("Before: no byline\nAfter: \"By [author name], 8 years working in %s\" linked to an author page", field), true
}

func buildDataMarkupExample(content *model.ExtractedContent) (string, bool) {
	stats := content.ContentSamples.Statistics
	if len(stats) < 2 {
		return "", false
	}
	return fmt.Sprintf("Before: %q and %q spread across paragraphs\nAfter: a two-row table with a \"Metric\" and \"Value\" header carrying both", stats[0], stats[1]), true
}

func buildLLMSTxtExample(content *model.ExtractedContent) (string, bool) {
	if content.PrimaryTopic == "" {
		return "", false
	}
	var b strings.Builder
	b.WriteString("Before: no /llms.txt\nAfter:\n# ")
	b.WriteString(titleCaser.String(content.PrimaryTopic))
	b.WriteString("\n> ")
	if content.ContentSamples.MetaDescription != "" {
		b.WriteString(content.ContentSamples.MetaDescription)
	} else {
		b.WriteString("Site covering " + content.PrimaryTopic + ".")
	}
	for i, name := range content.ProductNames {
		if i >= 3 {
			break
		}
		b.WriteString("\n- " + name)
	}
	return b.String(), true
}

// genericExamples are the business-type-flavored fallbacks used when a
// builder has no real data to work with.
var genericExamples = map[model.BusinessType]string{
	model.BusinessTypePayment:       "Before: \"Fast, reliable payments\"\nAfter: \"Settlement completes within 2 business days for 98% of payouts\"",
	model.BusinessTypeEcommerce:     "Before: \"Great products, great prices\"\nAfter: \"Ships in 24h; 4.6/5 across 2,300 verified reviews\"",
	model.BusinessTypeBlog:          "Before: \"Some thoughts on productivity\"\nAfter: \"5 Scheduling Rules That Saved Our Team 6 Hours a Week\"",
	model.BusinessTypeNews:          "Before: \"Markets moved today\"\nAfter: \"S&P 500 closed up 1.2% after the 25bp rate cut\"",
	model.BusinessTypeDocumentation: "Before: \"Refer to the configuration section\"\nAfter: \"Set timeout_ms: 5000 in config.yaml; the default is 30000\"",
	model.BusinessTypeCorporate:     "Before: \"A leading provider of solutions\"\nAfter: \"Serving 4,200 customers across 31 countries since 2014\"",
	model.BusinessTypeEducational:   "Before: \"Learn at your own pace\"\nAfter: \"12-module course; median completion 6 weeks; certificate included\"",
	model.BusinessTypeOther:         "Before: a vague claim with no evidence\nAfter: the same claim with a number, a date, and a source",
}

// genericExample returns the business-type fallback example.
func genericExample(businessType model.BusinessType) string {
	if example, ok := genericExamples[businessType]; ok {
		return example
	}
	return genericExamples[model.BusinessTypeOther]
}

// topicSlug renders the primary topic as a URL slug.
func topicSlug(content *model.ExtractedContent) string {
	topic := strings.ToLower(strings.TrimSpace(content.PrimaryTopic))
	if topic == "" {
		return ""
	}
	fields := strings.Fields(topic)
	return strings.Join(fields, "-")
}

// firstProductName returns the page's leading product name, preferring the
// explicitly extracted main product.
func firstProductName(content *model.ExtractedContent) string {
	if content.BusinessAttributes.MainProduct != "" {
		return content.BusinessAttributes.MainProduct
	}
	if len(content.ProductNames) > 0 {
		return content.ProductNames[0]
	}
	return ""
}
