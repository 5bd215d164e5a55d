package classify

import (
	"strings"

	"github.com/aiready/aiready/internal/model"
)

// businessTypeRule is one entry in the business type cascade, evaluated in
// declaration order with first match wins.
type businessTypeRule struct {
	name   string
	match  func(*PageSignals, []string) bool
	result model.BusinessType
}

// Keyword groups for business type detection. All are matched against the
// lowercased page text and title.
var (
	paymentKeywords = []string{
		"payment processing", "payment gateway", "accept payments",
		"merchant account", "checkout api", "payment api", "pci compliance",
		"card processing", "payout",
	}

	ecommerceKeywords = []string{
		"buy now", "add to cart", "free shipping", "in stock",
		"checkout", "shopping cart",
	}

	corporateKeywords = []string{
		"our mission", "our team", "about us", "careers", "investor relations",
		"press release", "leadership team", "headquartered",
	}

	educationalKeywords = []string{
		"course", "tutorial", "curriculum", "lesson", "enroll",
		"certification", "learn how to", "students",
	}

	docsKeywords = []string{"api", "documentation", "sdk", "endpoint"}
)

// codeDensityThreshold is the minimum number of code blocks that marks a
// page as documentation regardless of keywords. Technical references
// routinely carry dozens of snippets; marketing pages carry none.
const codeDensityThreshold = 8

// businessTypeCascade is the ordered rule list for business type detection.
// Payment outranks ecommerce because payment providers describe commerce
// ("accept payments in your store") without being stores themselves.
var businessTypeCascade = []businessTypeRule{
	{
		name: "payment_keywords",
		match: func(s *PageSignals, _ []string) bool {
			return s.ContainsKeyword(paymentKeywords...)
		},
		result: model.BusinessTypePayment,
	},
	{
		name: "commerce_markup",
		match: func(s *PageSignals, _ []string) bool {
			return s.HasAddToCart && s.HasPriceElement || s.ContainsKeyword(ecommerceKeywords...)
		},
		result: model.BusinessTypeEcommerce,
	},
	{
		name: "blog_markup_or_topic",
		match: func(s *PageSignals, topics []string) bool {
			return s.HasBlogMarkup || hasTopic(topics, "blog")
		},
		result: model.BusinessTypeBlog,
	},
	{
		name: "news_markup_or_topic",
		match: func(s *PageSignals, topics []string) bool {
			return s.HasNewsMarkup || hasTopic(topics, "news")
		},
		result: model.BusinessTypeNews,
	},
	{
		name: "code_density",
		match: func(s *PageSignals, _ []string) bool {
			return s.CodeBlockCount >= codeDensityThreshold
		},
		result: model.BusinessTypeDocumentation,
	},
	{
		name: "docs_keywords",
		match: func(s *PageSignals, _ []string) bool {
			return s.ContainsKeyword(docsKeywords...) && s.CodeBlockCount > 0
		},
		result: model.BusinessTypeDocumentation,
	},
	{
		name: "corporate_keywords",
		match: func(s *PageSignals, _ []string) bool {
			return s.ContainsKeyword(corporateKeywords...)
		},
		result: model.BusinessTypeCorporate,
	},
	{
		name: "educational_keywords",
		match: func(s *PageSignals, _ []string) bool {
			return s.ContainsKeyword(educationalKeywords...)
		},
		result: model.BusinessTypeEducational,
	},
}

// DetectBusinessType classifies the site's business domain from detected
// topics and page signals. Pages matching no rule are "other".
func DetectBusinessType(topics []string, signals *PageSignals) model.BusinessType {
	for _, rule := range businessTypeCascade {
		if rule.match(signals, topics) {
			return rule.result
		}
	}
	return model.BusinessTypeOther
}

// hasTopic reports whether the topic list contains the given tag,
// case-insensitively.
func hasTopic(topics []string, tag string) bool {
	for _, t := range topics {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
