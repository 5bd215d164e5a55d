package extract

import (
	"sort"
	"strings"

	"github.com/aiready/aiready/internal/classify"
	"github.com/aiready/aiready/internal/model"
)

// Topic and key-term caps.
const (
	maxKeyTerms       = 10
	maxDetectedTopics = 5
	maxTechnicalTerms = 10
	minTermLength     = 3
)

// stopwords filters term-frequency counting. The list is intentionally
// small: only words frequent enough to crowd out real terms.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "your": true,
	"you": true, "our": true, "are": true, "that": true, "this": true,
	"from": true, "have": true, "has": true, "was": true, "were": true,
	"will": true, "can": true, "all": true, "any": true, "more": true,
	"how": true, "what": true, "why": true, "when": true, "where": true,
	"not": true, "but": true, "its": true, "into": true, "about": true,
	"get": true, "use": true, "using": true, "new": true, "best": true,
	"top": true, "one": true, "two": true, "out": true, "now": true,
	"also": true, "than": true, "then": true, "them": true, "they": true,
	"their": true, "there": true, "here": true, "who": true, "which": true,
}

// domainTopicCues maps topic tags to the keywords that evidence them.
// Evaluated in declaration order; every matching tag joins the topic set.
var domainTopicCues = []struct {
	topic string
	cues  []string
}{
	{"payments", []string{"payment", "checkout", "merchant", "transaction", "payout"}},
	{"e-commerce", []string{"shop", "cart", "shipping", "store", "order"}},
	{"developer tools", []string{"api", "sdk", "documentation", "integration", "endpoint"}},
	{"blog", []string{"blog", "posted by", "read more", "article"}},
	{"news", []string{"news", "breaking", "reported", "headline"}},
	{"education", []string{"course", "tutorial", "lesson", "learn"}},
}

// technicalVocabulary is the recognized technology term list.
// Matched on word boundaries against lowercased text.
var technicalVocabulary = []string{
	"api", "sdk", "json", "xml", "oauth", "webhook", "rest", "graphql",
	"kubernetes", "docker", "javascript", "typescript", "python", "golang",
	"saas", "cloud", "encryption", "tls", "database", "sql", "nosql",
	"machine learning", "llm", "open source", "cli", "devops",
	"microservices", "serverless", "terraform",
}

// topicResult is the output of topic detection.
type topicResult struct {
	primary  string
	detected []string
	keyTerms []string
}

// detectTopics combines term frequency over title and headings with
// domain-keyword sniffing over the full text.
//
// The primary topic preference order is: first matching domain topic,
// else the top term-frequency term, else the generic default.
func detectTopics(title string, headings []model.Heading, text string) topicResult {
	result := topicResult{
		primary:  "general content",
		detected: []string{},
		keyTerms: []string{},
	}

	// Term frequency over title + headings only. Body text is too noisy
	// for topical terms; headings are editorial summaries.
	var headingText strings.Builder
	headingText.WriteString(strings.ToLower(title))
	for _, h := range headings {
		headingText.WriteString(" ")
		headingText.WriteString(strings.ToLower(h.Text))
	}

	freq := make(map[string]int)
	order := make(map[string]int)
	for i, word := range strings.Fields(headingText.String()) {
		word = strings.Trim(word, ".,:;!?()[]\"'")
		if len(word) < minTermLength || stopwords[word] {
			continue
		}
		if _, ok := freq[word]; !ok {
			order[word] = i
		}
		freq[word]++
	}

	terms := make([]string, 0, len(freq))
	for term := range freq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return order[terms[i]] < order[terms[j]]
	})
	if len(terms) > maxKeyTerms {
		terms = terms[:maxKeyTerms]
	}
	result.keyTerms = terms

	// Domain-keyword sniffing over the full text.
	lower := strings.ToLower(text)
	for _, dt := range domainTopicCues {
		if len(result.detected) >= maxDetectedTopics {
			break
		}
		for _, cue := range dt.cues {
			if strings.Contains(lower, cue) {
				result.detected = append(result.detected, dt.topic)
				break
			}
		}
	}

	switch {
	case len(result.detected) > 0:
		result.primary = result.detected[0]
	case len(terms) > 0:
		result.primary = terms[0]
	}

	return result
}

// extractTechnicalTerms returns recognized technology terms found in the
// lowercased text, in vocabulary order, capped.
func extractTechnicalTerms(lowerText string) []string {
	found := make([]string, 0)
	for _, term := range technicalVocabulary {
		if len(found) >= maxTechnicalTerms {
			break
		}
		if containsWord(lowerText, term) {
			found = append(found, term)
		}
	}
	return found
}

// detectFeatures answers the eight page-capability booleans from signals
// and extracted samples.
func detectFeatures(signals *classify.PageSignals, samples model.ContentSamples) model.DetectedFeatures {
	text := signals.Text
	return model.DetectedFeatures{
		HasPricing:      signals.HasPriceElement || strings.Contains(text, "pricing"),
		HasFAQ:          strings.Contains(text, "frequently asked") || containsWord(text, "faq"),
		HasTestimonials: strings.Contains(text, "testimonial") || strings.Contains(text, "what our customers say"),
		HasDemo:         strings.Contains(text, "book a demo") || strings.Contains(text, "request a demo") || containsWord(text, "demo"),
		HasFreeTier:     strings.Contains(text, "free trial") || strings.Contains(text, "free plan") || strings.Contains(text, "free tier"),
		HasAPI:          containsWord(text, "api"),
		HasComparison:   len(samples.Comparisons) > 0,
		HasCalculator:   containsWord(text, "calculator") || strings.Contains(text, "estimate your"),
	}
}
