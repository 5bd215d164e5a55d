package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// maxProductNames bounds the product name list.
const maxProductNames = 10

// productNamePattern matches capitalized 1-3 word sequences, optionally
// suffixed with a tier word or a version number. The word characters
// include digits so names like "Route53" match.
var productNamePattern = regexp.MustCompile(
	`\b([A-Z][A-Za-z0-9]+(?:[ -][A-Z][A-Za-z0-9]+){0,2}` +
		`(?: (?:Pro|Plus|Premium|Enterprise|Lite|Basic|Cloud|Suite|Max))?` +
		`(?: v?\d+(?:\.\d+)*)?)\b`)

// commonWordFilter lists capitalized words that are sentence starts or
// boilerplate rather than product names. Multi-word candidates are
// rejected when their first word is on this list.
var commonWordFilter = map[string]bool{
	"the": true, "this": true, "that": true, "these": true, "those": true,
	"our": true, "your": true, "their": true, "his": true, "her": true,
	"we": true, "you": true, "they": true, "it": true, "all": true,
	"new": true, "more": true, "most": true, "some": true, "many": true,
	"how": true, "why": true, "what": true, "when": true, "where": true,
	"learn": true, "read": true, "get": true, "try": true, "see": true,
	"home": true, "about": true, "contact": true, "privacy": true,
	"terms": true, "login": true, "sign": true, "pricing": true,
	"blog": true, "news": true, "faq": true, "help": true, "support": true,
	"january": true, "february": true, "march": true, "april": true,
	"may": true, "june": true, "july": true, "august": true,
	"september": true, "october": true, "november": true, "december": true,
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
	"and": true, "with": true, "for": true, "from": true, "into": true,
}

// foldCaser performs Unicode-aware case folding for deduplication keys.
var foldCaser = cases.Fold()

// extractProductNames scans capitalized word sequences in the first
// maxProductScanLength characters, filters common-word false positives,
// deduplicates case-insensitively, and caps the result.
func extractProductNames(text string) []string {
	if len(text) > maxProductScanLength {
		text = text[:maxProductScanLength]
	}

	names := make([]string, 0)
	seen := make(map[string]bool)

	for _, match := range productNamePattern.FindAllString(text, -1) {
		if len(names) >= maxProductNames {
			break
		}
		name := strings.TrimSpace(match)
		if !plausibleProductName(name) {
			continue
		}
		key := foldCaser.String(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, name)
	}

	return names
}

// plausibleProductName rejects common-word false positives.
// Single common words are never names; multi-word candidates are rejected
// when they start with a common word ("The Complete Guide").
func plausibleProductName(name string) bool {
	words := strings.Fields(name)
	if len(words) == 0 {
		return false
	}
	if commonWordFilter[strings.ToLower(words[0])] {
		return false
	}
	// Single two-letter words ("In", "At") are noise even when not listed.
	if len(words) == 1 && len(words[0]) <= 2 {
		return false
	}
	return true
}
