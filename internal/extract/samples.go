package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aiready/aiready/internal/model"
)

// Structural sample caps. These bounds are part of the content model
// contract: consumers may assume samples stay small.
const (
	maxHeadings          = 20
	maxParagraphs        = 10
	minParagraphLength   = 50
	maxLists             = 5
	maxListItems         = 10
	maxListItemLength    = 100
	maxStatistics        = 10
	maxComparisons       = 5
	maxHeadingContentLen = 200
)

// Statistic patterns: percentages, unit-suffixed numbers, and currency
// amounts.
var statisticPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+(?:\.\d+)?%`),
	regexp.MustCompile(`(?i)\d+(?:[.,]\d+)?\s?(?:million|billion|trillion|thousand)\b`),
	regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?[kmb]\b`),
	regexp.MustCompile(`[$€£¥]\s?\d[\d,]*(?:\.\d+)?(?:\s?(?:million|billion|thousand|[kmb])\b)?`),
}

// comparisonHeadingKeywords mark headings that introduce comparison
// content.
var comparisonHeadingKeywords = []string{
	"vs", "versus", "compared", "comparison", "difference between",
	"alternative", "which is better",
}

// versusPattern matches inline "X vs Y" phrases.
var versusPattern = regexp.MustCompile(`\b([A-Z][\w.-]+) vs\.? ([A-Z][\w.-]+)\b`)

// extractSamples collects the bounded structural sample of a page in a
// single DOM pass per element kind.
func extractSamples(doc *goquery.Document, title string) model.ContentSamples {
	samples := model.ContentSamples{
		Title:       title,
		Headings:    []model.Heading{},
		Paragraphs:  []string{},
		Lists:       []model.List{},
		Statistics:  []string{},
		Comparisons: []string{},
	}

	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		samples.MetaDescription = strings.TrimSpace(desc)
	}

	samples.Headings = extractHeadings(doc)
	samples.Paragraphs = extractParagraphs(doc)
	samples.Lists = extractLists(doc)

	text := flattenText(doc)
	samples.Statistics = extractStatistics(text)
	samples.Comparisons = extractComparisons(samples.Headings, text)

	return samples
}

// extractHeadings collects the first maxHeadings headings in document
// order, with the immediately following paragraph sampled as the
// heading's content.
func extractHeadings(doc *goquery.Document) []model.Heading {
	headings := make([]model.Heading, 0, maxHeadings)

	doc.Find("h1, h2, h3, h4, h5, h6").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return true
		}

		level, err := strconv.Atoi(strings.TrimPrefix(goquery.NodeName(sel), "h"))
		if err != nil {
			return true
		}

		heading := model.Heading{Level: level, Text: text}
		if next := sel.NextFiltered("p"); next.Length() > 0 {
			content := strings.TrimSpace(next.Text())
			if len(content) > maxHeadingContentLen {
				content = content[:maxHeadingContentLen]
			}
			heading.Content = content
		}

		headings = append(headings, heading)
		return len(headings) < maxHeadings
	})

	return headings
}

// extractParagraphs collects the first maxParagraphs paragraphs longer
// than minParagraphLength characters.
func extractParagraphs(doc *goquery.Document) []string {
	paragraphs := make([]string, 0, maxParagraphs)

	doc.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if len(text) > minParagraphLength {
			paragraphs = append(paragraphs, text)
		}
		return len(paragraphs) < maxParagraphs
	})

	return paragraphs
}

// extractLists collects the first maxLists lists with item caps applied.
func extractLists(doc *goquery.Document) []model.List {
	lists := make([]model.List, 0, maxLists)

	doc.Find("ul, ol").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		listType := "unordered"
		if goquery.NodeName(sel) == "ol" {
			listType = "ordered"
		}

		items := make([]string, 0, maxListItems)
		sel.ChildrenFiltered("li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
			item := strings.TrimSpace(li.Text())
			if item == "" {
				return true
			}
			if len(item) > maxListItemLength {
				item = item[:maxListItemLength]
			}
			items = append(items, item)
			return len(items) < maxListItems
		})

		if len(items) > 0 {
			lists = append(lists, model.List{Type: listType, Items: items})
		}
		return len(lists) < maxLists
	})

	return lists
}

// extractStatistics scans for numeric claims and returns them
// deduplicated in discovery order, capped at maxStatistics.
func extractStatistics(text string) []string {
	stats := make([]string, 0, maxStatistics)
	seen := make(map[string]bool)

	for _, pattern := range statisticPatterns {
		if len(stats) >= maxStatistics {
			break
		}
		for _, match := range pattern.FindAllString(text, -1) {
			if len(stats) >= maxStatistics {
				break
			}
			key := strings.ToLower(strings.TrimSpace(match))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			stats = append(stats, strings.TrimSpace(match))
		}
	}

	return stats
}

// extractComparisons collects comparison headings and inline "X vs Y"
// phrases, capped at maxComparisons.
func extractComparisons(headings []model.Heading, text string) []string {
	comparisons := make([]string, 0, maxComparisons)
	seen := make(map[string]bool)

	add := func(s string) {
		key := strings.ToLower(s)
		if len(comparisons) < maxComparisons && !seen[key] {
			seen[key] = true
			comparisons = append(comparisons, s)
		}
	}

	for _, h := range headings {
		lower := strings.ToLower(h.Text)
		for _, kw := range comparisonHeadingKeywords {
			if containsWord(lower, kw) {
				add(h.Text)
				break
			}
		}
	}

	for _, match := range versusPattern.FindAllString(text, -1) {
		add(match)
	}

	return comparisons
}

// containsWord reports whether s contains kw on word boundaries.
// Plain substring matching would turn "investment" into a "vs" hit.
func containsWord(s, kw string) bool {
	idx := strings.Index(s, kw)
	for idx >= 0 {
		before := idx == 0 || !isWordChar(s[idx-1])
		afterIdx := idx + len(kw)
		after := afterIdx >= len(s) || !isWordChar(s[afterIdx])
		if before && after {
			return true
		}
		next := strings.Index(s[idx+1:], kw)
		if next < 0 {
			return false
		}
		idx += 1 + next
	}
	return false
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
