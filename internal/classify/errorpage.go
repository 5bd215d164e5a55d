package classify

import "strings"

// Error-page thresholds. A page tripping any one condition is treated as
// non-content and downstream extraction degrades to the default content
// model.
const (
	// minContentLength is the text length below which a page cannot be
	// meaningful content.
	minContentLength = 200

	// emptyMainThreshold is the text length below which an empty
	// main-content container marks the page as non-content.
	emptyMainThreshold = 1000

	// shortContentThreshold bounds the "content is short" qualifier used
	// by the block-phrase and repetition checks. Long pages mentioning a
	// CAPTCHA in passing are not error pages.
	shortContentThreshold = 1500

	// repetitionRatioLimit is the word-to-unique-word ratio above which
	// short content is considered boilerplate (placeholder grids, parked
	// domains, anti-bot interstitials).
	repetitionRatioLimit = 5.0
)

// blockPhrases are markers of block pages, CAPTCHAs, and HTTP error pages.
// Matched against the lowercased page text.
var blockPhrases = []string{
	"access denied",
	"403 forbidden",
	"404 not found",
	"page not found",
	"captcha",
	"verify you are human",
	"checking your browser",
	"enable javascript and cookies",
	"rate limit exceeded",
	"service unavailable",
	"temporarily unavailable",
}

// IsErrorPage reports whether the page is a non-content page: blocked,
// errored, or effectively empty. Any positive condition short-circuits;
// the conditions are ordered cheapest first.
func IsErrorPage(signals *PageSignals) bool {
	if signals.TextLength < minContentLength {
		return true
	}

	if signals.HasMainContainer && signals.MainContentLength == 0 &&
		signals.TextLength < emptyMainThreshold {
		return true
	}

	if signals.TextLength < shortContentThreshold {
		for _, phrase := range blockPhrases {
			if strings.Contains(signals.Text, phrase) {
				return true
			}
		}

		if signals.UniqueWordCount > 0 {
			ratio := float64(signals.WordCount) / float64(signals.UniqueWordCount)
			if ratio > repetitionRatioLimit {
				return true
			}
		}
	}

	return false
}
