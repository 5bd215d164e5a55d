package extract

import (
	"regexp"
	"strings"

	"github.com/aiready/aiready/internal/model"
)

// Competitor extraction caps.
const (
	// maxCompetitors bounds the competitor mention list.
	maxCompetitors = 10

	// sentimentWindow is the number of characters inspected on each side
	// of a mention when inferring sentiment.
	sentimentWindow = 100
)

// competitorPatterns are the comparative phrases that introduce a
// competitor name. The name portion deliberately requires a capitalized
// token: comparative phrases followed by lowercase words ("better than
// ever") are not mentions.
var competitorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:Unlike|unlike) ([A-Z][\w.]+(?: [A-Z][\w.]+)?)`),
	regexp.MustCompile(`(?:Better|better) than ([A-Z][\w.]+(?: [A-Z][\w.]+)?)`),
	regexp.MustCompile(`(?:Compared|compared) (?:to|with) ([A-Z][\w.]+(?: [A-Z][\w.]+)?)`),
	regexp.MustCompile(`([A-Z][\w.]+) (?:alternative|alternatives)`),
	regexp.MustCompile(`(?:Switch|switch|Switching|switching|Migrate|migrate|Migrating|migrating) from ([A-Z][\w.]+)`),
	regexp.MustCompile(`(?:vs\.?|versus) ([A-Z][\w.]+)`),
}

// Sentiment cue word lists for the context window around a mention.
// Positive cues outrank negative cues when both appear; mentions with
// neither are neutral.
var (
	positiveCues = []string{
		"better", "faster", "easier", "simpler", "cheaper", "improved",
		"upgrade", "love", "prefer", "recommended", "seamless",
	}
	negativeCues = []string{
		"worse", "slower", "harder", "expensive", "complicated", "clunky",
		"struggle", "frustrat", "outdated", "limited", "locked",
	}
)

// extractCompetitors scans the flattened text for comparative phrases.
// Hits are deduplicated by lowercase-normalized name and capped.
func extractCompetitors(text string) []model.CompetitorMention {
	mentions := make([]model.CompetitorMention, 0)
	seen := make(map[string]bool)

	for _, pattern := range competitorPatterns {
		if len(mentions) >= maxCompetitors {
			break
		}
		for _, idx := range pattern.FindAllStringSubmatchIndex(text, -1) {
			if len(mentions) >= maxCompetitors {
				break
			}
			// idx[2]:idx[3] is capture group 1.
			name := strings.TrimSpace(text[idx[2]:idx[3]])
			key := strings.ToLower(name)
			if name == "" || seen[key] {
				continue
			}
			seen[key] = true

			context := contextWindow(text, idx[0], idx[1])
			mentions = append(mentions, model.CompetitorMention{
				Name:      name,
				Context:   context,
				Sentiment: inferSentiment(context),
			})
		}
	}

	return mentions
}

// contextWindow returns the text surrounding a match, clamped to the
// document bounds.
func contextWindow(text string, start, end int) string {
	from := start - sentimentWindow
	if from < 0 {
		from = 0
	}
	to := end + sentimentWindow
	if to > len(text) {
		to = len(text)
	}
	return strings.TrimSpace(text[from:to])
}

// inferSentiment classifies a mention's context window by cue words.
func inferSentiment(context string) model.Sentiment {
	lower := strings.ToLower(context)
	for _, cue := range positiveCues {
		if strings.Contains(lower, cue) {
			return model.SentimentPositive
		}
	}
	for _, cue := range negativeCues {
		if strings.Contains(lower, cue) {
			return model.SentimentNegative
		}
	}
	return model.SentimentNeutral
}
