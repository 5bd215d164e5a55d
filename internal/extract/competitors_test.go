package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/aiready/aiready/internal/model"
)

// TestExtractCompetitors tests competitor mention extraction.
func TestExtractCompetitors(t *testing.T) {
	t.Parallel()

	t.Run("comparative phrases", func(t *testing.T) {
		t.Parallel()
		text := "Unlike Quickledger, we reconcile in real time. " +
			"Teams switching from Bookworm save hours. " +
			"Looking for a Numera alternative?"

		mentions := extractCompetitors(text)
		if len(mentions) != 3 {
			t.Fatalf("got %d mentions, expected 3", len(mentions))
		}

		names := make(map[string]bool)
		for _, m := range mentions {
			names[m.Name] = true
		}
		for _, expected := range []string{"Quickledger", "Bookworm", "Numera"} {
			if !names[expected] {
				t.Errorf("expected mention of %s", expected)
			}
		}
	})

	t.Run("deduplicates by lowercase name", func(t *testing.T) {
		t.Parallel()
		text := "Unlike Quickledger we are fast. Better than QUICKLEDGER in every test."
		mentions := extractCompetitors(text)
		if len(mentions) != 1 {
			t.Errorf("got %d mentions, expected 1", len(mentions))
		}
	})

	t.Run("caps at ten mentions", func(t *testing.T) {
		t.Parallel()
		var sb strings.Builder
		for i := 0; i < 15; i++ {
			fmt.Fprintf(&sb, "Unlike Vendor%c this works. ", 'A'+rune(i))
		}
		mentions := extractCompetitors(sb.String())
		if len(mentions) != maxCompetitors {
			t.Errorf("got %d mentions, expected %d", len(mentions), maxCompetitors)
		}
	})

	t.Run("lowercase comparative phrases are not mentions", func(t *testing.T) {
		t.Parallel()
		mentions := extractCompetitors("better than ever, better than before")
		if len(mentions) != 0 {
			t.Errorf("got %d mentions, expected 0", len(mentions))
		}
	})

	t.Run("sentiment from context window", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name     string
			text     string
			expected model.Sentiment
		}{
			{
				name:     "positive cue",
				text:     "Switching from Bookworm made everything faster and simpler.",
				expected: model.SentimentPositive,
			},
			{
				name:     "negative cue",
				text:     "Compared to Bookworm, their workflow felt clunky and outdated.",
				expected: model.SentimentNegative,
			},
			{
				name:     "no cue defaults to neutral",
				text:     "Our importer reads files exported by Unlike Bookworm formats.",
				expected: model.SentimentNeutral,
			},
			{
				name: "positive outranks negative",
				// Both cue kinds in the window: positive wins.
				text:     "Unlike Bookworm, which felt clunky, ours is faster.",
				expected: model.SentimentPositive,
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				mentions := extractCompetitors(tt.text)
				if len(mentions) == 0 {
					t.Fatal("expected a mention")
				}
				if mentions[0].Sentiment != tt.expected {
					t.Errorf("got %q, expected %q", mentions[0].Sentiment, tt.expected)
				}
			})
		}
	})

	t.Run("context window bounded", func(t *testing.T) {
		t.Parallel()
		text := strings.Repeat("x", 500) + " Unlike Bookworm " + strings.Repeat("y", 500)
		mentions := extractCompetitors(text)
		if len(mentions) != 1 {
			t.Fatalf("got %d mentions, expected 1", len(mentions))
		}
		// Window is the match plus at most sentimentWindow on each side.
		if len(mentions[0].Context) > len("Unlike Bookworm")+2*sentimentWindow+2 {
			t.Errorf("context too long: %d chars", len(mentions[0].Context))
		}
	})
}
