package model

import "testing"

// TestDefaultExtractedContent tests the fully-defaulted content model used
// when extraction fails or the page is an error page.
func TestDefaultExtractedContent(t *testing.T) {
	t.Parallel()

	content := DefaultExtractedContent()

	t.Run("safe classification defaults", func(t *testing.T) {
		t.Parallel()
		if content.PrimaryTopic != "general content" {
			t.Errorf("got %q, expected %q", content.PrimaryTopic, "general content")
		}
		if content.BusinessType != BusinessTypeOther {
			t.Errorf("got %q, expected %q", content.BusinessType, BusinessTypeOther)
		}
		if content.PageType != PageTypeGeneral {
			t.Errorf("got %q, expected %q", content.PageType, PageTypeGeneral)
		}
		if content.Language != "en" {
			t.Errorf("got %q, expected %q", content.Language, "en")
		}
	})

	t.Run("all slices initialized", func(t *testing.T) {
		t.Parallel()
		if content.DetectedTopics == nil {
			t.Error("expected DetectedTopics to be initialized")
		}
		if content.CompetitorMentions == nil {
			t.Error("expected CompetitorMentions to be initialized")
		}
		if content.ContentSamples.Headings == nil {
			t.Error("expected Headings to be initialized")
		}
		if content.ContentSamples.Paragraphs == nil {
			t.Error("expected Paragraphs to be initialized")
		}
		if content.ContentSamples.Lists == nil {
			t.Error("expected Lists to be initialized")
		}
		if content.ContentSamples.Statistics == nil {
			t.Error("expected Statistics to be initialized")
		}
		if content.ContentSamples.Comparisons == nil {
			t.Error("expected Comparisons to be initialized")
		}
		if content.KeyTerms == nil {
			t.Error("expected KeyTerms to be initialized")
		}
		if content.ProductNames == nil {
			t.Error("expected ProductNames to be initialized")
		}
		if content.TechnicalTerms == nil {
			t.Error("expected TechnicalTerms to be initialized")
		}
	})

	t.Run("fresh value per call", func(t *testing.T) {
		t.Parallel()
		a := DefaultExtractedContent()
		b := DefaultExtractedContent()
		a.KeyTerms = append(a.KeyTerms, "payments")
		if len(b.KeyTerms) != 0 {
			t.Errorf("got %d key terms, expected 0", len(b.KeyTerms))
		}
	})
}

// TestNewAnalysis tests the Analysis constructor.
func TestNewAnalysis(t *testing.T) {
	t.Parallel()

	results := PillarResults{
		PillarRetrieval: {"ttfb": 10},
	}
	analysis := NewAnalysis("https://example.com/pricing", "<html></html>", results)

	t.Run("sets inputs", func(t *testing.T) {
		t.Parallel()
		if analysis.URL != "https://example.com/pricing" {
			t.Errorf("got %q, expected %q", analysis.URL, "https://example.com/pricing")
		}
		if analysis.HTML != "<html></html>" {
			t.Errorf("got %q, expected raw HTML", analysis.HTML)
		}
		if analysis.PillarResults[PillarRetrieval]["ttfb"] != 10 {
			t.Errorf("got %v, expected 10", analysis.PillarResults[PillarRetrieval]["ttfb"])
		}
	})

	t.Run("sets analysis timestamp", func(t *testing.T) {
		t.Parallel()
		if analysis.AnalyzedAt.IsZero() {
			t.Error("expected AnalyzedAt to be set")
		}
	})

	t.Run("initializes step log", func(t *testing.T) {
		t.Parallel()
		if analysis.Steps == nil {
			t.Error("expected Steps to be initialized")
		}
	})
}
