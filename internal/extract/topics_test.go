package extract

import (
	"strings"
	"testing"

	"github.com/aiready/aiready/internal/classify"
	"github.com/aiready/aiready/internal/model"
)

// TestDetectTopics tests term frequency and domain sniffing.
func TestDetectTopics(t *testing.T) {
	t.Parallel()

	t.Run("domain topic becomes primary", func(t *testing.T) {
		t.Parallel()
		headings := []model.Heading{
			{Level: 2, Text: "Accept payments anywhere"},
			{Level: 2, Text: "Checkout that converts"},
		}
		result := detectTopics("Payment processing for platforms", headings,
			"Accept payments with one checkout integration for every merchant.")

		if result.primary != "payments" {
			t.Errorf("got %q, expected payments", result.primary)
		}
		if len(result.detected) == 0 || result.detected[0] != "payments" {
			t.Errorf("got %v, expected payments first", result.detected)
		}
	})

	t.Run("key terms from title and headings", func(t *testing.T) {
		t.Parallel()
		headings := []model.Heading{
			{Level: 2, Text: "Invoice capture"},
			{Level: 2, Text: "Invoice approval"},
		}
		result := detectTopics("Invoice automation", headings, "")
		if len(result.keyTerms) == 0 || result.keyTerms[0] != "invoice" {
			t.Errorf("got %v, expected invoice as top term", result.keyTerms)
		}
	})

	t.Run("stopwords filtered from key terms", func(t *testing.T) {
		t.Parallel()
		result := detectTopics("The best way for your team", nil, "")
		for _, term := range result.keyTerms {
			if stopwords[term] {
				t.Errorf("stopword %q leaked into key terms", term)
			}
		}
	})

	t.Run("no signal defaults to general content", func(t *testing.T) {
		t.Parallel()
		result := detectTopics("", nil, "")
		if result.primary != "general content" {
			t.Errorf("got %q, expected general content", result.primary)
		}
	})

	t.Run("top frequency term when no domain matches", func(t *testing.T) {
		t.Parallel()
		headings := []model.Heading{
			{Level: 2, Text: "Gardening basics"},
			{Level: 2, Text: "Gardening tools"},
		}
		result := detectTopics("Gardening", headings, "soil and compost techniques")
		if result.primary != "gardening" {
			t.Errorf("got %q, expected gardening", result.primary)
		}
	})
}

// TestExtractTechnicalTerms tests the recognized vocabulary scan.
func TestExtractTechnicalTerms(t *testing.T) {
	t.Parallel()

	text := strings.ToLower("Our API ships with an SDK, webhook support, and OAuth. Runs on Kubernetes.")
	terms := extractTechnicalTerms(text)

	for _, expected := range []string{"api", "sdk", "oauth", "webhook", "kubernetes"} {
		found := false
		for _, term := range terms {
			if term == expected {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected %q in %v", expected, terms)
		}
	}

	t.Run("no boundary false positives", func(t *testing.T) {
		t.Parallel()
		terms := extractTechnicalTerms("rapid capital therapist")
		if len(terms) != 0 {
			t.Errorf("got %v, expected none", terms)
		}
	})
}

// TestDetectFeatures tests the page-capability booleans.
func TestDetectFeatures(t *testing.T) {
	t.Parallel()

	signals := &classify.PageSignals{
		HasPriceElement: true,
		Text: "see pricing, read our faq, book a demo, start your free trial, " +
			"explore the api",
	}
	samples := model.ContentSamples{Comparisons: []string{"Ledger Flow vs Bookworm"}}

	features := detectFeatures(signals, samples)

	if !features.HasPricing {
		t.Error("expected HasPricing")
	}
	if !features.HasFAQ {
		t.Error("expected HasFAQ")
	}
	if !features.HasDemo {
		t.Error("expected HasDemo")
	}
	if !features.HasFreeTier {
		t.Error("expected HasFreeTier")
	}
	if !features.HasAPI {
		t.Error("expected HasAPI")
	}
	if !features.HasComparison {
		t.Error("expected HasComparison")
	}
	if features.HasTestimonials {
		t.Error("did not expect HasTestimonials")
	}
	if features.HasCalculator {
		t.Error("did not expect HasCalculator")
	}
}
