package recommend

import (
	"strings"
	"testing"

	"github.com/aiready/aiready/internal/model"
)

// TestGenerateHomepagePriority tests that a failing structuredData check
// leads the list for homepages, boosted and custom-messaged.
func TestGenerateHomepagePriority(t *testing.T) {
	t.Parallel()

	results := model.PillarResults{
		model.PillarStructure: {"structuredData": 0, "rssFeed": 0},
		model.PillarTrust:     {"authorBio": 0},
	}
	content := &model.ExtractedContent{
		PageType:     model.PageTypeHomepage,
		BusinessType: model.BusinessTypeCorporate,
		PrimaryTopic: "payments",
	}

	recs := NewGenerator().Generate(results, content, nil)
	if len(recs) == 0 {
		t.Fatal("expected recommendations")
	}

	first := recs[0]
	if first.Metric != "structuredData" {
		t.Fatalf("got %q first, expected structuredData", first.Metric)
	}
	if first.Gain != 7.5 {
		t.Errorf("got gain %v, expected 7.5 (5 x 1.5)", first.Gain)
	}
	if !strings.Contains(first.Why, "resolve your brand") {
		t.Errorf("expected the homepage custom message in %q", first.Why)
	}
	if !strings.Contains(first.Fix, "Organization type") {
		t.Errorf("expected the homepage fix addendum in %q", first.Fix)
	}
}

// TestGenerateSearchSkips tests that search pages never recommend
// list-format or author-bio fixes.
func TestGenerateSearchSkips(t *testing.T) {
	t.Parallel()

	results := model.PillarResults{
		model.PillarStructure: {"structuredData": 0, "listicleFormat": 0},
		model.PillarTrust:     {"authorBio": 0, "license": 0},
	}
	content := &model.ExtractedContent{PageType: model.PageTypeSearch}

	recs := NewGenerator().Generate(results, content, nil)
	for _, rec := range recs {
		if rec.Metric == "listicleFormat" || rec.Metric == "authorBio" {
			t.Errorf("skipped metric %q appeared for a search page", rec.Metric)
		}
	}
	if len(recs) != 2 {
		t.Errorf("got %d recommendations, expected 2 (structuredData, license)", len(recs))
	}
}

// TestGeneratePassingChecksSkipped tests that checks at or above their
// maximum produce no recommendation.
func TestGeneratePassingChecksSkipped(t *testing.T) {
	t.Parallel()

	results := model.PillarResults{
		model.PillarRetrieval: {"ttfb": 10, "paywall": 5, "mainContent": 4},
	}
	recs := NewGenerator().Generate(results, nil, nil)

	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, expected 1", len(recs))
	}
	if recs[0].Metric != "mainContent" {
		t.Errorf("got %q, expected mainContent", recs[0].Metric)
	}
	if recs[0].Pillar != model.PillarRetrieval {
		t.Errorf("got %q, expected RETRIEVAL", recs[0].Pillar)
	}
}

// TestGenerateOnePerFailingMetric tests the recommendation count against a
// mixed audit.
func TestGenerateOnePerFailingMetric(t *testing.T) {
	t.Parallel()

	results := model.PillarResults{
		model.PillarRetrieval: {
			"ttfb": 10, "paywall": 0, "mainContent": 5, "htmlSize": 5,
		},
		model.PillarFactDensity: {
			"uniqueStats": 10, "dataMarkup": 5, "citations": 0, "deduplication": 5,
		},
		model.PillarStructure: {
			"headingFrequency": 5, "headingDepth": 5, "structuredData": 0, "rssFeed": 0,
		},
		model.PillarTrust: {
			"authorBio": 0, "napConsistency": 5, "license": 0,
		},
		model.PillarRecency: {
			"lastModified": 5, "stableCanonical": 0,
		},
	}

	recs := NewGenerator().Generate(results, nil, nil)
	if len(recs) != 8 {
		t.Errorf("got %d recommendations, expected 8 failing checks", len(recs))
	}
	seen := make(map[string]int)
	for _, rec := range recs {
		seen[rec.Metric]++
	}
	for metric, n := range seen {
		if n != 1 {
			t.Errorf("metric %q appeared %d times", metric, n)
		}
	}
}

// TestGenerateSorting tests descending gain order with stable ties.
func TestGenerateSorting(t *testing.T) {
	t.Parallel()

	results := model.PillarResults{
		model.PillarRetrieval:   {"paywall": 0, "mainContent": 0, "htmlSize": 0},
		model.PillarFactDensity: {"dataMarkup": 0},
	}
	recs := NewGenerator().Generate(results, nil, nil)

	if len(recs) != 4 {
		t.Fatalf("got %d recommendations, expected 4", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Gain > recs[i-1].Gain {
			t.Fatalf("gain order broken at %d: %v after %v", i, recs[i].Gain, recs[i-1].Gain)
		}
	}
	// mainContent (10) first, then the three 5-point ties in pillar and
	// declaration order.
	expected := []string{"mainContent", "paywall", "htmlSize", "dataMarkup"}
	for i, metric := range expected {
		if recs[i].Metric != metric {
			t.Errorf("position %d: got %q, expected %q", i, recs[i].Metric, metric)
		}
	}
}

// TestGenerateUnknownMetric tests that failing checks without a template
// are dropped rather than emitted half-empty.
func TestGenerateUnknownMetric(t *testing.T) {
	t.Parallel()

	results := model.PillarResults{
		model.PillarRetrieval: {"mysteryCheck": 0},
	}
	recs := NewGenerator().Generate(results, nil, nil)
	if len(recs) != 0 {
		t.Errorf("got %d recommendations, expected 0", len(recs))
	}
}

// TestGenerateArtifacts tests the auditor-captured example path used when
// no extracted content is available.
func TestGenerateArtifacts(t *testing.T) {
	t.Parallel()

	results := model.PillarResults{
		model.PillarStructure: {"structuredData": 0, "rssFeed": 0},
	}
	artifacts := &model.AuditArtifacts{
		CapturedExamples: map[string]string{
			"structuredData": "Before: nothing\nAfter: captured from the live page",
		},
	}

	recs := NewGenerator().Generate(results, nil, artifacts)
	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, expected 2", len(recs))
	}
	for _, rec := range recs {
		switch rec.Metric {
		case "structuredData":
			if !strings.Contains(rec.Example, "captured from the live page") {
				t.Errorf("expected the captured example, got %q", rec.Example)
			}
		case "rssFeed":
			tmpl, _ := TemplateFor("rssFeed")
			if rec.Example != tmpl.Example {
				t.Errorf("expected the static example, got %q", rec.Example)
			}
		}
	}
}

// TestGenerateTuningOverrides tests config-supplied priority and skip
// overrides.
func TestGenerateTuningOverrides(t *testing.T) {
	t.Parallel()

	overrides := map[model.PageType]Tuning{
		model.PageTypeBlog: {
			Priority: []string{"citations"},
			Skip:     []string{"listicleFormat"},
		},
	}
	g := NewGenerator(WithTuning(overrides))

	results := model.PillarResults{
		model.PillarFactDensity: {"citations": 0},
		model.PillarStructure:   {"listicleFormat": 0},
	}
	content := &model.ExtractedContent{PageType: model.PageTypeBlog}

	recs := g.Generate(results, content, nil)
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, expected 1", len(recs))
	}
	if recs[0].Metric != "citations" {
		t.Errorf("got %q, expected citations", recs[0].Metric)
	}
	if recs[0].Gain != 7.5 {
		t.Errorf("got gain %v, expected 7.5 after the priority override", recs[0].Gain)
	}
}

// TestTemplateTableCoversCanonicalChecks tests that every canonical check
// has an authored template whose gain matches the metric maximum.
func TestTemplateTableCoversCanonicalChecks(t *testing.T) {
	t.Parallel()

	for _, pillar := range model.Pillars() {
		for _, metric := range model.PillarMetrics(pillar) {
			tmpl, ok := TemplateFor(metric)
			if !ok {
				t.Errorf("no template for %s/%s", pillar, metric)
				continue
			}
			if tmpl.Gain != model.MaxScoreForMetric(metric) {
				t.Errorf("%s: template gain %v, metric max %v", metric, tmpl.Gain, model.MaxScoreForMetric(metric))
			}
			if tmpl.Why == "" || tmpl.Fix == "" {
				t.Errorf("%s: incomplete template", metric)
			}
		}
	}
}
