package model

import "time"

// PillarResults is the auditor output consumed by the scorer: for each
// pillar, a mapping of metric name to the score that metric earned.
//
// The five pillar auditors run outside this module. Their output shape is
// trusted; a missing pillar or metric simply contributes zero points.
type PillarResults map[Pillar]map[string]float64

// PillarBreakdown is the per-pillar scoring summary.
// earned <= max holds at every stage. During dynamic scoring the entry is
// rewritten in place with the reweighted earned/max pair; that pass is the
// only mutation after construction.
type PillarBreakdown struct {
	// Pillar identifies the scoring dimension.
	Pillar Pillar `json:"pillar"`

	// Earned is the points achieved, raw or reweighted.
	Earned float64 `json:"earned"`

	// Max is the point ceiling, raw budget or profile weight.
	Max float64 `json:"max"`

	// Checks is the number of metrics the auditors reported for this pillar.
	Checks int `json:"checks"`
}

// DynamicScoring records the reweighting pass for transparency.
// Both the raw and the weighted score sets are retained so report
// consumers can show either scale.
type DynamicScoring struct {
	// PageType is the page type whose weight profile was applied.
	PageType PageType `json:"page_type"`

	// AppliedWeights is true when a profile was found and applied.
	AppliedWeights bool `json:"applied_weights"`

	// Weights is the applied per-pillar weight profile.
	Weights map[Pillar]float64 `json:"weights"`

	// RawScores holds the pre-reweighting earned points per pillar.
	RawScores map[Pillar]float64 `json:"raw_scores"`

	// WeightedScores holds the post-reweighting earned points per pillar.
	WeightedScores map[Pillar]float64 `json:"weighted_scores"`
}

// RecommendationTemplate is an authored fix template keyed by metric name.
// Templates are reference data and are never mutated: personalization
// always works on a copy.
//
// Design decision: The template's Gain is the metric's base point value,
// while Recommendation.Gain is the page-type-adjusted priority. Keeping
// the two on separate types prevents the adjusted value from leaking back
// into shared reference data.
type RecommendationTemplate struct {
	// Why explains the cost of leaving the check failing.
	Why string `json:"why"`

	// Fix describes the concrete change to make.
	Fix string `json:"fix"`

	// Gain is the base point value recoverable by fixing the check.
	Gain float64 `json:"gain"`

	// Example is an optional before/after illustration.
	Example string `json:"example,omitempty"`
}

// Recommendation is a per-request resolution of a template: cloned,
// personalized for the page, and re-prioritized for the page type.
type Recommendation struct {
	// Metric is the failing check this recommendation addresses.
	Metric string `json:"metric"`

	// Why explains the cost of the failing check, possibly personalized.
	Why string `json:"why"`

	// Fix describes the concrete change, possibly with page-type guidance.
	Fix string `json:"fix"`

	// Gain is the adjusted priority value (base gain times the page-type
	// multiplier), not the template's original points.
	Gain float64 `json:"gain"`

	// Pillar is the pillar the metric belongs to.
	Pillar Pillar `json:"pillar"`

	// Example is a before/after illustration, regenerated from extracted
	// content when possible.
	Example string `json:"example,omitempty"`
}

// ScoringResult is the complete assessment for one page.
// It is constructed fresh per request, never persisted, and has no
// identity beyond the call that produced it.
type ScoringResult struct {
	// Total is the overall score at the reported stage (raw or weighted).
	Total float64 `json:"total"`

	// Breakdown holds one entry per pillar in canonical order.
	Breakdown []PillarBreakdown `json:"breakdown"`

	// PillarScores maps each pillar to its earned points at the reported
	// stage. Redundant with Breakdown but cheap and convenient for
	// consumers that only need the five numbers.
	PillarScores map[Pillar]float64 `json:"pillar_scores"`

	// Recommendations is the ranked fix list, descending by Gain.
	Recommendations []Recommendation `json:"recommendations"`

	// DynamicScoring is present when the reweighting pass ran.
	DynamicScoring *DynamicScoring `json:"dynamic_scoring,omitempty"`
}

// AuditArtifacts carries optional extra detail captured by the pillar
// auditors, passed explicitly from the auditor call site to the
// recommendation generator.
//
// Design decision: The system this replaces shared these values through
// mutable module-scoped state, which is last-writer-wins under concurrent
// analysis of different URLs. An explicit parameter keeps each analysis
// self-contained.
type AuditArtifacts struct {
	// CapturedExamples maps metric names to before/after examples built by
	// the auditors from the live page (for example, the actual title tag
	// rewritten as a listicle). Used only when no ExtractedContent is
	// available for full personalization.
	CapturedExamples map[string]string `json:"captured_examples,omitempty"`
}

// Analysis is the carrier value the pipeline steps populate while
// analyzing a single page. It plays the role the scan report plays in a
// crawler: each step reads what earlier steps produced and fills in its
// own section.
type Analysis struct {
	// URL is the source URL of the page, when known.
	URL string `json:"url,omitempty"`

	// HTML is the raw fetched page markup. Input only; report writers
	// never serialize it.
	HTML string `json:"-"`

	// AnalyzedAt is when the analysis started.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// PillarResults is the externally supplied auditor output.
	PillarResults PillarResults `json:"pillar_results,omitempty"`

	// Artifacts is optional auditor-captured detail.
	Artifacts *AuditArtifacts `json:"-"`

	// ErrorPage is true when the page was flagged as non-content.
	ErrorPage bool `json:"error_page,omitempty"`

	// Content is the extracted content model, nil until extraction runs.
	Content *ExtractedContent `json:"content,omitempty"`

	// Result is the scoring result, nil until scoring runs.
	Result *ScoringResult `json:"result,omitempty"`

	// Steps records which pipeline steps ran, in order.
	Steps []string `json:"steps,omitempty"`

	// Error holds the first step error when the pipeline continues past
	// failures.
	Error string `json:"error,omitempty"`
}

// NewAnalysis creates an Analysis for a single page.
func NewAnalysis(url, html string, pillarResults PillarResults) *Analysis {
	return &Analysis{
		URL:           url,
		HTML:          html,
		AnalyzedAt:    time.Now(),
		PillarResults: pillarResults,
		Steps:         make([]string, 0),
	}
}
