package model

// Pillar identifies one of the five scoring dimensions.
// Each pillar has a fixed point budget; the budgets sum to 100 so the raw
// total reads directly as a percentage.
//
// Design decision: We use string constants rather than iota-based integers
// because pillar names appear as JSON keys in auditor input, report output,
// and YAML profile overrides. A string type keeps those surfaces stable and
// human-readable without a parallel String()/Parse pair.
type Pillar string

const (
	// PillarRetrieval measures whether AI crawlers can fetch and read the
	// page at all: response time, paywalls, main-content accessibility,
	// and HTML payload size.
	PillarRetrieval Pillar = "RETRIEVAL"

	// PillarFactDensity measures how much verifiable, quotable substance
	// the page carries: unique statistics, data markup, citations, and
	// content deduplication.
	PillarFactDensity Pillar = "FACT_DENSITY"

	// PillarStructure measures machine-legible organization: heading
	// frequency and depth, structured data, and feed availability.
	PillarStructure Pillar = "STRUCTURE"

	// PillarTrust measures credibility signals: author bios, consistent
	// business identity, and content licensing.
	PillarTrust Pillar = "TRUST"

	// PillarRecency measures freshness signals: last-modified evidence and
	// stable canonical URLs.
	PillarRecency Pillar = "RECENCY"
)

// Pillars returns all pillars in their canonical declaration order.
// This order is load-bearing: breakdown entries, report sections, and
// recommendation tie-breaking all follow it.
func Pillars() []Pillar {
	return []Pillar{
		PillarRetrieval,
		PillarFactDensity,
		PillarStructure,
		PillarTrust,
		PillarRecency,
	}
}

// pillarBudgets is the fixed point budget for each pillar.
// The values sum to 100. Changing any budget is a breaking change to the
// scoring contract (report consumers assume a 0-100 total).
var pillarBudgets = map[Pillar]float64{
	PillarRetrieval:   30,
	PillarFactDensity: 25,
	PillarStructure:   20,
	PillarTrust:       15,
	PillarRecency:     10,
}

// PillarBudget returns the fixed point budget for a pillar.
// Unknown pillars have a budget of 0.
func PillarBudget(p Pillar) float64 {
	return pillarBudgets[p]
}

// DefaultMetricMax is the maximum score for metrics not listed in the
// per-metric max table. Auditors introducing a new check without a table
// entry get this ceiling.
const DefaultMetricMax = 5

// metricMaxScores is the per-metric maximum score table.
// A metric scoring strictly below its maximum is considered failed or
// partial and becomes a recommendation candidate.
//
// Design decision: We keep a single flat table rather than nesting maxima
// under each pillar because recommendation generation looks up maxima by
// metric name alone, and auditors may emit auxiliary metrics (for example
// listicleFormat) that have templates but no reserved slice of a pillar
// budget.
var metricMaxScores = map[string]float64{
	// RETRIEVAL
	"ttfb":        10,
	"paywall":     5,
	"mainContent": 10,
	"htmlSize":    5,

	// FACT_DENSITY
	"uniqueStats":   10,
	"dataMarkup":    5,
	"citations":     5,
	"deduplication": 5,

	// STRUCTURE
	"headingFrequency": 5,
	"headingDepth":     5,
	"structuredData":   5,
	"rssFeed":          5,

	// TRUST
	"authorBio":      5,
	"napConsistency": 5,
	"license":        5,

	// RECENCY
	"lastModified":    5,
	"stableCanonical": 5,

	// Auxiliary checks. These carry templates and may appear in auditor
	// output, but no pillar budget slice is reserved for them.
	"listicleFormat":    10,
	"semanticUrl":       5,
	"directAnswers":     5,
	"comparisonContent": 5,
	"llmsTxt":           5,
	"questionHeadings":  5,
}

// MaxScoreForMetric returns the maximum achievable score for a metric.
// Metrics absent from the table default to DefaultMetricMax.
func MaxScoreForMetric(metric string) float64 {
	if maxScore, ok := metricMaxScores[metric]; ok {
		return maxScore
	}
	return DefaultMetricMax
}

// pillarMetrics lists the canonical checks of each pillar in declaration
// order. Recommendation iteration follows this order so that equal-gain
// recommendations rank deterministically.
var pillarMetrics = map[Pillar][]string{
	PillarRetrieval:   {"ttfb", "paywall", "mainContent", "htmlSize"},
	PillarFactDensity: {"uniqueStats", "dataMarkup", "citations", "deduplication"},
	PillarStructure:   {"headingFrequency", "headingDepth", "structuredData", "rssFeed"},
	PillarTrust:       {"authorBio", "napConsistency", "license"},
	PillarRecency:     {"lastModified", "stableCanonical"},
}

// PillarMetrics returns the canonical checks of a pillar in declaration
// order. The returned slice is a copy; callers may reorder it freely.
func PillarMetrics(p Pillar) []string {
	metrics := pillarMetrics[p]
	out := make([]string, len(metrics))
	copy(out, metrics)
	return out
}
