package recommend

import (
	"log/slog"
	"sort"

	"github.com/aiready/aiready/internal/model"
)

// Generator turns failing checks into a ranked, personalized fix list.
// A Generator carries only configuration and is safe for concurrent use.
type Generator struct {
	// configs is the per-page-type tuning table.
	configs map[model.PageType]pageTypeConfig

	// logger receives debug records for degraded personalization.
	logger *slog.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// Tuning overrides the priority and skip lists for one page type.
// Custom messages and contextual guidance stay built-in.
type Tuning struct {
	// Priority ranks the metrics to boost, highest first.
	Priority []string

	// Skip lists metrics never recommended for the page type.
	Skip []string
}

// WithTuning applies per-page-type priority and skip overrides.
func WithTuning(overrides map[model.PageType]Tuning) GeneratorOption {
	return func(g *Generator) {
		for pageType, tuning := range overrides {
			cfg := g.configs[pageType]
			if tuning.Priority != nil {
				cfg.priority = tuning.Priority
			}
			if tuning.Skip != nil {
				cfg.skip = tuning.Skip
			}
			g.configs[pageType] = cfg
		}
	}
}

// WithLogger sets a custom logger for the generator.
func WithLogger(logger *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator creates a Generator with the given options.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		configs: make(map[model.PageType]pageTypeConfig, len(pageTypeConfigs)),
	}
	for pageType, cfg := range pageTypeConfigs {
		g.configs[pageType] = cfg
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}

// Generate produces one recommendation per failing, non-skipped check,
// ranked descending by page-type-adjusted gain. Ties keep pillar order,
// then the pillar's metric declaration order.
//
// content personalizes the output and selects the page-type tuning; when
// it is nil, artifacts may still supply auditor-captured examples. Both
// may be nil, which yields static template output for a general page.
func (g *Generator) Generate(results model.PillarResults, content *model.ExtractedContent, artifacts *model.AuditArtifacts) []model.Recommendation {
	pageType := model.PageTypeGeneral
	if content != nil && content.PageType != "" {
		pageType = content.PageType
	}
	cfg := g.configs[pageType]

	recs := make([]model.Recommendation, 0)
	for _, pillar := range model.Pillars() {
		checks := results[pillar]
		for _, metric := range orderedMetrics(pillar, checks) {
			if cfg.skips(metric) {
				continue
			}
			if checks[metric] >= model.MaxScoreForMetric(metric) {
				continue
			}

			tmpl, ok := TemplateFor(metric)
			if !ok {
				g.logger.Debug("failing check has no template", "metric", metric, "pillar", pillar)
				continue
			}

			rec := model.Recommendation{
				Metric:  metric,
				Why:     tmpl.Why,
				Fix:     tmpl.Fix,
				Pillar:  pillar,
				Example: tmpl.Example,
			}
			if msg, ok := cfg.customWhy[metric]; ok {
				rec.Why = msg + " " + tmpl.Why
			}

			switch {
			case content != nil:
				g.personalize(&rec, cfg, content)
			case artifacts != nil:
				if example, ok := artifacts.CapturedExamples[metric]; ok && example != "" {
					rec.Example = example
				}
			}

			rec.Gain = tmpl.Gain * cfg.multiplier(metric)
			recs = append(recs, rec)
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Gain > recs[j].Gain
	})
	return recs
}

// orderedMetrics returns the metrics present in checks: the pillar's
// canonical metrics first in declaration order, then any extra metrics the
// auditors emitted, alphabetically.
func orderedMetrics(pillar model.Pillar, checks map[string]float64) []string {
	if len(checks) == 0 {
		return nil
	}

	ordered := make([]string, 0, len(checks))
	seen := make(map[string]bool, len(checks))
	for _, metric := range model.PillarMetrics(pillar) {
		if _, ok := checks[metric]; ok {
			ordered = append(ordered, metric)
			seen[metric] = true
		}
	}

	extras := make([]string, 0)
	for metric := range checks {
		if !seen[metric] {
			extras = append(extras, metric)
		}
	}
	sort.Strings(extras)
	return append(ordered, extras...)
}
