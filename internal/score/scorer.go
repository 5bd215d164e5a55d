package score

import (
	"log/slog"
	"math"

	"github.com/aiready/aiready/internal/model"
	"github.com/aiready/aiready/internal/recommend"
)

// Scorer aggregates auditor check scores into pillar and total scores and
// attaches the ranked recommendation list. A Scorer carries only
// configuration and is safe for concurrent use.
type Scorer struct {
	// profiles is the weight profile set for dynamic scoring.
	profiles ProfileSet

	// dynamic enables the page-type reweighting pass.
	dynamic bool

	// generator produces the recommendation list.
	generator *recommend.Generator

	// logger receives debug records for scoring decisions.
	logger *slog.Logger
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithProfiles replaces the built-in weight profile set. The set should be
// validated before use; invalid profiles are the loader's problem, not the
// scorer's.
func WithProfiles(profiles ProfileSet) Option {
	return func(s *Scorer) {
		if profiles != nil {
			s.profiles = profiles
		}
	}
}

// WithDynamicScoring enables or disables the page-type reweighting pass.
func WithDynamicScoring(enabled bool) Option {
	return func(s *Scorer) {
		s.dynamic = enabled
	}
}

// WithGenerator sets a custom recommendation generator.
func WithGenerator(g *recommend.Generator) Option {
	return func(s *Scorer) {
		if g != nil {
			s.generator = g
		}
	}
}

// WithLogger sets a custom logger for the scorer.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scorer) {
		s.logger = logger
	}
}

// New creates a Scorer with the given options. Dynamic scoring is enabled
// by default.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		profiles: defaultProfiles,
		dynamic:  true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.generator == nil {
		s.generator = recommend.NewGenerator()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Score computes the full assessment for one page.
//
// The raw pass sums each pillar's checks against its fixed budget. When
// dynamic scoring is enabled and the page type is known, a second pass
// rescales each pillar to the page type's weight profile, preserving the
// percentage achieved. Recommendations are always generated from the raw
// results: they describe what to fix, not the display scale.
//
// content and artifacts may be nil. Missing pillars or metrics contribute
// zero points and never fail the call.
func (s *Scorer) Score(results model.PillarResults, content *model.ExtractedContent, artifacts *model.AuditArtifacts) *model.ScoringResult {
	pillars := model.Pillars()
	result := &model.ScoringResult{
		Breakdown:    make([]model.PillarBreakdown, 0, len(pillars)),
		PillarScores: make(map[model.Pillar]float64, len(pillars)),
	}

	for _, pillar := range pillars {
		checks := results[pillar]
		earned := 0.0
		for _, v := range checks {
			earned += v
		}
		budget := model.PillarBudget(pillar)
		// Auditor output is trusted but bounded: a pillar can never earn
		// outside its budget.
		if earned < 0 {
			earned = 0
		}
		if earned > budget {
			s.logger.Debug("pillar earned over budget, clamping",
				"pillar", pillar,
				"earned", earned,
				"budget", budget,
			)
			earned = budget
		}
		result.Breakdown = append(result.Breakdown, model.PillarBreakdown{
			Pillar: pillar,
			Earned: earned,
			Max:    budget,
			Checks: len(checks),
		})
	}

	if s.dynamic && content != nil && content.PageType != "" {
		s.reweight(result, content.PageType)
	}

	total := 0.0
	for _, b := range result.Breakdown {
		result.PillarScores[b.Pillar] = b.Earned
		total += b.Earned
	}
	result.Total = total

	result.Recommendations = s.generator.Generate(results, content, artifacts)
	return result
}

// reweight rescales each breakdown entry to the page type's weight
// profile. Raw and weighted score sets are both retained in the result's
// DynamicScoring for transparency.
func (s *Scorer) reweight(result *model.ScoringResult, pageType model.PageType) {
	weights, ok := s.profiles.resolve(pageType)
	if !ok {
		s.logger.Debug("no weight profile available, keeping raw scores", "pageType", pageType)
		return
	}

	ds := &model.DynamicScoring{
		PageType:       pageType,
		AppliedWeights: true,
		Weights:        make(map[model.Pillar]float64, len(result.Breakdown)),
		RawScores:      make(map[model.Pillar]float64, len(result.Breakdown)),
		WeightedScores: make(map[model.Pillar]float64, len(result.Breakdown)),
	}

	for i := range result.Breakdown {
		b := &result.Breakdown[i]
		ds.RawScores[b.Pillar] = b.Earned

		weight := weights[b.Pillar]
		achieved := 0.0
		if b.Max > 0 {
			achieved = b.Earned / b.Max
		}
		b.Earned = math.Floor(achieved*weight + 0.5)
		b.Max = weight

		ds.Weights[b.Pillar] = weight
		ds.WeightedScores[b.Pillar] = b.Earned
	}

	result.DynamicScoring = ds
}
