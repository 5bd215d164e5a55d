package pipeline

import (
	"context"
	"log/slog"

	"github.com/aiready/aiready/internal/classify"
	"github.com/aiready/aiready/internal/extract"
	"github.com/aiready/aiready/internal/model"
	"github.com/aiready/aiready/internal/recommend"
	"github.com/aiready/aiready/internal/score"
)

// ClassifyStep flags non-content pages before the heavier steps run.
//
// Design decision: Error-page detection is a separate step rather than a
// side effect of extraction because batch callers want the flag on the
// analysis even when they skip extraction entirely.
type ClassifyStep struct {
	// logger for structured logging.
	logger *slog.Logger
}

// ClassifyStepOption configures a ClassifyStep.
type ClassifyStepOption func(*ClassifyStep)

// WithClassifyLogger sets a custom logger for the classify step.
func WithClassifyLogger(logger *slog.Logger) ClassifyStepOption {
	return func(s *ClassifyStep) {
		s.logger = logger
	}
}

// NewClassifyStep creates a new classification step.
func NewClassifyStep(opts ...ClassifyStepOption) *ClassifyStep {
	s := &ClassifyStep{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *ClassifyStep) Name() string {
	return "classify"
}

// Do executes the classification step.
func (s *ClassifyStep) Do(_ context.Context, analysis *model.Analysis) error {
	signals := classify.CollectSignals(analysis.HTML, analysis.URL)
	analysis.ErrorPage = classify.IsErrorPage(signals)
	if analysis.ErrorPage {
		s.logger.Info("page flagged as non-content", "url", analysis.URL)
	}
	return nil
}

// ExtractStep produces the typed content model from the raw page HTML.
type ExtractStep struct {
	// extractor performs the content extraction.
	extractor *extract.Extractor

	// logger for structured logging.
	logger *slog.Logger
}

// ExtractStepOption configures an ExtractStep.
type ExtractStepOption func(*ExtractStep)

// WithExtractor sets a custom extractor for the step.
func WithExtractor(e *extract.Extractor) ExtractStepOption {
	return func(s *ExtractStep) {
		if e != nil {
			s.extractor = e
		}
	}
}

// WithExtractLogger sets a custom logger for the extract step.
func WithExtractLogger(logger *slog.Logger) ExtractStepOption {
	return func(s *ExtractStep) {
		s.logger = logger
	}
}

// NewExtractStep creates a new extraction step.
func NewExtractStep(opts ...ExtractStepOption) *ExtractStep {
	s := &ExtractStep{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.extractor == nil {
		s.extractor = extract.New(extract.WithLogger(s.logger))
	}
	return s
}

// Name returns the step name.
func (s *ExtractStep) Name() string {
	return "extract"
}

// Do executes the extraction step. Extraction never fails: an unusable
// page yields the fully-defaulted content model.
func (s *ExtractStep) Do(_ context.Context, analysis *model.Analysis) error {
	analysis.Content = s.extractor.Extract(analysis.HTML, analysis.URL)
	s.logger.Debug("content extracted",
		"url", analysis.URL,
		"pageType", analysis.Content.PageType,
		"businessType", analysis.Content.BusinessType,
	)
	return nil
}

// ScoreStep aggregates the auditor results into the scoring result,
// including the ranked recommendation list.
type ScoreStep struct {
	// scorer performs scoring and recommendation generation.
	scorer *score.Scorer

	// logger for structured logging.
	logger *slog.Logger
}

// ScoreStepOption configures a ScoreStep.
type ScoreStepOption func(*ScoreStep)

// WithScorer sets a custom scorer for the step.
func WithScorer(sc *score.Scorer) ScoreStepOption {
	return func(s *ScoreStep) {
		if sc != nil {
			s.scorer = sc
		}
	}
}

// WithScoreLogger sets a custom logger for the score step.
func WithScoreLogger(logger *slog.Logger) ScoreStepOption {
	return func(s *ScoreStep) {
		s.logger = logger
	}
}

// NewScoreStep creates a new scoring step.
func NewScoreStep(opts ...ScoreStepOption) *ScoreStep {
	s := &ScoreStep{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.scorer == nil {
		s.scorer = score.New(score.WithLogger(s.logger))
	}
	return s
}

// Name returns the step name.
func (s *ScoreStep) Name() string {
	return "score"
}

// Do executes the scoring step.
func (s *ScoreStep) Do(_ context.Context, analysis *model.Analysis) error {
	analysis.Result = s.scorer.Score(analysis.PillarResults, analysis.Content, analysis.Artifacts)
	s.logger.Info("page scored",
		"url", analysis.URL,
		"total", analysis.Result.Total,
		"recommendations", len(analysis.Result.Recommendations),
	)
	return nil
}

// DefaultPipelineConfig holds configuration for the default pipeline.
type DefaultPipelineConfig struct {
	// DynamicScoring enables the page-type reweighting pass.
	DynamicScoring bool

	// MaxHTML overrides the extractor's HTML truncation cap when positive.
	MaxHTML int

	// Profiles overrides the scoring weight profiles when non-nil.
	Profiles score.ProfileSet

	// Tuning overrides per-page-type recommendation priorities and skips.
	Tuning map[model.PageType]recommend.Tuning

	// Logger is passed through to every step.
	Logger *slog.Logger
}

// DefaultPipelineOption configures a DefaultPipelineConfig.
type DefaultPipelineOption func(*DefaultPipelineConfig)

// WithPipelineDynamicScoring enables or disables dynamic scoring.
func WithPipelineDynamicScoring(enabled bool) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.DynamicScoring = enabled
	}
}

// WithPipelineMaxHTML sets the extractor's HTML truncation cap.
func WithPipelineMaxHTML(n int) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.MaxHTML = n
	}
}

// WithPipelineProfiles sets the scoring weight profiles.
func WithPipelineProfiles(profiles score.ProfileSet) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Profiles = profiles
	}
}

// WithPipelineTuning sets recommendation priority and skip overrides.
func WithPipelineTuning(tuning map[model.PageType]recommend.Tuning) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Tuning = tuning
	}
}

// WithPipelineLogger sets the logger used by every step.
func WithPipelineLogger(logger *slog.Logger) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Logger = logger
	}
}

// DefaultPipeline creates a pipeline with the standard analysis steps.
//
// Design decision: We provide a default pipeline because:
// 1. Most callers want the full classify, extract, score sequence
// 2. Reduces boilerplate in the CLI
// 3. Ensures consistent ordering
//
// The first variadic parameter accepts pipeline options (WithLogger, etc).
// The second accepts pipeline config options (WithPipelineProfiles, etc).
func DefaultPipeline(pipelineOpts []Option, configOpts ...DefaultPipelineOption) *Pipeline {
	p := New(pipelineOpts...)

	cfg := &DefaultPipelineConfig{
		DynamicScoring: true,
	}
	for _, opt := range configOpts {
		opt(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	extractOpts := []extract.Option{
		extract.WithLogger(cfg.Logger),
	}
	if cfg.MaxHTML > 0 {
		extractOpts = append(extractOpts, extract.WithMaxHTML(cfg.MaxHTML))
	}

	generatorOpts := []recommend.GeneratorOption{
		recommend.WithLogger(cfg.Logger),
	}
	if cfg.Tuning != nil {
		generatorOpts = append(generatorOpts, recommend.WithTuning(cfg.Tuning))
	}

	scorerOpts := []score.Option{
		score.WithLogger(cfg.Logger),
		score.WithDynamicScoring(cfg.DynamicScoring),
		score.WithGenerator(recommend.NewGenerator(generatorOpts...)),
	}
	if cfg.Profiles != nil {
		scorerOpts = append(scorerOpts, score.WithProfiles(cfg.Profiles))
	}

	p.AddSteps(
		NewClassifyStep(WithClassifyLogger(cfg.Logger)),
		NewExtractStep(
			WithExtractor(extract.New(extractOpts...)),
			WithExtractLogger(cfg.Logger),
		),
		NewScoreStep(
			WithScorer(score.New(scorerOpts...)),
			WithScoreLogger(cfg.Logger),
		),
	)

	return p
}
