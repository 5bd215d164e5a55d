package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aiready/aiready/internal/model"
)

// BatchProcessor handles concurrent analysis of multiple pages.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Design decision: We use a separate BatchProcessor rather than adding batch
// functionality to Pipeline because:
// 1. It keeps the Pipeline focused on single-page execution
// 2. It allows different batch strategies (e.g., rate limiting, retries)
// 3. It provides cleaner separation of concerns
type BatchProcessor struct {
	// pipelineFactory creates a new pipeline for each analysis.
	// We use a factory to ensure each analysis gets a fresh pipeline
	// instance.
	pipelineFactory func() *Pipeline

	// concurrency is the maximum number of concurrent analyses.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// mu guards the shared results slice.
	mu sync.Mutex
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent analyses.
// Default is 10 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
//
// The pipelineFactory function is called for each analysis to create a
// fresh pipeline instance. This ensures that pipeline state doesn't leak
// between analyses and allows for per-page customization if needed.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     10,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch analyzes multiple pages concurrently.
// It respects the configured concurrency limit and context cancellation.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
// Each page gets its own goroutine, but only 'concurrency' goroutines
// run simultaneously.
//
// Every input analysis is populated in place and returned in input order,
// including pages whose pipeline failed; the failure is recorded on the
// analysis itself. The error return indicates cancellation.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, analyses []*model.Analysis) ([]*model.Analysis, error) {
	bp.logger.Info("starting batch analysis",
		"total_pages", len(analyses),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	results := make([]*model.Analysis, len(analyses))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, analysis := range analyses {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			bp.logger.Info("analyzing page",
				"url", analysis.URL,
				"index", i+1,
				"total", len(analyses),
			)

			pipeline := bp.pipelineFactory()
			err := pipeline.Execute(ctx, analysis)

			bp.mu.Lock()
			results[i] = analysis
			bp.mu.Unlock()

			if err != nil {
				bp.logger.Warn("analysis failed",
					"url", analysis.URL,
					"error", err,
				)
				// Keep going: the failure is recorded on the analysis.
				return nil
			}

			bp.logger.Info("analysis completed", "url", analysis.URL)
			return nil
		})
	}

	err := g.Wait()

	bp.logger.Info("batch analysis complete",
		"total_pages", len(analyses),
		"elapsed", time.Since(startTime),
	)

	return results, err
}

// ProcessBatchWithCallback analyzes multiple pages and calls a callback
// for each completed analysis. This is useful for streaming results.
//
// The callback receives the analysis and the index of the page in the
// original slice. The callback is called from the goroutine that completed
// the analysis, so it should be thread-safe if it accesses shared state.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	analyses []*model.Analysis,
	callback func(analysis *model.Analysis, index int),
) error {
	bp.logger.Info("starting batch analysis with callback",
		"total_pages", len(analyses),
		"concurrency", bp.concurrency,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, analysis := range analyses {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			pipeline := bp.pipelineFactory()
			_ = pipeline.Execute(ctx, analysis) //nolint:errcheck // Error is stored in the analysis

			callback(analysis, i)
			return nil
		})
	}

	return g.Wait()
}
