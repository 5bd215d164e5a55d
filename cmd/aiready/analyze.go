package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aiready/aiready/internal/config"
	"github.com/aiready/aiready/internal/log"
	"github.com/aiready/aiready/internal/model"
	"github.com/aiready/aiready/internal/pipeline"
	"github.com/aiready/aiready/internal/report"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [html-file...]",
		Short: "Score pages for AI search readiness",
		Long: `Analyze scores web pages for AI search readiness.

Each input is an HTML file, or - to read a single page from stdin.
Pillar auditor results are supplied as a JSON file via --pillars; checks
absent from the file score zero and become recommendations.

Examples:
  # Analyze a single page with auditor results
  aiready analyze page.html --pillars results.json

  # Read the page from stdin and name its source URL
  aiready analyze - --url https://example.com/pricing < page.html

  # Analyze many pages concurrently
  aiready analyze pages/*.html --pillars results.json --batch 8

  # Output a JSON report to a file
  aiready analyze page.html --pillars results.json --json -o report.json

  # Score on fixed pillar budgets without page-type weights
  aiready analyze page.html --pillars results.json --no-dynamic

Configuration file (.aiready) example:
  profiles:
    homepage:
      RETRIEVAL: 30
      FACT_DENSITY: 15
      STRUCTURE: 25
      TRUST: 20
      RECENCY: 10
  pageTypes:
    blog:
      priority:
        - citations
        - lastModified
      skip:
        - napConsistency`,
		Args: cobra.ArbitraryArgs,
		RunE: runAnalyzeCmd,
	}

	// Input flags
	cmd.Flags().StringP("url", "u", "",
		"Source URL of the page (used for classification and reports)")
	cmd.Flags().StringP("pillars", "p", "",
		"Path to pillar auditor results JSON")

	// Scoring flags
	cmd.Flags().Bool("no-dynamic", false,
		"Disable page-type weight profiles and score on fixed pillar budgets")
	cmd.Flags().Int("max-html", config.DefaultMaxHTML,
		"Maximum HTML bytes analyzed per page (0 for the default)")

	// Batch flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent analyses")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .aiready in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	verbose := getVerboseFlag(cmd)
	logger := log.NewContentLogger(cmd.ErrOrStderr(), verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runAnalyze(ctx, cmd, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Inputs = args

	var err error

	cfg.URL, err = cmd.Flags().GetString("url")
	if err != nil {
		return nil, err
	}

	cfg.PillarsFile, err = cmd.Flags().GetString("pillars")
	if err != nil {
		return nil, err
	}

	noDynamic, err := cmd.Flags().GetBool("no-dynamic")
	if err != nil {
		return nil, err
	}
	cfg.DynamicScoring = !noDynamic

	cfg.MaxHTML, err = cmd.Flags().GetInt("max-html")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load profile and tuning overrides from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use empty overrides if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.Overrides, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.Overrides = &config.File{}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// runAnalyze executes the analysis.
func runAnalyze(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	pillarResults, err := loadPillarResults(cfg.PillarsFile)
	if err != nil {
		return err
	}

	analyses, err := loadAnalyses(cmd.InOrStdin(), cfg, pillarResults)
	if err != nil {
		return err
	}

	logger.Info("starting analysis",
		"pages", len(analyses),
		"batchSize", cfg.BatchSize,
		"dynamicScoring", cfg.DynamicScoring,
	)

	pipelineFactory, err := newPipelineFactory(cfg, logger)
	if err != nil {
		return err
	}

	if err := prepareReportFile(cfg.ReportFile); err != nil {
		return err
	}

	if len(analyses) > 1 && cfg.BatchSize > 1 {
		return runBatchAnalyze(ctx, cmd, cfg, pipelineFactory, analyses, logger)
	}
	return runSequentialAnalyze(ctx, cmd, cfg, pipelineFactory(), analyses, logger)
}

// runSequentialAnalyze analyzes pages one at a time.
func runSequentialAnalyze(ctx context.Context, cmd *cobra.Command, cfg *config.Config, p *pipeline.Pipeline, analyses []*model.Analysis, logger *slog.Logger) error {
	for _, analysis := range analyses {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		startTime := time.Now()
		if err := p.Execute(ctx, analysis); err != nil {
			logger.Error("analysis failed", "url", analysis.URL, "error", err)
			fmt.Fprintf(cmd.ErrOrStderr(), "Analysis error for %s: %v\n", analysis.URL, err)
			continue
		}
		logger.Debug("analysis completed",
			"url", analysis.URL,
			"elapsed", time.Since(startTime).Round(time.Millisecond),
		)

		if err := outputReport(cmd, cfg, analysis); err != nil {
			logger.Error("report failed", "url", analysis.URL, "error", err)
		}
	}

	return nil
}

// runBatchAnalyze analyzes multiple pages concurrently using BatchProcessor.
func runBatchAnalyze(ctx context.Context, cmd *cobra.Command, cfg *config.Config, factory func() *pipeline.Pipeline, analyses []*model.Analysis, logger *slog.Logger) error {
	startTime := time.Now()

	bp := pipeline.NewBatchProcessor(
		factory,
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	// Process with callback for streaming output
	var mu sync.Mutex
	err := bp.ProcessBatchWithCallback(ctx, analyses, func(analysis *model.Analysis, _ int) {
		mu.Lock()
		defer mu.Unlock()

		if err := outputReport(cmd, cfg, analysis); err != nil {
			logger.Error("report failed", "url", analysis.URL, "error", err)
		}
	})

	logger.Info("batch analysis completed",
		"pages", len(analyses),
		"elapsed", time.Since(startTime).Round(time.Millisecond),
	)

	return err
}

// newPipelineFactory builds a pipeline constructor from the configuration.
// Batch processing creates one pipeline per worker from the same factory.
func newPipelineFactory(cfg *config.Config, logger *slog.Logger) (func() *pipeline.Pipeline, error) {
	profiles, err := cfg.Overrides.ProfileSet()
	if err != nil {
		return nil, err
	}
	tuning, err := cfg.Overrides.Tuning()
	if err != nil {
		return nil, err
	}

	pipelineOpts := []pipeline.Option{
		pipeline.WithLogger(logger),
		pipeline.WithContinueOnError(true),
	}
	configOpts := []pipeline.DefaultPipelineOption{
		pipeline.WithPipelineDynamicScoring(cfg.DynamicScoring),
		pipeline.WithPipelineMaxHTML(cfg.MaxHTML),
		pipeline.WithPipelineProfiles(profiles),
		pipeline.WithPipelineLogger(logger),
	}
	if len(tuning) > 0 {
		configOpts = append(configOpts, pipeline.WithPipelineTuning(tuning))
	}

	return func() *pipeline.Pipeline {
		return pipeline.DefaultPipeline(pipelineOpts, configOpts...)
	}, nil
}

// loadAnalyses reads each input into an Analysis carrying the shared
// auditor results. The --url flag names the page source when a single
// input is analyzed; file paths identify the rest.
func loadAnalyses(stdin io.Reader, cfg *config.Config, pillarResults model.PillarResults) ([]*model.Analysis, error) {
	analyses := make([]*model.Analysis, 0, len(cfg.Inputs))
	for _, input := range cfg.Inputs {
		html, err := readInput(stdin, input)
		if err != nil {
			return nil, err
		}

		url := cfg.URL
		if url == "" && input != "-" && len(cfg.Inputs) > 1 {
			url = input
		}
		analyses = append(analyses, model.NewAnalysis(url, html, pillarResults))
	}
	return analyses, nil
}

// readInput reads one HTML input, either a file path or - for stdin.
func readInput(stdin io.Reader, input string) (string, error) {
	if input == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(input) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return "", fmt.Errorf("failed to read input %s: %w", input, err)
	}
	return string(data), nil
}

// loadPillarResults reads auditor output from a JSON file.
// An empty path yields empty results: every check scores zero.
func loadPillarResults(path string) (model.PillarResults, error) {
	if path == "" {
		return model.PillarResults{}, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // User-provided results path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to read pillar results %s: %w", path, err)
	}

	var results model.PillarResults
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to parse pillar results %s: %w", path, err)
	}
	return results, nil
}

// prepareReportFile truncates the report file and creates its directory
// before a run. Per-page writes then append so batch reports share one
// file without clobbering each other.
func prepareReportFile(path string) error {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	return f.Close()
}

// outputReport outputs the analysis report in the requested format.
func outputReport(cmd *cobra.Command, cfg *config.Config, analysis *model.Analysis) error {
	// Determine output destination
	var output io.Writer = cmd.OutOrStdout()
	if cfg.ReportFile != "" {
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) //nolint:gosec // User-provided output path is intentional
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	// JSON output (full analysis wrapped with version metadata)
	if cfg.JSONReport {
		writer := report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
		_, err := writer.Write(analysis)
		return err
	}

	// Markdown output
	if cfg.MarkdownReport {
		writer := report.NewMarkdownWriter(output)
		_, err := writer.Write(analysis)
		return err
	}

	// Human-readable report (default)
	writer := report.NewTextWriter(output)
	_, err := writer.Write(analysis)
	return err
}
