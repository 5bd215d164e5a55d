package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultBatchSize of 10 concurrent analyses balances throughput with
	// resource usage. Analyses are CPU-bound, so values far above the core
	// count buy nothing.
	DefaultBatchSize = 10

	// DefaultMaxHTML is the HTML truncation cap in bytes. The head of a
	// document carries nearly all classification and extraction signal,
	// so larger inputs are truncated rather than rejected.
	DefaultMaxHTML = 100_000

	// AppName is the application name used for XDG directory paths.
	AppName = "aiready"
)

// Config holds all configuration options for aiready.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., ScoringConfig, ReportConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
// If the configuration grows significantly, consider refactoring into sub-structs.
type Config struct {
	// Inputs is the list of HTML files to analyze. A single "-" entry
	// reads the page from stdin.
	Inputs []string

	// URL is the source URL of the analyzed page. Optional, but page type
	// detection is considerably better with it.
	URL string

	// PillarsFile is the path to the auditor results JSON file. When
	// empty, scoring runs against an empty audit and reports zero earned
	// points.
	PillarsFile string

	// DynamicScoring enables page-type weight reweighting.
	DynamicScoring bool

	// MaxHTML is the HTML truncation cap in bytes.
	// A value of 0 means use the default (DefaultMaxHTML).
	MaxHTML int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// BatchSize is the number of concurrent analyses when processing
	// multiple input files.
	BatchSize int

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .aiready in the current directory,
	// the user's home directory, and the XDG config directory.
	ConfigFilePath string

	// Overrides holds profile and tuning overrides loaded from the config
	// file. This is populated by LoadConfigFile and may be nil.
	Overrides *File

	// JSONReport enables JSON report output instead of the terminal
	// summary. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the
	// terminal summary. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero (batch size, HTML cap,
// dynamic scoring on). This also serves as documentation of the defaults.
func NewConfig() *Config {
	return &Config{
		DynamicScoring: true,
		MaxHTML:        DefaultMaxHTML,
		BatchSize:      DefaultBatchSize,
	}
}

// XDGDataDir returns the XDG data directory for aiready.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/aiready
// On macOS: ~/Library/Application Support/aiready
// On Windows: %LOCALAPPDATA%\aiready
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for aiready.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/aiready
// On macOS: ~/Library/Application Support/aiready
// On Windows: %APPDATA%\aiready
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any analysis begins.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return ErrNoInput
	}

	// BatchSize must be positive; zero would mean no analyses run
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	// MaxHTML must be non-negative; 0 means use the default
	if c.MaxHTML < 0 {
		return ErrInvalidMaxHTML
	}

	return nil
}
