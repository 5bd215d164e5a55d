package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. Using errors.New() here rather than fmt.Errorf()
// because we don't need to include dynamic values in these messages.
var (
	// ErrNoInput is returned when no HTML input is specified.
	// This error occurs when neither a file argument nor "-" for stdin is
	// provided.
	ErrNoInput = errors.New("no input specified: provide an HTML file or - for stdin")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// A batch size of zero would mean no concurrent analyses, effectively
	// stopping processing.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidMaxHTML is returned when the HTML cap is negative.
	// A negative cap is invalid; use 0 to use the default limit.
	ErrInvalidMaxHTML = errors.New("invalid max html size: must be non-negative")

	// ErrUnknownPageType is returned when the config file references a page
	// type that does not exist.
	ErrUnknownPageType = errors.New("unknown page type in configuration")

	// ErrUnknownPillar is returned when a weight profile references a
	// pillar that does not exist.
	ErrUnknownPillar = errors.New("unknown pillar in weight profile")
)
