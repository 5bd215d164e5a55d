// Package log provides content-aware logging functionality built on top of
// the standard slog package.
//
// This package extends slog to provide:
//   - Automatic truncation of raw page content in log attributes
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Content Truncation
//
// The ContentHandler keeps log lines readable when attributes carry page
// markup:
//   - Attributes under content-carrying keys (html, body, markup, snippet)
//   - Values that start like an HTML document or fragment
//   - Any string value longer than MaxAttrLen
//
// Truncated values are annotated with their original byte size so log
// readers can tell how much was cut. Attributes under auth-related keys
// (authorization, cookie, token) are masked entirely.
//
// # Usage
//
//	// Create a content-aware logger
//	logger := log.NewContentLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Debug("page fetched",
//	    "url", "https://example.com/",
//	    "html", rawHTML, // Truncated to MaxAttrLen
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
