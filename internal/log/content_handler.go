package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// bulkyKeys contains attribute keys whose values carry raw page content.
// Logging a full HTML document as a single attribute makes log lines
// unreadable and can balloon log storage, so these values are always
// truncated.
var bulkyKeys = map[string]bool{
	"html":     true,
	"body":     true,
	"markup":   true,
	"raw":      true,
	"raw_html": true,
	"content":  true,
	"snippet":  true,
	"sample":   true,
}

// sensitiveKeys contains attribute keys whose values are never logged.
// Analyzed pages may arrive with auth material attached by the caller.
var sensitiveKeys = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"password":      true,
	"token":         true,
	"api_key":       true,
	"apikey":        true,
	"secret":        true,
}

// MaskValue is the string used to replace sensitive values.
const MaskValue = "***REDACTED***"

// MaxAttrLen is the longest string attribute value passed through
// untruncated. Values beyond this are cut and annotated with their
// original size.
const MaxAttrLen = 256

// ContentHandler wraps an slog.Handler to keep log lines readable when
// attributes carry page content. It truncates oversized string values and
// values that look like raw HTML, and masks auth material, before passing
// the record on.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Callers keep passing *slog.Logger around as usual
type ContentHandler struct {
	// handler is the underlying slog handler that receives trimmed records.
	handler slog.Handler
}

// NewContentHandler creates a new ContentHandler wrapping the given handler.
// All string attributes are trimmed before being passed to the underlying
// handler. If handler is nil, the returned ContentHandler will use
// slog.Default().Handler().
func NewContentHandler(handler slog.Handler) *ContentHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &ContentHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *ContentHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle trims the record's attributes and passes it to the underlying handler.
func (h *ContentHandler) Handle(ctx context.Context, r slog.Record) error {
	trimmed := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		trimmed.AddAttrs(h.trimAttr(a))
		return true
	})

	return h.handler.Handle(ctx, trimmed)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are trimmed before being added.
func (h *ContentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	trimmedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		trimmedAttrs[i] = h.trimAttr(a)
	}
	return &ContentHandler{handler: h.handler.WithAttrs(trimmedAttrs)}
}

// WithGroup returns a new handler with the given group name.
func (h *ContentHandler) WithGroup(name string) slog.Handler {
	return &ContentHandler{handler: h.handler.WithGroup(name)}
}

// trimAttr trims a single attribute, recursively handling groups.
func (h *ContentHandler) trimAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		trimmedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			trimmedAttrs[i] = h.trimAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(trimmedAttrs...)}
	}

	keyLower := strings.ToLower(a.Key)
	if sensitiveKeys[keyLower] {
		return slog.String(a.Key, MaskValue)
	}

	if a.Value.Kind() != slog.KindString {
		return a
	}

	strVal := a.Value.String()
	if bulkyKeys[keyLower] || looksLikeMarkup(strVal) {
		return slog.String(a.Key, truncate(strVal))
	}
	if len(strVal) > MaxAttrLen {
		return slog.String(a.Key, truncate(strVal))
	}

	return a
}

// looksLikeMarkup reports whether a value starts like an HTML document or
// fragment. Attributes carrying markup get truncated regardless of key.
func looksLikeMarkup(value string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	return strings.HasPrefix(trimmed, "<!doctype") ||
		strings.HasPrefix(trimmed, "<html") ||
		strings.HasPrefix(trimmed, "<body") ||
		strings.HasPrefix(trimmed, "<main")
}

// truncate cuts a value to MaxAttrLen and annotates the original size.
// Values already within the limit are returned unchanged.
func truncate(value string) string {
	if len(value) <= MaxAttrLen {
		return value
	}
	return fmt.Sprintf("%s...(truncated, %d bytes)", value[:MaxAttrLen], len(value))
}

// NewContentLogger creates a new slog.Logger with content-aware handling.
// The logger truncates raw page content in all log output.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
//
// Returns a *slog.Logger that can be used with slog.SetDefault() or passed
// to components that accept *slog.Logger.
func NewContentLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	textHandler := slog.NewTextHandler(w, opts)
	contentHandler := NewContentHandler(textHandler)

	return slog.New(contentHandler)
}

// NewContentJSONLogger creates a new slog.Logger with content-aware
// handling that outputs JSON format. Useful for structured log aggregation.
//
// Parameters:
//   - w: The io.Writer to write log output to
//   - verbose: If true, sets log level to Debug; otherwise Warn
//
// Returns a *slog.Logger configured for JSON output with truncation.
func NewContentJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	jsonHandler := slog.NewJSONHandler(w, opts)
	contentHandler := NewContentHandler(jsonHandler)

	return slog.New(contentHandler)
}
