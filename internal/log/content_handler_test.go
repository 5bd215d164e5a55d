package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

// TestContentHandler_TruncatesBulkyKeys tests that content-carrying keys
// are truncated when oversized.
func TestContentHandler_TruncatesBulkyKeys(t *testing.T) {
	t.Parallel()

	longText := strings.Repeat("a", MaxAttrLen+100)

	tests := []struct {
		name         string
		key          string
		value        string
		wantTruncate bool
	}{
		{
			name:         "long html value is truncated",
			key:          "html",
			value:        longText,
			wantTruncate: true,
		},
		{
			name:         "HTML key (uppercase) is truncated",
			key:          "HTML",
			value:        longText,
			wantTruncate: true,
		},
		{
			name:         "body key is truncated",
			key:          "body",
			value:        longText,
			wantTruncate: true,
		},
		{
			name:         "snippet key is truncated",
			key:          "snippet",
			value:        longText,
			wantTruncate: true,
		},
		{
			name:         "short html value passes through",
			key:          "html",
			value:        "<p>short</p>",
			wantTruncate: false,
		},
		{
			name:         "url key is NOT truncated",
			key:          "url",
			value:        "https://example.com/pricing",
			wantTruncate: false,
		},
		{
			name:         "long neutral value is truncated",
			key:          "description",
			value:        longText,
			wantTruncate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewContentHandler(slog.NewTextHandler(&buf, nil)))
			logger.Info("test", tt.key, tt.value)

			out := buf.String()
			if tt.wantTruncate {
				if !strings.Contains(out, "truncated") {
					t.Errorf("expected %q to be truncated, got: %s", tt.key, out)
				}
				if strings.Contains(out, tt.value) {
					t.Error("expected the full value to be absent from output")
				}
			} else {
				if strings.Contains(out, "truncated") {
					t.Errorf("expected %q to pass through, got: %s", tt.key, out)
				}
			}
		})
	}
}

// TestContentHandler_MasksSensitiveKeys tests that auth material is never
// logged.
func TestContentHandler_MasksSensitiveKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		wantMask bool
	}{
		{name: "cookie key is masked", key: "cookie", wantMask: true},
		{name: "Authorization key (mixed case) is masked", key: "Authorization", wantMask: true},
		{name: "token key is masked", key: "token", wantMask: true},
		{name: "url key is NOT masked", key: "url", wantMask: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewContentHandler(slog.NewTextHandler(&buf, nil)))
			logger.Info("test", tt.key, "value-123")

			masked := strings.Contains(buf.String(), MaskValue)
			if masked != tt.wantMask {
				t.Errorf("got masked=%v, expected %v: %s", masked, tt.wantMask, buf.String())
			}
		})
	}
}

// TestContentHandler_DetectsMarkupValues tests truncation of values that
// look like HTML regardless of attribute key.
func TestContentHandler_DetectsMarkupValues(t *testing.T) {
	t.Parallel()

	page := "<!DOCTYPE html><html><body>" + strings.Repeat("x", MaxAttrLen) + "</body></html>"

	var buf bytes.Buffer
	logger := slog.New(NewContentHandler(slog.NewTextHandler(&buf, nil)))
	logger.Info("test", "page_source", page)

	if !strings.Contains(buf.String(), "truncated") {
		t.Errorf("expected markup value to be truncated, got: %s", buf.String())
	}
}

// TestContentHandler_PreservesNonStringAttrs tests that non-string
// attributes pass through unchanged.
func TestContentHandler_PreservesNonStringAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewContentHandler(slog.NewTextHandler(&buf, nil)))
	logger.Info("test", "score", 87.5, "checks", 17, "passed", true)

	out := buf.String()
	for _, want := range []string{"score=87.5", "checks=17", "passed=true"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

// TestContentHandler_TrimsGroups tests recursive trimming inside groups.
func TestContentHandler_TrimsGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewContentHandler(slog.NewTextHandler(&buf, nil)))
	logger.Info("test", slog.Group("page",
		slog.String("url", "https://example.com/"),
		slog.String("html", strings.Repeat("b", MaxAttrLen+50)),
	))

	out := buf.String()
	if !strings.Contains(out, "truncated") {
		t.Errorf("expected grouped html attribute to be truncated, got: %s", out)
	}
	if !strings.Contains(out, "https://example.com/") {
		t.Errorf("expected grouped url attribute to pass through, got: %s", out)
	}
}

// TestContentHandler_WithAttrs tests trimming of pre-bound attributes.
func TestContentHandler_WithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewContentHandler(slog.NewTextHandler(&buf, nil)))
	bound := logger.With("html", strings.Repeat("c", MaxAttrLen+10))
	bound.Info("test")

	if !strings.Contains(buf.String(), "truncated") {
		t.Errorf("expected bound attribute to be truncated, got: %s", buf.String())
	}
}

// TestNewContentLogger tests level configuration.
func TestNewContentLogger(t *testing.T) {
	t.Parallel()

	t.Run("default level suppresses info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewContentLogger(&buf, false)
		logger.Info("should not appear")
		logger.Warn("should appear")

		out := buf.String()
		if strings.Contains(out, "should not appear") {
			t.Error("expected info to be suppressed without verbose")
		}
		if !strings.Contains(out, "should appear") {
			t.Error("expected warn to be emitted")
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewContentLogger(&buf, true)
		logger.Debug("debug line")

		if !strings.Contains(buf.String(), "debug line") {
			t.Error("expected debug to be emitted in verbose mode")
		}
	})
}

// TestNewContentJSONLogger tests that JSON output stays valid after trimming.
func TestNewContentJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewContentJSONLogger(&buf, true)
	logger.Warn("page fetched", "html", strings.Repeat("d", MaxAttrLen*2))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	htmlVal, ok := record["html"].(string)
	if !ok {
		t.Fatal("expected an html attribute in the record")
	}
	if !strings.Contains(htmlVal, "truncated") {
		t.Errorf("got %q, expected a truncated value", htmlVal)
	}
}

// TestTruncate tests the truncation helper directly.
func TestTruncate(t *testing.T) {
	t.Parallel()

	t.Run("short value unchanged", func(t *testing.T) {
		t.Parallel()
		if got := truncate("short"); got != "short" {
			t.Errorf("got %q, expected %q", got, "short")
		}
	})

	t.Run("long value annotated with size", func(t *testing.T) {
		t.Parallel()
		in := strings.Repeat("e", MaxAttrLen*4)
		got := truncate(in)
		if len(got) >= len(in) {
			t.Errorf("got %d bytes, expected a shorter value", len(got))
		}
		if !strings.HasPrefix(got, strings.Repeat("e", MaxAttrLen)) {
			t.Error("expected the first MaxAttrLen bytes to survive")
		}
		if !strings.Contains(got, "1024 bytes") {
			t.Errorf("got %q, expected the original size annotation", got)
		}
	})
}
