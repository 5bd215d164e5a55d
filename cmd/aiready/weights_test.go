package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestWeightsCmd tests the built-in profile table output.
func TestWeightsCmd(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "", "weights")
	if err != nil {
		t.Fatalf("got %v, expected no error", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		t.Fatalf("got %d lines, expected a header and profile rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "PAGE TYPE") {
		t.Errorf("got %q, expected the header row first", lines[0])
	}
	if !strings.HasPrefix(lines[1], "default") {
		t.Errorf("got %q, expected the default profile first", lines[1])
	}

	for _, want := range []string{"RETRIEVAL", "RECENCY", "homepage", "search", "documentation"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

// TestWeightsCmdWithConfig tests that config file profiles appear.
func TestWeightsCmdWithConfig(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "aiready.yaml")
	content := `profiles:
  homepage:
    RETRIEVAL: 42
    FACT_DENSITY: 18
    STRUCTURE: 20
    TRUST: 10
    RECENCY: 10
`
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	out, err := runCommand(t, "", "weights", "-c", configPath)
	if err != nil {
		t.Fatalf("got %v, expected no error", err)
	}
	if !strings.Contains(out, "42") {
		t.Error("expected the overridden retrieval weight in the table")
	}
}

// TestWeightsCmdErrors tests the error paths.
func TestWeightsCmdErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing explicit config", func(t *testing.T) {
		t.Parallel()

		_, err := runCommand(t, "", "weights", "-c", "/nonexistent/config.yaml")
		if err == nil || !strings.Contains(err.Error(), "configuration file not found") {
			t.Errorf("got %v, expected a missing config error", err)
		}
	})

	t.Run("invalid profile", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "aiready.yaml")
		content := `profiles:
  homepage:
    RETRIEVAL: 99
    FACT_DENSITY: 18
    STRUCTURE: 20
    TRUST: 10
    RECENCY: 10
`
		if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
			t.Fatalf("write failed: %v", err)
		}

		_, err := runCommand(t, "", "weights", "-c", configPath)
		if err == nil || !strings.Contains(err.Error(), "invalid weight profile") {
			t.Errorf("got %v, expected an invalid profile error", err)
		}
	})
}
