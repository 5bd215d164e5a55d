package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/aiready/aiready/internal/model"
)

// TextWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type TextWriter struct {
	baseWriter

	// showEmpty controls whether sections with no content are shown.
	showEmpty bool

	// verbose enables additional detail in the output.
	verbose bool
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) TextWriterOption {
	return func(w *TextWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) TextWriterOption {
	return func(w *TextWriter) {
		w.verbose = verbose
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter: newBaseWriter(output),
		showEmpty:  false,
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the full analysis in human-readable format.
func (w *TextWriter) Write(analysis *model.Analysis) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, analysis)

	if analysis.Result != nil {
		w.writeScore(&sb, analysis.Result)
		w.writeDynamicScoring(&sb, analysis.Result.DynamicScoring)
		w.writeRecommendations(&sb, analysis.Result.Recommendations)
	} else {
		sb.WriteString("No scoring result available.\n\n")
	}

	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// WriteResult outputs only the scoring result in human-readable format.
func (w *TextWriter) WriteResult(result *model.ScoringResult) (int, error) {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                   AI SEARCH READINESS REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	w.writeScore(&sb, result)
	w.writeDynamicScoring(&sb, result.DynamicScoring)
	w.writeRecommendations(&sb, result.Recommendations)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with page information.
func (w *TextWriter) writeHeader(sb *strings.Builder, analysis *model.Analysis) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                   AI SEARCH READINESS REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	url := analysis.URL
	if url == "" {
		url = "(not provided)"
	}
	sb.WriteString(fmt.Sprintf("URL:           %s\n", url))
	sb.WriteString(fmt.Sprintf("Analyzed:      %s\n", analysis.AnalyzedAt.Format("2006-01-02 15:04:05 MST")))

	if analysis.Content != nil {
		sb.WriteString(fmt.Sprintf("Page Type:     %s\n", analysis.Content.PageType))
		sb.WriteString(fmt.Sprintf("Business Type: %s\n", analysis.Content.BusinessType))
	}

	switch {
	case analysis.Error != "":
		sb.WriteString(fmt.Sprintf("Status:        ERROR - %s\n", analysis.Error))
	case analysis.ErrorPage:
		sb.WriteString("Status:        Error page (defaults applied)\n")
	default:
		sb.WriteString("Status:        Complete\n")
	}

	sb.WriteString("\n")
}

// writeScore writes the overall score and per-pillar breakdown.
func (w *TextWriter) writeScore(sb *strings.Builder, result *model.ScoringResult) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SCORE\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  TOTAL: %s / 100  (%s)\n\n", formatPoints(result.Total), gradeFor(result.Total)))

	for _, b := range result.Breakdown {
		sb.WriteString(fmt.Sprintf("  %-14s %6s / %-6s (%d checks)\n",
			string(b.Pillar)+":", formatPoints(b.Earned), formatPoints(b.Max), b.Checks))
	}
	sb.WriteString("\n")
}

// writeDynamicScoring writes the reweighting detail when present.
func (w *TextWriter) writeDynamicScoring(sb *strings.Builder, ds *model.DynamicScoring) {
	if ds == nil || !ds.AppliedWeights {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("DYNAMIC SCORING\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  Weights applied for page type: %s\n\n", ds.PageType))

	if w.verbose {
		for _, pillar := range model.Pillars() {
			sb.WriteString(fmt.Sprintf("  %-14s weight %-6s raw %-6s weighted %s\n",
				string(pillar)+":",
				formatPoints(ds.Weights[pillar]),
				formatPoints(ds.RawScores[pillar]),
				formatPoints(ds.WeightedScores[pillar])))
		}
		sb.WriteString("\n")
	}
}

// writeRecommendations writes the ranked fix list.
func (w *TextWriter) writeRecommendations(sb *strings.Builder, recs []model.Recommendation) {
	if len(recs) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("RECOMMENDATIONS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(recs) == 0 {
		sb.WriteString("  No recommendations. Every audited check passed.\n\n")
		return
	}

	for i, rec := range recs {
		sb.WriteString(fmt.Sprintf("  %d. %s (%s, priority %s)\n",
			i+1, rec.Metric, rec.Pillar, formatPoints(rec.Gain)))
		sb.WriteString(fmt.Sprintf("     Why: %s\n", rec.Why))
		sb.WriteString(fmt.Sprintf("     Fix: %s\n", rec.Fix))
		if w.verbose && rec.Example != "" {
			for _, line := range strings.Split(rec.Example, "\n") {
				sb.WriteString(fmt.Sprintf("     | %s\n", line))
			}
		}
		sb.WriteString("\n")
	}
}

// writeFooter writes the report footer.
func (w *TextWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by aiready\n")
	sb.WriteString("https://github.com/aiready/aiready\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
