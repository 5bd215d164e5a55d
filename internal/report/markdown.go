package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/aiready/aiready/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full analysis in Markdown format.
func (w *MarkdownWriter) Write(analysis *model.Analysis) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, analysis)

	if analysis.Result != nil {
		w.writeScore(md, analysis.Result)
		w.writeDynamicScoring(md, analysis.Result.DynamicScoring)
		w.writeRecommendations(md, analysis.Result.Recommendations)
	} else {
		md.PlainText("No scoring result available.")
		md.PlainText("")
	}

	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteResult outputs only the scoring result in Markdown format.
func (w *MarkdownWriter) WriteResult(result *model.ScoringResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("AI Search Readiness Report")
	md.PlainText("")

	w.writeScore(md, result)
	w.writeDynamicScoring(md, result.DynamicScoring)
	w.writeRecommendations(md, result.Recommendations)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with page information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, analysis *model.Analysis) {
	md.H1("AI Search Readiness Report")
	md.PlainText("")

	url := analysis.URL
	if url == "" {
		url = "(not provided)"
	}

	rows := [][]string{
		{"URL", "`" + url + "`"},
		{"Analyzed", analysis.AnalyzedAt.Format("2006-01-02 15:04:05 MST")},
		{"Status", w.getStatusText(analysis)},
	}
	if analysis.Content != nil {
		rows = append(rows,
			[]string{"Page Type", string(analysis.Content.PageType)},
			[]string{"Business Type", string(analysis.Content.BusinessType)},
		)
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// getStatusText returns the status text based on analysis state.
func (w *MarkdownWriter) getStatusText(analysis *model.Analysis) string {
	if analysis.Error != "" {
		return "❌ Error - " + analysis.Error
	}
	if analysis.ErrorPage {
		return "⚠️ Error page (defaults applied)"
	}
	return "✅ Complete"
}

// writeScore writes the overall score and per-pillar breakdown.
func (w *MarkdownWriter) writeScore(md *markdown.Markdown, result *model.ScoringResult) {
	md.H2("Score")
	md.PlainText("")
	md.PlainTextf("**%.0f / 100** - %s", result.Total, gradeFor(result.Total))
	md.PlainText("")

	rows := make([][]string, 0, len(result.Breakdown))
	for _, b := range result.Breakdown {
		rows = append(rows, []string{
			string(b.Pillar),
			formatPoints(b.Earned),
			formatPoints(b.Max),
			strconv.Itoa(b.Checks),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Pillar", "Earned", "Max", "Checks"},
		Rows:   rows,
	})
	md.PlainText("")

	if result.Total > 0 {
		w.writePieChart(md, result)
	}
	w.writeAlert(md, result)
}

// writePieChart writes a mermaid pie chart of earned points per pillar.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, result *model.ScoringResult) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Points Earned by Pillar"),
		piechart.WithShowData(true),
	)

	for _, b := range result.Breakdown {
		if b.Earned > 0 {
			chart.LabelAndIntValue(string(b.Pillar), uint64(b.Earned))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on the score.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, result *model.ScoringResult) {
	switch {
	case result.Total < 50:
		md.Cautionf(
			"This page scores %.0f/100 and is unlikely to surface in AI search answers. Address the top recommendations first.",
			result.Total,
		)
	case result.Total < 75:
		md.Warningf(
			"This page scores %.0f/100. %d recommendation(s) would improve its AI search visibility.",
			result.Total, len(result.Recommendations),
		)
	case len(result.Recommendations) > 0:
		md.Importantf(
			"This page is in good shape. %d remaining recommendation(s) below.",
			len(result.Recommendations),
		)
	default:
		md.Tip("All checks passed. This page is well prepared for AI search.")
	}
	md.PlainText("")
}

// writeDynamicScoring writes the reweighting detail when a page type
// profile was applied.
func (w *MarkdownWriter) writeDynamicScoring(md *markdown.Markdown, ds *model.DynamicScoring) {
	if ds == nil || !ds.AppliedWeights {
		return
	}

	md.H2("Dynamic Scoring")
	md.PlainText("")
	md.PlainTextf("Weights for the `%s` page type were applied.", string(ds.PageType))
	md.PlainText("")

	rows := make([][]string, 0, len(model.Pillars()))
	for _, pillar := range model.Pillars() {
		rows = append(rows, []string{
			string(pillar),
			formatPoints(ds.Weights[pillar]),
			formatPoints(ds.RawScores[pillar]),
			formatPoints(ds.WeightedScores[pillar]),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Pillar", "Weight", "Raw", "Weighted"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeRecommendations writes the ranked fix list.
func (w *MarkdownWriter) writeRecommendations(md *markdown.Markdown, recs []model.Recommendation) {
	md.H2("Recommendations")
	md.PlainText("")

	if len(recs) == 0 {
		md.PlainText("No recommendations. Every audited check passed.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(recs))
	for i, rec := range recs {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			rec.Metric,
			string(rec.Pillar),
			formatPoints(rec.Gain),
			truncateString(rec.Fix, 60),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", "Check", "Pillar", "Priority", "Fix"},
		Rows:   rows,
	})
	md.PlainText("")

	// Full detail per recommendation, collapsible to keep the table scannable
	for _, rec := range recs {
		detail := rec.Why + "\n\n**Fix:** " + rec.Fix
		if rec.Example != "" {
			detail += "\n\n```\n" + rec.Example + "\n```"
		}
		md.Details(rec.Metric, detail)
	}
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [aiready](https://github.com/aiready/aiready)*")
}

// formatPoints renders a point value without a trailing .0 for whole
// numbers, matching how scores read in prose.
func formatPoints(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return fmt.Sprintf("%.1f", v)
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
