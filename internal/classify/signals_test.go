package classify

import (
	"strings"
	"testing"
)

// TestCollectSignals tests signal collection from real HTML.
func TestCollectSignals(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head>
<title>UltraWidget — Widgets for Teams</title>
<script type="application/ld+json">
{"@context":"https://schema.org","@type":"Organization","name":"UltraWidget"}
</script>
</head>
<body>
<nav><a href="/">Home</a><a href="/pricing">Pricing</a></nav>
<main>
<article>
<h1>UltraWidget</h1>
<p>UltraWidget helps teams track widgets. Pricing starts at $10/month.</p>
<span class="price">$10</span>
<button class="add-to-cart">Add to cart</button>
<pre>curl https://api.ultrawidget.example/v1/widgets</pre>
</article>
</main>
<script>console.log("never counted as text")</script>
</body>
</html>`

	signals := CollectSignals(html, "https://www.ultrawidget.example/pricing?ref=nav")

	t.Run("url parts lowercased", func(t *testing.T) {
		t.Parallel()
		if signals.URLPath != "/pricing" {
			t.Errorf("got %q, expected %q", signals.URLPath, "/pricing")
		}
		if signals.Host != "www.ultrawidget.example" {
			t.Errorf("got %q, expected %q", signals.Host, "www.ultrawidget.example")
		}
	})

	t.Run("structured data types", func(t *testing.T) {
		t.Parallel()
		if !signals.HasStructuredData("Organization") {
			t.Error("expected Organization structured data")
		}
		if signals.HasStructuredData("Product") {
			t.Error("did not expect Product structured data")
		}
	})

	t.Run("element counts", func(t *testing.T) {
		t.Parallel()
		if signals.NavCount != 1 {
			t.Errorf("got %d nav elements, expected 1", signals.NavCount)
		}
		if signals.LinkCount != 2 {
			t.Errorf("got %d links, expected 2", signals.LinkCount)
		}
		if signals.ContentCount != 2 {
			t.Errorf("got %d content elements, expected 2", signals.ContentCount)
		}
		if signals.CodeBlockCount != 1 {
			t.Errorf("got %d code blocks, expected 1", signals.CodeBlockCount)
		}
	})

	t.Run("selector probes", func(t *testing.T) {
		t.Parallel()
		if !signals.HasPriceElement {
			t.Error("expected price element")
		}
		if !signals.HasAddToCart {
			t.Error("expected add-to-cart element")
		}
		if signals.HasDocsContainer {
			t.Error("did not expect docs container")
		}
	})

	t.Run("text flattened and lowercased", func(t *testing.T) {
		t.Parallel()
		if !strings.Contains(signals.Text, "ultrawidget helps teams track widgets") {
			t.Errorf("flattened text missing paragraph: %q", signals.Text)
		}
		if strings.Contains(signals.Text, "never counted as text") {
			t.Error("script text leaked into flattened text")
		}
	})

	t.Run("main container stats", func(t *testing.T) {
		t.Parallel()
		if !signals.HasMainContainer {
			t.Error("expected main container")
		}
		if signals.MainContentLength == 0 {
			t.Error("expected non-empty main content")
		}
	})

	t.Run("word stats", func(t *testing.T) {
		t.Parallel()
		if signals.WordCount == 0 {
			t.Error("expected non-zero word count")
		}
		if signals.UniqueWordCount == 0 || signals.UniqueWordCount > signals.WordCount {
			t.Errorf("unique words %d out of range for %d words",
				signals.UniqueWordCount, signals.WordCount)
		}
	})

	t.Run("title captured", func(t *testing.T) {
		t.Parallel()
		if signals.Title != "UltraWidget — Widgets for Teams" {
			t.Errorf("got %q, expected title text", signals.Title)
		}
	})
}

// TestCollectSignalsEdgeCases tests degenerate inputs.
func TestCollectSignalsEdgeCases(t *testing.T) {
	t.Parallel()

	t.Run("empty HTML yields zero signals", func(t *testing.T) {
		t.Parallel()
		signals := CollectSignals("", "")
		if signals.TextLength != 0 {
			t.Errorf("got %d, expected 0", signals.TextLength)
		}
		if signals.HasMainContainer {
			t.Error("did not expect main container")
		}
	})

	t.Run("no URL leaves URL signals empty", func(t *testing.T) {
		t.Parallel()
		signals := CollectSignals("<html><body><p>hi there everyone</p></body></html>", "")
		if signals.URLPath != "" || signals.Host != "" {
			t.Errorf("got path %q host %q, expected empty", signals.URLPath, signals.Host)
		}
	})

	t.Run("malformed JSON-LD is ignored", func(t *testing.T) {
		t.Parallel()
		html := `<html><head><script type="application/ld+json">{not json</script></head><body></body></html>`
		signals := CollectSignals(html, "")
		if len(signals.StructuredDataTypes) != 0 {
			t.Errorf("got %d types, expected 0", len(signals.StructuredDataTypes))
		}
	})

	t.Run("json-ld array and graph forms", func(t *testing.T) {
		t.Parallel()
		html := `<html><head><script type="application/ld+json">
[{"@type":"Article"},{"@graph":[{"@type":["Product","Thing"]}]}]
</script></head><body></body></html>`
		signals := CollectSignals(html, "")
		for _, expected := range []string{"Article", "Product", "Thing"} {
			if !signals.HasStructuredData(expected) {
				t.Errorf("expected %s structured data", expected)
			}
		}
	})

	t.Run("itemtype microdata", func(t *testing.T) {
		t.Parallel()
		html := `<html><body><div itemscope itemtype="https://schema.org/Product"></div></body></html>`
		signals := CollectSignals(html, "")
		if !signals.HasStructuredData("Product") {
			t.Error("expected Product from itemtype")
		}
	})

	t.Run("date in path", func(t *testing.T) {
		t.Parallel()
		with := &PageSignals{URLPath: "/2024/05/launch"}
		if !with.HasDateInPath() {
			t.Error("expected date match for /2024/05/launch")
		}
		without := &PageSignals{URLPath: "/v2024-edition"}
		if without.HasDateInPath() {
			t.Error("did not expect date match for /v2024-edition")
		}
	})
}
