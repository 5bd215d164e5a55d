package classify

import "testing"

// TestIsErrorPage tests each short-circuit condition of the error-page
// detector.
func TestIsErrorPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		signals  *PageSignals
		expected bool
	}{
		{
			name:     "tiny page is an error page",
			signals:  &PageSignals{TextLength: 120, WordCount: 20, UniqueWordCount: 18},
			expected: true,
		},
		{
			name: "empty main container with short page",
			signals: &PageSignals{
				TextLength:        800,
				HasMainContainer:  true,
				MainContentLength: 0,
				WordCount:         140,
				UniqueWordCount:   100,
			},
			expected: true,
		},
		{
			name: "empty main container on a long page is fine",
			signals: &PageSignals{
				TextLength:        4000,
				HasMainContainer:  true,
				MainContentLength: 0,
				WordCount:         700,
				UniqueWordCount:   400,
			},
			expected: false,
		},
		{
			name: "missing main container does not trip the empty-main check",
			signals: &PageSignals{
				TextLength:      800,
				WordCount:       140,
				UniqueWordCount: 100,
			},
			expected: false,
		},
		{
			name: "block phrase in short content",
			signals: &PageSignals{
				TextLength:      900,
				Text:            "please complete the captcha to continue",
				WordCount:       150,
				UniqueWordCount: 120,
			},
			expected: true,
		},
		{
			name: "block phrase in long content is fine",
			signals: &PageSignals{
				TextLength:      6000,
				Text:            "our guide to solving every captcha type",
				WordCount:       1000,
				UniqueWordCount: 600,
			},
			expected: false,
		},
		{
			name: "high repetition in short content",
			signals: &PageSignals{
				TextLength:      1200,
				Text:            "loading loading loading",
				WordCount:       300,
				UniqueWordCount: 40,
			},
			expected: true,
		},
		{
			name: "normal short article is fine",
			signals: &PageSignals{
				TextLength:        1200,
				Text:              "a short but genuine write-up",
				HasMainContainer:  true,
				MainContentLength: 1100,
				WordCount:         200,
				UniqueWordCount:   150,
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsErrorPage(tt.signals); got != tt.expected {
				t.Errorf("got %v, expected %v", got, tt.expected)
			}
		})
	}
}
