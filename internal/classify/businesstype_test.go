package classify

import (
	"testing"

	"github.com/aiready/aiready/internal/model"
)

// TestDetectBusinessType tests each rule of the business type cascade.
func TestDetectBusinessType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		topics   []string
		signals  *PageSignals
		expected model.BusinessType
	}{
		{
			name:     "payment keywords",
			signals:  &PageSignals{Text: "accept payments in minutes with our payment gateway"},
			expected: model.BusinessTypePayment,
		},
		{
			name:     "commerce markup",
			signals:  &PageSignals{HasAddToCart: true, HasPriceElement: true},
			expected: model.BusinessTypeEcommerce,
		},
		{
			name:     "buy now keyword",
			signals:  &PageSignals{Text: "limited stock, buy now and get free shipping"},
			expected: model.BusinessTypeEcommerce,
		},
		{
			name:     "blog markup",
			signals:  &PageSignals{HasBlogMarkup: true},
			expected: model.BusinessTypeBlog,
		},
		{
			name:     "blog topic tag",
			topics:   []string{"engineering", "blog"},
			signals:  &PageSignals{},
			expected: model.BusinessTypeBlog,
		},
		{
			name:     "news markup",
			signals:  &PageSignals{HasNewsMarkup: true},
			expected: model.BusinessTypeNews,
		},
		{
			name:     "high code block density",
			signals:  &PageSignals{CodeBlockCount: 12},
			expected: model.BusinessTypeDocumentation,
		},
		{
			name:     "api keywords with some code",
			signals:  &PageSignals{Text: "call the api endpoint with your key", CodeBlockCount: 2},
			expected: model.BusinessTypeDocumentation,
		},
		{
			name:     "corporate keywords",
			signals:  &PageSignals{Text: "our mission is to connect every supplier"},
			expected: model.BusinessTypeCorporate,
		},
		{
			name:     "educational keywords",
			signals:  &PageSignals{Text: "enroll in this tutorial to learn how to weld"},
			expected: model.BusinessTypeEducational,
		},
		{
			name:     "nothing matches is other",
			signals:  &PageSignals{Text: "pictures of mountains"},
			expected: model.BusinessTypeOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DetectBusinessType(tt.topics, tt.signals); got != tt.expected {
				t.Errorf("got %q, expected %q", got, tt.expected)
			}
		})
	}
}

// TestDetectBusinessTypePrecedence pins the cascade ordering.
func TestDetectBusinessTypePrecedence(t *testing.T) {
	t.Parallel()

	t.Run("payment beats ecommerce", func(t *testing.T) {
		t.Parallel()
		// Payment providers describe commerce without being stores.
		signals := &PageSignals{
			Text:            "accept payments at checkout with one payment api",
			HasAddToCart:    true,
			HasPriceElement: true,
		}
		if got := DetectBusinessType(nil, signals); got != model.BusinessTypePayment {
			t.Errorf("got %q, expected %q", got, model.BusinessTypePayment)
		}
	})

	t.Run("ecommerce beats blog", func(t *testing.T) {
		t.Parallel()
		signals := &PageSignals{
			Text:          "buy now with free shipping",
			HasBlogMarkup: true,
		}
		if got := DetectBusinessType(nil, signals); got != model.BusinessTypeEcommerce {
			t.Errorf("got %q, expected %q", got, model.BusinessTypeEcommerce)
		}
	})

	t.Run("blog beats news", func(t *testing.T) {
		t.Parallel()
		signals := &PageSignals{HasBlogMarkup: true, HasNewsMarkup: true}
		if got := DetectBusinessType(nil, signals); got != model.BusinessTypeBlog {
			t.Errorf("got %q, expected %q", got, model.BusinessTypeBlog)
		}
	})

	t.Run("code density beats corporate keywords", func(t *testing.T) {
		t.Parallel()
		signals := &PageSignals{
			Text:           "our mission and our team ship this sdk",
			CodeBlockCount: 20,
		}
		if got := DetectBusinessType(nil, signals); got != model.BusinessTypeDocumentation {
			t.Errorf("got %q, expected %q", got, model.BusinessTypeDocumentation)
		}
	})
}
