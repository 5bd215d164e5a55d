package extract

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// maxLanguageSampleLength caps the text handed to the language detector.
// A few thousand characters is plenty for reliable detection and keeps
// the per-page cost flat.
const maxLanguageSampleLength = 2000

// detectorLanguages restricts the detector to languages this tool is
// realistically pointed at. A smaller candidate set improves both
// accuracy and model load time.
var detectorLanguages = []lingua.Language{
	lingua.English,
	lingua.German,
	lingua.French,
	lingua.Spanish,
	lingua.Portuguese,
	lingua.Italian,
	lingua.Dutch,
	lingua.Japanese,
	lingua.Chinese,
	lingua.Korean,
	lingua.Russian,
}

// languageDetector is built lazily on first use: constructing the lingua
// detector loads language models, which is too expensive for init.
var (
	languageDetectorOnce sync.Once
	languageDetector     lingua.LanguageDetector
)

// detectLanguage returns the ISO 639-1 code of the page language,
// defaulting to "en" when detection is inconclusive or the sample is
// too small.
func detectLanguage(text string) string {
	sample := strings.TrimSpace(text)
	if len(sample) > maxLanguageSampleLength {
		sample = sample[:maxLanguageSampleLength]
	}
	if len(sample) < 20 {
		return "en"
	}

	languageDetectorOnce.Do(func() {
		languageDetector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(detectorLanguages...).
			Build()
	})

	language, ok := languageDetector.DetectLanguageOf(sample)
	if !ok {
		return "en"
	}
	return strings.ToLower(language.IsoCode639_1().String())
}
