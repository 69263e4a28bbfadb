package sentiment

import (
	"sync"

	"github.com/pemistahl/lingua-go"
)

var (
	detector     lingua.LanguageDetector
	detectorOnce sync.Once
)

// getDetector returns a singleton language detector instance
func getDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		// Restricted to the languages the sentiment endpoint accepts
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English,
				lingua.Spanish,
				lingua.French,
				lingua.German,
				lingua.Portuguese,
				lingua.Italian,
				lingua.Dutch,
			).
			WithMinimumRelativeDistance(0.25).
			Build()
	})
	return detector
}

// languageCodeMap maps lingua languages to the ISO 639-1 codes the API expects
var languageCodeMap = map[lingua.Language]string{
	lingua.English:    "en",
	lingua.Spanish:    "es",
	lingua.French:     "fr",
	lingua.German:     "de",
	lingua.Portuguese: "pt",
	lingua.Italian:    "it",
	lingua.Dutch:      "nl",
}

// DetectLanguage returns the ISO 639-1 code of the text, defaulting to English
// when detection is inconclusive.
func DetectLanguage(text string) string {
	if text == "" {
		return "en"
	}
	language, ok := getDetector().DetectLanguageOf(text)
	if !ok {
		return "en"
	}
	if code, ok := languageCodeMap[language]; ok {
		return code
	}
	return "en"
}
