package sentiment

import "testing"

func TestDetectLanguage(t *testing.T) {
	if got := DetectLanguage("I am absolutely certain this sentence is written in English."); got != "en" {
		t.Errorf("DetectLanguage(english) = %q, want en", got)
	}

	// Ambiguous or empty input falls back to English
	if got := DetectLanguage(""); got != "en" {
		t.Errorf("DetectLanguage(empty) = %q, want en", got)
	}
}
