package sentiment

import "testing"

func TestPhraseForScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{"gloomiest bucket", 0.0, phrases[0]},
		{"sunniest bucket", 1.0, phrases[10]},
		{"half rounds up", 0.45, phrases[5]},
		{"below half rounds down", 0.44, phrases[4]},
		{"midrange", 0.73, phrases[7]},
		{"negative clamps to zero", -0.2, phrases[0]},
		{"above one clamps to ten", 1.3, phrases[10]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PhraseForScore(tt.score)
			if got != tt.want {
				t.Errorf("PhraseForScore(%v) = %q, want %q", tt.score, got, tt.want)
			}
		})
	}
}

func TestPhraseCount(t *testing.T) {
	// One phrase per bucket of round(score*10)
	if PhraseCount() != 11 {
		t.Errorf("PhraseCount() = %d, want 11", PhraseCount())
	}
}
