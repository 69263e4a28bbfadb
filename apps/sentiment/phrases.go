package sentiment

import "math"

// phrases maps a sentiment bucket to a canned reply. Index is round(score*10),
// so the table covers [0,10] inclusive: gloomiest first, sunniest last.
var phrases = [11]string{
	"Perhaps ‘f*** off’ might be too kind.",
	"Who’d want to be men of the people when there’s people like you?",
	"I’ve seen your frown and it’s like looking down the barrel of a gun.",
	"With folded arms you occupied the bench like toothache.",
	"The next time that I caught my own reflection it was on its way to meet you, thinking of excuses to postpone.",
	"If you’re gonna try and walk on water, make sure you wear your comfortable shoes.",
	"Stop making the eyes at me and I’ll stop making the eyes at you.",
	"You’re the first day of spring with a septum piercing.",
	"You’re rarer than a can of Dandelion & Burdock.",
	"Don't believe the hype.",
	"Four stars out of five.",
}

// PhraseForScore picks the canned reply for a sentiment score in [0,1].
// Halves round up (math.Round); out-of-range scores clamp to the nearest bucket.
func PhraseForScore(score float64) string {
	index := int(math.Round(score * 10))
	if index < 0 {
		index = 0
	}
	if index > 10 {
		index = 10
	}
	return phrases[index]
}

// PhraseCount returns the size of the phrase table
func PhraseCount() int {
	return len(phrases)
}
