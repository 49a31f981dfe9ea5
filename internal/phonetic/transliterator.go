package phonetic

import (
	"strings"

	"github.com/mozillazg/go-pinyin"

	"trackmatch/internal/fuzz"
)

// directMatchThreshold is the orthographic score above which the
// phonetic comparison is skipped entirely.
const directMatchThreshold = 75.0

// ContainsChinese reports whether s contains any CJK unified ideograph.
func ContainsChinese(s string) bool {
	for _, r := range s {
		if r >= 0x4E00 && r <= 0x9FFF {
			return true
		}
	}
	return false
}

// Transliterator converts Han characters to tone-less pinyin syllables.
// Non-Han text passes through unchanged.
type Transliterator struct {
	args pinyin.Args
}

// NewTransliterator returns a Transliterator using lazy (first-reading,
// tone-less) pinyin.
func NewTransliterator() *Transliterator {
	return &Transliterator{args: pinyin.NewArgs()}
}

// Transliterate returns s with each Han character replaced by its pinyin
// syllable, tokens separated by single spaces.
func (t *Transliterator) Transliterate(s string) string {
	var tokens []string
	var pending strings.Builder
	flush := func() {
		if trimmed := strings.TrimSpace(pending.String()); trimmed != "" {
			tokens = append(tokens, strings.Fields(trimmed)...)
		}
		pending.Reset()
	}
	for _, r := range s {
		if r >= 0x4E00 && r <= 0x9FFF {
			flush()
			if syllables := pinyin.LazyPinyin(string(r), t.args); len(syllables) > 0 {
				tokens = append(tokens, syllables[0])
			}
			continue
		}
		pending.WriteRune(r)
	}
	flush()
	return strings.Join(tokens, " ")
}

// Compare scores a against b orthographically first and falls back to a
// pinyin comparison only when the direct score is weak and either side
// contains Chinese. The second return reports whether the phonetic score
// was the one used.
func (t *Transliterator) Compare(a, b string) (float64, bool) {
	direct := fuzz.Ratio(a, b)
	if direct >= directMatchThreshold {
		return direct, false
	}
	if !ContainsChinese(a) && !ContainsChinese(b) {
		return direct, false
	}
	phonetic := fuzz.Ratio(t.Transliterate(a), t.Transliterate(b))
	if phonetic > direct {
		return phonetic, true
	}
	return direct, false
}

// BestMatch finds the candidate closest to text, comparing phonetically
// when orthography falls short. Returns the winning candidate, its
// score, and whether the phonetic path produced it.
func (t *Transliterator) BestMatch(text string, candidates []string) (string, float64, bool) {
	bestCandidate := ""
	bestScore := 0.0
	usedPhonetic := false
	for _, candidate := range candidates {
		score, phonetic := t.Compare(text, candidate)
		if score > bestScore {
			bestCandidate = candidate
			bestScore = score
			usedPhonetic = phonetic
		}
	}
	return bestCandidate, bestScore, usedPhonetic
}
