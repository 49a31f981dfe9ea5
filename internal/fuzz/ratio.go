package fuzz

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// Ratio returns the Levenshtein similarity between a and b on a 0-100
// scale. Two empty strings are identical.
func Ratio(a, b string) float64 {
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	sim, err := edlib.StringsSimilarity(a, b, edlib.Levenshtein)
	if err != nil {
		return 0
	}
	return float64(sim) * 100
}

// PartialRatio slides the shorter string across the longer one and
// returns the best window ratio. Useful when one title embeds the other.
func PartialRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(ra) == 0 {
		if len(rb) == 0 {
			return 100
		}
		return 0
	}
	shorter := string(ra)
	best := 0.0
	for i := 0; i+len(ra) <= len(rb); i++ {
		score := Ratio(shorter, string(rb[i:i+len(ra)]))
		if score > best {
			best = score
			if best >= 100 {
				break
			}
		}
	}
	return best
}

// TokenSortRatio compares the strings with their words sorted, making
// the score insensitive to word order.
func TokenSortRatio(a, b string) float64 {
	return Ratio(sortedTokens(a), sortedTokens(b))
}

// TokenSetRatio compares the shared-token core of both strings against
// each full token list and returns the best ratio. Robust against one
// side carrying extra words.
func TokenSetRatio(a, b string) float64 {
	tokensA := tokenSet(a)
	tokensB := tokenSet(b)
	if len(tokensA) == 0 && len(tokensB) == 0 {
		return 100
	}
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	var shared, onlyA, onlyB []string
	for token := range tokensA {
		if _, ok := tokensB[token]; ok {
			shared = append(shared, token)
		} else {
			onlyA = append(onlyA, token)
		}
	}
	for token := range tokensB {
		if _, ok := tokensA[token]; !ok {
			onlyB = append(onlyB, token)
		}
	}
	sort.Strings(shared)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	core := strings.Join(shared, " ")
	full1 := strings.TrimSpace(core + " " + strings.Join(onlyA, " "))
	full2 := strings.TrimSpace(core + " " + strings.Join(onlyB, " "))

	best := Ratio(core, full1)
	if score := Ratio(core, full2); score > best {
		best = score
	}
	if score := Ratio(full1, full2); score > best {
		best = score
	}
	return best
}

func sortedTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range strings.Fields(s) {
		set[token] = struct{}{}
	}
	return set
}
