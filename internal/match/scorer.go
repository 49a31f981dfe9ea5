package match

import (
	"strings"

	"trackmatch/internal/fuzz"
	"trackmatch/internal/phonetic"
	"trackmatch/internal/textnorm"
)

const (
	// primaryArtistStrong triggers the primary-artist short circuit.
	primaryArtistStrong = 90.0
	// primaryArtistFloor is the minimum score granted once the primary
	// artist matched strongly, regardless of the remaining artists.
	primaryArtistFloor = 85.0
	// phoneticFallbackBelow enables the pinyin fallback for weak direct
	// artist scores when CJK text is involved.
	phoneticFallbackBelow = 60.0

	titleRatioWeight     = 0.4
	titlePartialWeight   = 0.4
	titleTokenSortWeight = 0.2

	// prefilterLengthFactor bounds how much candidate and query title
	// lengths may diverge before the candidate is skipped outright.
	prefilterLengthFactor = 0.5
	// prefilterArtistCountSlack is the artist-count difference tolerated
	// even when no artist name overlaps.
	prefilterArtistCountSlack = 2
)

// scorer computes stage-one similarity between a query and candidates.
type scorer struct {
	titleWeight  float64
	artistWeight float64
	normalizer   *textnorm.Normalizer
	translit     *phonetic.Transliterator
}

func newScorer(titleWeight, artistWeight float64, normalizer *textnorm.Normalizer) *scorer {
	return &scorer{
		titleWeight:  titleWeight,
		artistWeight: artistWeight,
		normalizer:   normalizer,
		translit:     phonetic.NewTransliterator(),
	}
}

// titleSimilarity scores two titles on their annotation-stripped
// canonical forms. It is symmetric in its arguments.
func (s *scorer) titleSimilarity(query, candidate string) float64 {
	a := s.normalizer.Normalize(query)
	b := s.normalizer.Normalize(candidate)
	if a == "" && b == "" {
		return 100.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	return titleRatioWeight*fuzz.Ratio(a, b) +
		titlePartialWeight*fuzz.PartialRatio(a, b) +
		titleTokenSortWeight*fuzz.TokenSortRatio(a, b)
}

// artistSimilarity scores the query artists against the candidate
// artists. The comparison is deliberately asymmetric: every query
// artist must find a counterpart, while extra candidate artists cost
// nothing. The first-listed query artist is treated as primary and can
// floor the score on a strong match.
func (s *scorer) artistSimilarity(queryArtists, candidateArtists []string) (float64, bool) {
	if len(queryArtists) == 0 && len(candidateArtists) == 0 {
		return 100.0, false
	}
	if len(queryArtists) == 0 || len(candidateArtists) == 0 {
		return 0.0, false
	}

	query := s.normalizeAll(queryArtists)
	cands := s.normalizeAll(candidateArtists)

	// The floor belongs to the first-listed artist only. When that name
	// normalizes to nothing, no other artist inherits the short circuit.
	if primary := s.normalizer.Normalize(queryArtists[0]); primary != "" {
		if best := bestTokenSet(primary, cands); best >= primaryArtistStrong {
			return max(primaryArtistFloor, best), false
		}
	}

	direct := 0.0
	for _, qa := range query {
		direct += bestTokenSet(qa, cands)
	}
	direct /= float64(len(query))

	if direct >= phoneticFallbackBelow || !anyChinese(query, cands) {
		return direct, false
	}

	phon := 0.0
	for _, qa := range query {
		best := 0.0
		for _, ca := range cands {
			score, _ := s.translit.Compare(qa, ca)
			if score > best {
				best = score
			}
		}
		phon += best
	}
	phon /= float64(len(query))

	if phon > direct {
		return phon, true
	}
	return direct, false
}

// score runs the full stage-one computation for one candidate.
func (s *scorer) score(query Query, candidate CandidateTrack) SimilarityScore {
	title := s.titleSimilarity(query.Title, candidate.Title)
	artist, usedPhonetic := s.artistSimilarity(query.Artists, candidate.ArtistNames)
	weighted := s.titleWeight*title + s.artistWeight*artist
	return SimilarityScore{
		TitleScore:          title,
		ArtistScore:         artist,
		Stage1WeightedScore: weighted,
		FinalScore:          weighted,
		UsedPhonetic:        usedPhonetic,
	}
}

// quickFilter rejects candidates that cannot plausibly score well,
// before any expensive similarity work. A candidate fails when its
// title length diverges from the query title by more than half the
// query length, or when the artist sets share no substring overlap and
// their sizes differ by more than two.
func (s *scorer) quickFilter(query Query, candidate CandidateTrack) bool {
	qt := []rune(strings.ToLower(strings.TrimSpace(query.Title)))
	ct := []rune(strings.ToLower(strings.TrimSpace(candidate.Title)))
	if len(qt) > 0 {
		diff := len(qt) - len(ct)
		if diff < 0 {
			diff = -diff
		}
		if float64(diff) > float64(len(qt))*prefilterLengthFactor {
			return false
		}
	}

	if len(query.Artists) > 0 && len(candidate.ArtistNames) > 0 {
		countDiff := len(query.Artists) - len(candidate.ArtistNames)
		if countDiff < 0 {
			countDiff = -countDiff
		}
		if !artistOverlap(query.Artists, candidate.ArtistNames) && countDiff > prefilterArtistCountSlack {
			return false
		}
	}
	return true
}

func (s *scorer) normalizeAll(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		normalized := s.normalizer.Normalize(name)
		if normalized != "" {
			out = append(out, normalized)
		}
	}
	if len(out) == 0 {
		out = append(out, "")
	}
	return out
}

func bestTokenSet(name string, candidates []string) float64 {
	best := 0.0
	for _, c := range candidates {
		if score := fuzz.TokenSetRatio(name, c); score > best {
			best = score
		}
	}
	return best
}

func anyChinese(a, b []string) bool {
	for _, s := range a {
		if phonetic.ContainsChinese(s) {
			return true
		}
	}
	for _, s := range b {
		if phonetic.ContainsChinese(s) {
			return true
		}
	}
	return false
}

// artistOverlap reports whether any query artist name contains, or is
// contained by, any candidate artist name, case-insensitively.
func artistOverlap(queryArtists, candidateArtists []string) bool {
	for _, qa := range queryArtists {
		q := strings.ToLower(strings.TrimSpace(qa))
		if q == "" {
			continue
		}
		for _, ca := range candidateArtists {
			c := strings.ToLower(strings.TrimSpace(ca))
			if c == "" {
				continue
			}
			if strings.Contains(q, c) || strings.Contains(c, q) {
				return true
			}
		}
	}
	return false
}
