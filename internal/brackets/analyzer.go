package brackets

import (
	"regexp"
	"strings"

	"trackmatch/internal/fuzz"
	"trackmatch/internal/textnorm"
)

var spanPattern = regexp.MustCompile(`\(([^)]*)\)|\[([^\]]*)\]|（([^）]*)）|【([^】]*)】`)

const (
	// oneSidedBase anchors the similarity when only one side carries
	// annotations; importance of the missing span shrinks the score.
	oneSidedBase = 75.0
	// noValidScores is returned when spans exist on both sides but none
	// produced a usable comparison.
	noValidScores = 70.0
	// typeMatchBonus rewards spans of the same classified type.
	typeMatchBonus = 10.0
	// blendOriginal and blendSpecial re-weight a span score toward the
	// alias or featured-artist comparison when both sides carry one.
	blendOriginal         = 0.3
	blendSpecial          = 0.7
	aliasRescoreThreshold = 70.0
)

// Analyzer scores bracketed annotation agreement between a query title
// and a candidate title.
type Analyzer struct {
	bracketWeight float64
	keywordBonus  float64
	threshold     float64
	normalizer    *textnorm.Normalizer
}

// NewAnalyzer constructs an Analyzer. bracketWeight scales the bracket
// similarity contribution, keywordBonus is the per-keyword-match bonus,
// and threshold is the bracket similarity below which the contribution
// is dropped.
func NewAnalyzer(bracketWeight, keywordBonus, threshold float64) *Analyzer {
	return &Analyzer{
		bracketWeight: bracketWeight,
		keywordBonus:  keywordBonus,
		threshold:     threshold,
		normalizer:    textnorm.New(),
	}
}

// ExtractSpans returns the inner content of every bracketed annotation
// in text, in order. Empty spans are dropped.
func ExtractSpans(text string) []string {
	if text == "" {
		return nil
	}
	var spans []string
	for _, groups := range spanPattern.FindAllStringSubmatch(text, -1) {
		content := ""
		for _, group := range groups[1:] {
			if group != "" {
				content = group
				break
			}
		}
		if strings.TrimSpace(content) != "" {
			spans = append(spans, content)
		}
	}
	return spans
}

// Classify labels a single annotation span.
func Classify(content string) SpanType {
	if strings.TrimSpace(content) == "" {
		return SpanOther
	}
	lowered := strings.ToLower(content)
	for _, c := range classifiers {
		for _, keyword := range c.keywords {
			if strings.Contains(lowered, keyword) {
				return c.spanType
			}
		}
	}
	if yearPattern.MatchString(lowered) {
		return SpanYear
	}
	return SpanOther
}

// AdjustScore folds annotation agreement into baseScore and returns the
// final score plus the applied adjustment. Titles without annotations on
// either side keep the base score untouched. The result is capped at 100.
func (a *Analyzer) AdjustScore(queryTitle, candidateTitle string, baseScore float64) (float64, float64) {
	querySpans := ExtractSpans(queryTitle)
	candidateSpans := ExtractSpans(candidateTitle)
	if len(querySpans) == 0 && len(candidateSpans) == 0 {
		return baseScore, 0
	}

	similarity := a.Similarity(querySpans, candidateSpans)
	bonus := a.KeywordBonus(querySpans, candidateSpans)

	contribution := 0.0
	if similarity >= a.threshold {
		contribution = similarity * a.bracketWeight
	}
	final := baseScore + contribution + bonus
	if final > 100 {
		final = 100
	}
	return final, final - baseScore
}

// Similarity scores two annotation span sets on a 0-100 scale.
func (a *Analyzer) Similarity(querySpans, candidateSpans []string) float64 {
	if len(querySpans) == 0 && len(candidateSpans) == 0 {
		return 100
	}
	if len(querySpans) == 0 || len(candidateSpans) == 0 {
		present := querySpans
		if len(present) == 0 {
			present = candidateSpans
		}
		total := 0.0
		for _, span := range present {
			total += importance(Classify(a.normalize(span)))
		}
		avgImportance := total / float64(len(present))
		return oneSidedBase + (1-avgImportance)*25
	}

	type weighted struct {
		score  float64
		weight float64
	}
	var scores []weighted

	for i, rawQuery := range querySpans {
		query := a.normalize(rawQuery)
		if query == "" {
			continue
		}
		queryType := Classify(query)
		queryAlias := a.extractAlias(rawQuery)

		best := 0.0
		for j, rawCandidate := range candidateSpans {
			candidate := a.normalize(rawCandidate)
			if candidate == "" {
				continue
			}
			candidateType := Classify(candidate)

			score := max(
				fuzz.TokenSetRatio(query, candidate),
				fuzz.Ratio(query, candidate),
				fuzz.PartialRatio(query, candidate),
			)
			if queryType == candidateType {
				score += typeMatchBonus
			}

			if queryAlias != "" {
				if candidateAlias := a.extractAlias(rawCandidate); candidateAlias != "" {
					aliasScore := fuzz.TokenSetRatio(queryAlias, candidateAlias)
					if aliasScore > aliasRescoreThreshold {
						score = score*blendOriginal + aliasScore*blendSpecial
					}
				}
			}

			if queryType == SpanFeat && candidateType == SpanFeat {
				featScore := a.featArtistSimilarity(querySpans[i], candidateSpans[j])
				if featScore > 0 {
					score = score*blendOriginal + featScore*blendSpecial
				}
			}

			if score > best {
				best = score
			}
		}

		if best > 0 {
			scores = append(scores, weighted{score: best, weight: importance(queryType)})
		}
	}

	if len(scores) == 0 {
		return noValidScores
	}
	totalWeight := 0.0
	weightedSum := 0.0
	for _, s := range scores {
		totalWeight += s.weight
		weightedSum += s.score * s.weight
	}
	return weightedSum / totalWeight
}

// KeywordBonus sums bonuses for version markers shared by both span
// sets, folding synonyms onto the same marker.
func (a *Analyzer) KeywordBonus(querySpans, candidateSpans []string) float64 {
	queryKeywords := a.detectKeywords(querySpans)
	candidateKeywords := a.detectKeywords(candidateSpans)
	if len(queryKeywords) == 0 || len(candidateKeywords) == 0 {
		return 0
	}

	extendedQuery := extendWithSynonyms(queryKeywords)
	extendedCandidate := extendWithSynonyms(candidateKeywords)

	bonus := 0.0
	for keyword, weight := range extendedQuery {
		if candidateWeight, ok := extendedCandidate[keyword]; ok {
			bonus += min(weight, candidateWeight) * a.keywordBonus
		}
	}
	return bonus
}

func (a *Analyzer) detectKeywords(spans []string) map[string]float64 {
	detected := make(map[string]float64)
	for _, span := range spans {
		normalized := a.normalize(span)
		for keyword, weight := range keywordWeights {
			if strings.Contains(normalized, keyword) {
				detected[keyword] = weight
			}
		}
	}
	return detected
}

func extendWithSynonyms(keywords map[string]float64) map[string]float64 {
	extended := make(map[string]float64, len(keywords))
	// A variant can belong to several keyword families ("mix" is both a
	// remix and a version synonym); the highest weight wins regardless of
	// iteration order.
	assign := func(key string, weight float64) {
		if existing, ok := extended[key]; !ok || weight > existing {
			extended[key] = weight
		}
	}
	for keyword, weight := range keywords {
		assign(keyword, weight)
		for _, variant := range keywordSynonyms[keyword] {
			assign(variant, weight)
		}
	}
	return extended
}

var aliasIndicators = []string{"又名", "别名", "别称", "原名", "aka", "also known as", "alternate title"}

// extractAlias pulls the alternative title out of spans like
// (又名：XXX) or (aka XXX). Returns "" when no alias indicator is found.
func (a *Analyzer) extractAlias(span string) string {
	content := a.normalize(span)
	for _, indicator := range aliasIndicators {
		idx := strings.Index(content, indicator)
		if idx < 0 {
			continue
		}
		alias := content[idx+len(indicator):]
		alias = strings.TrimLeft(alias, ": ")
		alias = strings.TrimSpace(alias)
		if alias != "" {
			return alias
		}
	}
	return ""
}

var featSplitter = regexp.MustCompile(`[,&/、]|和`)

var featIndicators = []string{"featuring", "feat.", "feat", "ft.", "ft", "with", "合作"}

// extractFeatArtists pulls artist names out of a feat span.
func extractFeatArtists(span string, normalizer *textnorm.Normalizer) []string {
	content := normalizer.Normalize(span)
	for _, indicator := range featIndicators {
		if idx := strings.Index(content, indicator); idx >= 0 {
			content = content[idx+len(indicator):]
			break
		}
	}
	content = strings.TrimLeft(content, ". :")
	var artists []string
	for _, part := range featSplitter.Split(content, -1) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			artists = append(artists, trimmed)
		}
	}
	return artists
}

func (a *Analyzer) featArtistSimilarity(querySpan, candidateSpan string) float64 {
	queryArtists := extractFeatArtists(querySpan, a.normalizer)
	candidateArtists := extractFeatArtists(candidateSpan, a.normalizer)
	if len(queryArtists) == 0 || len(candidateArtists) == 0 {
		return 0
	}
	total := 0.0
	for _, queryArtist := range queryArtists {
		best := 0.0
		for _, candidateArtist := range candidateArtists {
			if score := fuzz.TokenSetRatio(queryArtist, candidateArtist); score > best {
				best = score
			}
		}
		total += best
	}
	return total / float64(len(queryArtists))
}

func (a *Analyzer) normalize(content string) string {
	return a.normalizer.Normalize(content)
}
