package match

import (
	"log/slog"
	"sort"

	"trackmatch/internal/brackets"
	"trackmatch/internal/logging"
	"trackmatch/internal/textnorm"
)

// Matcher resolves a query against candidate tracks in two stages.
// It is safe for concurrent use.
type Matcher struct {
	cfg      Configuration
	scorer   *scorer
	analyzer *brackets.Analyzer
	logger   *slog.Logger
}

// New validates the configuration and builds a Matcher. A nil logger
// disables logging.
func New(cfg Configuration, logger *slog.Logger) (*Matcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	normalizer := textnorm.New()
	return &Matcher{
		cfg:      cfg,
		scorer:   newScorer(cfg.TitleWeight, cfg.ArtistWeight, normalizer),
		analyzer: brackets.NewAnalyzer(cfg.BracketWeight, cfg.KeywordBonus, cfg.Stage2Threshold),
		logger:   logging.NewComponentLogger(logger, "matcher"),
	}, nil
}

// Match runs both stages and returns the surviving candidates ordered
// by final score, best first. An empty candidate list yields nil.
func (m *Matcher) Match(query Query, candidates []CandidateTrack) []Match {
	if len(candidates) == 0 {
		return nil
	}

	shortlist := m.stageOne(query, candidates)
	if len(shortlist) == 0 {
		m.logger.Debug("no candidates survived stage one",
			logging.String(logging.FieldQuery, query.Title),
			logging.Int("candidates", len(candidates)))
		return nil
	}

	results := m.stageTwo(query, shortlist)
	if len(results) == 0 {
		if !m.cfg.FallbackToStage1OnEmpty {
			return nil
		}
		// Stage two rejected everything; surface the best loose match
		// rather than nothing, but flag it.
		best := shortlist[0]
		best.Score.LowConfidence = true
		m.logger.Debug("falling back to stage-one result",
			logging.String(logging.FieldQuery, query.Title),
			logging.String(logging.FieldCandidateID, best.Track.ID),
			logging.Float64("score", best.Score.FinalScore))
		results = []Match{best}
	}

	if query.ArtistOnlySearch {
		// The title carried no signal, so every title-derived score is
		// noise. Keep the breakdown for diagnostics but zero the final
		// score and mark the results.
		for i := range results {
			results[i].Score.FinalScore = 0
			results[i].Score.LowConfidence = true
		}
	}
	return results
}

// BestMatch returns the highest-scoring match, if any.
func (m *Matcher) BestMatch(query Query, candidates []CandidateTrack) (Match, bool) {
	results := m.Match(query, candidates)
	if len(results) == 0 {
		return Match{}, false
	}
	return results[0], true
}

// stageOne shortlists candidates whose weighted title/artist score
// clears the loose threshold, sorted best first and capped at TopK.
func (m *Matcher) stageOne(query Query, candidates []CandidateTrack) []Match {
	shortlist := make([]Match, 0, len(candidates))
	for _, candidate := range candidates {
		if !m.scorer.quickFilter(query, candidate) {
			continue
		}
		score := m.scorer.score(query, candidate)
		if score.Stage1WeightedScore < m.cfg.Stage1Threshold {
			continue
		}
		shortlist = append(shortlist, Match{
			Track:             candidate,
			NormalizedTitle:   m.scorer.normalizer.NormalizeKeepingAnnotations(candidate.Title),
			NormalizedArtists: m.scorer.normalizeAll(candidate.ArtistNames),
			Score:             score,
		})
	}
	sort.SliceStable(shortlist, func(i, j int) bool {
		return shortlist[i].Score.Stage1WeightedScore > shortlist[j].Score.Stage1WeightedScore
	})
	if len(shortlist) > m.cfg.TopK {
		shortlist = shortlist[:m.cfg.TopK]
	}
	return shortlist
}

// stageTwo refines the shortlist with annotation analysis on the
// original titles and applies the strict threshold.
func (m *Matcher) stageTwo(query Query, shortlist []Match) []Match {
	results := make([]Match, 0, len(shortlist))
	for _, entry := range shortlist {
		final, adjustment := m.analyzer.AdjustScore(query.Title, entry.Track.Title, entry.Score.Stage1WeightedScore)
		entry.Score.BracketAdjustment = adjustment
		entry.Score.FinalScore = final
		if final < m.cfg.Stage2Threshold {
			m.logger.Debug("candidate below stage-two threshold",
				logging.String(logging.FieldCandidateID, entry.Track.ID),
				logging.Float64("score", final))
			continue
		}
		results = append(results, entry)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score.FinalScore > results[j].Score.FinalScore
	})
	return results
}
