package match

import (
	"fmt"
	"math"

	"trackmatch/internal/config"
)

const weightSumTolerance = 0.001

// Configuration holds the tunable weights and thresholds for a Matcher.
// TitleWeight and ArtistWeight must sum to 1.0 within a tolerance of
// 0.001; New rejects any other combination.
type Configuration struct {
	TitleWeight  float64
	ArtistWeight float64

	// BracketWeight scales how much a strong annotation similarity can
	// add on top of the stage-one score.
	BracketWeight float64
	// KeywordBonus is the per-keyword-weight multiplier for annotation
	// keywords shared across both titles.
	KeywordBonus float64

	// Stage1Threshold is the loose shortlist cutoff, Stage2Threshold the
	// strict final cutoff.
	Stage1Threshold float64
	Stage2Threshold float64

	// TopK caps the stage-one shortlist size.
	TopK int

	// FallbackToStage1OnEmpty returns the single best stage-one survivor
	// (flagged low confidence) when stage two eliminates everything.
	FallbackToStage1OnEmpty bool
}

// DefaultConfiguration mirrors the defaults in the config package.
func DefaultConfiguration() Configuration {
	return FromConfig(config.Default().Matching)
}

// FromConfig converts the TOML-backed matching section into a
// Configuration.
func FromConfig(m config.Matching) Configuration {
	return Configuration{
		TitleWeight:             m.TitleWeight,
		ArtistWeight:            m.ArtistWeight,
		BracketWeight:           m.BracketWeight,
		KeywordBonus:            m.KeywordBonus,
		Stage1Threshold:         m.Stage1Threshold,
		Stage2Threshold:         m.Stage2Threshold,
		TopK:                    m.TopK,
		FallbackToStage1OnEmpty: m.FallbackToStage1,
	}
}

// Validate reports the first invalid field, if any.
func (c Configuration) Validate() error {
	sum := c.TitleWeight + c.ArtistWeight
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("match: title and artist weights must sum to 1.0, got %.3f", sum)
	}
	if c.TitleWeight < 0 || c.ArtistWeight < 0 {
		return fmt.Errorf("match: weights must be non-negative")
	}
	if c.BracketWeight < 0 || c.BracketWeight > 1 {
		return fmt.Errorf("match: bracket weight must be within [0, 1], got %.3f", c.BracketWeight)
	}
	if c.KeywordBonus < 0 {
		return fmt.Errorf("match: keyword bonus must be non-negative, got %.3f", c.KeywordBonus)
	}
	if c.Stage1Threshold < 0 || c.Stage1Threshold > 100 {
		return fmt.Errorf("match: stage one threshold must be within [0, 100], got %.1f", c.Stage1Threshold)
	}
	if c.Stage2Threshold < 0 || c.Stage2Threshold > 100 {
		return fmt.Errorf("match: stage two threshold must be within [0, 100], got %.1f", c.Stage2Threshold)
	}
	if c.TopK < 1 {
		return fmt.Errorf("match: top-k must be at least 1, got %d", c.TopK)
	}
	return nil
}
