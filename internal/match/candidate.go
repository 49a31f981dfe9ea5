package match

import "encoding/json"

// CandidateTrack is one track under consideration, as returned by a
// catalog search. The matcher never mutates a candidate; normalized
// forms live on the Match that references it.
type CandidateTrack struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	ArtistNames []string `json:"artist_names"`

	// RawPayload carries the provider response for this track untouched,
	// so callers can surface fields the matcher does not care about.
	RawPayload json.RawMessage `json:"raw_payload,omitempty"`
}

// SimilarityScore breaks down how a candidate scored against a query.
type SimilarityScore struct {
	TitleScore          float64 `json:"title_score"`
	ArtistScore         float64 `json:"artist_score"`
	Stage1WeightedScore float64 `json:"stage1_weighted_score"`
	// BracketAdjustment is the stage-two delta on top of the stage-one
	// score. Zero when stage two never ran for this candidate.
	BracketAdjustment float64 `json:"bracket_adjustment"`
	FinalScore        float64 `json:"final_score"`

	// LowConfidence marks results that survived only via the stage-one
	// fallback, or artist-only searches where the title carried no
	// signal.
	LowConfidence bool `json:"low_confidence"`
	// UsedPhonetic is set when the artist score came from the pinyin
	// fallback rather than direct string comparison.
	UsedPhonetic bool `json:"used_phonetic"`
}

// Match pairs a candidate with its score. NormalizedTitle and
// NormalizedArtists hold the canonical forms actually compared; the
// candidate keeps its original display text.
type Match struct {
	Track             CandidateTrack  `json:"track"`
	NormalizedTitle   string          `json:"normalized_title"`
	NormalizedArtists []string        `json:"normalized_artists"`
	Score             SimilarityScore `json:"score"`
}

// Query is one song identity to resolve.
type Query struct {
	Title   string
	Artists []string

	// ArtistOnlySearch marks queries issued without a usable title, for
	// which any title-derived score is meaningless.
	ArtistOnlySearch bool
}
