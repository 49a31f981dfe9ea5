package textnorm

// Options controls annotation handling during normalization.
type Options struct {
	// PreserveAnnotations keeps bracketed spans in the canonical form
	// (rewritten to half-width parentheses) and extracts them into
	// AnnotationSegments. When false, spans are deleted outright.
	PreserveAnnotations bool
}

// NormalizedText captures one normalization result. Immutable once
// produced.
type NormalizedText struct {
	Original           string   `json:"original"`
	Canonical          string   `json:"canonical"`
	MainSegment        string   `json:"main_segment"`
	AnnotationSegments []string `json:"annotation_segments,omitempty"`
}

// Apply runs the full pipeline and returns the structured result. Empty
// input yields an all-empty NormalizedText, never an error.
func (n *Normalizer) Apply(text string, opts Options) NormalizedText {
	if text == "" {
		return NormalizedText{}
	}
	if !opts.PreserveAnnotations {
		canonical := n.Normalize(text)
		return NormalizedText{
			Original:    text,
			Canonical:   canonical,
			MainSegment: canonical,
		}
	}
	canonical := n.NormalizeKeepingAnnotations(text)
	main, spans := SplitAnnotations(canonical)
	return NormalizedText{
		Original:           text,
		Canonical:          canonical,
		MainSegment:        main,
		AnnotationSegments: spans,
	}
}
