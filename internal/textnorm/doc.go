// Package textnorm canonicalizes song titles and artist names before
// fuzzy comparison.
//
// The pipeline folds Traditional Chinese to Simplified, lowercases,
// folds full-width ASCII to half-width, canonicalizes separators,
// handles bracketed annotations, and collapses whitespace. Applying the
// pipeline twice yields the same result as applying it once, so
// normalized text can be normalized again without drift.
package textnorm
