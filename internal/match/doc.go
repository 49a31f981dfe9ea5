// Package match implements the two-stage song matching engine.
//
// Stage one shortlists candidates by weighted title and artist string
// similarity. Stage two refines the shortlist with bracketed-annotation
// analysis on the original titles and applies the strict threshold.
// Scoring is synchronous and pure; the only shared state is the
// normalization cache inside each Matcher, which is safe for concurrent
// use.
package match
