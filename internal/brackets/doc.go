// Package brackets refines match scores using the bracketed annotations
// in song titles: (Live), [Remix], （现场版）, and similar version
// markers. Annotations are classified by type, compared across query and
// candidate, and folded into the base score together with a keyword
// bonus for shared version markers.
package brackets
