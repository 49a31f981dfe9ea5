package textnorm

import (
	"regexp"
	"strings"
	"sync"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var (
	hyphenVariants = regexp.MustCompile(`[‐‑‒–—―]`)
	asciiDotRuns   = regexp.MustCompile(`\.{2,}`)
	cjkDotRuns     = regexp.MustCompile(`。{2,}`)
	whitespaceRuns = regexp.MustCompile(`[\s\p{Zs}]+`)

	// All supported annotation span styles, half-width and CJK.
	annotationSpan = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]|\{[^}]*\}|（[^）]*）|【[^】]*】`)
)

// foldChain folds Traditional Chinese to Simplified and full-width ASCII
// (U+FF01..U+FF5E) to half-width in a single transform pass.
var foldChain = transform.Chain(
	runes.Map(foldScript),
	runes.Map(foldWidth),
)

func foldWidth(r rune) rune {
	if r >= 0xFF01 && r <= 0xFF5E {
		return r - 0xFF01 + 0x21
	}
	return r
}

type cacheKey struct {
	text     string
	preserve bool
}

// Normalizer applies the canonicalization pipeline with memoization.
// Safe for concurrent use.
type Normalizer struct {
	mu    sync.RWMutex
	cache map[cacheKey]string
}

// New returns a Normalizer with an empty cache.
func New() *Normalizer {
	return &Normalizer{cache: make(map[cacheKey]string)}
}

// Normalize canonicalizes text and deletes bracketed annotations.
func (n *Normalizer) Normalize(text string) string {
	return n.cached(text, false, normalizeStripped)
}

// NormalizeKeepingAnnotations canonicalizes text while retaining
// bracketed annotations, rewritten to half-width parentheses.
func (n *Normalizer) NormalizeKeepingAnnotations(text string) string {
	return n.cached(text, true, normalizePreserving)
}

func (n *Normalizer) cached(text string, preserve bool, fn func(string) string) string {
	if text == "" {
		return ""
	}
	key := cacheKey{text: text, preserve: preserve}
	n.mu.RLock()
	result, ok := n.cache[key]
	n.mu.RUnlock()
	if ok {
		return result
	}
	result = fn(text)
	n.mu.Lock()
	n.cache[key] = result
	n.mu.Unlock()
	return result
}

// SplitAnnotations separates text into its main part and the bracketed
// annotation spans, in order of appearance. The main part has the spans
// removed and whitespace collapsed.
func SplitAnnotations(text string) (string, []string) {
	if text == "" {
		return "", nil
	}
	spans := annotationSpan.FindAllString(text, -1)
	if len(spans) == 0 {
		return strings.TrimSpace(text), nil
	}
	main := annotationSpan.ReplaceAllString(text, " ")
	main = collapseWhitespace(main)
	return main, spans
}

func normalizeStripped(text string) string {
	out := foldRunes(text)
	out = strings.ToLower(out)
	out = normalizeSeparators(out)
	out = annotationSpan.ReplaceAllString(out, " ")
	return collapseWhitespace(out)
}

func normalizePreserving(text string) string {
	folded := normalizeSeparators(strings.ToLower(foldRunes(text)))

	var b strings.Builder
	b.Grow(len(folded))
	last := 0
	for _, loc := range annotationSpan.FindAllStringIndex(folded, -1) {
		writeMainSegment(&b, folded[last:loc[0]])
		content := annotationContent(folded[loc[0]:loc[1]])
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('(')
		b.WriteString(collapseWhitespace(content))
		b.WriteByte(')')
		last = loc[1]
	}
	writeMainSegment(&b, folded[last:])
	return collapseWhitespace(b.String())
}

func writeMainSegment(b *strings.Builder, segment string) {
	// Hyphens act as word separators outside annotations.
	segment = collapseWhitespace(strings.ReplaceAll(segment, "-", " "))
	if segment == "" {
		return
	}
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(segment)
}

func annotationContent(span string) string {
	rs := []rune(span)
	if len(rs) < 2 {
		return span
	}
	return string(rs[1 : len(rs)-1])
}

func foldRunes(text string) string {
	out, _, err := transform.String(foldChain, text)
	if err != nil {
		return text
	}
	return out
}

func normalizeSeparators(text string) string {
	text = hyphenVariants.ReplaceAllString(text, "-")
	text = strings.ReplaceAll(text, "／", "/")
	text = strings.ReplaceAll(text, "＆", "&")
	text = asciiDotRuns.ReplaceAllString(text, "...")
	text = cjkDotRuns.ReplaceAllString(text, "...")
	return text
}

func collapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(text, " "))
}
