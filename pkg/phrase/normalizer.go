package phrase

import (
	"fmt"
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NormalizerFunc defines a single normalization step.
type NormalizerFunc func(string) string

// Normalizer applies a configurable pipeline of normalization steps to
// registered words and scanned tokens alike. A Normalizer with no steps
// compares words exactly.
type Normalizer struct {
	steps []NormalizerFunc
	cache *lru.Cache[string, string]
}

// NewNormalizer creates the case-insensitive default pipeline.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		steps: []NormalizerFunc{Lowercase},
	}
}

// NewNormalizerWithSteps creates a normalizer with a custom pipeline.
func NewNormalizerWithSteps(steps ...NormalizerFunc) *Normalizer {
	return &Normalizer{steps: steps}
}

// exactNormalizer returns an identity normalizer used for case-sensitive matching.
func exactNormalizer() *Normalizer {
	return &Normalizer{}
}

// WithCache returns a copy of n that memoizes Normalize results in a
// thread-safe LRU of the given size. A size <= 0 returns n unchanged.
func (n *Normalizer) WithCache(size int) (*Normalizer, error) {
	if size <= 0 || n.Identity() {
		return n, nil
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("create normalizer cache: %w", err)
	}
	return &Normalizer{steps: n.steps, cache: cache}, nil
}

// Identity reports whether the pipeline leaves words untouched.
func (n *Normalizer) Identity() bool {
	return n == nil || len(n.steps) == 0
}

// Normalize applies all configured steps in order.
func (n *Normalizer) Normalize(s string) string {
	if n.Identity() {
		return s
	}
	if n.cache != nil {
		if v, ok := n.cache.Get(s); ok {
			return v
		}
	}
	out := s
	for _, step := range n.steps {
		out = step(out)
	}
	if n.cache != nil {
		n.cache.Add(s, out)
	}
	return out
}

// CacheLen returns the number of memoized entries (0 if caching is disabled).
func (n *Normalizer) CacheLen() int {
	if n == nil || n.cache == nil {
		return 0
	}
	return n.cache.Len()
}

// Lowercase converts to lowercase.
func Lowercase(s string) string {
	return strings.ToLower(s)
}

// FoldCase applies Unicode case folding, so "Straße" and "STRASSE" compare equal.
// A Caser is stateful, so one is created per call.
func FoldCase(s string) string {
	return cases.Fold().String(s)
}

// NFC applies Unicode canonical composition.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// NFKC applies Unicode compatibility composition (ﬁ → fi, full-width → ASCII).
func NFKC(s string) string {
	return norm.NFKC.String(s)
}

// RemoveControlChars removes Unicode control characters.
func RemoveControlChars(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if !unicode.IsControl(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// quoteReplacements maps typographic quotes to ASCII.
var quoteReplacements = map[rune]rune{
	'\u201E': '"',  // „ low double quote
	'\u201C': '"',  // " left double quote
	'\u201D': '"',  // " right double quote
	'\u00AB': '"',  // « left-pointing double angle
	'\u00BB': '"',  // » right-pointing double angle
	'\u2018': '\'', // ' left single quote
	'\u2019': '\'', // ' right single quote
	'\u201A': '\'', // ‚ single low-9 quote
	'\u2039': '\'', // ‹ single left-pointing angle
	'\u203A': '\'', // › single right-pointing angle
}

// NormalizeQuotes converts typographic quotes to ASCII, so "don’t" matches "don't".
func NormalizeQuotes(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if replacement, ok := quoteReplacements[r]; ok {
			result.WriteRune(replacement)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// namedSteps maps configuration names to steps.
var namedSteps = map[string]NormalizerFunc{
	"lowercase":     Lowercase,
	"fold":          FoldCase,
	"nfc":           NFC,
	"nfkc":          NFKC,
	"control_chars": RemoveControlChars,
	"quotes":        NormalizeQuotes,
}

// StepByName resolves a step from its configuration name.
func StepByName(name string) (NormalizerFunc, bool) {
	step, ok := namedSteps[strings.ToLower(strings.TrimSpace(name))]
	return step, ok
}

// NewNormalizerFromNames builds a pipeline from configuration names.
func NewNormalizerFromNames(names ...string) (*Normalizer, error) {
	steps := make([]NormalizerFunc, 0, len(names))
	for _, name := range names {
		step, ok := StepByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown normalizer step: %q", name)
		}
		steps = append(steps, step)
	}
	return NewNormalizerWithSteps(steps...), nil
}
