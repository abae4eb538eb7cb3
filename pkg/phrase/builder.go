package phrase

import "go.uber.org/zap"

// Builder collects phrases and settings and produces a Matcher.
// Matching is case-sensitive unless IgnoreCase or WithNormalizer is used.
type Builder struct {
	phrases    []string
	ignoreCase bool
	norm       *Normalizer
	cacheSize  int
	logger     *zap.Logger
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{logger: zap.NewNop()}
}

// IgnoreCase makes matching case-insensitive.
func (b *Builder) IgnoreCase() *Builder {
	b.ignoreCase = true
	return b
}

// WithNormalizer sets the word normalization pipeline. It takes precedence
// over IgnoreCase.
func (b *Builder) WithNormalizer(n *Normalizer) *Builder {
	b.norm = n
	return b
}

// WithCache memoizes token normalization in an LRU of size entries.
// It has no effect on case-sensitive matchers, which do not normalize.
func (b *Builder) WithCache(size int) *Builder {
	b.cacheSize = size
	return b
}

// WithLogger sets the logger used for debug output.
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// AddPhrase registers a phrase.
func (b *Builder) AddPhrase(phrase string) *Builder {
	b.phrases = append(b.phrases, phrase)
	return b
}

// AddPhrases registers several phrases.
func (b *Builder) AddPhrases(phrases []string) *Builder {
	b.phrases = append(b.phrases, phrases...)
	return b
}

func (b *Builder) normalizer() (*Normalizer, error) {
	n := b.norm
	switch {
	case n != nil:
	case b.ignoreCase:
		n = NewNormalizer()
	default:
		n = exactNormalizer()
	}
	return n.WithCache(b.cacheSize)
}

// Build constructs an immutable Matcher from the registered phrases.
// The builder stays usable; further additions do not affect built matchers.
func (b *Builder) Build() (*Matcher, error) {
	n, err := b.normalizer()
	if err != nil {
		return nil, err
	}

	trie := NewTrieWithNormalizer(n)
	for _, p := range b.phrases {
		if trie.Insert(p) {
			continue
		}
		if len(trie.words(p)) == 0 {
			b.logger.Debug("ignore blank phrase", zap.String("phrase", p))
		} else {
			b.logger.Debug("ignore duplicate phrase", zap.String("phrase", p))
		}
	}

	m, err := Compile(trie)
	if err != nil {
		return nil, err
	}
	b.logger.Debug("phrase matcher built",
		zap.Int("phrases", m.Size()),
		zap.Int("roots", m.RootCount()),
		zap.Bool("normalized", trie.Normalized()),
		zap.Int("cache_size", b.cacheSize),
	)
	return m, nil
}
