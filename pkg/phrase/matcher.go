package phrase

import "fmt"

// Match is one phrase occurrence in scanned text.
type Match struct {
	// Start and End are rune offsets into the scanned text, covering the first
	// through the last matched word, markup in between included.
	Start int `json:"start"`
	End   int `json:"end"`
	// Phrase is the phrase exactly as it was registered.
	Phrase string `json:"phrase"`
	// Text is the scanned text covered by the match.
	Text string `json:"text"`
}

// Matcher finds registered phrases in text. It is immutable and safe for
// concurrent use.
type Matcher struct {
	arena *arena
	roots *rootIndex
	count int
}

// Compile freezes a copy of t into a Matcher. Later insertions into t do not
// affect the returned Matcher.
func Compile(t *Trie) (*Matcher, error) {
	a := t.arena.clone()
	roots, err := buildRootIndex(t.roots)
	if err != nil {
		return nil, fmt.Errorf("compile trie: %w", err)
	}
	return &Matcher{arena: a, roots: roots, count: t.count}, nil
}

// Size returns the number of distinct registered phrases.
func (m *Matcher) Size() int {
	return m.count
}

// RootCount returns the number of distinct first words.
func (m *Matcher) RootCount() int {
	return m.roots.count()
}

// LookupRoot returns the node reached directly from the root by word.
func (m *Matcher) LookupRoot(word string) (Node, bool) {
	id, ok := m.roots.get(m.arena.norm.Normalize(word))
	if !ok {
		return Node{}, false
	}
	return Node{a: m.arena, id: id}, true
}

// pending is a buffered token and its normalized form.
type pending struct {
	tok Token
	key string
}

// ParseText returns the non-overlapping occurrences of registered phrases in
// text, left to right. At each word the longest registered phrase starting
// there wins; when none does, scanning resumes at the next word.
func (m *Matcher) ParseText(text string) []Match {
	var (
		matches []Match
		buf     []pending
		tz      = NewTokenizer(text)
	)

	// fill buffers tokens until buf holds n of them.
	fill := func(n int) bool {
		for len(buf) < n {
			tok, ok := tz.Next()
			if !ok {
				return false
			}
			buf = append(buf, pending{tok: tok, key: m.arena.norm.Normalize(tok.Text)})
		}
		return true
	}

	for fill(1) {
		id, ok := m.roots.get(buf[0].key)
		if !ok {
			buf = buf[1:]
			continue
		}

		last, hit := -1, id
		if m.arena.nodes[id].terminal {
			last = 0
		}
		for depth := 1; fill(depth + 1); depth++ {
			child, ok := m.arena.child(id, buf[depth].key)
			if !ok {
				break
			}
			id = child
			if m.arena.nodes[id].terminal {
				last, hit = depth, id
			}
		}
		if last < 0 {
			buf = buf[1:]
			continue
		}

		first, end := buf[0].tok, buf[last].tok
		matches = append(matches, Match{
			Start:  first.Start,
			End:    end.End,
			Phrase: m.arena.nodes[hit].phrase,
			Text:   text[first.ByteStart:end.ByteEnd],
		})
		buf = buf[last+1:]
	}
	return matches
}
