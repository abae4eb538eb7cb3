package phrase

import (
	"iter"
	"strings"
)

// Trie is a word-keyed phrase trie. Every distinct first word owns a subtree
// reached through the root mapping.
//
// A Trie is not safe for concurrent use. Build a Matcher from it (see Builder)
// to scan text from several goroutines.
type Trie struct {
	arena     *arena
	roots     map[string]NodeID
	rootOrder []string
	count     int
}

// NewTrie creates an empty trie. With ignoreCase set, words are lowercased
// before they are stored or compared.
func NewTrie(ignoreCase bool) *Trie {
	if ignoreCase {
		return NewTrieWithNormalizer(NewNormalizer())
	}
	return NewTrieWithNormalizer(exactNormalizer())
}

// NewTrieWithNormalizer creates an empty trie comparing words through norm.
// A nil norm compares words exactly.
func NewTrieWithNormalizer(norm *Normalizer) *Trie {
	if norm == nil {
		norm = exactNormalizer()
	}
	return &Trie{
		arena: &arena{norm: norm},
		roots: make(map[string]NodeID),
	}
}

// Normalized reports whether the trie normalizes words before comparing them.
func (t *Trie) Normalized() bool {
	return !t.arena.norm.Identity()
}

// Insert registers phrase. Blank phrases are ignored; inserting the same
// phrase again is a no-op. It reports whether the phrase was newly added.
func (t *Trie) Insert(phrase string) bool {
	words := t.words(phrase)
	if len(words) == 0 {
		return false
	}

	id, ok := t.roots[words[0]]
	if !ok {
		id = t.arena.alloc(words[0])
		t.roots[words[0]] = id
		t.rootOrder = append(t.rootOrder, words[0])
	}
	for _, w := range words[1:] {
		child, ok := t.arena.child(id, w)
		if !ok {
			child = t.arena.addChild(id, w)
		}
		id = child
	}

	n := &t.arena.nodes[id]
	if n.terminal {
		return false
	}
	n.terminal = true
	n.phrase = phrase
	t.count++
	return true
}

// InsertAll registers every phrase in order and returns how many were newly added.
func (t *Trie) InsertAll(phrases []string) int {
	added := 0
	for _, p := range phrases {
		if t.Insert(p) {
			added++
		}
	}
	return added
}

// LookupRoot returns the node reached directly from the root by word.
func (t *Trie) LookupRoot(word string) (Node, bool) {
	id, ok := t.roots[t.arena.norm.Normalize(word)]
	if !ok {
		return Node{}, false
	}
	return Node{a: t.arena, id: id}, true
}

// Size returns the number of distinct registered phrases.
func (t *Trie) Size() int {
	return t.count
}

// Roots iterates the first-word nodes in insertion order.
func (t *Trie) Roots() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, w := range t.rootOrder {
			if !yield(Node{a: t.arena, id: t.roots[w]}) {
				return
			}
		}
	}
}

// RootCount returns the number of distinct first words.
func (t *Trie) RootCount() int {
	return len(t.roots)
}

// words splits phrase on whitespace and normalizes each word. Words that
// normalize to nothing are dropped, since no token can ever equal them.
func (t *Trie) words(phrase string) []string {
	fields := strings.Fields(phrase)
	out := fields[:0]
	for _, f := range fields {
		if w := t.arena.norm.Normalize(f); w != "" {
			out = append(out, w)
		}
	}
	return out
}
