package phrase

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"
)

// ReadPhrases reads one phrase per line from r. Blank lines and lines
// starting with '#' are skipped.
func ReadPhrases(r io.Reader) ([]string, error) {
	var phrases []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		phrases = append(phrases, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return phrases, nil
}

// LoadPhrases reads a phrase list file.
func LoadPhrases(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open phrase file %s: %w", path, err)
	}
	defer f.Close()

	phrases, err := ReadPhrases(f)
	if err != nil {
		return nil, fmt.Errorf("read phrase file %s: %w", path, err)
	}
	return phrases, nil
}

// PhraseList is an editable phrase list file. Phrases are kept with their
// original casing; whitespace runs are collapsed to single spaces.
type PhraseList struct {
	phrases map[string]struct{}
	path    string
	mu      sync.RWMutex
}

// OpenPhraseList loads the list at path. A missing file yields an empty list
// that Save will create.
func OpenPhraseList(path string) (*PhraseList, error) {
	l := &PhraseList{
		phrases: make(map[string]struct{}),
		path:    path,
	}
	phrases, err := LoadPhrases(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	for _, p := range phrases {
		l.phrases[canonical(p)] = struct{}{}
	}
	return l, nil
}

// Add adds a phrase. It reports false for blank or already present phrases.
func (l *PhraseList) Add(phrase string) bool {
	c := canonical(phrase)
	if c == "" {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.phrases[c]; ok {
		return false
	}
	l.phrases[c] = struct{}{}
	return true
}

// Remove removes a phrase. It reports whether the phrase was present.
func (l *PhraseList) Remove(phrase string) bool {
	c := canonical(phrase)

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.phrases[c]; !ok {
		return false
	}
	delete(l.phrases, c)
	return true
}

// Contains checks if a phrase is in the list.
func (l *PhraseList) Contains(phrase string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.phrases[canonical(phrase)]
	return ok
}

// Phrases returns the phrases in sorted order.
func (l *PhraseList) Phrases() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]string, 0, len(l.phrases))
	for p := range l.phrases {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Count returns the number of phrases in the list.
func (l *PhraseList) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.phrases)
}

// Path returns the backing file path.
func (l *PhraseList) Path() string {
	return l.path
}

// Save writes the list back to its file, one phrase per line, sorted.
func (l *PhraseList) Save() error {
	phrases := l.Phrases()

	file, err := os.Create(l.path)
	if err != nil {
		return fmt.Errorf("create phrase file %s: %w", l.path, err)
	}
	w := bufio.NewWriter(file)
	for _, p := range phrases {
		if _, err := w.WriteString(p + "\n"); err != nil {
			file.Close()
			return fmt.Errorf("write phrase file %s: %w", l.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("write phrase file %s: %w", l.path, err)
	}
	return file.Close()
}

// Matcher adds the current phrases to b and builds a Matcher. A nil b
// uses a case-sensitive builder.
func (l *PhraseList) Matcher(b *Builder) (*Matcher, error) {
	if b == nil {
		b = NewBuilder()
	}
	return b.AddPhrases(l.Phrases()).Build()
}

func canonical(phrase string) string {
	return strings.Join(strings.Fields(phrase), " ")
}
