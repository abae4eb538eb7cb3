package phrase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tok(text string, start, end int) Token {
	return Token{Text: text, Start: start, End: end, ByteStart: start, ByteEnd: end}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "plain words",
			input:    "golden hammer",
			expected: []Token{tok("golden", 0, 6), tok("hammer", 7, 13)},
		},
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			input:    " \t\n ",
			expected: nil,
		},
		{
			name:     "mixed whitespace",
			input:    "tab\tand\nnewline",
			expected: []Token{tok("tab", 0, 3), tok("and", 4, 7), tok("newline", 8, 15)},
		},
		{
			name:     "punctuation stays in the word",
			input:    "great. But",
			expected: []Token{tok("great.", 0, 6), tok("But", 7, 10)},
		},
		{
			name:     "tags around words",
			input:    "<b>word1</b> <i>word2</i>",
			expected: []Token{tok("word1", 3, 8), tok("word2", 16, 21)},
		},
		{
			name:     "tags glue words",
			input:    "<li>golden</li><li>hammer</li>",
			expected: []Token{tok("golden", 4, 10), tok("hammer", 19, 25)},
		},
		{
			name:     "attribute text is markup",
			input:    `<p class=" Analysis paralysis ">Hello</p>`,
			expected: []Token{tok("Hello", 32, 37)},
		},
		{
			name:     "comment",
			input:    "<!-- Analysis paralysis --> Hello",
			expected: []Token{tok("Hello", 28, 33)},
		},
		{
			name:     "comment containing a bracket",
			input:    "<!-- a > b --> c",
			expected: []Token{tok("c", 15, 16)},
		},
		{
			name:     "comment without close sequence ends at bracket",
			input:    "<!-- a > b c",
			expected: []Token{tok("b", 9, 10), tok("c", 11, 12)},
		},
		{
			name:     "unterminated tag swallows the rest",
			input:    "a <b c d",
			expected: []Token{tok("a", 0, 1)},
		},
		{
			name:     "unterminated comment swallows the rest",
			input:    "a <!-- b c",
			expected: []Token{tok("a", 0, 1)},
		},
		{
			name:     "stray closing bracket delimits",
			input:    "a>b",
			expected: []Token{tok("a", 0, 1), tok("b", 2, 3)},
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Tokenize(tt.input), tt.name)
	}
}

func TestTokenizeRuneOffsets(t *testing.T) {
	tokens := Tokenize("<i>über</i> alles")
	assert.Equal(t, []Token{
		{Text: "über", Start: 3, End: 7, ByteStart: 3, ByteEnd: 8},
		{Text: "alles", Start: 12, End: 17, ByteStart: 13, ByteEnd: 18},
	}, tokens)
}

func TestTokenizerExhausted(t *testing.T) {
	tz := NewTokenizer("one two")

	var words []string
	for tk := range tz.All() {
		words = append(words, tk.Text)
	}
	assert.Equal(t, []string{"one", "two"}, words)

	_, ok := tz.Next()
	assert.False(t, ok)
	_, ok = tz.Next()
	assert.False(t, ok, "tokenizer does not restart")
}

func TestTokenizerAllStopsEarly(t *testing.T) {
	tz := NewTokenizer("one two three")
	for tk := range tz.All() {
		assert.Equal(t, "one", tk.Text)
		break
	}
	next, ok := tz.Next()
	assert.True(t, ok)
	assert.Equal(t, "two", next.Text)
}
