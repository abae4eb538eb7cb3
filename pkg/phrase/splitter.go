package phrase

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a scanned word with its position in the original text.
// Start and End are rune offsets; ByteStart and ByteEnd index the same span in bytes.
type Token struct {
	Text      string
	Start     int
	End       int
	ByteStart int
	ByteEnd   int
}

const (
	commentOpen  = "<!--"
	commentClose = "-->"
)

// Tokenizer splits text into words, skipping markup. It is lazy and
// single-pass: once Next reports false it stays exhausted.
//
// Markup is anything from '<' to the next '>'. Comments ("<!--") run to the
// next "-->", or to the next '>' when no "-->" follows. An unterminated '<'
// swallows the rest of the input.
type Tokenizer struct {
	text string
	pos  int // byte offset
	rpos int // rune offset
}

// NewTokenizer creates a tokenizer over text.
func NewTokenizer(text string) *Tokenizer {
	return &Tokenizer{text: text}
}

// Next returns the next word token.
func (t *Tokenizer) Next() (Token, bool) {
	for t.pos < len(t.text) {
		r, size := utf8.DecodeRuneInString(t.text[t.pos:])
		switch {
		case r == '<':
			t.skipMarkup()
		case r == '>' || unicode.IsSpace(r):
			t.pos += size
			t.rpos++
		default:
			return t.word(), true
		}
	}
	return Token{}, false
}

// All yields the remaining tokens.
func (t *Tokenizer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := t.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

func (t *Tokenizer) word() Token {
	tok := Token{Start: t.rpos, ByteStart: t.pos}
	for t.pos < len(t.text) {
		r, size := utf8.DecodeRuneInString(t.text[t.pos:])
		if isDelimiter(r) {
			break
		}
		t.pos += size
		t.rpos++
	}
	tok.End = t.rpos
	tok.ByteEnd = t.pos
	tok.Text = t.text[tok.ByteStart:tok.ByteEnd]
	return tok
}

// skipMarkup advances past the markup span opened at t.pos.
func (t *Tokenizer) skipMarkup() {
	end := len(t.text)
	if strings.HasPrefix(t.text[t.pos:], commentOpen) {
		from := t.pos + len(commentOpen)
		if i := strings.Index(t.text[from:], commentClose); i >= 0 {
			end = from + i + len(commentClose)
		} else if i := strings.IndexByte(t.text[from:], '>'); i >= 0 {
			end = from + i + 1
		}
	} else if i := strings.IndexByte(t.text[t.pos+1:], '>'); i >= 0 {
		end = t.pos + 1 + i + 1
	}
	t.rpos += utf8.RuneCountInString(t.text[t.pos:end])
	t.pos = end
}

func isDelimiter(r rune) bool {
	return r == '<' || r == '>' || unicode.IsSpace(r)
}

// Tokenize returns all word tokens of text.
func Tokenize(text string) []Token {
	var tokens []Token
	for tok := range NewTokenizer(text).All() {
		tokens = append(tokens, tok)
	}
	return tokens
}
