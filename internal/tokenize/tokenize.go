// Package tokenize splits text into word tokens.
package tokenize

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Greek splits polytonic Greek into words and punctuation using Unicode
// word boundaries (UAX #29). An elision mark directly after a word stays
// attached to it, so "δ’" is one token.
type Greek struct{}

// Tokenize returns the tokens of text in order. Whitespace is dropped.
func (Greek) Tokenize(text string) ([]string, error) {
	return Words(text), nil
}

// Words segments text at word boundaries, dropping whitespace segments.
func Words(text string) []string {
	var tokens []string
	state := -1
	var word string
	for len(text) > 0 {
		word, text, state = uniseg.FirstWordInString(text, state)
		if strings.TrimSpace(word) == "" {
			continue
		}
		if isElision(word) && len(tokens) > 0 && endsWithLetter(tokens[len(tokens)-1]) {
			tokens[len(tokens)-1] += word
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

func isElision(s string) bool {
	return s == "’" || s == "'" || s == "ʼ"
}

func endsWithLetter(s string) bool {
	r := []rune(s)
	return len(r) > 0 && unicode.IsLetter(r[len(r)-1])
}
