// Package betacode converts TLG/Perseus beta code to Unicode polytonic Greek.
//
// Beta code writes Greek in ASCII: letters map one to one, "*" marks a
// capital, and the diacritics ) ( / \ = + | follow a lowercase letter or sit
// between "*" and a capital. Output is NFC composed.
package betacode

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrDanglingCapital is returned when "*" is not followed by a letter.
var ErrDanglingCapital = errors.New("capital marker without a letter")

var letters = map[byte]rune{
	'a': 'α', 'b': 'β', 'g': 'γ', 'd': 'δ', 'e': 'ε', 'z': 'ζ', 'h': 'η',
	'q': 'θ', 'i': 'ι', 'k': 'κ', 'l': 'λ', 'm': 'μ', 'n': 'ν', 'c': 'ξ',
	'o': 'ο', 'p': 'π', 'r': 'ρ', 's': 'σ', 't': 'τ', 'u': 'υ', 'f': 'φ',
	'x': 'χ', 'y': 'ψ', 'w': 'ω', 'v': 'ϝ',
}

var capitals = map[byte]rune{
	'a': 'Α', 'b': 'Β', 'g': 'Γ', 'd': 'Δ', 'e': 'Ε', 'z': 'Ζ', 'h': 'Η',
	'q': 'Θ', 'i': 'Ι', 'k': 'Κ', 'l': 'Λ', 'm': 'Μ', 'n': 'Ν', 'c': 'Ξ',
	'o': 'Ο', 'p': 'Π', 'r': 'Ρ', 's': 'Σ', 't': 'Τ', 'u': 'Υ', 'f': 'Φ',
	'x': 'Χ', 'y': 'Ψ', 'w': 'Ω', 'v': 'Ϝ',
}

// Combining marks, keyed by beta code symbol. rank orders them so NFC can
// compose: breathing, then diaeresis, then accent, then iota subscript.
var diacritics = map[byte]struct {
	mark rune
	rank int
}{
	')':  {'\u0313', 0}, // smooth breathing
	'(':  {'\u0314', 0}, // rough breathing
	'+':  {'\u0308', 1}, // diaeresis
	'/':  {'\u0301', 2}, // acute
	'\\': {'\u0300', 2}, // grave
	'=':  {'\u0342', 2}, // circumflex
	'|':  {'\u0345', 3}, // iota subscript
}

var punctuation = map[byte]rune{
	':':  '\u00b7', // ano teleia
	'\'': '\u2019', // elision
	'_':  '\u2014', // dash
	'#':  '\u02b9', // numeral sign
}

// Converter implements beta code conversion as a value.
type Converter struct{}

// Convert converts s to Unicode Greek.
func (Converter) Convert(s string) (string, error) {
	return ToUnicode(s)
}

// ToUnicode converts beta code to NFC Unicode Greek. Characters with no beta
// code meaning (spaces, digits, Latin punctuation) pass through.
func ToUnicode(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s) * 2)

	for i := 0; i < len(s); {
		ch := lower(s[i])

		switch {
		case ch == '*':
			marks, j := readDiacritics(s, i+1)
			if j >= len(s) {
				return "", fmt.Errorf("offset %d: %w", i, ErrDanglingCapital)
			}
			r, ok := capitals[lower(s[j])]
			if !ok {
				return "", fmt.Errorf("offset %d: %w", i, ErrDanglingCapital)
			}
			// Some texts put the diacritics after the capital instead.
			trailing, k := readDiacritics(s, j+1)
			b.WriteRune(r)
			writeMarks(&b, append(marks, trailing...))
			i = k

		case ch == 's':
			r, next := sigma(s, i)
			b.WriteRune(r)
			marks, k := readDiacritics(s, next)
			writeMarks(&b, marks)
			i = k

		case letters[ch] != 0:
			b.WriteRune(letters[ch])
			marks, k := readDiacritics(s, i+1)
			writeMarks(&b, marks)
			i = k

		case punctuation[ch] != 0:
			b.WriteRune(punctuation[ch])
			i++

		default:
			b.WriteByte(s[i])
			i++
		}
	}

	return norm.NFC.String(b.String()), nil
}

// sigma picks the sigma form for the "s" at s[i] and returns the index after
// any explicit form digit.
func sigma(s string, i int) (rune, int) {
	if i+1 < len(s) {
		switch s[i+1] {
		case '1':
			return 'σ', i + 2
		case '2':
			return 'ς', i + 2
		case '3':
			return 'ϲ', i + 2
		}
	}

	// Final unless a letter follows, skipping over diacritics.
	j := i + 1
	for j < len(s) {
		if _, ok := diacritics[s[j]]; !ok {
			break
		}
		j++
	}
	if j < len(s) && (letters[lower(s[j])] != 0 || s[j] == '*') {
		return 'σ', i + 1
	}
	return 'ς', i + 1
}

type mark struct {
	r    rune
	rank int
}

func readDiacritics(s string, i int) ([]mark, int) {
	var marks []mark
	for i < len(s) {
		d, ok := diacritics[s[i]]
		if !ok {
			break
		}
		marks = append(marks, mark{d.mark, d.rank})
		i++
	}
	return marks, i
}

func writeMarks(b *strings.Builder, marks []mark) {
	sort.SliceStable(marks, func(a, c int) bool { return marks[a].rank < marks[c].rank })
	for _, m := range marks {
		b.WriteRune(m.r)
	}
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
