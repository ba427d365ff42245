package phi

import (
	"github.com/jmylchreest/scriptorium/internal/cleaner"
)

// Text cleaning steps, in the order they must run.
var (
	// Dehyphenate rejoins a word split across a line: "-" + newline + 2+ spaces.
	Dehyphenate = cleaner.NewRegexp("dehyphenate", `-\n {2,}`, "")

	// UnwrapLines turns a newline and its indentation into one space.
	UnwrapLines = cleaner.NewRegexp("unwrap-lines", `\n +`, " ")

	// CollapseSpaces squeezes runs of spaces.
	CollapseSpaces = cleaner.NewRegexp("collapse-spaces", ` {2,}`, " ")

	// StripInterpolation drops the angle brackets around editorially
	// supplied letters, keeping the letters: "ab<c>de" -> "abcde".
	StripInterpolation = cleaner.NewRegexp("strip-interpolation", `<([^<>]+)>`, "$1")

	// Trim removes surrounding whitespace from the result.
	Trim = cleaner.NewTrim()
)

var textChain = cleaner.NewChain(
	Dehyphenate,
	UnwrapLines,
	CollapseSpaces,
	StripInterpolation,
	Trim,
)

// TextSteps returns the body text cleaning steps in application order.
func TextSteps() []cleaner.Cleaner {
	return textChain.Steps()
}

// TextCleaner returns the full body text cleaning chain.
func TextCleaner() cleaner.Cleaner {
	return textChain
}

// CleanText normalizes raw page text.
func CleanText(raw string) string {
	return textChain.Clean(raw)
}
