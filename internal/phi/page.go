// Package phi turns pages of the PHI Latin texts site into clean text.
//
// A Page is built once from the raw strings scraped off a page and holds
// both the raw and the cleaned forms. Factory does the scraping.
package phi

import (
	"strings"
)

// Page is one page of a PHI text. It is immutable once built.
type Page struct {
	rawText     string
	rawHeadings []string
	prevURL     string
	nextURL     string

	headings []string
	text     string
}

// NewPage builds a Page from raw scraped values and cleans them.
// An empty prevURL or nextURL means the page has no such link. No input is
// validated; empty inputs produce empty outputs.
func NewPage(rawText string, rawHeadings []string, prevURL, nextURL string) Page {
	raw := make([]string, len(rawHeadings))
	copy(raw, rawHeadings)

	return Page{
		rawText:     rawText,
		rawHeadings: raw,
		prevURL:     prevURL,
		nextURL:     nextURL,
		headings:    CleanHeadings(raw),
		text:        CleanText(rawText),
	}
}

// Headings returns the cleaned headings in page order.
func (p Page) Headings() []string {
	out := make([]string, len(p.headings))
	copy(out, p.headings)
	return out
}

// Text returns the cleaned body text.
func (p Page) Text() string {
	return p.text
}

// RawHeadings returns the headings as scraped.
func (p Page) RawHeadings() []string {
	out := make([]string, len(p.rawHeadings))
	copy(out, p.rawHeadings)
	return out
}

// RawText returns the body text as scraped.
func (p Page) RawText() string {
	return p.rawText
}

// PrevURL returns the absolute URL of the previous page, if any.
func (p Page) PrevURL() (string, bool) {
	return p.prevURL, p.prevURL != ""
}

// NextURL returns the absolute URL of the next page, if any.
func (p Page) NextURL() (string, bool) {
	return p.nextURL, p.nextURL != ""
}

// CleanHeadings trims surrounding whitespace from each heading.
// Inner whitespace is left alone.
func CleanHeadings(raw []string) []string {
	cleaned := make([]string, 0, len(raw))
	for _, h := range raw {
		cleaned = append(cleaned, strings.TrimSpace(h))
	}
	return cleaned
}
