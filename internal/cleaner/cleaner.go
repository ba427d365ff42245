// Package cleaner provides small, composable text transforms.
// Each transform is a pure function of its input; a Chain applies them in
// order, so later steps may rely on the shape earlier steps leave behind.
package cleaner

import (
	"regexp"
	"strings"
)

// Cleaner transforms text into a cleaner form.
type Cleaner interface {
	// Clean returns the transformed text.
	Clean(text string) string

	// Name returns the cleaner name for logging/debugging.
	Name() string
}

// RegexpCleaner replaces every match of a pattern with a template.
// The template follows regexp.Regexp.ReplaceAllString ($1 expands).
type RegexpCleaner struct {
	name     string
	pattern  *regexp.Regexp
	template string
}

// NewRegexp creates a named regexp replacement step.
// It panics if pattern does not compile, like regexp.MustCompile.
func NewRegexp(name, pattern, template string) *RegexpCleaner {
	return &RegexpCleaner{
		name:     name,
		pattern:  regexp.MustCompile(pattern),
		template: template,
	}
}

// Clean applies the replacement.
func (c *RegexpCleaner) Clean(text string) string {
	return c.pattern.ReplaceAllString(text, c.template)
}

// Name returns the step name.
func (c *RegexpCleaner) Name() string {
	return c.name
}

// TrimCleaner removes leading and trailing whitespace.
type TrimCleaner struct{}

// NewTrim creates a whitespace trimming step.
func NewTrim() *TrimCleaner {
	return &TrimCleaner{}
}

// Clean trims the text.
func (c *TrimCleaner) Clean(text string) string {
	return strings.TrimSpace(text)
}

// Name returns the cleaner type.
func (c *TrimCleaner) Name() string {
	return "trim"
}
