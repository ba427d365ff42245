// Package output handles output formatting and writing.
package output

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Format represents output format types.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatJSONL, FormatYAML}

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	return slices.Contains(Formats, f)
}

// FormatNames returns the supported formats joined for help text.
func FormatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Section is one extracted piece of a source: a page of a crawl or a unit
// of a document.
type Section struct {
	Source   string   `json:"source" yaml:"source"`
	Headings []string `json:"headings,omitempty" yaml:"headings,omitempty"`
	Text     string   `json:"text" yaml:"text"`
}

// Units returns the section as plain text units: each heading, then the
// text. Empty text is still a unit.
func (s Section) Units() []string {
	units := make([]string, 0, len(s.Headings)+1)
	units = append(units, s.Headings...)
	return append(units, s.Text)
}

// Writer handles output serialization.
type Writer interface {
	// Write outputs a single section.
	Write(s Section) error

	// WriteAll outputs multiple sections.
	WriteAll(s []Section) error

	// Flush ensures all data is written.
	Flush() error

	// Close releases resources.
	Close() error
}

// WriterOption configures a writer.
type WriterOption func(*writerConfig)

type writerConfig struct {
	pretty    bool
	separator string
}

// WithPretty enables pretty-printing.
func WithPretty(enabled bool) WriterOption {
	return func(c *writerConfig) {
		c.pretty = enabled
	}
}

// WithSeparator sets the text format unit separator.
func WithSeparator(sep string) WriterOption {
	return func(c *writerConfig) {
		c.separator = sep
	}
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format, opts ...WriterOption) (Writer, error) {
	cfg := &writerConfig{
		pretty:    true,
		separator: DefaultSeparator,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	switch format {
	case FormatText, "":
		return NewTextWriter(w, cfg.separator), nil
	case FormatJSON:
		return NewJSONWriter(w, cfg.pretty), nil
	case FormatJSONL:
		return NewJSONLWriter(w), nil
	case FormatYAML:
		return NewYAMLWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
