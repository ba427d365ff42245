package output

import (
	"bufio"
	"io"
	"strings"
)

// DefaultSeparator puts a blank line between units.
const DefaultSeparator = "\n\n"

// TextWriter writes plain text. Each heading is a unit, followed by the
// section text as one more unit; units are joined by the separator.
// Nothing is written until Flush.
type TextWriter struct {
	w         *bufio.Writer
	separator string
	units     []string
	flushed   bool
}

// NewTextWriter creates a text writer.
func NewTextWriter(w io.Writer, separator string) *TextWriter {
	return &TextWriter{
		w:         bufio.NewWriter(w),
		separator: separator,
	}
}

// Write buffers a section's units.
func (w *TextWriter) Write(s Section) error {
	w.units = append(w.units, s.Units()...)
	return nil
}

// WriteAll buffers multiple sections.
func (w *TextWriter) WriteAll(sections []Section) error {
	for _, s := range sections {
		if err := w.Write(s); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes the joined units followed by a newline.
func (w *TextWriter) Flush() error {
	if w.flushed {
		return nil
	}
	w.flushed = true

	if _, err := w.w.WriteString(strings.Join(w.units, w.separator)); err != nil {
		return err
	}
	if _, err := w.w.WriteString("\n"); err != nil {
		return err
	}
	return w.w.Flush()
}

// Close flushes the writer.
func (w *TextWriter) Close() error {
	return w.Flush()
}
