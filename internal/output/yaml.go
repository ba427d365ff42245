package output

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLWriter writes all sections as one YAML sequence.
type YAMLWriter struct {
	w       *bufio.Writer
	items   []Section
	flushed bool
}

// NewYAMLWriter creates a YAML writer.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{
		w:     bufio.NewWriter(w),
		items: make([]Section, 0),
	}
}

// Write buffers a single section.
func (w *YAMLWriter) Write(s Section) error {
	w.items = append(w.items, s)
	return nil
}

// WriteAll buffers multiple sections.
func (w *YAMLWriter) WriteAll(s []Section) error {
	w.items = append(w.items, s...)
	return nil
}

// Flush writes the buffered sections as YAML.
// Later calls are no-ops.
func (w *YAMLWriter) Flush() error {
	if w.flushed {
		return nil
	}
	w.flushed = true

	encoder := yaml.NewEncoder(w.w)
	encoder.SetIndent(2)

	if err := encoder.Encode(w.items); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}

	return w.w.Flush()
}

// Close flushes and closes the writer.
func (w *YAMLWriter) Close() error {
	return w.Flush()
}
