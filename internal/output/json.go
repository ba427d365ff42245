package output

import (
	"bufio"
	"encoding/json"
	"io"
)

// JSONWriter writes all sections as one JSON array.
type JSONWriter struct {
	w       *bufio.Writer
	pretty  bool
	items   []Section
	flushed bool
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer, pretty bool) *JSONWriter {
	return &JSONWriter{
		w:      bufio.NewWriter(w),
		pretty: pretty,
		items:  make([]Section, 0),
	}
}

// Write buffers a single section.
func (w *JSONWriter) Write(s Section) error {
	w.items = append(w.items, s)
	return nil
}

// WriteAll buffers multiple sections.
func (w *JSONWriter) WriteAll(s []Section) error {
	w.items = append(w.items, s...)
	return nil
}

// Flush writes the buffered sections as a JSON array.
// Later calls are no-ops.
func (w *JSONWriter) Flush() error {
	if w.flushed {
		return nil
	}
	w.flushed = true

	var output []byte
	var err error
	if w.pretty {
		output, err = json.MarshalIndent(w.items, "", "  ")
	} else {
		output, err = json.Marshal(w.items)
	}
	if err != nil {
		return err
	}

	if _, err := w.w.Write(output); err != nil {
		return err
	}
	if _, err := w.w.WriteString("\n"); err != nil {
		return err
	}

	return w.w.Flush()
}

// Close flushes and closes the writer.
func (w *JSONWriter) Close() error {
	return w.Flush()
}

// JSONLWriter writes newline-delimited JSON (JSONL), one section per line.
type JSONLWriter struct {
	w *bufio.Writer
}

// NewJSONLWriter creates a JSONL writer.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{
		w: bufio.NewWriter(w),
	}
}

// Write writes a single section as a JSON line.
func (w *JSONLWriter) Write(s Section) error {
	output, err := json.Marshal(s)
	if err != nil {
		return err
	}

	if _, err := w.w.Write(output); err != nil {
		return err
	}
	_, err = w.w.WriteString("\n")
	return err
}

// WriteAll writes multiple sections as JSON lines.
func (w *JSONLWriter) WriteAll(s []Section) error {
	for _, item := range s {
		if err := w.Write(item); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the buffer.
func (w *JSONLWriter) Flush() error {
	return w.w.Flush()
}

// Close flushes the writer.
func (w *JSONLWriter) Close() error {
	return w.Flush()
}
