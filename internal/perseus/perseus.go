// Package perseus extracts narrative Greek text from Perseus TEI/XML files.
//
// Every element child of a paragraph contributes one unit. Editorial notes
// are asides: only the text that follows a note counts, never its content.
package perseus

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/jmylchreest/scriptorium/internal/logger"
)

// Converter turns a legacy transliteration into Unicode script.
type Converter interface {
	Convert(text string) (string, error)
}

// Tokenizer splits text into word tokens.
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

// ParagraphChildren selects every element child of every paragraph.
const ParagraphChildren = "//p/*"

const noteTag = "note"

// Options controls XML parsing.
type Options struct {
	// Strict rejects malformed XML. When false the decoder tolerates
	// unknown entities and unclosed tags.
	Strict bool

	// Entities maps extra entity names to replacement text. Entities declared
	// in the document's DOCTYPE are always read; these take precedence.
	Entities map[string]string
}

// DefaultOptions returns strict parsing with no extra entities.
func DefaultOptions() Options {
	return Options{Strict: true}
}

// Extractor pulls units of text out of a Perseus document.
type Extractor struct {
	conv Converter
	tok  Tokenizer
	opts Options
}

// New creates an Extractor.
func New(conv Converter, tok Tokenizer, opts Options) *Extractor {
	return &Extractor{conv: conv, tok: tok, opts: opts}
}

// ExtractFile opens path and extracts it.
func (e *Extractor) ExtractFile(path string) ([]string, error) {
	f, err := os.Open(path) //#nosec G304 -- CLI tool reads a user-specified file
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return e.Extract(f)
}

// Extract parses r and returns the converted, tokenized units in document
// order, each tokens joined by single spaces. Parse, conversion, and
// tokenizer failures are returned.
func (e *Extractor) Extract(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read xml: %w", err)
	}

	declared := DeclaredEntities(data)
	if len(declared) > 0 {
		logger.Debug("perseus doctype entities", "count", len(declared))
	}

	doc, err := xmlquery.ParseWithOptions(bytes.NewReader(data), xmlquery.ParserOptions{
		Decoder: &xmlquery.DecoderOptions{
			Strict: e.opts.Strict,
			Entity: mergeEntities(declared, e.opts.Entities),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("parse xml: %w", err)
	}

	components, err := Components(doc)
	if err != nil {
		return nil, err
	}
	logger.Debug("perseus components selected", "count", len(components))

	var units []string
	for i, c := range components {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}

		converted, err := e.conv.Convert(c)
		if err != nil {
			return nil, fmt.Errorf("convert component %d: %w", i, err)
		}
		tokens, err := e.tok.Tokenize(converted)
		if err != nil {
			return nil, fmt.Errorf("tokenize component %d: %w", i, err)
		}
		units = append(units, strings.Join(tokens, " "))
	}
	return units, nil
}

// Components returns the raw text of each paragraph child, untrimmed.
// A non-note child yields its text content followed by its tail; a note
// yields only its tail. The tail is the run of text immediately after the
// element, up to the next element or comment.
func Components(doc *xmlquery.Node) ([]string, error) {
	nodes, err := xmlquery.QueryAll(doc, ParagraphChildren)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", ParagraphChildren, err)
	}

	components := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if n.Data == noteTag {
			components = append(components, tail(n))
			continue
		}
		components = append(components, n.InnerText()+tail(n))
	}
	return components, nil
}

func tail(n *xmlquery.Node) string {
	var sb strings.Builder
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type != xmlquery.TextNode && s.Type != xmlquery.CharDataNode {
			break
		}
		sb.WriteString(s.Data)
	}
	return sb.String()
}
