package perseus

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"

	"github.com/jmylchreest/scriptorium/internal/betacode"
	"github.com/jmylchreest/scriptorium/internal/tokenize"
)

// identity leaves text unchanged.
type identity struct{}

func (identity) Convert(text string) (string, error) { return text, nil }

// fields splits on whitespace.
type fields struct{}

func (fields) Tokenize(text string) ([]string, error) { return strings.Fields(text), nil }

type failingConverter struct{ err error }

func (f failingConverter) Convert(string) (string, error) { return "", f.err }

type failingTokenizer struct{ err error }

func (f failingTokenizer) Tokenize(string) ([]string, error) { return nil, f.err }

func openTestdata(t *testing.T, filename string) *os.File {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", filename))
	if err != nil {
		t.Fatalf("failed to open testdata %s: %v", filename, err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestComponents_NoteContributesOnlyTail(t *testing.T) {
	doc, err := xmlquery.Parse(openTestdata(t, "notes.xml"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	components, err := Components(doc)
	if err != nil {
		t.Fatalf("Components() error = %v", err)
	}

	if len(components) != 5 {
		t.Fatalf("expected one component per paragraph child (5), got %d: %q", len(components), components)
	}

	var nonEmpty []string
	for _, c := range components {
		if c = strings.TrimSpace(c); c != "" {
			nonEmpty = append(nonEmpty, c)
		}
	}
	want := []string{
		"mh=nin a)/eide qea/,", // quote text plus its tail
		"tail text",            // note tail only
	}
	if !reflect.DeepEqual(nonEmpty, want) {
		t.Errorf("Components() = %q\nwant non-empty %q", components, want)
	}

	for _, c := range components {
		if strings.Contains(c, "ignored") || strings.Contains(c, "only note") {
			t.Errorf("note content leaked into %q", c)
		}
	}
}

func TestExtract_SkipsEmptyUnits(t *testing.T) {
	e := New(identity{}, fields{}, DefaultOptions())

	units, err := e.Extract(openTestdata(t, "notes.xml"))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	want := []string{"mh=nin a)/eide qea/,", "tail text"}
	if !reflect.DeepEqual(units, want) {
		t.Errorf("Extract() = %q, want %q", units, want)
	}
}

func TestExtract_TokensRejoinedWithSingleSpaces(t *testing.T) {
	e := New(identity{}, fields{}, DefaultOptions())

	units, err := e.Extract(strings.NewReader("<p><l>  a \n\t b   c </l></p>"))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(units) != 1 || units[0] != "a b c" {
		t.Errorf("Extract() = %q", units)
	}
}

func TestExtract_BetacodeAndTokenizer(t *testing.T) {
	e := New(betacode.Converter{}, tokenize.Greek{}, DefaultOptions())

	units, err := e.ExtractFile(filepath.Join("testdata", "iliad_1.xml"))
	if err != nil {
		t.Fatalf("ExtractFile() error = %v", err)
	}

	want := []string{
		"μῆνιν ἄειδε θεά Πηληϊάδεω Ἀχιλῆος",
		"οὐλομένην , ἣ μυρί’ Ἀχαιοῖς ἄλγε’ ἔθηκε ·",
	}
	if !reflect.DeepEqual(units, want) {
		t.Errorf("ExtractFile() = %q\nwant %q", units, want)
	}
}

func TestExtract_MalformedXML(t *testing.T) {
	e := New(identity{}, fields{}, DefaultOptions())

	if _, err := e.Extract(strings.NewReader("<p><l>unclosed</p>")); err == nil {
		t.Fatal("expected parse error for malformed XML")
	}
}

func TestExtract_CustomEntities(t *testing.T) {
	opts := DefaultOptions()
	opts.Entities = map[string]string{"dagger": "+"}
	e := New(identity{}, fields{}, opts)

	units, err := e.Extract(strings.NewReader("<p><l>a&dagger;b</l></p>"))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(units) != 1 || units[0] != "a+b" {
		t.Errorf("Extract() = %q", units)
	}
}

func TestExtract_ConverterErrorPropagates(t *testing.T) {
	boom := errors.New("bad beta code")
	e := New(failingConverter{boom}, fields{}, DefaultOptions())

	_, err := e.Extract(strings.NewReader("<p><l>x</l></p>"))
	if !errors.Is(err, boom) {
		t.Fatalf("expected converter error, got %v", err)
	}
}

func TestExtract_TokenizerErrorPropagates(t *testing.T) {
	boom := errors.New("tokenizer failed")
	e := New(identity{}, failingTokenizer{boom}, DefaultOptions())

	_, err := e.Extract(strings.NewReader("<p><l>x</l></p>"))
	if !errors.Is(err, boom) {
		t.Fatalf("expected tokenizer error, got %v", err)
	}
}

func TestExtract_DanglingCapitalAborts(t *testing.T) {
	e := New(betacode.Converter{}, tokenize.Greek{}, DefaultOptions())

	_, err := e.Extract(strings.NewReader("<p><l>a)/eide *</l></p>"))
	if !errors.Is(err, betacode.ErrDanglingCapital) {
		t.Fatalf("expected ErrDanglingCapital, got %v", err)
	}
}

func TestExtractFile_Missing(t *testing.T) {
	e := New(identity{}, fields{}, DefaultOptions())
	if _, err := e.ExtractFile(filepath.Join("testdata", "missing.xml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
