package cleaner

import (
	"testing"
)

// --- RegexpCleaner Tests ---

func TestRegexpCleaner_Clean(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		template string
		input    string
		want     string
	}{
		{"literal_replace", `  `, " ", "a  b", "a b"},
		{"group_expansion", `<([^<>]+)>`, "$1", "ab<c>de", "abcde"},
		{"no_match", `x+`, "", "abc", "abc"},
		{"empty_input", `a`, "b", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewRegexp(tt.name, tt.pattern, tt.template)
			if got := c.Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if c.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", c.Name(), tt.name)
			}
		})
	}
}

func TestNewRegexp_InvalidPatternPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid pattern")
		}
	}()
	NewRegexp("bad", "[unclosed", "")
}

// --- TrimCleaner Tests ---

func TestTrimCleaner_Clean(t *testing.T) {
	c := NewTrim()
	if got := c.Clean(" \n arma virumque \t"); got != "arma virumque" {
		t.Errorf("Clean() = %q", got)
	}
	if c.Name() != "trim" {
		t.Errorf("Name() = %q, want %q", c.Name(), "trim")
	}
}

// --- ChainCleaner Tests ---

func TestChainCleaner_Empty(t *testing.T) {
	c := NewChain()

	input := "unchanged content"
	if got := c.Clean(input); got != input {
		t.Errorf("Clean() = %q, want %q", got, input)
	}
	if c.Name() != "chain()" {
		t.Errorf("Name() = %q, want %q", c.Name(), "chain()")
	}
}

func TestChainCleaner_OrderMatters(t *testing.T) {
	// A leading break is harmless either way.
	newline := NewRegexp("unwrap", `\n +`, " ")

	first := NewChain(NewTrim(), newline)
	second := NewChain(newline, NewTrim())

	input := "\n  a\n  b"
	if got := first.Clean(input); got != "a b" {
		t.Errorf("trim->unwrap = %q, want %q", got, "a b")
	}
	if got := second.Clean(input); got != "a b" {
		t.Errorf("unwrap->trim = %q, want %q", got, "a b")
	}

	dehyphen := NewRegexp("dehyphenate", `-\n {2,}`, "")
	right := NewChain(dehyphen, newline)
	wrong := NewChain(newline, dehyphen)

	input = "foo-\n   bar"
	if got := right.Clean(input); got != "foobar" {
		t.Errorf("dehyphenate->unwrap = %q, want %q", got, "foobar")
	}
	if got := wrong.Clean(input); got != "foo- bar" {
		t.Errorf("unwrap->dehyphenate = %q, want %q", got, "foo- bar")
	}
}

func TestChainCleaner_Name(t *testing.T) {
	c := NewChain(NewRegexp("a", "a", ""), NewTrim(), NewRegexp("b", "b", ""))
	if got := c.Name(); got != "chain(a->trim->b)" {
		t.Errorf("Name() = %q", got)
	}
}

func TestChainCleaner_StepsIsCopy(t *testing.T) {
	c := NewChain(NewTrim(), NewRegexp("x", "x", ""))

	steps := c.Steps()
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
	steps[0] = NewRegexp("y", "y", "")

	if c.Steps()[0].Name() != "trim" {
		t.Error("mutating Steps() result should not affect the chain")
	}
}
