package phi

import (
	"testing"
)

func TestCleanHeadings(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"nil", nil, []string{}},
		{"empty", []string{}, []string{}},
		{"trimmed", []string{"  Title One  "}, []string{"Title One"}},
		{"inner_whitespace_kept", []string{"\n De  Rerum\tNatura \n"}, []string{"De  Rerum\tNatura"}},
		{"order_preserved", []string{" b", "a ", " c "}, []string{"b", "a", "c"}},
		{"blank_heading_kept", []string{"   "}, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanHeadings(tt.input)
			if got == nil {
				t.Fatal("CleanHeadings() returned nil, want empty slice")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("CleanHeadings() = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("heading[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNewPage(t *testing.T) {
	p := NewPage("arma  virumque\n   cano", []string{"  Vergil  ", "Aeneid"},
		"http://latin.packhum.org/loc/690/3/0", "http://latin.packhum.org/loc/690/3/2")

	if got := p.Text(); got != "arma virumque cano" {
		t.Errorf("Text() = %q", got)
	}
	headings := p.Headings()
	if len(headings) != 2 || headings[0] != "Vergil" || headings[1] != "Aeneid" {
		t.Errorf("Headings() = %q", headings)
	}
	if got := p.RawText(); got != "arma  virumque\n   cano" {
		t.Errorf("RawText() = %q", got)
	}
	if raw := p.RawHeadings(); raw[0] != "  Vergil  " {
		t.Errorf("RawHeadings()[0] = %q", raw[0])
	}

	prev, ok := p.PrevURL()
	if !ok || prev != "http://latin.packhum.org/loc/690/3/0" {
		t.Errorf("PrevURL() = %q, %v", prev, ok)
	}
	next, ok := p.NextURL()
	if !ok || next != "http://latin.packhum.org/loc/690/3/2" {
		t.Errorf("NextURL() = %q, %v", next, ok)
	}
}

func TestNewPage_Empty(t *testing.T) {
	p := NewPage("", nil, "", "")

	if p.Text() != "" {
		t.Errorf("Text() = %q, want empty", p.Text())
	}
	if h := p.Headings(); len(h) != 0 {
		t.Errorf("Headings() = %q, want empty", h)
	}
	if _, ok := p.PrevURL(); ok {
		t.Error("PrevURL() should be absent")
	}
	if _, ok := p.NextURL(); ok {
		t.Error("NextURL() should be absent")
	}
}

func TestNewPage_Immutable(t *testing.T) {
	raw := []string{" one "}
	p := NewPage("text", raw, "", "")

	raw[0] = "changed"
	if p.RawHeadings()[0] != " one " {
		t.Error("mutating the input slice changed the page")
	}

	h := p.Headings()
	h[0] = "changed"
	if p.Headings()[0] != "one" {
		t.Error("mutating Headings() result changed the page")
	}
}
