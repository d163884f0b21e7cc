package enzyme

import (
	"strings"
	"testing"
)

func TestCompileValidMotif(t *testing.T) {
	m, err := Compile(RE1, "ctgcag")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if m.String() != "CTGCAG" {
		t.Errorf("expected upper-cased motif, got %q", m)
	}
	if m.Len() != 6 {
		t.Errorf("expected length 6, got %d", m.Len())
	}
	if !m.Palindromic() {
		t.Error("CTGCAG is its own reverse complement")
	}
}

func TestCompileAmbiguityCodes(t *testing.T) {
	// ApoI: R = A/G
	m, err := Compile(RE2, "RAATTY")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if string(m.RC()) != "RAATTY" {
		t.Errorf("revcomp of RAATTY should be RAATTY, got %q", m.RC())
	}
}

func TestCompileRejectsEmpty(t *testing.T) {
	if _, err := Compile(RE1, ""); err == nil {
		t.Fatal("expected error for empty motif")
	}
}

func TestCompileRejectsNonIUPAC(t *testing.T) {
	_, err := Compile(RE2, "GAXTTC")
	if err == nil {
		t.Fatal("expected error for non-IUPAC base")
	}
	if !strings.Contains(err.Error(), "re2") {
		t.Errorf("error should name the enzyme: %v", err)
	}
}

func TestBaseMatchAmbiguity(t *testing.T) {
	cases := []struct {
		g, m byte
		want bool
	}{
		{'A', 'A', true},
		{'A', 'G', false},
		{'A', 'R', true},
		{'G', 'R', true},
		{'C', 'R', false},
		{'T', 'N', true},
		{'N', 'N', false}, // genome N never matches
		{'N', 'A', false},
	}
	for _, c := range cases {
		if got := BaseMatch(c.g, c.m); got != c.want {
			t.Errorf("BaseMatch(%c, %c) = %v, want %v", c.g, c.m, got, c.want)
		}
	}
}
