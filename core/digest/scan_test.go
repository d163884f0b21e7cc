package digest

import (
	"testing"

	"ddradsim-core/enzyme"
)

func mustMotif(t *testing.T, label enzyme.Label, seq string) enzyme.Motif {
	t.Helper()
	m, err := enzyme.Compile(label, seq)
	if err != nil {
		t.Fatalf("compile %q: %v", seq, err)
	}
	return m
}

func TestOverlappingMatchesRetained(t *testing.T) {
	re1 := mustMotif(t, enzyme.RE1, "AA")
	re2 := mustMotif(t, enzyme.RE2, "CC")
	sites := FindSites([]byte("AAAA"), re1, re2)

	var fwd []int
	for _, s := range sites {
		if s.Label == enzyme.RE1 && s.Strand == Forward {
			fwd = append(fwd, s.Pos)
		}
	}
	if len(fwd) != 3 || fwd[0] != 0 || fwd[1] != 1 || fwd[2] != 2 {
		t.Fatalf("expected overlapping hits at 0,1,2, got %v", fwd)
	}
}

func TestReverseStrandOnlyMotif(t *testing.T) {
	// GGATC appears only as its reverse complement GATCC (at offset 3).
	re1 := mustMotif(t, enzyme.RE1, "GGATC")
	re2 := mustMotif(t, enzyme.RE2, "AAAAAA")
	sites := FindSites([]byte("TTTGATCCTTT"), re1, re2)

	if len(sites) != 1 {
		t.Fatalf("expected exactly one site, got %+v", sites)
	}
	s := sites[0]
	if s.Pos != 3 || s.Strand != Reverse || s.Label != enzyme.RE1 {
		t.Fatalf("expected re1 reverse-strand site at 3, got %+v", s)
	}
}

func TestPalindromicTieOrder(t *testing.T) {
	// GAATTC is palindromic: forward and reverse hits coincide and must
	// be reported forward-first at the same position.
	re1 := mustMotif(t, enzyme.RE1, "GAATTC")
	re2 := mustMotif(t, enzyme.RE2, "CCCCCC")
	sites := FindSites([]byte("TTGAATTCTT"), re1, re2)

	if len(sites) != 2 {
		t.Fatalf("expected forward+reverse site pair, got %+v", sites)
	}
	if sites[0].Pos != 2 || sites[0].Strand != Forward {
		t.Errorf("first site should be forward at 2, got %+v", sites[0])
	}
	if sites[1].Pos != 2 || sites[1].Strand != Reverse {
		t.Errorf("second site should be reverse at 2, got %+v", sites[1])
	}
}

func TestNoMatchPastSequenceEnd(t *testing.T) {
	re1 := mustMotif(t, enzyme.RE1, "ACGTAC")
	re2 := mustMotif(t, enzyme.RE2, "TTTTTT")
	// Sequence shorter than either motif.
	if sites := FindSites([]byte("ACGT"), re1, re2); len(sites) != 0 {
		t.Fatalf("motif longer than sequence must not match, got %+v", sites)
	}
}

func TestGenomeNBlocksNeverMatch(t *testing.T) {
	re1 := mustMotif(t, enzyme.RE1, "NNNN")
	re2 := mustMotif(t, enzyme.RE2, "AANN")
	sites := FindSites([]byte("NNNNNNNN"), re1, re2)
	if len(sites) != 0 {
		t.Fatalf("assembly-gap Ns must not produce sites, got %+v", sites)
	}
}

func TestAmbiguityCodeScan(t *testing.T) {
	// ApoI site RAATTY: R=A/G, Y=C/T.
	re1 := mustMotif(t, enzyme.RE1, "RAATTY")
	re2 := mustMotif(t, enzyme.RE2, "CCCCCC")
	sites := FindSites([]byte("GAATTT"), re1, re2)
	found := false
	for _, s := range sites {
		if s.Pos == 0 && s.Label == enzyme.RE1 && s.Strand == Forward {
			found = true
		}
	}
	if !found {
		t.Fatalf("RAATTY should match GAATTT at 0, got %+v", sites)
	}
}
