package digest

import (
	"bytes"
	"sort"

	"ddradsim-core/enzyme"
)

/* ------------------------------ window scan ----------------------------- */

func isUnambiguous(p []byte) bool {
	for _, c := range p {
		if c != 'A' && c != 'C' && c != 'G' && c != 'T' {
			return false
		}
	}
	return true
}

// scanPattern reports every start position where pat matches seq. The
// scan advances one base at a time so overlapping occurrences are all
// retained; no position past len(seq)-len(pat) is reported.
func scanPattern(seq, pat []byte) []int {
	pl := len(pat)
	if pl == 0 || len(seq) < pl {
		return nil
	}

	// Exact-match fast path: bytes.Index jump scanning.
	if isUnambiguous(pat) {
		var out []int
		for i := 0; ; {
			j := bytes.Index(seq[i:], pat)
			if j < 0 {
				break
			}
			out = append(out, i+j)
			i += j + 1
		}
		return out
	}

	end := len(seq) - pl
	var out []int
window:
	for pos := 0; pos <= end; pos++ {
		for j := 0; j < pl; j++ {
			if !enzyme.BaseMatch(seq[pos+j], pat[j]) {
				continue window
			}
		}
		out = append(out, pos)
	}
	return out
}

/* ------------------------------- FindSites ------------------------------ */

// FindSites locates every occurrence of both motifs in seq, on both
// strands. Reverse-strand hits are found by matching the motif's
// reverse complement against the forward sequence and are reported in
// forward coordinates. The result is sorted by position; ties are
// broken re1 before re2, forward before reverse, so output is
// reproducible.
func FindSites(seq []byte, re1, re2 enzyme.Motif) []Site {
	var sites []Site
	for _, m := range [2]enzyme.Motif{re1, re2} {
		for _, pos := range scanPattern(seq, m.Seq) {
			sites = append(sites, Site{Pos: pos, Strand: Forward, Label: m.Label, Len: m.Len()})
		}
		// Palindromic motifs (EcoRI-style) match their own RC, so the
		// reverse scan then reports the same positions on the '-' strand.
		for _, pos := range scanPattern(seq, m.RC()) {
			sites = append(sites, Site{Pos: pos, Strand: Reverse, Label: m.Label, Len: m.Len()})
		}
	}
	sort.Slice(sites, func(i, j int) bool {
		a, b := sites[i], sites[j]
		if a.Pos != b.Pos {
			return a.Pos < b.Pos
		}
		if a.Label != b.Label {
			return a.Label < b.Label
		}
		return a.Strand < b.Strand
	})
	return sites
}
