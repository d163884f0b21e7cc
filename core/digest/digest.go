// Package digest finds restriction sites and extracts the size-selected
// fragments of a double digest.
package digest

import "ddradsim-core/enzyme"

// Fragment is the region strictly between two cut sites of opposite
// enzymes: [Start, End) in forward coordinates, recognition sequences
// excluded. Start < End always holds.
type Fragment struct {
	Scaffold string
	Start    int
	End      int
}

// Length of the fragment body in bases.
func (f Fragment) Length() int { return f.End - f.Start }

// Config is the size-selection window, inclusive on both ends.
type Config struct {
	MinSize int
	MaxSize int
}

// Digester runs the double digest of single scaffolds. Safe for
// concurrent use; all state is read-only after New.
type Digester struct {
	re1, re2 enzyme.Motif
	cfg      Config
}

func New(re1, re2 enzyme.Motif, cfg Config) *Digester {
	return &Digester{re1: re1, re2: re2, cfg: cfg}
}

// ScaffoldDigest is the digestion outcome for one scaffold.
type ScaffoldDigest struct {
	Scaffold  string
	NumSites  [2]int // indexed by enzyme.Label
	Fragments []Fragment
}

// Digest scans one scaffold and returns its retained fragments in
// ascending start order.
//
// The sweep walks sites in position order pairing each site with its
// nearest downstream partner of the opposite enzyme: a same-enzyme site
// supersedes the pending left boundary (both cuts happen; only the
// inner piece survives a double digest), and each site bounds at most
// one fragment on each side. Candidates outside [MinSize, MaxSize] are
// dropped silently -- size selection is expected behavior, not an error.
func (d *Digester) Digest(name string, seq []byte) ScaffoldDigest {
	out := ScaffoldDigest{Scaffold: name}

	sites := FindSites(seq, d.re1, d.re2)
	for _, s := range sites {
		out.NumSites[s.Label]++
	}

	have := false
	var left Site
	for _, s := range sites {
		if !have || left.Label == s.Label {
			left, have = s, true
			continue
		}
		start := left.Pos + left.Len
		end := s.Pos
		if start < end {
			n := end - start
			if n >= d.cfg.MinSize && n <= d.cfg.MaxSize {
				out.Fragments = append(out.Fragments, Fragment{Scaffold: name, Start: start, End: end})
			}
		}
		left = s
	}
	return out
}
