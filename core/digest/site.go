package digest

import "ddradsim-core/enzyme"

// Strand of a recognition-site match, in forward-sequence coordinates.
type Strand uint8

const (
	Forward Strand = iota
	Reverse
)

func (s Strand) String() string {
	if s == Forward {
		return "+"
	}
	return "-"
}

// Site is one recognition-site occurrence. Pos is the 0-based offset of
// the first base of the matched window on the forward sequence; Len is
// the motif length, so the recognition sequence spans [Pos, Pos+Len).
// Sites are derived, read-only values.
type Site struct {
	Pos    int
	Strand Strand
	Label  enzyme.Label
	Len    int
}
