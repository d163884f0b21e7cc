package enzyme

/* -------------------------- IUPAC lookup table -------------------------- */

var iupacMask [256]byte // bit0=A bit1=C bit2=G bit3=T

func init() {
	set := func(c byte, bits byte) { iupacMask[c] = bits }
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any (motif side only)
}

// BaseMatch returns true if motif base `m` is compatible with genome
// base `g` under the IUPAC ambiguity codes *and* g ∈ {A,C,G,T}.
//
// A genome base of 'N' (or any non-ACGT char) is a hard mismatch, so
// assembly-gap N-blocks never produce recognition sites.
func BaseMatch(g, m byte) bool {
	if g != 'A' && g != 'C' && g != 'G' && g != 'T' {
		return false
	}
	return iupacMask[m]&iupacMask[g] != 0
}

// IsIUPAC reports whether c (uppercase) is a valid IUPAC nucleotide code.
func IsIUPAC(c byte) bool { return iupacMask[c] != 0 }
