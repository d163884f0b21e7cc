// Package simulate turns retained digestion fragments into fixed-length
// sequencing reads.
package simulate

import (
	"fmt"

	"ddradsim-core/enzyme"
)

// Mate tags a read's position within a pair.
type Mate uint8

const (
	MateNone Mate = iota
	Mate1
	Mate2
)

const (
	// PadBase fills reads built from fragments shorter than the read
	// length: the sequencer emits fixed-length reads, so short inserts
	// run into unknown sequence rather than truncating.
	PadBase = 'N'

	// QualChar is the uniform placeholder quality (Phred 40, Sanger
	// encoding). Sequencing error is out of scope; only restriction
	// structure and fragment lengths are simulated.
	QualChar = 'I'
)

// Read is a single simulated FASTQ record.
type Read struct {
	ID   string
	Seq  []byte
	Qual []byte
	Mate Mate
}

// Params controls read construction. Immutable after creation.
type Params struct {
	RunName string
	ReadLen int
	Copies  int
	Paired  bool
}

// Reads builds the simulated reads for one retained fragment body.
//
// R1 is the first ReadLen bases of the fragment (downstream of the
// re1-side cut); in paired mode R2 is the reverse complement of the
// final ReadLen bases (inward from the re2-side cut). Both are padded
// with PadBase to exactly ReadLen. Copies identical-sequence reads are
// emitted with sequential copy indices; r1[k] and r2[k] always describe
// the same physical fragment copy, which is what positionally-paired
// FASTQ consumers rely on.
//
// IDs embed run name, scaffold, fragment index and copy index, so they
// are unique and byte-reproducible for a fixed genome and configuration.
func (p Params) Reads(scaffold string, fragIndex int, frag []byte) (r1, r2 []Read) {
	fwd := clip(frag, p.ReadLen)
	var rev []byte
	if p.Paired {
		tail := frag
		if len(tail) > p.ReadLen {
			tail = tail[len(tail)-p.ReadLen:]
		}
		rev = clip(enzyme.RevComp(tail), p.ReadLen)
	}
	qual := quality(p.ReadLen)

	r1 = make([]Read, 0, p.Copies)
	if p.Paired {
		r2 = make([]Read, 0, p.Copies)
	}
	for c := 0; c < p.Copies; c++ {
		root := fmt.Sprintf("%s_%s_loc%d_copy%d", p.RunName, scaffold, fragIndex, c)
		if !p.Paired {
			r1 = append(r1, Read{ID: root, Seq: fwd, Qual: qual, Mate: MateNone})
			continue
		}
		r1 = append(r1, Read{ID: root + "/1", Seq: fwd, Qual: qual, Mate: Mate1})
		r2 = append(r2, Read{ID: root + "/2", Seq: rev, Qual: qual, Mate: Mate2})
	}
	return r1, r2
}

// clip copies the first n bases of seq, padding with PadBase when seq
// is shorter.
func clip(seq []byte, n int) []byte {
	out := make([]byte, n)
	copied := copy(out, seq)
	for i := copied; i < n; i++ {
		out[i] = PadBase
	}
	return out
}

func quality(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = QualChar
	}
	return out
}
