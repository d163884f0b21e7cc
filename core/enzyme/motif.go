// Package enzyme models restriction-enzyme recognition motifs over the
// extended IUPAC nucleotide alphabet.
package enzyme

import (
	"bytes"
	"fmt"
)

// Label identifies which of the two configured enzymes a motif belongs to.
type Label uint8

const (
	RE1 Label = iota
	RE2
)

func (l Label) String() string {
	if l == RE1 {
		return "re1"
	}
	return "re2"
}

// Motif is a compiled recognition sequence. The sequence and its
// reverse complement are validated and upper-cased once at Compile time
// so scanning is a plain mask comparison per position.
type Motif struct {
	Label Label
	Seq   []byte
	rc    []byte
}

// Compile validates seq (non-empty, IUPAC codes only) and returns the
// compiled motif.
func Compile(label Label, seq string) (Motif, error) {
	if seq == "" {
		return Motif{}, fmt.Errorf("enzyme %s: empty recognition sequence", label)
	}
	up := bytes.ToUpper([]byte(seq))
	for i, c := range up {
		if !IsIUPAC(c) {
			return Motif{}, fmt.Errorf("enzyme %s: non-IUPAC base %q at position %d", label, c, i)
		}
	}
	return Motif{Label: label, Seq: up, rc: RevComp(up)}, nil
}

// Len returns the motif length in bases.
func (m Motif) Len() int { return len(m.Seq) }

// RC returns the precompiled reverse complement of the motif.
func (m Motif) RC() []byte { return m.rc }

// Palindromic reports whether the motif equals its own reverse
// complement (EcoRI-style sites), in which case forward and reverse
// matches coincide.
func (m Motif) Palindromic() bool { return bytes.Equal(m.Seq, m.rc) }

func (m Motif) String() string { return string(m.Seq) }
