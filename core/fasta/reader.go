// Package fasta loads reference genomes from (optionally gzipped) FASTA.
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Scaffold is one named sequence from a reference genome.
// Loaded once and never mutated afterwards.
type Scaffold struct {
	Name string
	Seq  []byte
}

// FormatError reports malformed or empty FASTA input.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string { return "fasta: " + e.Msg }

// Stream parses FASTA from r and emits one Scaffold per record, in file
// order. Sequence lines are concatenated and upper-cased (soft-masked
// references use lowercase). Returning a non-nil error from emit stops
// the scan.
//
// A *FormatError is returned when the input is empty or contains
// sequence data before any '>' header.
func Stream(ctx context.Context, r io.Reader, emit func(Scaffold) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		name string
		seq  = make([]byte, 0, 1<<20)
		seen bool
	)

	flush := func() error {
		if !seen {
			return nil
		}
		return emit(Scaffold{Name: name, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			name = parseHeaderName(line[1:])
			seq = seq[:0]
			seen = true
			continue
		}
		if !seen {
			return &FormatError{Msg: "sequence data before first '>' header"}
		}
		seq = append(seq, bytes.ToUpper(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	if !seen {
		return &FormatError{Msg: "empty input: no '>' records found"}
	}
	return flush()
}

// ReadAll opens path (gzip handled transparently) and returns every
// scaffold in file order.
func ReadAll(ctx context.Context, path string) ([]Scaffold, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var out []Scaffold
	if err := Stream(ctx, rc, func(s Scaffold) error {
		out = append(out, s)
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func parseHeaderName(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
