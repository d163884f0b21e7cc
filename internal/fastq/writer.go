// Package fastq writes gzip-compressed four-line FASTQ streams.
package fastq

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"os"

	"ddradsim-core/simulate"
)

// Writer owns one output stream. Records go to <path>.partial and the
// file is renamed onto its final path only when Close succeeds, so a
// failed run never leaves a truncated file at the final location.
type Writer struct {
	path string
	tmp  string
	fh   *os.File
	gz   *gzip.Writer
	bw   *bufio.Writer
	n    int
}

// Create opens the temporary stream for path.
func Create(path string) (*Writer, error) {
	tmp := path + ".partial"
	fh, err := os.Create(tmp)
	if err != nil {
		return nil, fmt.Errorf("fastq: create %s: %w", tmp, err)
	}
	gz := gzip.NewWriter(fh)
	return &Writer{
		path: path,
		tmp:  tmp,
		fh:   fh,
		gz:   gz,
		bw:   bufio.NewWriter(gz),
	}, nil
}

// Write appends one record: identifier, sequence, separator, quality.
func (w *Writer) Write(r simulate.Read) error {
	if _, err := fmt.Fprintf(w.bw, "@%s\n%s\n+\n%s\n", r.ID, r.Seq, r.Qual); err != nil {
		return fmt.Errorf("fastq: write %s: %w", w.tmp, err)
	}
	w.n++
	return nil
}

// Count returns the number of records written so far.
func (w *Writer) Count() int { return w.n }

// Path returns the final output path.
func (w *Writer) Path() string { return w.path }

// Close flushes, closes and renames the stream onto its final path.
func (w *Writer) Close() error {
	if err := w.bw.Flush(); err != nil {
		_ = w.discard()
		return fmt.Errorf("fastq: flush %s: %w", w.tmp, err)
	}
	if err := w.gz.Close(); err != nil {
		_ = w.discard()
		return fmt.Errorf("fastq: close gzip %s: %w", w.tmp, err)
	}
	if err := w.fh.Close(); err != nil {
		_ = os.Remove(w.tmp)
		return fmt.Errorf("fastq: close %s: %w", w.tmp, err)
	}
	if err := os.Rename(w.tmp, w.path); err != nil {
		_ = os.Remove(w.tmp)
		return fmt.Errorf("fastq: finalize %s: %w", w.path, err)
	}
	return nil
}

// Abort drops the temporary file without touching the final path.
func (w *Writer) Abort() {
	_ = w.discard()
}

func (w *Writer) discard() error {
	_ = w.gz.Close()
	_ = w.fh.Close()
	return os.Remove(w.tmp)
}
