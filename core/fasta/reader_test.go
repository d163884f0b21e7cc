package fasta

import (
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const plain = `>chr1 assembly=test
ACGTacgt
ACGT
>chr2
NNNNTTTT
`

func TestStreamParsesRecords(t *testing.T) {
	var got []Scaffold
	err := Stream(context.Background(), strings.NewReader(plain), func(s Scaffold) error {
		got = append(got, s)
		return nil
	})
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 scaffolds, got %d", len(got))
	}
	if got[0].Name != "chr1" {
		t.Errorf("name should stop at first whitespace, got %q", got[0].Name)
	}
	if string(got[0].Seq) != "ACGTACGTACGT" {
		t.Errorf("expected concatenated upper-cased seq, got %q", got[0].Seq)
	}
	if got[1].Name != "chr2" || string(got[1].Seq) != "NNNNTTTT" {
		t.Errorf("unexpected second record: %+v", got[1])
	}
}

func TestStreamEmptyInput(t *testing.T) {
	err := Stream(context.Background(), strings.NewReader(""), func(Scaffold) error { return nil })
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError for empty input, got %v", err)
	}
}

func TestStreamSequenceBeforeHeader(t *testing.T) {
	err := Stream(context.Background(), strings.NewReader("ACGT\n>late\nACGT\n"), func(Scaffold) error { return nil })
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError for headerless sequence, got %v", err)
	}
}

// writeGz creates a gzipped FASTA file with provided data, returns the path.
func writeGz(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.fa.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gz: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return path
}

func TestReadAllGzip(t *testing.T) {
	path := writeGz(t, plain)
	got, err := ReadAll(context.Background(), path)
	if err != nil {
		t.Fatalf("read gz: %v", err)
	}
	if len(got) != 2 || got[0].Name != "chr1" || got[1].Name != "chr2" {
		t.Fatalf("unexpected scaffolds: %+v", got)
	}
}

func TestReadAllMissingFile(t *testing.T) {
	if _, err := ReadAll(context.Background(), filepath.Join(t.TempDir(), "nope.fa")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadAllPreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ordered.fa")
	if err := os.WriteFile(path, []byte(">b\nAA\n>a\nCC\n>c\nGG\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadAll(context.Background(), path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := []string{"b", "a", "c"}
	for i, n := range want {
		if got[i].Name != n {
			t.Fatalf("file order not preserved: got %+v", got)
		}
	}
}
