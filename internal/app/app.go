// Package app wires the digestion pipeline end to end: load genome,
// digest, simulate reads, write outputs.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"ddradsim-core/digest"
	"ddradsim-core/fasta"
	"ddradsim-core/simulate"
	"ddradsim/internal/config"
	"ddradsim/internal/fastq"
	"ddradsim/internal/pipeline"
	"ddradsim/internal/runutil"
	"ddradsim/internal/stats"
)

// Run executes one complete simulation. Any returned error is terminal:
// nothing is retried, and no partial read file is left at a final
// output path.
func Run(ctx context.Context, cfg config.Config, stdout io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	re1, re2, err := cfg.Motifs()
	if err != nil {
		return err
	}

	scaffolds, err := fasta.ReadAll(ctx, cfg.Fasta)
	if err != nil {
		return fmt.Errorf("load genome %s: %w", cfg.Fasta, err)
	}
	slog.Debug("genome loaded", "path", cfg.Fasta, "scaffolds", len(scaffolds))

	d := digest.New(re1, re2, digest.Config{MinSize: cfg.MinSize, MaxSize: cfg.MaxSize})
	results, err := pipeline.Digest(ctx, scaffolds, d, runutil.EffectiveThreads(cfg.Threads))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Workdir, 0o755); err != nil {
		return fmt.Errorf("workdir %s: %w", cfg.Workdir, err)
	}

	nReads, err := writeReads(cfg, scaffolds, results)
	if err != nil {
		return err
	}

	var lengths []int
	for _, r := range results {
		for _, f := range r.Fragments {
			lengths = append(lengths, f.Length())
		}
	}
	summary := stats.Summarize(lengths)

	if cfg.Fragments {
		if err := writeFragmentsTSV(cfg, results); err != nil {
			return err
		}
	}
	if cfg.Report {
		if err := writeReport(cfg, results, summary, nReads); err != nil {
			return err
		}
	}
	if cfg.Stats {
		stats.RenderTable(stdout, summary)
	}

	slog.Info("run complete",
		"scaffolds", len(scaffolds),
		"fragments", summary.Count,
		"reads", nReads,
		"workdir", cfg.Workdir)
	return nil
}

// ReadFile returns the mate-stream path for the run: mate 1 carries
// reads from the re1-side cut, mate 2 (paired mode) the re2-side reads.
func ReadFile(cfg config.Config, mate int) string {
	return filepath.Join(cfg.Workdir, fmt.Sprintf("%s_R%d_.fastq.gz", cfg.Name, mate))
}

// writeReads streams every retained fragment's reads to the mate files.
// Scaffold results arrive in genome order and fragments in ascending
// start order, so record k of the R1 stream always pairs with record k
// of R2.
func writeReads(cfg config.Config, scaffolds []fasta.Scaffold, results []digest.ScaffoldDigest) (int, error) {
	params := simulate.Params{
		RunName: cfg.Name,
		ReadLen: cfg.ReadLen,
		Copies:  cfg.NCopies,
		Paired:  cfg.Paired,
	}

	w1, err := fastq.Create(ReadFile(cfg, 1))
	if err != nil {
		return 0, err
	}
	var w2 *fastq.Writer
	if cfg.Paired {
		w2, err = fastq.Create(ReadFile(cfg, 2))
		if err != nil {
			w1.Abort()
			return 0, err
		}
	}
	abort := func() {
		w1.Abort()
		if w2 != nil {
			w2.Abort()
		}
	}

	for si, res := range results {
		seq := scaffolds[si].Seq
		for fi, f := range res.Fragments {
			r1, r2 := params.Reads(res.Scaffold, fi, seq[f.Start:f.End])
			for _, r := range r1 {
				if err := w1.Write(r); err != nil {
					abort()
					return 0, err
				}
			}
			for _, r := range r2 {
				if err := w2.Write(r); err != nil {
					abort()
					return 0, err
				}
			}
		}
		slog.Debug("scaffold digested",
			"scaffold", res.Scaffold,
			"re1_sites", res.NumSites[0],
			"re2_sites", res.NumSites[1],
			"fragments", len(res.Fragments))
	}

	n := w1.Count()
	if err := w1.Close(); err != nil {
		if w2 != nil {
			w2.Abort()
		}
		return 0, err
	}
	if w2 != nil {
		n += w2.Count()
		if err := w2.Close(); err != nil {
			return 0, err
		}
	}
	return n, nil
}
