// Package pipeline runs the per-scaffold digestion in parallel.
//
// Scaffolds share no mutable state, so each worker digests whole
// scaffolds independently; results land in an index-addressed slice and
// come back in genome file order regardless of completion order. The
// writer downstream depends on that ordering for reproducible output.
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"ddradsim-core/digest"
	"ddradsim-core/fasta"
)

// Digest digests every scaffold with up to threads workers and returns
// the per-scaffold results in input order.
func Digest(ctx context.Context, scaffolds []fasta.Scaffold, d *digest.Digester, threads int) ([]digest.ScaffoldDigest, error) {
	if threads < 1 {
		threads = 1
	}

	out := make([]digest.ScaffoldDigest, len(scaffolds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i := range scaffolds {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			sc := scaffolds[i]
			out[i] = d.Digest(sc.Name, sc.Seq)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
