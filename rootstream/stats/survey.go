package stats

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/TheusHen/rootstream/rootstream/stream"
)

// Sample reads size bytes from a fresh engine seeded with seed. A negative
// size yields an empty sample.
func Sample(seed []byte, size int) []byte {
	if size < 0 {
		size = 0
	}
	data := make([]byte, size)
	_, _ = io.ReadFull(stream.NewReader(stream.New(seed)), data)
	return data
}

// Survey samples size bytes from each seed and analyzes them on up to
// workers goroutines. Each worker owns its engine. The reports are in seed
// order. Survey stops at the first error or when ctx is done.
func Survey(ctx context.Context, seeds [][]byte, size int, workers int) ([]Report, error) {
	if workers <= 0 {
		workers = 4
	}
	if size <= 0 {
		return nil, ErrEmptySample
	}

	reports := make([]Report, len(seeds))
	done := make([]bool, len(seeds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, seed := range seeds {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := Analyze(Sample(seed, size))
			if err != nil {
				return err
			}
			reports[i] = r
			done[i] = true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The loop stops scheduling once ctx ends, leaving some seeds unsampled.
	for _, ok := range done {
		if !ok {
			return nil, ctx.Err()
		}
	}
	return reports, nil
}
