package dot

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DotBatch computes multiple dot products with the best available kernel.
// For each i, computes the dot product of queries[i] and keys[i].
//
// Returns a slice of results with length min(len(queries), len(keys)).
// It panics if any pair differs in length.
func DotBatch(queries, keys [][]float64) []float64 {
	n := min(len(queries), len(keys))
	results := make([]float64, n)

	for i := 0; i < n; i++ {
		results[i] = bestKernel(queries[i], keys[i])
	}

	return results
}

// DotBatchParallel computes the same results as DotBatch using up to workers
// goroutines (GOMAXPROCS when workers <= 0). The inputs are only read, so no
// locking is involved; each result slot is written by exactly one goroutine.
//
// A pair with mismatched lengths or a cancelled ctx stops the batch and the
// error is returned.
func DotBatchParallel(ctx context.Context, queries, keys [][]float64, workers int) ([]float64, error) {
	n := min(len(queries), len(keys))
	results := make([]float64, n)
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			q, k := queries[i], keys[i]
			if len(q) != len(k) {
				return fmt.Errorf("pair %d: %w", i, lengthError(len(q), len(k)))
			}
			results[i] = bestKernel(q, k)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
