package worker

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map runs fn for every index in [0, n) with at most limit goroutines
// running simultaneously, and returns the results in input order.
//
// Map is fail-fast: the first error cancels the derived context and is
// returned; no partial results are returned. This matches the aggregation
// rule for chain generation, where a single failed chain aborts the batch.
//
// A limit of zero or less means no concurrency limit.
func Map[T any](ctx context.Context, n, limit int, fn func(ctx context.Context, i int) (T, error)) ([]T, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	// Pre-allocate so each goroutine writes only its own slot.
	results := make([]T, n)

	for i := range n {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			v, err := fn(ctx, i)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Collect runs fn for every index in [0, n) with at most limit goroutines
// running simultaneously, keeping only the results for which fn reports
// ok. The kept results preserve input order.
//
// Unlike Map, units cannot fail the batch: a unit that produces nothing is
// simply skipped. This matches the aggregation rule for cracking, where an
// unmatched target is filtered out rather than aborting the run. The only
// error Collect returns is context cancellation.
func Collect[T any](ctx context.Context, n, limit int, fn func(ctx context.Context, i int) (T, bool)) ([]T, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	type slot struct {
		value T
		ok    bool
	}
	slots := make([]slot, n)

	for i := range n {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			v, ok := fn(ctx, i)
			slots[i] = slot{value: v, ok: ok}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]T, 0, n)
	for _, s := range slots {
		if s.ok {
			results = append(results, s.value)
		}
	}
	return results, nil
}
