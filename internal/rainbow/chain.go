package rainbow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hashforge/hashforge/internal/digest"
	"github.com/hashforge/hashforge/internal/model"
	"github.com/hashforge/hashforge/internal/worker"
)

// BuildChains computes one chain per input password, preserving input
// order, using at most threads concurrent workers.
//
// Each chain applies numLinks digest-reduce cycles to its password; the
// chain records the original password and the final plaintext. With zero
// links the chain degenerates to (password, password).
//
// Generation is fail-fast: any failed chain (typically a reduction error
// from an out-of-range charset configuration) aborts the whole batch.
//
// Passwords must be non-empty and uniform in length; the password reader
// enforces that before this stage runs. Non-deterministic algorithms are
// rejected up front: a table built from re-randomized digests could never
// pass chain-replay verification.
func BuildChains(ctx context.Context, passwords []string, algo model.Algorithm, numLinks uint64, params Params, threads int) ([]model.Chain, error) {
	if !algo.Deterministic() {
		return nil, fmt.Errorf("%w: %s", ErrNonDeterministic, algo)
	}

	reducer := NewReducer(params)

	slog.Debug("building chains",
		"count", len(passwords),
		"algorithm", algo.String(),
		"num_links", numLinks,
		"threads", threads,
	)

	return worker.Map(ctx, len(passwords), threads, func(_ context.Context, i int) (model.Chain, error) {
		current := passwords[i]
		for pos := uint64(0); pos < numLinks; pos++ {
			h, err := digest.Compute(current, algo)
			if err != nil {
				return model.Chain{}, err
			}
			current, err = reducer.Reduce(h, pos)
			if err != nil {
				return model.Chain{}, err
			}
		}
		return model.Chain{Start: passwords[i], End: current}, nil
	})
}
