package rainbow

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/hashforge/hashforge/internal/digest"
	"github.com/hashforge/hashforge/internal/model"
	"github.com/hashforge/hashforge/internal/worker"
)

// Crack recovers plaintexts for the batch's target digests against t,
// using at most threads concurrent workers.
//
// Each target is processed independently via a staged guess-and-verify
// search over chain positions i = 0 .. numLinks-1, ascending: assume the
// target sits i links before the chain's terminal reduction, complete the
// chain from there, and look the candidate end up in the table's index.
// An index hit is only a candidate; the matched chain is replayed forward
// from its recorded start, and the target counts as cracked only when a
// freshly computed digest equals it exactly. This forward verification is
// the guard against reduction collisions. The first position whose replay
// verifies wins; later positions are not examined.
//
// Per-target failure is tolerated: unmatched or unverifiable targets are
// omitted from the result set, and reduction errors during the search are
// treated as non-matches for that position. The call fails with
// ErrNoPasswordsFound only when every target in the batch goes
// unrecovered.
//
// The batch's algorithm must equal the table's; a mismatch fails before
// any per-target work. Non-deterministic algorithms cannot be verified by
// replay and are rejected the same way generation rejects them.
func Crack(ctx context.Context, t *model.RainbowTable, batch *model.HashBatch, threads int) ([]model.CrackResult, error) {
	if t.Algorithm != batch.Algorithm {
		return nil, fmt.Errorf("%w: table is %s, hash file is %s",
			ErrAlgorithmMismatch, t.Algorithm, batch.Algorithm)
	}
	if !t.Algorithm.Deterministic() {
		return nil, fmt.Errorf("%w: %s", ErrNonDeterministic, t.Algorithm)
	}

	reducer := NewReducer(Params{
		PasswordLength: t.PasswordLength,
		CharsetSize:    t.CharsetSize,
		ASCIIOffset:    t.ASCIIOffset,
	})

	slog.Debug("cracking digests",
		"targets", len(batch.Digests),
		"algorithm", t.Algorithm.String(),
		"chains", len(t.Chains),
		"threads", threads,
	)

	results, err := worker.Collect(ctx, len(batch.Digests), threads,
		func(_ context.Context, i int) (model.CrackResult, bool) {
			return crackOne(t, reducer, batch.Digests[i])
		})
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, ErrNoPasswordsFound
	}
	return results, nil
}

// crackOne runs the staged search for a single target digest.
func crackOne(t *model.RainbowTable, reducer Reducer, target []byte) (model.CrackResult, bool) {
	for i := uint64(0); i < t.NumLinks; i++ {
		// Complete the chain as if target sat i links before the terminal
		// reduction: i full digest-reduce cycles, then one final reduction.
		current := target
		skip := false
		for pos := uint64(0); pos < i; pos++ {
			p, err := reducer.Reduce(current, t.NumLinks-i+pos)
			if err != nil {
				skip = true
				break
			}
			current, err = digest.Compute(p, t.Algorithm)
			if err != nil {
				skip = true
				break
			}
		}
		if skip {
			continue
		}

		end, err := reducer.Reduce(current, t.NumLinks-1)
		if err != nil {
			continue
		}

		start, ok := t.LookupStart(end)
		if !ok {
			continue
		}

		if plaintext, ok := verifyChain(t, reducer, start, target, t.NumLinks-i); ok {
			return model.CrackResult{Digest: target, Plaintext: plaintext}, true
		}
	}
	return model.CrackResult{}, false
}

// verifyChain replays a chain forward from start for at most steps
// digest-reduce cycles, reporting the plaintext whose digest equals
// target. An index hit without a digest match anywhere along the replay
// is a reduction collision and is rejected.
func verifyChain(t *model.RainbowTable, reducer Reducer, start string, target []byte, steps uint64) (string, bool) {
	current := start
	for pos := uint64(0); pos < steps; pos++ {
		h, err := digest.Compute(current, t.Algorithm)
		if err != nil {
			return "", false
		}
		if bytes.Equal(h, target) {
			return current, true
		}
		current, err = reducer.Reduce(h, pos)
		if err != nil {
			return "", false
		}
	}
	return "", false
}
