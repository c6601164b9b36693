package rainbow

import (
	"context"
	"errors"
	"testing"

	"github.com/hashforge/hashforge/internal/digest"
	"github.com/hashforge/hashforge/internal/model"
)

// testParams are the standard printable-ASCII reduction parameters used
// throughout the package tests.
var testParams = Params{PasswordLength: 4, CharsetSize: 95, ASCIIOffset: 32}

// TestBuildChainsZeroLinks tests that zero links yields degenerate
// (p, p) chains.
func TestBuildChainsZeroLinks(t *testing.T) {
	t.Parallel()

	passwords := []string{"abcd", "efgh", "ijkl"}
	chains, err := BuildChains(context.Background(), passwords, model.MD5, 0, testParams, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(chains) != len(passwords) {
		t.Fatalf("got %d chains, expected %d", len(chains), len(passwords))
	}
	for i, c := range chains {
		if c.Start != passwords[i] || c.End != passwords[i] {
			t.Errorf("chain %d = (%q, %q), expected (%q, %q)",
				i, c.Start, c.End, passwords[i], passwords[i])
		}
	}
}

// TestBuildChainsOrderAndShape tests input-order preservation and the
// fixed-length invariant under concurrency.
func TestBuildChainsOrderAndShape(t *testing.T) {
	t.Parallel()

	passwords := []string{"abcd", "efgh", "ijkl", "mnop", "qrst", "uvwx"}
	chains, err := BuildChains(context.Background(), passwords, model.SHA256, 10, testParams, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, c := range chains {
		if c.Start != passwords[i] {
			t.Errorf("chain %d start = %q, expected %q", i, c.Start, passwords[i])
		}
		if len(c.End) != testParams.PasswordLength {
			t.Errorf("chain %d end length = %d, expected %d",
				i, len(c.End), testParams.PasswordLength)
		}
	}
}

// TestBuildChainsMatchesSequentialReplay tests that a built chain end
// equals a by-hand replay of the digest-reduce cycle.
func TestBuildChainsMatchesSequentialReplay(t *testing.T) {
	t.Parallel()

	const numLinks = 5
	chains, err := BuildChains(context.Background(), []string{"abcd"}, model.MD5, numLinks, testParams, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reducer := NewReducer(testParams)
	current := "abcd"
	for pos := uint64(0); pos < numLinks; pos++ {
		h, err := digest.Compute(current, model.MD5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		current, err = reducer.Reduce(h, pos)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if chains[0].End != current {
		t.Errorf("chain end = %q, replay = %q", chains[0].End, current)
	}
}

// TestBuildChainsRejectsNonDeterministic tests that scrypt is refused
// before any hashing occurs.
func TestBuildChainsRejectsNonDeterministic(t *testing.T) {
	t.Parallel()

	_, err := BuildChains(context.Background(), []string{"abcd"}, model.Scrypt, 3, testParams, 1)
	if !errors.Is(err, ErrNonDeterministic) {
		t.Errorf("got error %v, expected ErrNonDeterministic", err)
	}
}

// TestBuildChainsFailFastOnReductionError tests that an out-of-range
// charset configuration aborts the whole batch.
func TestBuildChainsFailFastOnReductionError(t *testing.T) {
	t.Parallel()

	// The whole charset window sits past 127: every reduction fails.
	bad := Params{PasswordLength: 4, CharsetSize: 95, ASCIIOffset: 200}
	_, err := BuildChains(context.Background(), []string{"abcd", "efgh"}, model.MD5, 3, bad, 2)
	if !errors.Is(err, ErrNonASCII) {
		t.Errorf("got error %v, expected ErrNonASCII", err)
	}
}
