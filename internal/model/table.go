package model

// Chain is one precomputed rainbow chain: the starting plaintext and the
// plaintext reached after applying the configured number of digest-reduce
// cycles to it. Both strings have exactly the table's password length.
// With zero links, End equals Start.
type Chain struct {
	// Start is the original input password.
	Start string

	// End is the plaintext after the final reduction.
	End string
}

// RainbowTable is a fully loaded (or freshly built) rainbow table.
//
// A table is built once, written to disk, and read back purely for lookup;
// it is never mutated after creation. The zero value is not useful: tables
// come from rainbow.BuildChains plus the codec, or from rainbow.ReadTable.
type RainbowTable struct {
	// Algorithm is the digest algorithm every chain was built with.
	Algorithm Algorithm

	// PasswordLength is the fixed length of every chain start and end.
	// The binary format stores it in a single byte, so it is at most 255.
	PasswordLength int

	// CharsetSize is the modulus of the reduction function.
	CharsetSize uint64

	// NumLinks is the number of digest-reduce cycles per chain.
	NumLinks uint64

	// ASCIIOffset is added to the reduced value to produce a code point.
	// Callers must keep ASCIIOffset+CharsetSize-1 <= 127; violating this
	// surfaces as a reduction error at runtime, not at table creation.
	ASCIIOffset uint64

	// Chains holds the chain records in the order they were produced.
	Chains []Chain

	// endIndex maps chain end to chain start for O(1) candidate lookup
	// during cracking. Built lazily via BuildEndIndex.
	endIndex map[string]string
}

// BuildEndIndex (re)builds the end-to-start index from Chains.
//
// When two chains share an end value the later chain wins. This
// last-write-wins behavior is deliberate: the binary layout has no room to
// disambiguate duplicate ends, so recovery silently favors the record
// written later in the file.
func (t *RainbowTable) BuildEndIndex() {
	t.endIndex = make(map[string]string, len(t.Chains))
	for _, c := range t.Chains {
		t.endIndex[c.End] = c.Start
	}
}

// LookupStart returns the start of the chain whose end equals end.
// BuildEndIndex must have been called first.
func (t *RainbowTable) LookupStart(end string) (string, bool) {
	start, ok := t.endIndex[end]
	return start, ok
}

// IndexSize returns the number of distinct chain ends in the index.
// This is less than len(Chains) when ends collide.
func (t *RainbowTable) IndexSize() int {
	return len(t.endIndex)
}

// HashBatch is an ordered batch of target digests parsed from a plain
// hash-file, all produced by the same algorithm.
type HashBatch struct {
	// Algorithm is the algorithm recorded in the hash-file header.
	Algorithm Algorithm

	// PasswordLength is the plaintext length recorded in the header.
	PasswordLength int

	// Digests holds the raw fixed-size digests in file order.
	Digests [][]byte
}

// CrackResult pairs a target digest with its recovered plaintext. Results
// are only produced for targets that passed forward verification.
type CrackResult struct {
	// Digest is the original target digest.
	Digest []byte

	// Plaintext is the verified recovered password.
	Plaintext string
}
