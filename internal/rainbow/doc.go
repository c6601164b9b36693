// Package rainbow implements rainbow table construction, the table's
// binary encoding, and the lookup procedure that recovers plaintexts from
// target digests.
//
// A rainbow table links plaintexts to digests through chains: starting
// from a password, alternate digest and reduction steps numLinks times
// and record only the (start, end) plaintext pair. Cracking a target
// digest guesses which chain position the digest could occupy, completes
// the chain from there, looks the candidate end up in an end-to-start
// index, and verifies the hit by replaying the matched chain forward.
//
// The reduction function used here is position-independent: the same
// function is applied at every chain position. Classic rainbow tables
// vary the reduction per position to limit chain merges; this format
// keeps the simpler scheme, so the Reducer interface exists to allow a
// position-aware variant without touching the chain builder or cracker.
//
// Binary table layout (big-endian multi-byte fields):
//
//	12 bytes  magic "rainbowtable"
//	1 byte    version (must be 1)
//	1 byte    algorithm name length
//	n bytes   algorithm name (canonical lowercase)
//	1 byte    password length
//	16 bytes  charset size
//	16 bytes  num links
//	16 bytes  ascii offset
//	...       chain records: password-length bytes start, then end
//
// A trailing partial chain record is treated as end-of-data, not
// corruption. Duplicate chain ends resolve last-write-wins in the index.
package rainbow
