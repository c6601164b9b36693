// Package database provides SQLite-based storage for hashforge.
//
// The PotDB records every verified (algorithm, digest, plaintext) triple
// a crack run produces. Later runs consult it first and only send the
// still-unknown digests through the rainbow table search, the same way
// other crackers keep a "pot file" of past recoveries.
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of a
// flat file because:
// 1. No external dependencies - the database is a single file
// 2. CGO-free implementation allows easy cross-compilation
// 3. The UNIQUE constraint gives us idempotent recording for free
// 4. WAL mode provides good concurrent read performance
package database
