// Package model defines the core data types shared across hashforge:
// hash algorithms, rainbow table chains, loaded rainbow tables, hash
// batches, and crack results.
//
// Types in this package are plain data carriers with no I/O. Encoding and
// decoding of the on-disk formats lives in internal/rainbow and
// internal/digest; this package only captures the invariants the rest of
// the application relies on (fixed digest sizes, fixed password lengths,
// the end-to-start chain index).
package model
