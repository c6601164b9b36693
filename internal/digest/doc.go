// Package digest computes password digests and encodes the plain
// hash-file format.
//
// Four algorithms are supported: MD5, SHA-256, SHA3-512, and scrypt.
// The first three are deterministic raw digests; scrypt produces a
// textual self-describing hash with a fresh random salt per call, which
// makes it suitable for the plain hash-file but not for rainbow tables
// (see model.Algorithm.Deterministic).
//
// The plain hash-file layout is:
//
//	1 byte   version (must be 1)
//	1 byte   algorithm name length
//	n bytes  algorithm name (canonical lowercase)
//	1 byte   password length
//	...      concatenated fixed-size digests
//
// Unlike the rainbow table format, the hash-file tolerates no truncation:
// a trailing partial digest is a hard decode error.
package digest
