package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned when an algorithm name does not match
// any supported algorithm. The name is attached by callers via error wrapping.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm identifies a supported hash algorithm.
//
// Design decision: We use iota-based constants rather than string constants
// because the set of algorithms is closed. Every switch over Algorithm in
// this codebase handles all four values explicitly; adding an algorithm
// means extending those switches, which is intentional.
type Algorithm int

const (
	// MD5 is the 128-bit MD5 digest. Broken for security purposes, but the
	// classic target for rainbow tables and cheap to compute.
	MD5 Algorithm = iota

	// SHA256 is the 256-bit SHA-2 digest.
	SHA256

	// SHA3512 is the 512-bit SHA-3 (Keccak) digest.
	SHA3512

	// Scrypt is the scrypt password hash in its textual self-describing
	// encoding. Each call uses a fresh random salt, so two hashes of the
	// same password differ. Scrypt hashes can be generated and dumped, but
	// the salt randomization makes the algorithm unusable for rainbow
	// tables: replaying a chain never reproduces the same digest sequence.
	// See Deterministic.
	Scrypt
)

// Algorithms returns all supported algorithms in declaration order.
// Used to build CLI help text and validation messages.
func Algorithms() []Algorithm {
	return []Algorithm{MD5, SHA256, SHA3512, Scrypt}
}

// String returns the canonical lowercase name of the algorithm.
// This name is what gets embedded in hash-file and rainbow table headers.
func (a Algorithm) String() string {
	switch a {
	case MD5:
		return "md5"
	case SHA256:
		return "sha256"
	case SHA3512:
		return "sha3-512"
	case Scrypt:
		return "scrypt"
	default:
		return "unknown"
	}
}

// DigestSize returns the serialized size in bytes of one digest.
//
// Note that the scrypt value is the length of its textual encoding
// ("$scrypt$ln=14,r=8,p=1$<salt>$<key>" with base64 fields), not a raw
// digest size.
func (a Algorithm) DigestSize() int {
	switch a {
	case MD5:
		return 16
	case SHA256:
		return 32
	case SHA3512:
		return 64
	case Scrypt:
		return 91
	default:
		return 0
	}
}

// Deterministic reports whether hashing the same password twice yields the
// same digest. Rainbow table generation and cracking require a
// deterministic digest function; scrypt re-randomizes its salt per call
// and is rejected by those operations.
func (a Algorithm) Deterministic() bool {
	return a != Scrypt
}

// ParseAlgorithm converts a name to an Algorithm. Matching is
// case-insensitive against the canonical names returned by String.
// Returns an error wrapping ErrUnknownAlgorithm for unrecognized names.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "md5":
		return MD5, nil
	case "sha256":
		return SHA256, nil
	case "sha3-512":
		return SHA3512, nil
	case "scrypt":
		return Scrypt, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}
