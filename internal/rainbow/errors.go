package rainbow

import "errors"

// Rainbow table errors. These are package-level sentinels so that callers
// can match them with errors.Is; call sites wrap them with context via
// fmt.Errorf and %w.
var (
	// ErrInvalidMagic is returned when a table file does not begin with
	// the magic marker.
	ErrInvalidMagic = errors.New("invalid magic number")

	// ErrInvalidHeader is returned when the table header is truncated or
	// carries an unsupported version.
	ErrInvalidHeader = errors.New("invalid header")

	// ErrNumericRange is returned when a 16-byte header field holds a
	// value larger than this implementation supports.
	ErrNumericRange = errors.New("numeric header value out of supported range")

	// ErrPasswordTooLong is returned when a password length does not fit
	// the single header byte.
	ErrPasswordTooLong = errors.New("password length exceeds 255")

	// ErrNonASCII is returned by the reduction function when the derived
	// code point falls outside ASCII. This happens when the caller's
	// charset size and offset jointly exceed the ASCII range
	// (offset + charsetSize - 1 > 127).
	ErrNonASCII = errors.New("reduction produced non-ASCII code point")

	// ErrNonDeterministic is returned when table generation or cracking is
	// attempted with an algorithm whose digests are re-randomized per call
	// (scrypt). Chain replay verification requires a deterministic digest
	// function, so such tables would be unusable.
	ErrNonDeterministic = errors.New("algorithm is not deterministic; unsupported for rainbow tables")

	// ErrAlgorithmMismatch is returned when a hash batch was produced by a
	// different algorithm than the table was built with.
	ErrAlgorithmMismatch = errors.New("algorithm mismatch between rainbow table and hash file")

	// ErrNoPasswordsFound is returned when every target in a crack batch
	// fails verification.
	ErrNoPasswordsFound = errors.New("no passwords found")
)
