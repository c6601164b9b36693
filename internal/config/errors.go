package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrInvalidThreads is returned when the thread count is not positive.
	// Zero workers would mean no work gets done.
	ErrInvalidThreads = errors.New("invalid thread count: must be positive")

	// ErrInvalidCount is returned when the password count is not positive.
	ErrInvalidCount = errors.New("invalid password count: must be positive")

	// ErrInvalidChars is returned when the password length is outside
	// 1..255. The binary formats store the length in a single byte.
	ErrInvalidChars = errors.New("invalid password length: must be between 1 and 255")

	// ErrInvalidCharsetSize is returned when the charset size is zero.
	// The reduction function takes a modulus by the charset size, so zero
	// is never meaningful.
	ErrInvalidCharsetSize = errors.New("invalid charset size: must be positive")

	// ErrMissingInFile is returned when a command that consumes a file got
	// no --in-file.
	ErrMissingInFile = errors.New("missing input file: provide --in-file")

	// ErrMissingOutFile is returned when a command that produces a binary
	// artifact got no --out-file. Binary formats are never written to a
	// terminal.
	ErrMissingOutFile = errors.New("missing output file: provide --out-file")

	// ErrMissingRainbowFile is returned when crack got no --rainbow-table.
	ErrMissingRainbowFile = errors.New("missing rainbow table: provide --rainbow-table")
)
