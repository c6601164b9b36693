package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values, matching the classic printable-ASCII
// table parameters.
const (
	// DefaultThreads is the worker count for the parallel stages. One
	// thread keeps results trivially deterministic; users opt into
	// parallelism explicitly.
	DefaultThreads = 1

	// DefaultChars is the generated password length.
	DefaultChars = 4

	// DefaultCount is the number of passwords gen-passwords produces.
	DefaultCount = 1

	// DefaultNumLinks is the digest-reduce cycle count per chain. Longer
	// chains cover more plaintexts per stored record at the cost of
	// slower lookups.
	DefaultNumLinks = 1000

	// DefaultCharsetSize covers the full printable ASCII range
	// (space through tilde, 95 characters).
	DefaultCharsetSize = 95

	// DefaultASCIIOffset starts the charset window at the space
	// character (code point 32). Together with DefaultCharsetSize this
	// keeps every reduced code point within ASCII.
	DefaultASCIIOffset = 32

	// AppName is the application name used for XDG directory paths.
	AppName = "hashforge"
)

// Config holds all resolved options for one hashforge invocation.
//
// Design decision: We use a single flat struct shared by all subcommands
// instead of per-command structs. Commands read only the fields they
// need, and the overlap (threads, files, algorithm, reduction
// parameters) is large enough that splitting would mostly duplicate
// fields.
type Config struct {
	// Threads is the bounded worker count for chain construction and
	// crack lookup.
	Threads int

	// Count is the number of passwords to generate (gen-passwords).
	Count int

	// Chars is the password length in characters (gen-passwords), also
	// the fixed plaintext length of every table built from such samples.
	Chars int

	// Algorithm is the hash algorithm name (gen-hashes,
	// gen-rainbow-table).
	Algorithm string

	// NumLinks is the digest-reduce cycle count per chain.
	NumLinks uint64

	// CharsetSize is the reduction modulus.
	CharsetSize uint64

	// ASCIIOffset is the reduction code point offset. Keeping
	// ASCIIOffset+CharsetSize-1 <= 127 is the user's responsibility;
	// violations surface as reduction errors at runtime.
	ASCIIOffset uint64

	// InFile is the input path (password sample, hash-file, or table,
	// depending on the command).
	InFile string

	// OutFile is the output path. Empty means standard output for
	// commands with textual output; binary-producing commands require it.
	OutFile string

	// RainbowFile is the rainbow table path for crack.
	RainbowFile string

	// PotDir is the directory holding the pot database of previously
	// cracked results. Empty means the XDG data directory.
	PotDir string

	// NoPot disables the pot database entirely.
	NoPot bool

	// MarkdownReport switches crack output from TSV lines to a markdown
	// session report.
	MarkdownReport bool

	// ConfigFilePath is an explicit config file path. Empty means search
	// the usual locations.
	ConfigFilePath string

	// Profile selects a named parameter profile from the config file.
	Profile string

	// Verbose enables debug-level log output.
	Verbose bool
}

// New creates a Config populated with defaults.
//
// Design decision: We use a constructor instead of relying on zero
// values because most defaults are non-zero, and the constructor doubles
// as documentation of what they are.
func New() *Config {
	return &Config{
		Threads:     DefaultThreads,
		Count:       DefaultCount,
		Chars:       DefaultChars,
		NumLinks:    DefaultNumLinks,
		CharsetSize: DefaultCharsetSize,
		ASCIIOffset: DefaultASCIIOffset,
	}
}

// ApplyProfile overlays non-zero values from a config-file profile onto
// fields the user did not set explicitly. The changed map records which
// flags were set on the command line; flags always win over the file.
func (c *Config) ApplyProfile(p Profile, changed map[string]bool) {
	if p.Threads != 0 && !changed["threads"] {
		c.Threads = p.Threads
	}
	if p.NumLinks != 0 && !changed["num-links"] {
		c.NumLinks = p.NumLinks
	}
	if p.CharsetSize != 0 && !changed["charset-size"] {
		c.CharsetSize = p.CharsetSize
	}
	if p.ASCIIOffset != 0 && !changed["ascii-offset"] {
		c.ASCIIOffset = p.ASCIIOffset
	}
	if p.Algorithm != "" && !changed["algorithm"] {
		c.Algorithm = p.Algorithm
	}
}

// XDGDataDir returns the XDG data directory for hashforge, the default
// home of the pot database.
// On Linux: ~/.local/share/hashforge
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Validate checks the fields shared by every subcommand. Returns the
// first failing sentinel; fixing one problem often changes the rest.
func (c *Config) Validate() error {
	if c.Threads <= 0 {
		return ErrInvalidThreads
	}
	if c.Count <= 0 {
		return ErrInvalidCount
	}
	if c.Chars < 1 || c.Chars > 255 {
		return ErrInvalidChars
	}
	if c.CharsetSize == 0 {
		return ErrInvalidCharsetSize
	}
	return nil
}
