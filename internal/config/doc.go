// Package config holds runtime configuration for hashforge.
//
// Configuration flows from three sources, highest precedence first:
// command-line flags, an optional YAML config file (.hashforge in the
// current or home directory), and compiled-in defaults. The resolved
// Config struct is passed through the application via dependency
// injection rather than global state.
//
// Validation happens once, after CLI parsing, so the tool fails fast with
// a specific sentinel error instead of surfacing the problem mid-run.
// Note that the ASCII-range relationship between charset size and offset
// is deliberately not validated here: the reduction function reports it
// at runtime on the offending character, matching the table format's
// documented behavior.
package config
