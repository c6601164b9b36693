// Package log provides logging for hashforge on top of the standard slog
// package, with automatic redaction of recovered password material.
//
// Crack runs handle exactly the data that must not leak into shared or
// stored logs: the plaintexts the tool recovers. The RedactingHandler
// masks attribute values under password-bearing keys before they reach
// the underlying handler, so even debug-level logging of the crack loop
// cannot write a recovered password to stderr.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	slog.Info("target cracked",
//	    "digest", hexDigest,
//	    "plaintext", recovered, // masked in output
//	)
package log
