// Package report writes crack results to their output sinks.
//
// Two formats are provided behind one Writer interface: the plain TSV
// format consumed by scripts (one "hex digest<TAB>plaintext" line per
// verified result), and a markdown session report for documentation and
// sharing, built with the nao1215/markdown library.
package report
