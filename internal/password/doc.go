// Package password generates and reads fixed-length plaintext password
// samples.
//
// Generated passwords draw uniformly from printable ASCII (32-126). The
// reader enforces the invariant the rest of the pipeline depends on: every
// password in a sample has the same length, and the sample is non-empty.
package password
