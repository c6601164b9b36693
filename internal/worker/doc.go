// Package worker provides bounded, order-preserving fan-out over
// independent work units.
//
// Both heavy stages of hashforge (chain construction over a password
// list, lookup over a digest list) are embarrassingly parallel: each unit
// is a pure function of its input and shared read-only state. This package
// runs those units on a bounded number of goroutines and reassembles
// results in input order, because the rainbow table binary layout has no
// embedded index and relies on positional ordering for round-trip
// determinism.
//
// Design decision: We use errgroup.SetLimit with a pre-allocated results
// slice indexed by input position rather than a channel-based worker pool.
// Each goroutine writes only its own slot, so no mutex is needed, and the
// output order is independent of completion order.
package worker
