// Package testutil provides testing utilities for the slot map.
//
// This package is intended for use in tests and benchmarks only. It
// provides a seeded random number generator for reproducible operation
// sequences:
//
//	rng := testutil.NewRNG(seed)
//	op := rng.Intn(100)
package testutil
