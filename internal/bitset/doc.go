// Package bitset provides a fixed-capacity, non-synchronized bitset.
//
// It backs the slot map's free-list membership check: one bit per slot
// index, set while the index sits on the free list. The slot map owns the
// bitset exclusively, so no atomics are involved.
package bitset
