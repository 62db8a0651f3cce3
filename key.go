package slotmap

import (
	"fmt"
	"math/bits"
)

// Uint is the set of unsigned integer types usable as a key index or
// generation counter.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Key identifies a value stored in a Map. It pairs the slot index with the
// generation the slot had when the key was issued; the key resolves only
// while both still match.
//
// Keys are plain values: copy them freely and compare them with ==. A key
// carries no ownership of the referenced value.
type Key[I, G Uint] struct {
	Index      I
	Generation G
}

// Key32 is the default-width key with 32-bit index and generation.
type Key32 = Key[uint32, uint32]

// None returns the sentinel "no key" value. Its generation is the reserved
// invalid generation (the maximum representable value), so it never resolves.
func None[I, G Uint]() Key[I, G] {
	return Key[I, G]{Index: 0, Generation: ^G(0)}
}

// IsNone reports whether k is the "no key" sentinel. Any key issued by a Map
// has a generation below the reserved invalid value.
func (k Key[I, G]) IsNone() bool {
	return k.Generation == ^G(0)
}

// String renders the key as two fixed-width hex tokens, index:generation.
// The reserved generation renders as "invalid".
func (k Key[I, G]) String() string {
	iw := hexWidth[I]()
	if k.Generation == ^G(0) {
		return fmt.Sprintf("%0*x:invalid", iw, uint64(k.Index))
	}
	return fmt.Sprintf("%0*x:%0*x", iw, uint64(k.Index), hexWidth[G](), uint64(k.Generation))
}

// hexWidth returns the number of hex digits needed to render U at full width.
func hexWidth[U Uint]() int {
	return bits.Len64(uint64(^U(0))) / 4
}

// Pack encodes a default-width key into a single uint64, index in the high
// 32 bits. The encoding is bit-compatible with Unpack and is intended for
// in-memory interop (dense handle arrays, cgo boundaries), not persistence.
func Pack(k Key32) uint64 {
	return uint64(k.Index)<<32 | uint64(k.Generation)
}

// Unpack decodes a uint64 produced by Pack.
func Unpack(h uint64) Key32 {
	return Key32{Index: uint32(h >> 32), Generation: uint32(h)}
}
