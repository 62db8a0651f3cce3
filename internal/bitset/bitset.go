package bitset

// BitSet is a fixed-capacity bitset for single-owner use. Unlike a
// map[uint64]struct{} it allocates once and clears in O(words).
type BitSet struct {
	bits []uint64
}

// New creates a BitSet able to hold size bits.
func New(size int) *BitSet {
	// bits needed = (size + 63) / 64
	return &BitSet{bits: make([]uint64, (size+63)/64)}
}

// Set marks bit i.
func (b *BitSet) Set(i uint64) {
	b.bits[i>>6] |= 1 << (i & 63)
}

// Clear unmarks bit i.
func (b *BitSet) Clear(i uint64) {
	b.bits[i>>6] &^= 1 << (i & 63)
}

// Test returns true if bit i is set.
func (b *BitSet) Test(i uint64) bool {
	return b.bits[i>>6]&(1<<(i&63)) != 0
}

// Reset clears every bit.
func (b *BitSet) Reset() {
	clear(b.bits)
}
