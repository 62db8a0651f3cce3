package slotmap

import (
	"github.com/hupe1980/slotmap/internal/bitset"
)

// Map is a fixed-capacity generational slot map. Insert stores a value and
// returns a Key; the key resolves back to the value in O(1) until the slot
// is removed, after which the key is reliably detected as stale even if the
// slot has been reused.
//
// Storage is three fixed arrays (generations, values, free-index stack)
// allocated once at construction. No operation allocates afterwards.
//
// A Map is owned by a single logical mutator at a time; it performs no
// internal synchronization. Wrap it behind one exclusive guard if shared
// across goroutines.
type Map[I, G Uint, V any] struct {
	generations []G
	values      []V
	free        []I            // stack of reusable indices, fixed cap
	freeBits    *bitset.BitSet // guards against free-list double-push
	next        int            // high-water mark of indices ever allocated
	capacity    int
	saturated   int // slots retired because their generation wrapped to invalid
}

// New creates a Map with the default 32-bit index and generation widths.
func New[V any](capacity int) (*Map[uint32, uint32, V], error) {
	return NewOf[uint32, uint32, V](capacity)
}

// NewOf creates a Map with explicit index and generation widths. Capacity is
// immutable after construction and must be representable in the index type.
func NewOf[I, G Uint, V any](capacity int) (*Map[I, G, V], error) {
	if capacity < 0 || uint64(capacity) > uint64(^I(0)) {
		return nil, &ErrInvalidCapacity{Capacity: capacity}
	}

	return &Map[I, G, V]{
		generations: make([]G, capacity),
		values:      make([]V, capacity),
		free:        make([]I, 0, capacity),
		freeBits:    bitset.New(capacity),
		capacity:    capacity,
	}, nil
}

// Insert stores value and returns its key. It reuses an index from the free
// list if one exists, otherwise it allocates the next never-used index.
// Returns ErrOverflow, with no mutation, when neither is possible.
func (m *Map[I, G, V]) Insert(value V) (Key[I, G], error) {
	var index I
	if n := len(m.free); n > 0 {
		index = m.free[n-1]
		m.free = m.free[:n-1]
		m.freeBits.Clear(uint64(index))
	} else {
		if m.next == m.capacity {
			return None[I, G](), ErrOverflow
		}
		index = I(m.next)
		m.generations[index] = 0
		m.next++
	}

	m.values[index] = value

	return Key[I, G]{Index: index, Generation: m.generations[index]}, nil
}

// Contains reports whether key is still live. The none key and keys whose
// slot has since been removed or reused yield false; that is the expected
// steady-state for retained keys, not an error.
//
// A key whose generation is ahead of its slot was never issued by this map
// (it came from another table instance or was forged) and trips a panic.
func (m *Map[I, G, V]) Contains(key Key[I, G]) bool {
	if key.Generation == ^G(0) {
		return false
	}
	if uint64(key.Index) >= uint64(m.next) {
		// Never-allocated index. Reachable for well-formed keys only
		// after Reset, which invalidates everything ever issued.
		return false
	}

	current := m.generations[key.Index]
	if key.Generation > current {
		panic("slotmap: key generation ahead of slot; key was not issued by this map")
	}

	return key.Generation == current
}

// Get returns a pointer to the value stored under key, or false if the key
// is stale. The pointer aliases the map's internal storage: it is valid only
// until the next mutating call on that index or on the whole map, and must
// not be retained across one.
func (m *Map[I, G, V]) Get(key Key[I, G]) (*V, bool) {
	if !m.Contains(key) {
		return nil, false
	}

	return &m.values[key.Index], true
}

// Remove frees the slot referenced by key and reports whether it did. Stale
// keys are a no-op, so removing twice is safe and idempotent.
//
// The slot's generation is advanced, permanently invalidating the key. If
// the advance reaches the reserved invalid generation the slot is retired
// for good and never returned to the free list; otherwise the index becomes
// reusable by a later Insert.
func (m *Map[I, G, V]) Remove(key Key[I, G]) bool {
	if !m.Contains(key) {
		return false
	}
	if m.freeBits.Test(uint64(key.Index)) {
		panic("slotmap: remove of a recycled key whose index is already free")
	}

	next := m.generations[key.Index] + 1
	m.generations[key.Index] = next

	if next == ^G(0) {
		m.saturated++
	} else {
		m.free = append(m.free, key.Index)
		m.freeBits.Set(uint64(key.Index))
	}

	return true
}

// Recycle frees the slot referenced by key WITHOUT advancing its
// generation, and reports whether it did. The index becomes immediately
// reusable while key still passes the generation check, so a retained copy
// of key is indistinguishable from the key of the slot's next occupant.
//
// This is an explicit safety relaxation for callers who can guarantee the
// old key is never used again: it avoids generation growth and therefore
// slot saturation on high-churn indices. Use Remove unless that guarantee
// holds. Recycling the same key twice before the index is reused is a
// caller bug and trips a panic.
func (m *Map[I, G, V]) Recycle(key Key[I, G]) bool {
	if !m.Contains(key) {
		return false
	}
	if m.freeBits.Test(uint64(key.Index)) {
		panic("slotmap: key recycled twice")
	}

	m.free = append(m.free, key.Index)
	m.freeBits.Set(uint64(key.Index))

	return true
}

// Len returns the number of live slots. O(1).
func (m *Map[I, G, V]) Len() int {
	return m.next - len(m.free) - m.saturated
}

// Cap returns the construction capacity. Saturated slots still count toward
// it even though they can no longer be allocated; see Stats.
func (m *Map[I, G, V]) Cap() int {
	return m.capacity
}

// Reset returns the map to its just-constructed state without releasing
// storage. Every key ever issued becomes stale.
func (m *Map[I, G, V]) Reset() {
	m.next = 0
	m.saturated = 0
	m.free = m.free[:0]
	m.freeBits.Reset()
}
