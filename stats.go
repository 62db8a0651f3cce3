package slotmap

// Stats is a point-in-time snapshot of a Map's slot accounting.
//
// Invariant: Live == HighWater - Free - Saturated.
type Stats struct {
	Capacity  int // construction capacity
	Live      int // slots currently holding a resolvable value
	Free      int // slots on the free list, eligible for reuse
	Saturated int // slots permanently retired by generation exhaustion
	HighWater int // indices ever allocated
}

// Stats returns a snapshot of the map's slot accounting. O(1), allocation
// free.
func (m *Map[I, G, V]) Stats() Stats {
	return Stats{
		Capacity:  m.capacity,
		Live:      m.Len(),
		Free:      len(m.free),
		Saturated: m.saturated,
		HighWater: m.next,
	}
}
