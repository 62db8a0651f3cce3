// Package slotmap provides a fixed-capacity generational slot map for Go.
//
// A slot map hands out a compact, copyable key for every inserted value and
// resolves keys back to their values in O(1). Unlike a raw array index, a
// key stays safe after its slot is freed and reused: every slot carries a
// generation counter that advances on removal, and a key resolves only
// while its generation still matches the slot's. This makes "maybe still
// alive" references to dynamically created and destroyed objects (entities,
// sessions, pool items) cheap and reliable, with no pointers and no GC
// involvement.
//
// # Quick Start
//
//	m, _ := slotmap.New[string](1024)
//
//	key, _ := m.Insert("player")
//	v, ok := m.Get(key)   // *v == "player", ok == true
//
//	m.Remove(key)
//	_, ok = m.Get(key)    // ok == false, even if the slot is reused
//
// # Keys and Widths
//
// The default key packs a 32-bit index with a 32-bit generation. Both
// widths are configurable through NewOf when a smaller handle matters:
//
//	m, _ := slotmap.NewOf[uint16, uint16, Entity](4096)
//
// The maximum generation value is reserved as the "no key" sentinel; a slot
// whose counter reaches it is permanently retired and its index is never
// allocated again (see Stats.Saturated).
//
// # Remove vs Recycle
//
// Remove advances the slot's generation, so stale keys are always detected.
// Recycle frees the index without advancing the generation, trading that
// safety net for zero generation growth on high-churn slots. Use Recycle
// only when no copy of the old key can ever be used again.
//
// # Concurrency
//
// A Map performs no internal locking and is meant to be mutated by one
// logical owner at a time. Share it across goroutines behind a single
// exclusive guard; per-slot synchronization is intentionally out of scope.
package slotmap
