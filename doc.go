// Package arena implements a fixed-capacity generational arena for Go.
//
// # Overview
//
// A generational arena is a memory pool for a homogeneous value type. All
// storage is allocated once, at construction, and values are inserted into
// reusable slots. Each successful insertion returns an Index: an opaque,
// copyable handle combining the slot position with a generation tag. When a
// slot is freed and later reused, the arena's generation counter has moved
// on, so handles into the old occupant are detected as stale instead of
// silently aliasing the new value. This is particularly useful for:
//
//   - Entity storage in games and simulations (stable IDs, safe deletion)
//   - Object pools where dangling references must be detectable
//   - Index-based data structures that want to avoid pointer cycles
//   - Reducing garbage collection pressure via up-front allocation
//
// # Basic Usage
//
//	a := arena.New[string](64) // capacity fixed at 64 slots
//
//	idx, err := a.TryInsert("hello")
//	if err != nil {
//		// errors.Is(err, arena.ErrArenaFull): every slot is occupied
//	}
//
//	v, ok := a.Get(idx)      // "hello", true
//	a.Contains(idx)          // true
//
//	old, ok := a.Remove(idx) // "hello", true; idx is now stale
//	a.Contains(idx)          // false forever, even after slot reuse
//
// # Thread Safety
//
// The basic Arena type is not thread-safe: it is a single-owner structure
// with no internal synchronization. For concurrent access, use SafeArena,
// which guards every operation behind one exclusive lock:
//
//	s := arena.NewSafe[string](64)
//	idx, err := s.TryInsert("hello")
//
// # Performance Characteristics
//
//   - TryInsert / Remove / Get / GetMut / Contains: O(1)
//   - Construction: O(capacity), once
//   - Memory: capacity * slot size plus a few tracking fields, never grows
//
// # Important Notes
//
//   - Capacity is fixed at construction; a full arena rejects inserts with
//     ErrArenaFull rather than growing.
//   - Freeing is explicit (Remove); there is no bulk clear and no automatic
//     reclamation.
//   - Stale handles are a normal outcome of legitimate use and always report
//     absent. Only internal corruption or generation-counter exhaustion
//     panics.
//
// # Metrics and Monitoring
//
// The arena reports occupancy statistics:
//
//	m := a.Metrics()
//	fmt.Printf("Live: %d / %d slots\n", m.Live, m.Slots)
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
package arena
