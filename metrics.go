package arena

// Slots returns the total number of slots in the arena, fixed at
// construction. This is the pool's true capacity, as opposed to Capacity,
// which reports occupancy.
func (a *Arena[T]) Slots() int {
	return len(a.items)
}

// FreeSlots returns the number of slots currently available for insertion.
func (a *Arena[T]) FreeSlots() int {
	return len(a.items) - a.live
}

// Generation returns the arena's current generation counter. It starts at 1
// and advances by 1 on every successful removal.
func (a *Arena[T]) Generation() uint64 {
	return a.generation
}

// Utilization returns the ratio of live values to total slots (0.0 to 1.0).
func (a *Arena[T]) Utilization() float64 {
	return float64(a.live) / float64(len(a.items))
}

// Metrics returns a snapshot of arena occupancy statistics.
func (a *Arena[T]) Metrics() ArenaMetrics {
	return ArenaMetrics{
		Live:        a.Len(),
		Slots:       a.Slots(),
		FreeSlots:   a.FreeSlots(),
		Generation:  a.Generation(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	Live        int     // Number of live values
	Slots       int     // Total slots, fixed at construction
	FreeSlots   int     // Slots available for insertion
	Generation  uint64  // Current generation counter
	Utilization float64 // Ratio of live values to total slots (0.0-1.0)
}

// Thread-safe metrics for SafeArena

// Len thread-safely returns the number of live values.
func (s *SafeArena[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Len()
}

// Capacity thread-safely returns the number of live values (occupancy, not
// the total slot count; see Arena.Capacity).
func (s *SafeArena[T]) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Slots thread-safely returns the total number of slots.
func (s *SafeArena[T]) Slots() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Slots()
}

// FreeSlots thread-safely returns the number of free slots.
func (s *SafeArena[T]) FreeSlots() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.FreeSlots()
}

// Generation thread-safely returns the current generation counter.
func (s *SafeArena[T]) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Generation()
}

// Utilization thread-safely returns the ratio of live values to total slots.
func (s *SafeArena[T]) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// Metrics thread-safely returns a snapshot of arena occupancy statistics.
func (s *SafeArena[T]) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
