// Package arena implements a fixed-capacity generational arena: a memory
// pool handing out stable, generation-tagged handles to slot-resident values.
// Typical usage: create one arena sized for the working set, insert values to
// obtain handles, and remove them explicitly when done; stale handles are
// detected rather than aliasing reused slots.
package arena

import (
	"errors"
	"fmt"
	"math"
)

// ErrArenaFull is returned by TryInsert when every slot is occupied. The
// caller still holds the value it tried to insert; a full arena is an
// expected outcome to handle, not a failure of the arena.
var ErrArenaFull = errors.New("arena: full")

// noIndex terminates the free list.
const noIndex = -1

// slot is one storage unit in the arena. generation == 0 marks the slot as
// free, in which case nextFree links to the next free slot (noIndex ends the
// chain). A nonzero generation marks the slot occupied by value; issued
// generations are always >= 1, so the two states cannot be confused.
type slot[T any] struct {
	generation uint64
	nextFree   int
	value      T
}

func (s *slot[T]) occupied() bool { return s.generation != 0 }

// Arena is a fixed-capacity pool of slots for values of type T. Slot storage
// is allocated once at construction and never reallocated. Free slots form an
// intrusive singly-linked list threaded through the slot array, so insertion
// and removal are O(1).
//
// One generation counter is shared by all slots. It starts at 1 and advances
// by exactly 1 on every successful removal, which is what lets the arena tell
// a live handle from a stale one pointing at a reused slot.
//
// Not goroutine-safe. Use SafeArena for concurrent access.
type Arena[T any] struct {
	items      []slot[T]
	freeHead   int
	generation uint64
	live       int
}

// New creates an Arena with the given number of slots. Capacity is fixed for
// the arena's lifetime; Go has no compile-time capacity parameters, so it is
// validated here instead. New panics if capacity <= 0: a zero-capacity arena
// is a usage error, not a runtime condition.
func New[T any](capacity int) *Arena[T] {
	if capacity <= 0 {
		panic(fmt.Sprintf("arena: capacity must be positive, got %d", capacity))
	}

	a := &Arena[T]{
		items:      make([]slot[T], capacity),
		freeHead:   0,
		generation: 1,
	}
	for i := range a.items {
		if i == capacity-1 {
			// The last slot's nextFree == noIndex marks the end of free space.
			a.items[i].nextFree = noIndex
		} else {
			a.items[i].nextFree = i + 1
		}
	}
	return a
}

// TryInsert stores v in a free slot and returns a handle to it. If the arena
// is full it returns the zero Index and ErrArenaFull; the caller keeps v and
// may retry after removing something. TryInsert never advances the
// generation counter.
func (a *Arena[T]) TryInsert(v T) (Index, error) {
	head := a.freeHead
	if head == noIndex {
		return Index{}, ErrArenaFull
	}

	s := &a.items[head]
	if s.occupied() {
		// Cannot happen unless the free list is corrupted.
		panic(fmt.Sprintf("arena: corrupt free list, slot %d occupied", head))
	}

	a.freeHead = s.nextFree
	a.live++

	s.generation = a.generation
	s.value = v

	return Index{slot: head, generation: a.generation}, nil
}

// Remove frees the slot idx points at and returns the value it held. If idx
// is stale (the slot was already freed, or freed and reoccupied) Remove
// returns the zero value and false without touching the arena.
//
// A successful removal pushes the slot onto the free list and advances the
// shared generation counter, making every outstanding handle into that slot
// stale at once.
//
// Remove panics if idx's slot position is out of range for this arena. The
// arena never issues such handles, so an out-of-range position means idx
// came from a different arena.
func (a *Arena[T]) Remove(idx Index) (T, bool) {
	if idx.slot < 0 || idx.slot >= len(a.items) {
		panic(fmt.Sprintf("arena: index %v out of range for %d slots", idx, len(a.items)))
	}

	s := &a.items[idx.slot]
	if !s.occupied() || s.generation != idx.generation {
		var zero T
		return zero, false
	}

	v := s.value
	var zero T
	s.value = zero
	s.generation = 0
	s.nextFree = a.freeHead

	a.freeHead = idx.slot
	a.nextGeneration()
	a.live--

	return v, true
}

// nextGeneration advances the shared counter. Wrapping to zero would let a
// stale handle alias a fresh insertion, so exhaustion is fatal rather than
// silently truncated.
func (a *Arena[T]) nextGeneration() {
	if a.generation == math.MaxUint64 {
		panic("arena: exhausted generation counter")
	}
	a.generation++
}

// Get returns a copy of the value idx points at, or the zero value and false
// if idx is stale or out of range. Get has no side effects.
func (a *Arena[T]) Get(idx Index) (T, bool) {
	if s := a.lookup(idx); s != nil {
		return s.value, true
	}
	var zero T
	return zero, false
}

// GetMut returns a pointer to the value idx points at, for mutation in
// place, or nil if idx is stale or out of range. Mutating through the
// pointer never changes the slot's generation or position, so idx stays
// valid. The pointer must not be retained across a Remove of the same
// handle.
func (a *Arena[T]) GetMut(idx Index) *T {
	if s := a.lookup(idx); s != nil {
		return &s.value
	}
	return nil
}

// Contains reports whether idx refers to a live value. Pure query, no side
// effects.
func (a *Arena[T]) Contains(idx Index) bool {
	return a.lookup(idx) != nil
}

// lookup resolves idx to its slot if and only if the slot is occupied under
// idx's generation. Out-of-range positions resolve to nil on the read path;
// stale access is an ordinary absent result, never a fault.
func (a *Arena[T]) lookup(idx Index) *slot[T] {
	if idx.slot < 0 || idx.slot >= len(a.items) {
		return nil
	}
	s := &a.items[idx.slot]
	if !s.occupied() || s.generation != idx.generation {
		return nil
	}
	return s
}

// Len returns the number of live values in the arena.
func (a *Arena[T]) Len() int { return a.live }

// Capacity returns the number of live values in the arena. Despite the name
// it reports occupancy, the same quantity as Len, not the total slot count;
// callers must not infer the slot count from it. Use Slots for the total.
func (a *Arena[T]) Capacity() int { return a.live }
