package arena

import (
	"cmp"
	"fmt"
)

// Index is a handle to one specific insertion into an Arena. It combines the
// slot position with the generation the value was inserted under, so a handle
// identifies "this exact insertion", not just "this slot": once the value is
// removed, the handle stays stale even if the slot is reoccupied.
//
// Index is an immutable value type. Handles from the same arena compare equal
// with == exactly when they refer to the same insertion. The zero Index is
// never issued by an arena (generations start at 1) and never resolves to a
// value.
type Index struct {
	slot       int
	generation uint64
}

// Slot returns the slot position this handle points at.
func (i Index) Slot() int { return i.slot }

// Generation returns the generation this handle was issued under.
func (i Index) Generation() uint64 { return i.generation }

// Compare orders handles lexicographically by slot position, then generation.
// It returns -1 if i sorts before other, 0 if they are equal, and +1 if i
// sorts after other.
func (i Index) Compare(other Index) int {
	if c := cmp.Compare(i.slot, other.slot); c != 0 {
		return c
	}
	return cmp.Compare(i.generation, other.generation)
}

// String implements fmt.Stringer for diagnostics.
func (i Index) String() string {
	return fmt.Sprintf("arena.Index{slot: %d, generation: %d}", i.slot, i.generation)
}
