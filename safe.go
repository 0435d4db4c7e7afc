package arena

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// Every operation runs under one exclusive lock, the external-synchronization
// model the core structure requires; all operations are thread-safe but come
// with the overhead of mutex locking.
type SafeArena[T any] struct {
	mu sync.Mutex
	a  *Arena[T]
}

// NewSafe creates a new thread-safe arena with the given number of slots.
// Like New, it panics if capacity <= 0.
func NewSafe[T any](capacity int) *SafeArena[T] {
	return &SafeArena[T]{a: New[T](capacity)}
}

// TryInsert thread-safely stores v in a free slot and returns a handle to
// it, or ErrArenaFull if every slot is occupied.
func (s *SafeArena[T]) TryInsert(v T) (Index, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.TryInsert(v)
}

// Remove thread-safely frees the slot idx points at and returns the value it
// held, or the zero value and false if idx is stale.
func (s *SafeArena[T]) Remove(idx Index) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Remove(idx)
}

// Get thread-safely returns a copy of the value idx points at, or the zero
// value and false if idx is stale.
func (s *SafeArena[T]) Get(idx Index) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Get(idx)
}

// Update thread-safely applies fn to the value idx points at, in place,
// while holding the lock. It reports whether idx was live. This replaces
// Arena.GetMut, which cannot be exposed here: a pointer into a slot would
// escape the lock.
func (s *SafeArena[T]) Update(idx Index, fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.a.GetMut(idx)
	if p == nil {
		return false
	}
	fn(p)
	return true
}

// Contains thread-safely reports whether idx refers to a live value.
func (s *SafeArena[T]) Contains(idx Index) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Contains(idx)
}
