package threadctx

import "sync"

// Slot is a goroutine-local storage cell. Each goroutine sees only the
// value it stored itself; other goroutines' values are invisible to it.
//
// The zero value is ready to use.
type Slot[T any] struct {
	values sync.Map // goroutine ID -> T
}

// Set associates v with the calling goroutine.
func (s *Slot[T]) Set(v T) {
	s.values.Store(GoroutineID(), v)
}

// Get returns the value previously stored by the calling goroutine.
// The second return value is false if the goroutine never stored one.
func (s *Slot[T]) Get() (T, bool) {
	v, ok := s.values.Load(GoroutineID())
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Clear removes the calling goroutine's value. Clearing a slot that was
// never set is a no-op.
func (s *Slot[T]) Clear() {
	s.values.Delete(GoroutineID())
}

// Reset removes all goroutines' values. Only the lifecycle teardown may
// call this, after worker goroutines have exited.
func (s *Slot[T]) Reset() {
	s.values.Range(func(key, _ any) bool {
		s.values.Delete(key)
		return true
	})
}
