// Package locks defines low-level synchronization primitives built directly
// on atomic flags.
//
// The foundation is [Slot], a single-value buffer whose contents are handed
// from one goroutine to another using nothing but an atomic ready flag. The
// subpackages build on it:
//
//   - oneshot: channels that deliver exactly one value, exactly once.
//   - oneshot/split: a one-shot channel over caller-owned storage that parks
//     the receiver instead of failing.
//   - spinlock: a busy-waiting mutual exclusion lock with a guard handle.
//   - park: handles for goroutines that can block and be resumed by others.
package locks

import (
	"sync/atomic"

	"github.com/creachadair/mds/value"
)

// A Releaser is a value that holds resources which must be released if it is
// discarded without being delivered. When a [Slot] is dropped while it holds
// an unread value whose dynamic type implements Releaser, the Release method
// is called exactly once.
type Releaser interface {
	Release()
}

// A Slot is a single-value buffer gated by an atomic ready flag. It does not
// arbitrate between writers or readers: the protocol is the caller's job.
//
// The protocol has two rules, and breaking either is undefined behavior:
//
//   - Write is called only while the slot is empty, by a single goroutine,
//     and is followed by SetReady.
//   - Read is called only by the goroutine that observed the flag set,
//     through a TakeReady that reported true.
//
// The flag is the only synchronization. Everything the writer did before
// SetReady happens before everything the reader does after a TakeReady or
// IsReady that observes it. Go atomics are sequentially consistent, which is
// stronger than the release/acquire pairing the hand-off needs.
//
// A zero Slot is empty and ready for use, but must not be copied after its
// first use.
type Slot[T any] struct {
	msg   value.Maybe[T] // written only while ready is false
	ready atomic.Bool
}

// Write stores v in the slot. It panics if the slot already holds an unread
// value, but it cannot detect a concurrent writer.
func (s *Slot[T]) Write(v T) {
	if s.msg.Present() {
		panic("locks: write to occupied slot")
	}
	s.msg = value.Just(v)
}

// Read takes the stored value out of s, leaving it empty. It panics if it
// observes an empty slot.
func (s *Slot[T]) Read() T {
	if !s.msg.Present() {
		panic("locks: read from empty slot")
	}
	v := s.msg.Get()
	s.msg = value.Absent[T]()
	return v
}

// SetReady publishes the value written to s.
func (s *Slot[T]) SetReady() { s.ready.Store(true) }

// TakeReady atomically clears the ready flag and reports whether it was set.
// When it reports true, the caller owns the value and must Read it.
func (s *Slot[T]) TakeReady() bool { return s.ready.Swap(false) }

// IsReady reports whether a value has been published and not yet taken.
// It does not block and does not change the state of s.
func (s *Slot[T]) IsReady() bool { return s.ready.Load() }

// Drop discards a published value that was never taken, calling its Release
// method if it has one, and reports whether a value was dropped. After Drop
// the slot is empty.
//
// Drop may race with TakeReady: the flag decides which of them owns the
// value, and the loser does not touch it.
func (s *Slot[T]) Drop() bool {
	if !s.ready.Swap(false) {
		return false
	}
	if r, ok := any(s.Read()).(Releaser); ok {
		r.Release()
	}
	return true
}

// Reset drops any unread value and returns s to its empty state, discarding
// a value that was written but never published. Reset must not be called
// concurrently with any other method of s.
func (s *Slot[T]) Reset() {
	s.Drop()
	s.msg = value.Absent[T]()
}
