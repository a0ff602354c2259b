// Package spinlock implements a busy-waiting mutual exclusion lock.
//
// A [Lock] owns a value, and the only way to reach the value is through the
// [Guard] returned when the lock is acquired:
//
//	var l spinlock.Lock[[]int]
//
//	g := l.Lock()
//	defer g.Unlock()
//	*g.Value() = append(*g.Value(), 1)
//
// Acquisition spins rather than blocking, trading CPU time under contention
// for low latency when critical sections are short. There is no timeout and
// no cancellation.
package spinlock

import "golang.org/x/sys/cpu"

// A Lock is a spin lock protecting a value of type T.
//
// A zero Lock is unlocked, holds the zero value of T, and is ready for use.
// A Lock must not be copied after its first use. A Lock is not re-entrant:
// calling Lock while the same goroutine holds a Guard spins forever.
type Lock[T any] struct {
	flag Flag
	_    cpu.CacheLinePad // keep spinning readers of flag off the value's line
	val  T
}

// New constructs an unlocked Lock holding v.
func New[T any](v T, opts ...Option) *Lock[T] {
	return &Lock[T]{flag: Flag{spins: loadOptions(opts...).Spins}, val: v}
}

// Lock acquires l, spinning until it is available, and returns a Guard for
// the protected value. The caller must call Unlock on the Guard exactly once.
func (l *Lock[T]) Lock() *Guard[T] {
	l.flag.Lock()
	return &Guard[T]{lock: l}
}

// TryLock attempts to acquire l without waiting. If it succeeds it returns a
// Guard and true; otherwise it returns nil and false.
func (l *Lock[T]) TryLock() (*Guard[T], bool) {
	if !l.flag.TryLock() {
		return nil, false
	}
	return &Guard[T]{lock: l}, true
}

// Do acquires l, calls f with a pointer to the protected value, and releases
// l when f returns, including when f panics. The pointer must not be retained
// after f returns.
func (l *Lock[T]) Do(f func(*T)) {
	g := l.Lock()
	defer g.Unlock()
	f(g.Value())
}

// A Guard grants exclusive access to the value of a locked Lock until its
// Unlock method is called. A Guard must not be shared between goroutines.
type Guard[T any] struct {
	lock *Lock[T] // nil after Unlock
}

// Value returns a pointer to the protected value. The pointer is valid only
// until g is unlocked. It panics if g was already unlocked.
func (g *Guard[T]) Value() *T {
	if g.lock == nil {
		panic("spinlock: use of unlocked guard")
	}
	return &g.lock.val
}

// Get returns a copy of the protected value.
func (g *Guard[T]) Get() T { return *g.Value() }

// Set replaces the protected value with v.
func (g *Guard[T]) Set(v T) { *g.Value() = v }

// Unlock releases the lock, publishing any changes made through g to the
// next goroutine that acquires it. It panics if g was already unlocked.
func (g *Guard[T]) Unlock() {
	if g.lock == nil {
		panic("spinlock: unlock of unlocked guard")
	}
	l := g.lock
	g.lock = nil
	l.flag.Unlock()
}
