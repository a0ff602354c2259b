package spinlock

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// A Flag is a spin lock with no payload. Lock busy-waits instead of putting
// the goroutine to sleep, which suits critical sections that are released
// quickly: the goroutine is yielded with runtime.Gosched rather than parked,
// so it can be rescheduled without a wake-up.
//
// A zero Flag is unlocked and ready for use, but must not be copied after its
// first use. A Flag is not re-entrant: calling Lock on a Flag already held by
// the same goroutine spins forever.
type Flag struct {
	locked atomic.Bool
	spins  int // failed attempts between yields
}

// NewLocker returns a new unlocked Flag as a [sync.Locker].
func NewLocker(opts ...Option) sync.Locker {
	return &Flag{spins: loadOptions(opts...).Spins}
}

// Lock acquires f, spinning until it is available.
func (f *Flag) Lock() {
	var n int
	for !f.TryLock() {
		if n < f.spins {
			n++
			continue
		}
		n = 0
		runtime.Gosched()
	}
}

// TryLock attempts to acquire f without waiting, and reports whether it
// succeeded.
func (f *Flag) TryLock() bool { return f.locked.CompareAndSwap(false, true) }

// Unlock releases f. Writes made while f was held are visible to the next
// goroutine that acquires it. It panics if f is not locked.
//
// As with sync.Mutex, a locked Flag is not associated with a goroutine: one
// goroutine may Lock it and another Unlock it.
func (f *Flag) Unlock() {
	if !f.locked.Swap(false) {
		panic("spinlock: unlock of unlocked flag")
	}
}
