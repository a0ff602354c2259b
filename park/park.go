// Package park provides handles for goroutines that block themselves until
// another goroutine resumes them.
//
// Go does not expose parking for goroutines, so a [Thread] carries its own
// resumption token: a single-value buffer that Unpark fills without blocking
// and Park drains, blocking while it is empty.
package park

import (
	"fmt"
	"runtime/debug"

	"github.com/google/uuid"
)

// A Thread is a handle to a unit of work that can park itself and be unparked
// by others. A Thread is either the current goroutine (see [New]) or one
// started by [Spawn].
//
// Thread values are safe for concurrent use, but only the goroutine the
// handle belongs to should call Park.
type Thread struct {
	id    uuid.UUID
	token chan struct{} // holds at most one pending unpark
	done  chan struct{} // closed when a spawned function returns; nil otherwise
	err   error         // set before done is closed
}

// New returns a handle for the calling goroutine.
func New() *Thread {
	return &Thread{id: uuid.New(), token: make(chan struct{}, 1)}
}

// Spawn runs f in a new goroutine, passing the handle of that goroutine, and
// returns the same handle to the caller. Use Join to wait for f to return.
func Spawn(f func(*Thread)) *Thread {
	t := New()
	t.done = make(chan struct{})
	go func() {
		defer close(t.done)
		defer func() {
			if x := recover(); x != nil {
				t.err = fmt.Errorf("panic in thread %v: %v\n%s", t, x, string(debug.Stack()))
			}
		}()
		f(t)
	}()
	return t
}

// ID returns the unique identifier of t.
func (t *Thread) ID() uuid.UUID { return t.id }

// String returns a human-readable label for t.
func (t *Thread) String() string { return "thread-" + t.id.String() }

// Park blocks until t has a resumption token, and consumes it. If Unpark was
// called since the last Park, Park returns immediately.
//
// A return from Park is a hint, not a promise: callers wait for a condition
// by re-checking it in a loop around Park.
func (t *Thread) Park() { <-t.token }

// Unpark makes a resumption token available to t, waking it if it is parked.
// Unpark does not block. Tokens do not accumulate: several calls to Unpark
// before a Park release only that one Park.
func (t *Thread) Unpark() {
	select {
	case t.token <- struct{}{}:
	default:
		// A token is already pending.
	}
}

// Join blocks until the function started by Spawn returns. If the function
// panicked, Join reports an error describing the panic; otherwise it returns
// nil. Join on a handle from New returns nil immediately.
func (t *Thread) Join() error {
	if t.done == nil {
		return nil
	}
	<-t.done
	return t.err
}
