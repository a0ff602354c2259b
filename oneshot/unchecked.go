package oneshot

import "github.com/abhilekhgautam/locks"

// Unchecked is a one-shot channel with no protection against misuse. Send
// and Receive are raw capabilities over one shared [locks.Slot]: nothing
// stops a second Send, or a Receive before the value is ready.
//
// The caller must call Send at most once, and must call Receive only after
// IsReady has reported true. Breaking either rule is undefined; in practice
// Receive panics if it finds nothing to read, and a concurrent Send and
// Receive is a data race. Prefer [New] or the split package.
//
// A zero Unchecked is ready for use, but must not be copied after its first
// use.
type Unchecked[T any] struct {
	slot locks.Slot[T]
}

// Send stores v and publishes it to the receiver.
func (c *Unchecked[T]) Send(v T) {
	c.slot.Write(v)
	c.slot.SetReady()
}

// IsReady reports whether a value has been sent and not yet received.
func (c *Unchecked[T]) IsReady() bool { return c.slot.IsReady() }

// Receive returns the value sent to c. The result of the ready check is
// deliberately ignored: see the rules on [Unchecked].
func (c *Unchecked[T]) Receive() T {
	c.slot.TakeReady()
	return c.slot.Read()
}
