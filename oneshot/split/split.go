// Package split implements a one-shot channel over caller-owned storage.
//
// A [Channel] is a plain value, usually a local variable of the receiving
// goroutine. [Channel.Split] resets it and hands out a Sender and a Receiver
// that refer to it. A Receive that finds no value parks the receiving
// goroutine until the Sender wakes it, so it never fails and never spins.
//
// The channel can be reused: each Split starts a new generation, and
// endpoints from an older generation are no longer valid.
package split

import (
	"sync/atomic"

	"github.com/abhilekhgautam/locks"
	"github.com/abhilekhgautam/locks/park"
)

// A Channel is the storage for a one-shot channel. A zero Channel is ready
// for use, but must not be copied after its first use.
//
// The endpoints returned by Split refer to the channel, so it must outlive
// them, and it must not be split again while they are in use.
type Channel[T any] struct {
	slot locks.Slot[T]
	gen  atomic.Uint64 // generation of the current endpoints
}

// Split resets c and returns a connected Sender and Receiver. The receiver
// is the goroutine identified by t: it is the one woken by Send, and the one
// that must call Receive.
//
// A value left unread by a previous generation is dropped (see
// [locks.Releaser]), so the new endpoints always start from an empty slot.
func (c *Channel[T]) Split(t *park.Thread) (*Sender[T], *Receiver[T]) {
	c.slot.Reset()
	gen := c.gen.Add(1)
	return &Sender[T]{ch: c, gen: gen, receiver: t},
		&Receiver[T]{ch: c, gen: gen, self: t}
}

// Close drops a value that was sent but never received, and reports whether
// there was one. Close must not be called while endpoints are in use.
func (c *Channel[T]) Close() bool { return c.slot.Drop() }

// checkGen panics if gen is not the current generation of c.
func (c *Channel[T]) checkGen(gen uint64, what string) {
	if c.gen.Load() != gen {
		panic("split: " + what + " from an earlier generation")
	}
}

// A Sender is the sending endpoint of a split channel. A Sender is valid for
// one Send.
type Sender[T any] struct {
	ch       *Channel[T]
	gen      uint64
	receiver *park.Thread
	used     atomic.Bool
}

// Send delivers v to the receiver and wakes it. Send does not block.
// It panics if s was already used, or belongs to an earlier generation.
func (s *Sender[T]) Send(v T) {
	if s.used.Swap(true) {
		panic("split: sender already used")
	}
	s.ch.checkGen(s.gen, "sender")
	s.ch.slot.Write(v)
	s.ch.slot.SetReady()
	s.receiver.Unpark()
}

// A Receiver is the receiving endpoint of a split channel. A Receiver is
// valid for one Receive.
type Receiver[T any] struct {
	ch   *Channel[T]
	gen  uint64
	self *park.Thread
	used atomic.Bool
}

// IsReady reports whether a value has been sent and not yet received.
// IsReady does not block.
func (r *Receiver[T]) IsReady() bool { return r.ch.slot.IsReady() }

// Receive returns the value sent on the channel, parking the receiving
// goroutine until one is available. There is no timeout: if the sender never
// sends, Receive does not return. It panics if r was already used, or belongs
// to an earlier generation.
func (r *Receiver[T]) Receive() T {
	if r.used.Swap(true) {
		panic("split: receiver already used")
	}
	r.ch.checkGen(r.gen, "receiver")
	for !r.ch.slot.TakeReady() {
		// N.B. a wake-up may be left over from something else, so check again.
		r.self.Park()
	}
	return r.ch.slot.Read()
}
