// Package oneshot implements channels that deliver exactly one value, exactly
// once, from a producer goroutine to a consumer goroutine.
//
// [New] returns a guarded pair of endpoints that share one heap-allocated
// slot and report misuse as errors. [Unchecked] is the bare version with no
// guards, kept to show what the guards are for. See the split subpackage for
// a variant over caller-owned storage.
package oneshot

import (
	"errors"
	"sync/atomic"

	"github.com/abhilekhgautam/locks"
)

var (
	// ErrChannelUsed is reported by a Send on a channel that already carried
	// a value, or whose sender was closed.
	ErrChannelUsed = errors.New("channel already used")

	// ErrNoMessage is reported by a Receive when no value is available.
	ErrNoMessage = errors.New("no message available")

	// ErrClosed is reported by Close on an endpoint that was already consumed
	// or closed.
	ErrClosed = errors.New("endpoint is closed")
)

// channel is the state shared by a Sender and a Receiver.
type channel[T any] struct {
	slot  locks.Slot[T]
	inUse atomic.Bool  // set by the first Send or Close of the sender
	refs  atomic.Int32 // live endpoints; the last one out drops the slot
}

// release drops one reference to c. The last reference drops any value that
// was sent but never received.
func (c *channel[T]) release() {
	if c.refs.Add(-1) == 0 {
		c.slot.Drop()
	}
}

// New constructs a connected Sender and Receiver over a new channel.
//
// Each endpoint holds a reference to the channel until it is consumed by its
// single operation or closed. When both references are gone, a value that was
// sent but never received is dropped (see [locks.Releaser]).
func New[T any]() (*Sender[T], *Receiver[T]) {
	c := new(channel[T])
	c.refs.Store(2)
	return &Sender[T]{ch: c}, &Receiver[T]{ch: c}
}

// A Sender is the sending endpoint of a one-shot channel.
type Sender[T any] struct {
	ch *channel[T]
}

// Send delivers v to the receiver. Send does not block.
//
// Only the first Send on a channel succeeds. Later calls, including
// concurrent ones, report ErrChannelUsed and do not affect the value already
// sent. Send also reports ErrChannelUsed after the sender is closed.
func (s *Sender[T]) Send(v T) error {
	if s.ch.inUse.Swap(true) {
		return ErrChannelUsed
	}
	s.ch.slot.Write(v)
	s.ch.slot.SetReady()
	s.ch.release()
	return nil
}

// Close discards the sender without sending, so that any later Send fails.
// If s was already consumed by Send or closed, Close reports ErrClosed.
func (s *Sender[T]) Close() error {
	if s.ch.inUse.Swap(true) {
		return ErrClosed
	}
	s.ch.release()
	return nil
}

// A Receiver is the receiving endpoint of a one-shot channel.
type Receiver[T any] struct {
	ch   *channel[T]
	done atomic.Bool // the reference to ch has been released
}

// IsReady reports whether a value has been sent and is waiting to be
// received. IsReady does not block and may be called any number of times.
func (r *Receiver[T]) IsReady() bool {
	return !r.done.Load() && r.ch.slot.IsReady()
}

// Receive returns the value sent on the channel. Receive does not block.
//
// If no value has been sent yet, Receive reports ErrNoMessage and has no
// other effect, so the caller may try again later. A successful Receive
// consumes r, after which Receive always reports ErrNoMessage.
func (r *Receiver[T]) Receive() (T, error) {
	var zero T
	if r.done.Load() || !r.ch.slot.TakeReady() {
		return zero, ErrNoMessage
	}
	v := r.ch.slot.Read()
	r.releaseOnce()
	return v, nil
}

// Close discards the receiver without receiving. A value sent before or
// after Close is dropped once the sender is also finished. If r was already
// consumed by Receive or closed, Close reports ErrClosed.
func (r *Receiver[T]) Close() error {
	if !r.releaseOnce() {
		return ErrClosed
	}
	return nil
}

func (r *Receiver[T]) releaseOnce() bool {
	if r.done.Swap(true) {
		return false
	}
	r.ch.release()
	return true
}
