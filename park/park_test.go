package park_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/abhilekhgautam/locks/park"
	"github.com/fortytw2/leaktest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnparkBeforePark(t *testing.T) {
	th := park.New()

	// Multiple unparks coalesce into a single token and never block.
	th.Unpark()
	th.Unpark()
	th.Unpark()

	done := make(chan struct{})
	go func() {
		defer close(done)
		th.Park()
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Park blocked with a pending token")
	}

	// The token was consumed, so the next Park must wait.
	parked := make(chan struct{})
	go func() {
		defer close(parked)
		th.Park()
	}()
	select {
	case <-parked:
		t.Fatal("Park returned without a token")
	case <-time.After(20 * time.Millisecond):
	}
	th.Unpark()
	<-parked
}

func TestSpawnJoin(t *testing.T) {
	defer leaktest.Check(t)()

	t.Run("Wake", func(t *testing.T) {
		cur := park.New()
		var flag atomic.Bool

		w := park.Spawn(func(self *park.Thread) {
			assert.NotEqual(t, cur.ID(), self.ID())
			flag.Store(true)
			cur.Unpark()
		})
		for !flag.Load() {
			cur.Park()
		}
		require.NoError(t, w.Join())
		t.Logf("Joined %v", w)
	})

	t.Run("Panic", func(t *testing.T) {
		w := park.Spawn(func(*park.Thread) { panic("oh no") })
		err := w.Join()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "oh no")

		// Joining again reports the same result.
		assert.Equal(t, err, w.Join())
	})

	t.Run("Current", func(t *testing.T) {
		assert.NoError(t, park.New().Join())
	})

	t.Run("Identity", func(t *testing.T) {
		a, b := park.New(), park.New()
		assert.NotEqual(t, a.ID(), b.ID())
		assert.Equal(t, "thread-"+a.ID().String(), a.String())
	})
}
