package oneshot_test

import (
	"fmt"

	"github.com/abhilekhgautam/locks/oneshot"
	"github.com/abhilekhgautam/locks/park"
)

func ExampleNew() {
	snd, rcv := oneshot.New[string]()

	// Receiving before anything is sent reports an error.
	if _, err := rcv.Receive(); err != nil {
		fmt.Println("early:", err)
	}

	cur := park.New()
	w := park.Spawn(func(*park.Thread) {
		snd.Send("57471")
		cur.Unpark()
	})
	for !rcv.IsReady() {
		cur.Park()
	}
	w.Join()

	msg, err := rcv.Receive()
	fmt.Println("got:", msg, err)

	// A channel carries only one message.
	fmt.Println("resend:", snd.Send("again"))
	_, err = rcv.Receive()
	fmt.Println("again:", err)

	// Output:
	// early: no message available
	// got: 57471 <nil>
	// resend: channel already used
	// again: no message available
}
