package spinlock_test

import (
	"fmt"
	"slices"
	"sync"

	"github.com/abhilekhgautam/locks/spinlock"
)

func ExampleLock() {
	var l spinlock.Lock[[]int]

	var wg sync.WaitGroup
	wg.Go(func() { l.Do(func(v *[]int) { *v = append(*v, 1) }) })
	wg.Go(func() {
		g := l.Lock()
		defer g.Unlock()
		*g.Value() = append(*g.Value(), 2, 2)
	})
	wg.Wait()

	g := l.Lock()
	defer g.Unlock()

	// The goroutines may run in either order.
	got := g.Get()
	fmt.Println(slices.Equal(got, []int{1, 2, 2}) || slices.Equal(got, []int{2, 2, 1}))

	// Output:
	// true
}
