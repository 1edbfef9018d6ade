package flight

import "sync"

/*
This file provides per-key deduplication of in-flight work.

Group mirrors the golang.org/x/sync/singleflight API, generic over the
key type. singleflight.Group keys are strings; the cache is generic over
any comparable key, and funneling arbitrary keys through a string
formatter risks collisions that would hand one key's value to another.
For string keys the real singleflight is used directly (see LoaderCache).
*/

// call is one in-flight (or just finished) invocation for a key.
type call[V any] struct {
	wg  sync.WaitGroup
	val V
	err error

	// panicked records a panic out of fn so it can be re-delivered to
	// every caller of the flight, winner and waiters alike.
	panicked bool
	panicVal any
}

// Group deduplicates concurrent invocations of a function per key.
// The zero value is ready to use.
type Group[K comparable, V any] struct {
	mu    sync.Mutex
	calls map[K]*call[V]
}

/*
Do runs fn at most once per key at a time.

If a call for key is already in flight, Do waits for it and returns its
result instead of invoking fn; shared reports whether the result came
from another caller's invocation. Errors are delivered to every waiter
of the flight. Nothing about the flight is retained once it completes,
so a later Do for the same key runs fn again.

If fn panics, the panic value is captured and re-panicked in the caller
that invoked fn AND in every waiter of that flight. A panicking fn never
surfaces as a successful result.
*/
func (g *Group[K, V]) Do(key K, fn func() (V, error)) (v V, err error, shared bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[K]*call[V])
	}
	if c, ok := g.calls[key]; ok {
		g.mu.Unlock()
		c.wg.Wait()
		if c.panicked {
			panic(c.panicVal)
		}
		return c.val, c.err, true
	}
	c := new(call[V])
	c.wg.Add(1)
	g.calls[key] = c
	g.mu.Unlock()

	normal := false
	defer func() {
		if !normal {
			c.panicked = true
			c.panicVal = recover()
		}

		// panicked must be visible before waiters are released.
		c.wg.Done()
		g.mu.Lock()
		delete(g.calls, key)
		g.mu.Unlock()

		if c.panicked {
			panic(c.panicVal)
		}
	}()

	c.val, c.err = fn()
	normal = true
	return c.val, c.err, false
}
