package cache

import (
	"time"

	"github.com/krisalay/timed-cache/engine"
	"github.com/krisalay/timed-cache/flight"
	"github.com/krisalay/timed-cache/store"
	"github.com/krisalay/timed-cache/types"
)

/*
TimedCache is the main cache implementation.
This struct is the orchestrator that connects:
- the store (where entries live)
- the engine (whether an entry may still be served)
- the flight group (who computes when an entry cannot be served)

A value stays associated with its key for the configured time to keep,
counted from the moment its compute succeeded. Once it has been stored
for at least that long, the next Get recomputes it in place. Entries are
never removed, only overwritten.
*/
type TimedCache[K comparable, V any] struct {

	// store holds the actual entries. It knows nothing about freshness.
	store *store.Store[K, V]

	// engine contains the "rules" of the cache: time to keep, clock, metrics.
	engine *engine.FreshnessEngine

	// flight prevents multiple goroutines from computing the same key simultaneously.
	flight flight.Group[K, V]
}

// options collects the optional collaborators of a TimedCache.
type options struct {
	clock   types.Clock
	metrics types.Metrics
}

// Option configures an optional collaborator at construction time.
type Option func(*options)

// WithClock substitutes the time source used for freshness decisions.
// The clock must be monotonically non-decreasing. Tests use this to move
// time forward without sleeping.
func WithClock(c types.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithMetrics wires a metrics sink. The default is a no-op.
func WithMetrics(m types.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

/*
WithTimeToKeep creates a new, empty TimedCache whose entries are served
for timeToKeep after each successful compute.

timeToKeep must not be negative (negative panics). Zero is allowed and
means every Get recomputes: the cache degrades to a pass-through but
stays correct.
*/
func WithTimeToKeep[K comparable, V any](timeToKeep time.Duration, opts ...Option) *TimedCache[K, V] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &TimedCache[K, V]{
		store:  store.New[K, V](),
		engine: engine.New(timeToKeep, o.clock, o.metrics),
	}
}

/*
Get returns the value stored under key, computing it when needed.

BEHAVIOR:
---------

 1. A fresh entry is returned as-is. compute does not run and nothing
    is mutated, so repeated hits observe the identical value.

 2. A missing or stale entry triggers compute. On success the result is
    stored with a fresh timestamp and returned.

 3. A compute error propagates to the caller untouched, and the entry for
    key is left exactly as it was before the call: absent if it was
    absent, stale-but-present if it was stale. A later Get retries.

CONCURRENCY:
------------
Concurrent Gets for the same missing or stale key are collapsed into a
single compute: one caller runs compute, the others wait for it and
share its result (value or error). Distinct keys never wait on each
other. compute runs while holding no cache-internal lock, so a slow
compute does not block reads of other keys, and compute may itself Get
from this cache without deadlocking.
*/
func (c *TimedCache[K, V]) Get(key K, compute func() (V, error)) (V, error) {
	if ent, ok := c.store.Get(key); ok && ent.Fresh(c.engine.TimeToKeep(), c.engine.Now()) {
		c.engine.OnHit()
		return ent.Value, nil
	}

	// Lookup events are recorded inside the flight, where the outcome is
	// certain: a caller racing a finished flight may find the slot
	// repopulated and must count as a hit, not a miss.
	v, err, _ := c.flight.Do(key, func() (V, error) {
		ent, ok := c.store.Get(key)
		if ok && ent.Fresh(c.engine.TimeToKeep(), c.engine.Now()) {
			c.engine.OnHit()
			return ent.Value, nil
		}
		if ok {
			c.engine.OnExpire()
		} else {
			c.engine.OnMiss()
		}

		c.engine.OnCompute()
		v, err := compute()
		if err != nil {
			c.engine.OnComputeError()
			var zero V
			return zero, err
		}

		c.store.Put(key, engine.NewEntry(c.engine, v))
		return v, nil
	})
	return v, err
}

// TimeToKeep returns the freshness window the cache was built with.
func (c *TimedCache[K, V]) TimeToKeep() time.Duration {
	return c.engine.TimeToKeep()
}

// Len reports how many keys currently hold an entry, fresh or stale.
func (c *TimedCache[K, V]) Len() int {
	return c.store.Len()
}
