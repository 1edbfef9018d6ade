package cache

import (
	"context"
	"time"

	"github.com/krisalay/timed-cache/engine"
	"github.com/krisalay/timed-cache/store"
	"github.com/krisalay/timed-cache/types"
	"golang.org/x/sync/singleflight"
)

/*
LoaderCache is a read-through front over a backing service.

TimedCache asks the caller for a compute closure on every Get; that is
the right shape when each call site knows how to produce its own value.
When every key is resolved the same way (a database read, a token
endpoint) it is nicer to bind the fetch logic once. LoaderCache
couples a string-keyed store to a Loader and only consults the Loader
when it has nothing fresh for the key.
*/
type LoaderCache struct {

	// store holds the loaded entries.
	store *store.Store[string, any]

	// engine decides whether a stored entry may still be served.
	engine *engine.FreshnessEngine

	// loader is how the cache talks to the outside world when it does
	// NOT have a servable value.
	loader types.Loader

	// sf prevents multiple goroutines from loading the same key from the
	// backing service simultaneously.
	sf singleflight.Group
}

/*
NewLoaderCache creates a read-through cache that serves each loaded value
for timeToKeep before asking the loader again. The same Option values
used with WithTimeToKeep apply.
*/
func NewLoaderCache(timeToKeep time.Duration, loader types.Loader, opts ...Option) *LoaderCache {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &LoaderCache{
		store:  store.New[string, any](),
		engine: engine.New(timeToKeep, o.clock, o.metrics),
		loader: loader,
	}
}

/*
Get retrieves the value for key, loading it when needed.

Freshness, error propagation and non-poisoning behave exactly like
TimedCache.Get. Misses are deduplicated with singleflight:

	If 100 goroutines request the same missing key,
	only ONE of them loads it from the backing service.
	The others wait and share the result.
*/
func (c *LoaderCache) Get(ctx context.Context, key string) (any, error) {
	if ent, ok := c.store.Get(key); ok && ent.Fresh(c.engine.TimeToKeep(), c.engine.Now()) {
		c.engine.OnHit()
		return ent.Value, nil
	}

	// Lookup events are recorded inside the flight, where the outcome is
	// certain: a caller racing a finished load may find the slot
	// repopulated and must count as a hit, not a miss.
	v, err, _ := c.sf.Do(key, func() (any, error) {
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
		v, err := c.loader.Load(ctx, key)
		if err != nil {
			c.engine.OnComputeError()
			return nil, err
		}

		c.store.Put(key, engine.NewEntry(c.engine, v))
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Len reports how many keys currently hold an entry, fresh or stale.
func (c *LoaderCache) Len() int {
	return c.store.Len()
}
