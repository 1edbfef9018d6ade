package cache

import "context"

/*
Cache defines the PUBLIC API of the timed cache.
This is a contract that guarantees certain behaviors, without exposing internals.
All of the details (storage, freshness evaluation, flight coordination, locking)
are hidden behind this interface.
*/
type Cache[K comparable, V any] interface {

	/*
		Get retrieves the value associated with the given key.

		BEHAVIOR:
		---------
		1. If the key holds an entry younger than the time to keep:
		   - Return the stored value immediately (hit)
		   - compute is NOT invoked and nothing is mutated

		2. If the key has no entry, or the entry is at least
		   time-to-keep old:
		   - Invoke compute (at most once per call, deduplicated
		     across concurrent callers of the same key)
		   - Store the result with a fresh timestamp
		   - Return it

		3. If compute fails:
		   - The error is returned verbatim
		   - The prior entry for the key, present or absent, is
		     left untouched so a later Get retries
	*/
	Get(key K, compute func() (V, error)) (V, error)

	/*
		Len reports how many keys currently hold an entry.

		Stale entries count: they are never removed, only overwritten,
		so Len only ever grows with the set of keys seen.
	*/
	Len() int
}

/*
ReadThroughCache is the contract of the loader-bound variant: the fetch
logic is fixed at construction instead of supplied per call.
*/
type ReadThroughCache interface {
	Get(ctx context.Context, key string) (any, error)
	Len() int
}
