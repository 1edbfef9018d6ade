package types

import "context"

// Loader is the contract between the read-through cache and the backing service.
type Loader interface {

	/*
		Load is called when the cache has nothing fresh for a key.
		1. Cache checks memory → no entry, or entry too old
		2. Cache calls Load(key)
		3. Loader fetches from the service (DB, API, token endpoint, ...)
		4. Cache stores the result in memory with a fresh timestamp
		5. Cache returns the value

		A Load error is handed back to the caller untouched and nothing
		is stored, so the next Get for the key retries.
	*/
	Load(ctx context.Context, key string) (any, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(ctx context.Context, key string) (any, error)

func (f LoaderFunc) Load(ctx context.Context, key string) (any, error) {
	return f(ctx, key)
}
