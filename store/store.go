package store

import (
	"sync"

	"github.com/krisalay/timed-cache/types"
)

/*
This file defines how entries are actually stored.

The store is the dumb layer of the cache: it holds a key → entry mapping
behind a read-write mutex and nothing else. Freshness, computing, and
flight coordination all live above it.

There is deliberately no Delete: an entry's slot lives until a newer
compute overwrites it. Expired entries are simply never served.
*/

// Store is an RWMutex-guarded map of cache entries.
type Store[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]*types.TimedEntry[V]
}

func New[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{entries: make(map[K]*types.TimedEntry[V])}
}

// Get retrieves the entry for key, fresh or stale.
func (s *Store[K, V]) Get(key K) (*types.TimedEntry[V], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ent, ok := s.entries[key]
	return ent, ok
}

// Put inserts or replaces the entry for key.
func (s *Store[K, V]) Put(key K, ent *types.TimedEntry[V]) {
	s.mu.Lock()
	s.entries[key] = ent
	s.mu.Unlock()
}

// Len returns how many keys currently hold an entry, fresh or stale.
func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
